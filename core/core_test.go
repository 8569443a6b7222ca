// This file is part of Golem.
//
// Golem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Golem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Golem.  If not, see <https://www.gnu.org/licenses/>.

package core_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/golem-fpga/golem/configstring"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/fpga/simulated"
	"github.com/golem-fpga/golem/test"
	"github.com/golem-fpga/golem/userinput"
)

const testConfig = "NES;FS,NES,Load;S0,SAV,Mount;O12,Aspect,Original,Wide,Full;T3,Reset Mapper;R0,Reset;" +
	"D4T5,Disabled;SS3E000000:1000;V,v1.2"

// newCore returns a core running on a simulated device. Transfers made while
// creating the core are forgotten.
func newCore(t *testing.T, cfg string) (*core.FpgaCore, *fpga.Device, *simulated.Driver) {
	t.Helper()

	drv := simulated.NewDriver(cfg)
	dev := fpga.NewDevice(drv)
	test.DemandSuccess(t, dev.WaitForReady())
	test.DemandSuccess(t, dev.Program([]byte{0x01, 0x02, 0x03}))
	test.DemandSuccess(t, dev.Reset())

	c, err := core.New(dev)
	test.DemandSuccess(t, err)
	drv.ClearTransfers()

	return c, dev, drv
}

func lastOut(t *testing.T, drv *simulated.Driver, bus fpga.Bus, cmd uint16) []uint16 {
	t.Helper()
	tr := drv.Transfers(bus, cmd)
	if len(tr) == 0 {
		t.Fatalf("no transfers for command %#02x", cmd)
	}
	return tr[len(tr)-1].Out
}

func expectWords(t *testing.T, got []uint16, expected ...uint16) {
	t.Helper()
	if !slices.Equal(got, expected) {
		t.Errorf("words %04x do not equal %04x", got, expected)
	}
}

func TestIdentity(t *testing.T) {
	c, _, _ := newCore(t, testConfig)
	test.ExpectEquality(t, c.Name(), "NES")
	test.ExpectEquality(t, c.Version(), "v1.2")
	test.ExpectEquality(t, c.Kind(), core.KindFpga)
	test.ExpectImplements[core.Core](t, c)
	test.ExpectImplements[userinput.Sink](t, c)
	test.ExpectEquality(t, len(c.MenuOptions()), 6)

	c, _, _ = newCore(t, "SMS")
	test.ExpectEquality(t, c.Version(), core.UnknownVersion)
	test.ExpectEquality(t, c.SaveStates() == nil, true)
}

func TestNewFailure(t *testing.T) {
	drv := simulated.NewDriver("")
	dev := fpga.NewDevice(drv)

	// device isn't running
	_, err := core.New(dev)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, dev.WaitForReady())
	test.DemandSuccess(t, dev.Program([]byte{0x01}))
	test.DemandSuccess(t, dev.Reset())

	// empty config string
	_, err = core.New(dev)
	test.ExpectFailure(t, err)
}

func TestStatusBits(t *testing.T) {
	var s core.StatusBits
	s.Set(0, true)
	s.Set(33, true)
	s.Set(127, true)
	s.Set(128, true)
	test.ExpectEquality(t, s.Get(0), true)
	test.ExpectEquality(t, s.Get(1), false)
	test.ExpectEquality(t, s.Get(33), true)
	test.ExpectEquality(t, s.Get(127), true)
	test.ExpectEquality(t, s.Get(128), false)
	test.ExpectEquality(t, s[1], uint32(2))

	r := configstring.BitRange{Lo: 30, Hi: 33}
	test.ExpectEquality(t, s.Range(r), uint32(0b1000))
	s.SetRange(r, 0b0101)
	test.ExpectEquality(t, s.Range(r), uint32(0b0101))
	test.ExpectEquality(t, s.Get(30), true)
	test.ExpectEquality(t, s.Get(33), false)

	s.Set(30, false)
	s.Set(32, false)
	s.Set(127, false)
	test.ExpectEquality(t, s.Get(0), true)
	s.Set(0, false)
	test.ExpectEquality(t, s.IsZero(), true)

	s.Set(16, true)
	w := s.Words16()
	test.DemandEquality(t, len(w), 8)
	expectWords(t, w, 0, 1, 0, 0, 0, 0, 0, 0)
}

func TestStatus(t *testing.T) {
	c, _, drv := newCore(t, testConfig)

	m := c.StatusMask()
	test.ExpectEquality(t, m.Get(0), true)
	test.ExpectEquality(t, m.Get(1), true)
	test.ExpectEquality(t, m.Get(2), true)
	test.ExpectEquality(t, m.Get(3), true)
	test.ExpectEquality(t, m.Get(4), false)
	test.ExpectEquality(t, m.Get(5), true)

	var s core.StatusBits
	s.Set(17, true)
	test.ExpectSuccess(t, c.SetStatusBits(s))
	test.ExpectEquality(t, c.StatusBits(), s)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOSetStatus2), 0, 2, 0, 0, 0, 0, 0, 0)

	// failed transfers leave the status unchanged
	drv.FailTransfer = errors.New("test")
	var s2 core.StatusBits
	s2.Set(1, true)
	err := c.SetStatusBits(s2)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, core.ErrIoError), true)
	test.ExpectEquality(t, c.StatusBits(), s)
}

func TestTriggerMenu(t *testing.T) {
	c, _, drv := newCore(t, testConfig)
	items := c.MenuOptions()

	// option cycles through its three choices and the menu stays open
	opt := items[2]
	test.DemandEquality(t, opt.Kind, configstring.KindOption)
	for _, v := range []uint32{1, 2, 0, 1} {
		closeMenu, err := c.TriggerMenu(opt)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, closeMenu, false)
		test.ExpectEquality(t, c.StatusBits().Range(opt.Bits), v)
	}

	// trigger pulses its bit
	drv.ClearTransfers()
	closeMenu, err := c.TriggerMenu(items[3])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, closeMenu, false)
	tr := drv.Transfers(fpga.BusIO, fpga.UIOSetStatus2)
	test.DemandEquality(t, len(tr), 2)
	test.ExpectEquality(t, tr[0].Out[0]&0x08, uint16(0x08))
	test.ExpectEquality(t, tr[1].Out[0]&0x08, uint16(0x00))
	test.ExpectEquality(t, c.StatusBits().Get(3), false)

	// reset closes the menu
	closeMenu, err = c.TriggerMenu(items[4])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, closeMenu, true)

	// disabled when bit 4 is set. bit 4 is not set so the trigger works
	_, err = c.TriggerMenu(items[5])
	test.ExpectSuccess(t, err)

	s := c.StatusBits()
	s.Set(4, true)
	test.DemandSuccess(t, c.SetStatusBits(s))
	_, err = c.TriggerMenu(items[5])
	test.ExpectEquality(t, errors.Is(err, core.ErrActionFailed), true)

	// file items have no action
	_, err = c.TriggerMenu(items[0])
	test.ExpectEquality(t, errors.Is(err, core.ErrActionFailed), true)
}

func TestKeyboard(t *testing.T) {
	c, _, drv := newCore(t, testConfig)

	c.KeyDown(userinput.ScancodeA)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOKeyboard), 0x1c)

	c.KeyUp(userinput.ScancodeA)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOKeyboard), 0xf0, 0x1c)

	c.KeyDown(userinput.ScancodeUp)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOKeyboard), 0xe0, 0x75)

	c.KeyUp(userinput.ScancodeRCtrl)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOKeyboard), 0xe0, 0xf0, 0x14)

	// keys without a translation are dropped
	drv.ClearTransfers()
	c.KeyDown(userinput.ScancodePause)
	c.KeyDown(userinput.Scancode(400))
	test.ExpectEquality(t, len(drv.AllTransfers()), 0)

	// repeated key downs are all forwarded
	for range 3 {
		c.KeyDown(userinput.ScancodeB)
	}
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOKeyboard)), 3)
}

func TestGamepad(t *testing.T) {
	c, _, drv := newCore(t, testConfig)

	c.ButtonDown(1, userinput.GamepadButtonA)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOJoystick1), 0x0010, 0x0000)

	c.ButtonDown(1, userinput.GamepadButtonStart)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOJoystick1), 0x0810, 0x0000)

	c.ButtonUp(1, userinput.GamepadButtonA)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOJoystick1), 0x0800, 0x0000)

	c.ButtonDown(5, userinput.GamepadButtonDPadUp)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOJoystick5), 0x0008, 0x0000)

	// out of range index and unmapped buttons are ignored
	drv.ClearTransfers()
	c.ButtonDown(6, userinput.GamepadButtonA)
	c.ButtonDown(0, userinput.GamepadButtonTouchpad)
	test.ExpectEquality(t, len(drv.AllTransfers()), 0)

	c.AxisMotion(0, userinput.GamepadAxisLeftX, 0x7fff)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOAStick), 0x0000, 0x007f)
	c.AxisMotion(0, userinput.GamepadAxisLeftY, -0x8000)
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOAStick), 0x0000, 0x807f)

	drv.ClearTransfers()
	c.AxisMotion(0, userinput.GamepadAxisTriggerLeft, 0x7fff)
	test.ExpectEquality(t, len(drv.AllTransfers()), 0)
}

func TestStale(t *testing.T) {
	c, dev, _ := newCore(t, testConfig)
	test.ExpectEquality(t, c.IsStale(), false)

	test.DemandSuccess(t, dev.WaitForReady())
	test.DemandSuccess(t, dev.Program([]byte{0x04}))
	test.DemandSuccess(t, dev.Reset())
	test.ExpectEquality(t, c.IsStale(), true)

	err := c.SetStatusBits(core.StatusBits{})
	test.ExpectEquality(t, errors.Is(err, core.ErrStale), true)
	test.ExpectEquality(t, errors.Is(err, core.ErrIoError), true)

	_, err = c.TriggerMenu(c.MenuOptions()[2])
	test.ExpectEquality(t, errors.Is(err, core.ErrStale), true)

	_, err = c.TakeScreenshot()
	test.ExpectEquality(t, errors.Is(err, core.ErrStale), true)
	test.ExpectEquality(t, errors.Is(err, core.ErrIoError), true)

	_, err = c.SaveStates()[0].WriteTo(&bytes.Buffer{})
	test.ExpectEquality(t, errors.Is(err, core.ErrStale), true)

	// input forwarding on a stale core is a programming error
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	c.KeyDown(userinput.ScancodeA)
}

func TestLoadFile(t *testing.T) {
	c, _, drv := newCore(t, testConfig)

	data := make([]byte, 5000)
	for i := range data {
		data[i] = byte(i)
	}
	path := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(path, data, 0o644))

	test.DemandSuccess(t, c.LoadFile(path, nil))

	tr := drv.AllTransfers()
	test.DemandEquality(t, len(tr), 6)
	for _, r := range tr {
		test.ExpectEquality(t, r.Bus, fpga.BusFPGA)
	}

	test.ExpectEquality(t, tr[0].Cmd, fpga.FIOFileIndex)
	expectWords(t, tr[0].Out, 1)

	test.ExpectEquality(t, tr[1].Cmd, fpga.FIOFileInfo)
	expectWords(t, tr[1].Out, 5000, 0, 'N'|'E'<<8, 'S')

	test.ExpectEquality(t, tr[2].Cmd, fpga.FIOFileTx)
	expectWords(t, tr[2].Out, 0xff)

	test.ExpectEquality(t, tr[3].Cmd, fpga.FIOFileTxDat)
	test.ExpectEquality(t, len(tr[3].Out), 2048)
	test.ExpectEquality(t, tr[3].Out[1], uint16(0x0302))
	test.ExpectEquality(t, tr[4].Cmd, fpga.FIOFileTxDat)
	test.ExpectEquality(t, len(tr[4].Out), 452)

	test.ExpectEquality(t, tr[5].Cmd, fpga.FIOFileTx)
	expectWords(t, tr[5].Out, 0x00)

	// unknown slot
	err := c.LoadFile(path, &configstring.LoadFileInfo{Index: 3})
	test.ExpectEquality(t, errors.Is(err, core.ErrUnsupportedSlot), true)

	// missing file
	err = c.LoadFile(filepath.Join(t.TempDir(), "missing.nes"), &configstring.LoadFileInfo{Index: 1})
	test.ExpectEquality(t, errors.Is(err, core.ErrIoError), true)

	// core with no file slots
	c, _, _ = newCore(t, "Menu")
	err = c.LoadFile(path, nil)
	test.ExpectEquality(t, errors.Is(err, core.ErrUnsupportedSlot), true)
}

func TestSav(t *testing.T) {
	c, _, drv := newCore(t, testConfig)

	// nothing mounted
	test.ExpectSuccess(t, c.CheckSav())

	path := filepath.Join(t.TempDir(), "game.sav")
	test.DemandSuccess(t, c.MountSav(path))
	expectWords(t, lastOut(t, drv, fpga.BusIO, fpga.UIOSetSDInfo), 0, 0, 0)

	// no request
	drv.ClearTransfers()
	test.ExpectSuccess(t, c.CheckSav())
	test.ExpectEquality(t, len(drv.AllTransfers()), 1)

	// write request for sector 1. the first status bit is a read request and
	// the second is a write request
	drv.Respond(fpga.UIOGetSDStat, func(_ []uint16, in []uint16) {
		in[0] = 0x02
		in[1] = 1
	})
	drv.Respond(fpga.UIOSectorWr, func(_ []uint16, in []uint16) {
		for i := range in {
			in[i] = 0xabcd
		}
	})
	test.DemandSuccess(t, c.CheckSav())

	d, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(d), 1024)
	test.ExpectEquality(t, d[0], byte(0x00))
	test.ExpectEquality(t, d[512], byte(0xcd))
	test.ExpectEquality(t, d[513], byte(0xab))

	// read request for sector 1
	drv.Respond(fpga.UIOGetSDStat, func(_ []uint16, in []uint16) {
		in[0] = 0x01
		in[1] = 1
	})
	test.DemandSuccess(t, c.CheckSav())
	out := lastOut(t, drv, fpga.BusIO, fpga.UIOSectorRd)
	test.DemandEquality(t, len(out), 256)
	test.ExpectEquality(t, out[255], uint16(0xabcd))

	// read beyond the end of the file is zero
	drv.Respond(fpga.UIOGetSDStat, func(_ []uint16, in []uint16) {
		in[0] = 0x01
		in[1] = 10
	})
	test.DemandSuccess(t, c.CheckSav())
	out = lastOut(t, drv, fpga.BusIO, fpga.UIOSectorRd)
	test.ExpectEquality(t, out[0], uint16(0))

	test.ExpectSuccess(t, c.Close())

	// core without sav slot
	c, _, _ = newCore(t, "Menu")
	err = c.MountSav(path)
	test.ExpectEquality(t, errors.Is(err, core.ErrUnsupportedSlot), true)
}

func TestSaveStates(t *testing.T) {
	c, dev, _ := newCore(t, testConfig)

	ss := c.SaveStates()
	test.DemandEquality(t, len(ss), core.NumSaveStateSlots)
	test.ExpectEquality(t, ss[1].IsDirty(), false)

	// the core writes slot 1 and increments the counter
	const slot1 = 0x3e000000 + 0x1000
	state := make([]byte, 0x1000)
	binary.LittleEndian.PutUint32(state, 5)
	state[0xfff] = 0x99
	test.DemandSuccess(t, dev.WriteMemory(slot1, state))
	test.ExpectEquality(t, ss[1].IsDirty(), true)
	test.ExpectEquality(t, ss[0].IsDirty(), false)

	var buf bytes.Buffer
	n, err := ss[1].WriteTo(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, int64(0x1000))
	test.ExpectEquality(t, bytes.Equal(buf.Bytes(), state), true)
	test.ExpectEquality(t, ss[1].IsDirty(), false)

	// too short and too long sources are rejected without touching memory
	_, err = ss[2].ReadFrom(bytes.NewReader(state[:0x800]))
	test.ExpectEquality(t, errors.Is(err, core.ErrSizeMismatch), true)
	_, err = ss[2].ReadFrom(bytes.NewReader(append(slices.Clone(state), 0x00)))
	test.ExpectEquality(t, errors.Is(err, core.ErrSizeMismatch), true)

	slot2 := make([]byte, 0x1000)
	test.DemandSuccess(t, dev.ReadMemory(0x3e000000+0x2000, slot2))
	test.ExpectEquality(t, slot2[0xfff], byte(0x00))

	// exact size
	n, err = ss[2].ReadFrom(bytes.NewReader(state))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, int64(0x1000))
	test.DemandSuccess(t, dev.ReadMemory(0x3e000000+0x2000, slot2))
	test.ExpectEquality(t, slot2[0xfff], byte(0x99))
	test.ExpectEquality(t, ss[2].IsDirty(), false)
}

func TestScreenshot(t *testing.T) {
	c, dev, _ := newCore(t, testConfig)

	// no header
	_, err := c.TakeScreenshot()
	test.ExpectEquality(t, errors.Is(err, core.ErrCaptureFailed), true)

	hdr := make([]byte, 16)
	hdr[0] = 0x01
	hdr[1] = 0x46
	binary.BigEndian.PutUint16(hdr[2:], 16)
	binary.BigEndian.PutUint16(hdr[6:], 2)
	binary.BigEndian.PutUint16(hdr[8:], 2)
	binary.BigEndian.PutUint16(hdr[10:], 8)
	pix := []byte{
		0xff, 0x00, 0x00, 0x00, 0xff, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xff, 0x01, 0x02, 0x03, 0x00, 0x00,
	}
	test.DemandSuccess(t, dev.WriteMemory(core.FramebufferAddress, append(hdr, pix...)))

	img, err := c.TakeScreenshot()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 2)
	test.ExpectEquality(t, img.Bounds().Dy(), 2)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(1, 0), color.RGBA{G: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(0, 1), color.RGBA{B: 0xff, A: 0xff})
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xff})

	// stride too small for the width
	binary.BigEndian.PutUint16(hdr[10:], 4)
	test.DemandSuccess(t, dev.WriteMemory(core.FramebufferAddress, hdr))
	_, err = c.TakeScreenshot()
	test.ExpectEquality(t, errors.Is(err, core.ErrCaptureFailed), true)
}

func TestNull(t *testing.T) {
	var c core.Core = core.Null{}
	test.ExpectEquality(t, c.Name(), "null")
	test.ExpectEquality(t, c.Kind(), core.KindNull)

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	c.Version()
}
