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

package commands_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/coremanager"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/fpga/simulated"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/resources"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/test"
	"github.com/golem-fpga/golem/userinput"
)

type app struct {
	notices   []notifications.Notice
	slot      int
	menuQuit  bool
	menuCalls int
}

func (a *app) Notify(n notifications.Notice) error {
	a.notices = append(a.notices, n)
	return nil
}

func (a *app) CoreManager() coremanager.CoreManager { return coremanager.Null{} }
func (a *app) Settings() *settings.Settings         { return nil }
func (a *app) SaveSlot() int                        { return a.slot }
func (a *app) SetSaveSlot(slot int)                 { a.slot = slot }

func (a *app) CoreMenu(c core.Core) bool {
	a.menuCalls++
	return a.menuQuit
}

func (a *app) lastNotice() notifications.Notice {
	if len(a.notices) == 0 {
		return ""
	}
	return a.notices[len(a.notices)-1]
}

func newCore(t *testing.T, cfg string) (*core.FpgaCore, *fpga.Device, *simulated.Driver) {
	t.Helper()

	t.Setenv(resources.HomeEnv, t.TempDir())

	drv := simulated.NewDriver(cfg)
	dev := fpga.NewDevice(drv)
	test.DemandSuccess(t, dev.WaitForReady())
	test.DemandSuccess(t, dev.Program([]byte{0x01}))
	test.DemandSuccess(t, dev.Reset())

	c, err := core.New(dev)
	test.DemandSuccess(t, err)
	drv.ClearTransfers()

	return c, dev, drv
}

func TestCommandNames(t *testing.T) {
	test.ExpectEquality(t, len(commands.All()), int(commands.NumCommands))

	for _, cmd := range commands.All() {
		c, err := commands.ParseCommand(cmd.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, c, cmd)

		// every command has a default mapping, even if it is empty
		_, ok := settings.DefaultShortcuts[cmd.String()]
		test.ExpectSuccess(t, ok, cmd)
	}

	_, err := commands.ParseCommand("fly")
	test.ExpectFailure(t, err)
}

func TestBuildTable(t *testing.T) {
	m := settings.Mappings{
		Global: map[string][]string{
			"show_core_menu": {"F12", "Pad:Guide"},
			"quit_core":      {"Ctrl"},
			"reset_core":     {"Ctrl+R", "NoSuchKey"},
			"dump_menu_tree": {},
		},
		Core: map[string]map[string][]string{
			"NES": {"show_core_menu": {"Escape"}},
		},
	}

	tbl := commands.BuildTable(m, "SNES")
	test.DemandEquality(t, len(tbl), 4)
	test.ExpectEquality(t, tbl[0].String(), "F12 -> show_core_menu")
	test.ExpectEquality(t, tbl[1].String(), "Pad:Guide -> show_core_menu")
	test.ExpectEquality(t, tbl[2].String(), "Ctrl -> quit_core")
	test.ExpectEquality(t, tbl[3].String(), "Ctrl+R -> reset_core")

	tbl = commands.BuildTable(m, "NES")
	test.DemandEquality(t, len(tbl), 3)
	test.ExpectEquality(t, tbl[0].String(), "Escape -> show_core_menu")

	// both quit_core and reset_core are satisfied. quit_core was registered
	// first
	var s userinput.State
	s.KeyDown(userinput.ScancodeLCtrl)
	s.KeyDown(userinput.ScancodeR)
	b, ok := tbl.Match(&s)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Command, commands.QuitCore)

	s.Clear()
	_, ok = tbl.Match(&s)
	test.ExpectFailure(t, ok)
}

func TestDefaultTable(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "golem.prefs")
	st, err := settings.NewSettings(pth)
	test.DemandSuccess(t, err)
	defer st.Close()

	tbl := commands.BuildTable(st.Mappings(), "NES")
	test.ExpectEquality(t, tbl[0].Command, commands.ShowCoreMenu)

	var s userinput.State
	s.ButtonDown(1, userinput.GamepadButtonBack)
	s.ButtonDown(1, userinput.GamepadButtonStart)
	b, ok := tbl.Match(&s)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Command, commands.QuitCore)
}

func TestExecuteSimple(t *testing.T) {
	c, _, drv := newCore(t, "NES;O12,Aspect,Original,Wide")
	a := &app{}

	test.ExpectEquality(t, commands.QuitCore.Execute(a, c).Outcome, commands.OutcomeQuit)

	test.ExpectEquality(t, commands.ShowCoreMenu.Execute(a, c).Outcome, commands.OutcomeOk)
	a.menuQuit = true
	test.ExpectEquality(t, commands.ShowCoreMenu.Execute(a, c).Outcome, commands.OutcomeQuit)
	test.ExpectEquality(t, a.menuCalls, 2)

	// reset pulses bit zero
	r := commands.ResetCore.Execute(a, c)
	test.ExpectEquality(t, r.Outcome, commands.OutcomeOk)
	tr := drv.Transfers(fpga.BusIO, fpga.UIOSetStatus2)
	test.DemandEquality(t, len(tr), 2)
	test.ExpectEquality(t, tr[0].Out[0], uint16(0x0001))
	test.ExpectEquality(t, tr[1].Out[0], uint16(0x0000))

	for i := range core.NumSaveStateSlots {
		r = commands.NextSaveSlot.Execute(a, c)
		test.ExpectEquality(t, r.Outcome, commands.OutcomeOk)
		test.ExpectEquality(t, a.slot, (i+1)%core.NumSaveStateSlots)
	}

	test.ExpectEquality(t, commands.ShortcutCommand(99).Execute(a, c).Outcome, commands.OutcomeFailed)
}

func TestSaveAndLoadState(t *testing.T) {
	c, dev, _ := newCore(t, "NES;SS3E000000:100")
	a := &app{slot: 1}

	// nothing to load yet
	r := commands.LoadState.Execute(a, c)
	test.ExpectEquality(t, r.Outcome, commands.OutcomeFailed)

	const slot1 = 0x3e000000 + 0x100
	state := make([]byte, 0x100)
	binary.LittleEndian.PutUint32(state, 1)
	state[0xff] = 0x42
	test.DemandSuccess(t, dev.WriteMemory(slot1, state))

	r = commands.SaveState.Execute(a, c)
	test.DemandEquality(t, r.Outcome, commands.OutcomeOk, r.Message)
	test.ExpectEquality(t, a.lastNotice(), notifications.NotifyStateSaved)
	test.ExpectSuccess(t, strings.HasSuffix(r.Message, filepath.Join("savestates", "NES", "slot2.ss")))

	data, err := os.ReadFile(r.Message)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), 0x100)
	test.ExpectEquality(t, data[0xff], byte(0x42))

	// the hardware region changes and is then restored from the file
	test.DemandSuccess(t, dev.WriteMemory(slot1+0xff, []byte{0x00}))
	r = commands.LoadState.Execute(a, c)
	test.DemandEquality(t, r.Outcome, commands.OutcomeOk, r.Message)
	test.ExpectEquality(t, a.lastNotice(), notifications.NotifyStateLoaded)

	b := make([]byte, 1)
	test.DemandSuccess(t, dev.ReadMemory(slot1+0xff, b))
	test.ExpectEquality(t, b[0], byte(0x42))

	// a file of the wrong size is rejected
	test.DemandSuccess(t, os.WriteFile(r.Message, data[:0x80], 0o600))
	r = commands.LoadState.Execute(a, c)
	test.ExpectEquality(t, r.Outcome, commands.OutcomeFailed)
}

func TestSaveStateUnsupported(t *testing.T) {
	c, _, _ := newCore(t, "SMS")
	a := &app{}

	r := commands.SaveState.Execute(a, c)
	test.ExpectEquality(t, r.Outcome, commands.OutcomeFailed)
	test.ExpectSuccess(t, strings.Contains(r.Message, "does not support save states"))
	test.ExpectEquality(t, len(a.notices), 0)
}

func TestScreenshotAndDump(t *testing.T) {
	c, dev, _ := newCore(t, "NES;O12,Aspect,Original,Wide")
	a := &app{}

	// no frame buffer
	r := commands.TakeScreenshot.Execute(a, c)
	test.ExpectEquality(t, r.Outcome, commands.OutcomeFailed)

	hdr := make([]byte, 16)
	hdr[0] = 0x01
	hdr[1] = 0x46
	binary.BigEndian.PutUint16(hdr[2:], 16)
	binary.BigEndian.PutUint16(hdr[6:], 2)
	binary.BigEndian.PutUint16(hdr[8:], 1)
	binary.BigEndian.PutUint16(hdr[10:], 6)
	pix := []byte{0xff, 0x00, 0x00, 0x00, 0xff, 0x00}
	test.DemandSuccess(t, dev.WriteMemory(core.FramebufferAddress, append(hdr, pix...)))

	r = commands.TakeScreenshot.Execute(a, c)
	test.DemandEquality(t, r.Outcome, commands.OutcomeOk, r.Message)
	test.ExpectEquality(t, a.lastNotice(), notifications.NotifyScreenshot)
	_, err := os.Stat(r.Message)
	test.ExpectSuccess(t, err)

	r = commands.DumpMenuTree.Execute(a, c)
	test.DemandEquality(t, r.Outcome, commands.OutcomeOk, r.Message)
	data, err := os.ReadFile(r.Message)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}
