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

//go:build linux

package devmem

import (
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/logger"
	"golang.org/x/sys/unix"
)

// Driver is the /dev/mem implementation of fpga.Driver.
type Driver struct {
	mem     *os.File
	manager []byte
	data    []byte

	// copy of the most recent value written to the GPO register. the
	// register can't be read back reliably while a transfer is in progress
	gpo uint32
}

// Open /dev/mem and map the FPGA manager.
func Open() (fpga.Driver, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf("devmem: %v", err)
	}

	drv := &Driver{mem: f}

	drv.manager, err = drv.mmap(managerAddress, managerSize)
	if err != nil {
		f.Close()
		return nil, curated.Errorf("devmem: manager: %v", err)
	}

	drv.data, err = drv.mmap(dataAddress, dataSize)
	if err != nil {
		_ = unix.Munmap(drv.manager)
		f.Close()
		return nil, curated.Errorf("devmem: data port: %v", err)
	}

	drv.gpo = drv.read(drv.manager, regGPO) & ^uint32(gpoStrobe|gpoFPGAEn|gpoOSDEn|gpoIOEn|gpoDMEn)

	return drv, nil
}

func (drv *Driver) mmap(addr int64, size int) ([]byte, error) {
	return unix.Mmap(int(drv.mem.Fd()), addr, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (drv *Driver) read(region []byte, offset int) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&region[offset])))
}

func (drv *Driver) write(region []byte, offset int, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&region[offset])), v)
}

func (drv *Driver) setBits(offset int, mask uint32) {
	drv.write(drv.manager, offset, drv.read(drv.manager, offset)|mask)
}

func (drv *Driver) clearBits(offset int, mask uint32) {
	drv.write(drv.manager, offset, drv.read(drv.manager, offset)&^mask)
}

func (drv *Driver) mode() uint32 {
	return drv.read(drv.manager, regStat) & modeMask
}

// poll calls cond until it returns true or the timeout expires.
func poll(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			return false
		}
	}
	return true
}

// WaitForReady implements the fpga.Driver interface.
func (drv *Driver) WaitForReady() error {
	ok := poll(ReadyTimeout, func() bool {
		m := drv.mode()
		return m != modeUndefined && m != modeReset
	})
	if !ok {
		return curated.Errorf("devmem: %v: manager mode %d", fpga.ErrTimeout, drv.mode())
	}
	return nil
}

// Program implements the fpga.Driver interface.
func (drv *Driver) Program(bitstream []byte) error {
	if err := drv.programInit(); err != nil {
		return err
	}

	// the data port takes 32-bit words. the bitstream is padded with zeros
	// if necessary
	n := len(bitstream) &^ 3
	for i := 0; i < n; i += 4 {
		drv.write(drv.data, 0, binary.LittleEndian.Uint32(bitstream[i:]))
	}
	if n < len(bitstream) {
		var w [4]byte
		copy(w[:], bitstream[n:])
		drv.write(drv.data, 0, binary.LittleEndian.Uint32(w[:]))
	}

	ok := poll(PhaseTimeout, func() bool {
		p := drv.read(drv.manager, regExtPortA)
		return p&portaConfDone == portaConfDone || p&portaNStatus == 0
	})
	if !ok || drv.read(drv.manager, regExtPortA)&portaNStatus == 0 {
		return curated.Errorf("devmem: %v: configuration not done", fpga.ErrRejected)
	}

	drv.clearBits(regCtrl, ctrlAxiCfgEn)

	if err := drv.clock(4); err != nil {
		return err
	}
	if !poll(PhaseTimeout, func() bool { m := drv.mode(); return m == modeInit || m == modeUser }) {
		return curated.Errorf("devmem: %v: init phase", fpga.ErrRejected)
	}

	if err := drv.clock(0x5000); err != nil {
		return err
	}
	if !poll(PhaseTimeout, func() bool { return drv.mode() == modeUser }) {
		return curated.Errorf("devmem: %v: user mode", fpga.ErrRejected)
	}

	drv.clearBits(regCtrl, ctrlEn)

	return nil
}

// programInit puts the fpga manager into the configuration phase.
func (drv *Driver) programInit() error {
	ctrl := drv.read(drv.manager, regCtrl)
	ctrl = (ctrl &^ ctrlCDRatioMask) | ctrlCDRatioX8 | ctrlCfgWidth32
	ctrl &^= ctrlNCE
	ctrl |= ctrlEn
	drv.write(drv.manager, regCtrl, ctrl)

	drv.setBits(regCtrl, ctrlNConfigPull)
	if !poll(PhaseTimeout, func() bool { return drv.mode() == modeReset }) {
		return curated.Errorf("devmem: %v: reset phase", fpga.ErrTimeout)
	}

	drv.clearBits(regCtrl, ctrlNConfigPull)
	if !poll(PhaseTimeout, func() bool { return drv.mode() == modeConfig }) {
		return curated.Errorf("devmem: %v: config phase", fpga.ErrTimeout)
	}

	drv.write(drv.manager, regPortaEOI, 0xfff)
	drv.setBits(regCtrl, ctrlAxiCfgEn)

	return nil
}

// clock sends the number of DCLK cycles to the FPGA.
func (drv *Driver) clock(count uint32) error {
	drv.write(drv.manager, regDclkStat, dclkStatDone)
	drv.write(drv.manager, regDclkCnt, count)
	if !poll(PhaseTimeout, func() bool { return drv.read(drv.manager, regDclkStat)&dclkStatDone != 0 }) {
		return curated.Errorf("devmem: %v: dclk", fpga.ErrTimeout)
	}
	drv.write(drv.manager, regDclkStat, dclkStatDone)
	return nil
}

// Reset implements the fpga.Driver interface.
func (drv *Driver) Reset() error {
	gpo := drv.read(drv.manager, regGPO) &^ (gpoReset | gpoRunning)
	drv.write(drv.manager, regGPO, gpo|gpoReset)
	time.Sleep(time.Millisecond)
	drv.write(drv.manager, regGPO, gpo|gpoRunning)
	drv.gpo = gpo | gpoRunning

	if !poll(ReadyTimeout, func() bool { return drv.read(drv.manager, regGPI)&gpiNotReady == 0 }) {
		return curated.Errorf("devmem: %v: core did not come out of reset", fpga.ErrTimeout)
	}
	return nil
}

func (drv *Driver) enable(bus fpga.Bus, en bool) {
	var mask uint32
	switch bus {
	case fpga.BusIO:
		mask = gpoIOEn
	case fpga.BusFPGA:
		mask = gpoFPGAEn
	case fpga.BusOSD:
		mask = gpoOSDEn
	}
	if en {
		drv.gpo |= mask
	} else {
		drv.gpo &^= mask
	}
	drv.write(drv.manager, regGPO, drv.gpo|gpoRunning)
}

// word strobes one 16-bit word and returns the word read back.
func (drv *Driver) word(w uint16) (uint16, error) {
	gpo := (drv.gpo &^ (0xffff | gpoStrobe)) | uint32(w) | gpoRunning
	drv.write(drv.manager, regGPO, gpo)
	drv.write(drv.manager, regGPO, gpo|gpoStrobe)

	var gpi uint32
	if !poll(TransferTimeout, func() bool {
		gpi = drv.read(drv.manager, regGPI)
		return gpi&gpiNotReady != 0 || gpi&gpiAck != 0
	}) || gpi&gpiNotReady != 0 {
		return 0, fpga.ErrNotRunning
	}

	drv.write(drv.manager, regGPO, gpo)
	if !poll(TransferTimeout, func() bool {
		gpi = drv.read(drv.manager, regGPI)
		return gpi&gpiNotReady != 0 || gpi&gpiAck == 0
	}) || gpi&gpiNotReady != 0 {
		return 0, fpga.ErrNotRunning
	}

	return uint16(gpi), nil
}

// Transfer implements the fpga.Driver interface.
func (drv *Driver) Transfer(bus fpga.Bus, cmd uint16, out []uint16, in []uint16) error {
	drv.enable(bus, true)
	defer drv.enable(bus, false)

	if _, err := drv.word(cmd); err != nil {
		return err
	}
	for _, w := range out {
		if _, err := drv.word(w); err != nil {
			return err
		}
	}
	for i := range in {
		v, err := drv.word(0)
		if err != nil {
			return err
		}
		in[i] = v
	}

	return nil
}

// window maps the page aligned region of shared memory that covers the
// address range.
func (drv *Driver) window(addr uint32, size int) ([]byte, int, error) {
	if addr < SharedAddress || uint64(addr)+uint64(size) > SharedAddress+SharedSize {
		return nil, 0, curated.Errorf("devmem: address %#08x out of range", addr)
	}
	pg := uint32(os.Getpagesize())
	base := addr &^ (pg - 1)
	offset := int(addr - base)
	m, err := drv.mmap(int64(base), offset+size)
	if err != nil {
		return nil, 0, curated.Errorf("devmem: %v", err)
	}
	return m, offset, nil
}

// ReadMemory implements the fpga.Driver interface.
func (drv *Driver) ReadMemory(addr uint32, p []byte) error {
	m, offset, err := drv.window(addr, len(p))
	if err != nil {
		return err
	}
	copy(p, m[offset:])
	return unix.Munmap(m)
}

// WriteMemory implements the fpga.Driver interface.
func (drv *Driver) WriteMemory(addr uint32, p []byte) error {
	m, offset, err := drv.window(addr, len(p))
	if err != nil {
		return err
	}
	copy(m[offset:], p)
	return unix.Munmap(m)
}

// Reinitialize implements the fpga.Driver interface. Every bus is deselected
// and the new core is given the chance to answer on the user-io bus.
func (drv *Driver) Reinitialize() error {
	drv.gpo &^= gpoFPGAEn | gpoOSDEn | gpoIOEn | gpoDMEn
	drv.write(drv.manager, regGPO, drv.gpo|gpoRunning)

	if !poll(ReadyTimeout, func() bool { return drv.read(drv.manager, regGPI)&gpiNotReady == 0 }) {
		return curated.Errorf("devmem: %v: core not answering", fpga.ErrTimeout)
	}

	logger.Logf(logger.Debug, "devmem", "core id %#04x", drv.read(drv.manager, regGPI)&0xffff)

	return nil
}

// Close implements the fpga.Driver interface.
func (drv *Driver) Close() error {
	_ = unix.Munmap(drv.data)
	_ = unix.Munmap(drv.manager)
	return drv.mem.Close()
}
