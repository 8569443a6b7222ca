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

package simulated

import (
	"slices"
	"sync"

	"github.com/golem-fpga/golem/fpga"
)

// Transfer is the record of one call to Driver.Transfer().
type Transfer struct {
	Bus fpga.Bus
	Cmd uint16
	Out []uint16
}

// Responder fills the in slice of a transfer. The out slice is the data sent
// with the command.
type Responder func(out []uint16, in []uint16)

// Driver is a simulated FPGA.
type Driver struct {
	crit sync.Mutex

	// the config string returned by the core. if ConfigFor is not nil it is
	// used instead
	ConfigString string
	ConfigFor    func(bitstream []byte) string

	// errors returned by the respective step. nil means success
	FailWaitForReady error
	FailProgram      error
	FailReset        error
	FailTransfer     error
	FailReinitialize error

	responders map[uint16]Responder
	transfers  []Transfer
	memory     map[uint32][]byte

	programmed   []byte
	programCalls int
	resetCalls   int
	reinitCalls  int
	config       string
	closed       bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(configString string) *Driver {
	return &Driver{
		ConfigString: configString,
		responders:   make(map[uint16]Responder),
		memory:       make(map[uint32][]byte),
	}
}

// Respond sets the Responder for a user-io command.
func (drv *Driver) Respond(cmd uint16, r Responder) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.responders[cmd] = r
}

// WaitForReady implements the fpga.Driver interface.
func (drv *Driver) WaitForReady() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.FailWaitForReady
}

// Program implements the fpga.Driver interface.
func (drv *Driver) Program(bitstream []byte) error {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	drv.programCalls++
	if drv.FailProgram != nil {
		drv.programmed = nil
		return drv.FailProgram
	}

	drv.programmed = slices.Clone(bitstream)
	if drv.ConfigFor != nil {
		drv.config = drv.ConfigFor(bitstream)
	} else {
		drv.config = drv.ConfigString
	}

	return nil
}

// Reset implements the fpga.Driver interface.
func (drv *Driver) Reset() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.resetCalls++
	return drv.FailReset
}

// Transfer implements the fpga.Driver interface.
func (drv *Driver) Transfer(bus fpga.Bus, cmd uint16, out []uint16, in []uint16) error {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	if drv.FailTransfer != nil {
		return drv.FailTransfer
	}

	drv.transfers = append(drv.transfers, Transfer{Bus: bus, Cmd: cmd, Out: slices.Clone(out)})

	clear(in)
	if bus == fpga.BusIO && cmd == fpga.UIOGetString {
		for i := 0; i < len(in) && i < len(drv.config); i++ {
			in[i] = uint16(drv.config[i])
		}
		return nil
	}

	if r, ok := drv.responders[cmd]; ok {
		r(out, in)
	}

	return nil
}

// the simulated memory is divided into pages that are allocated on first
// write. unallocated pages read as zero.
const pageSize = 4096

// ReadMemory implements the fpga.Driver interface.
func (drv *Driver) ReadMemory(addr uint32, p []byte) error {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	for i := range p {
		a := addr + uint32(i)
		if pg, ok := drv.memory[a/pageSize]; ok {
			p[i] = pg[a%pageSize]
		} else {
			p[i] = 0
		}
	}
	return nil
}

// WriteMemory implements the fpga.Driver interface.
func (drv *Driver) WriteMemory(addr uint32, p []byte) error {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	for i, v := range p {
		a := addr + uint32(i)
		pg, ok := drv.memory[a/pageSize]
		if !ok {
			pg = make([]byte, pageSize)
			drv.memory[a/pageSize] = pg
		}
		pg[a%pageSize] = v
	}
	return nil
}

// Reinitialize implements the fpga.Driver interface.
func (drv *Driver) Reinitialize() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.reinitCalls++
	return drv.FailReinitialize
}

// Close implements the fpga.Driver interface.
func (drv *Driver) Close() error {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.closed = true
	return nil
}

// ProgramCalls returns the number of calls to Program().
func (drv *Driver) ProgramCalls() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.programCalls
}

// ResetCalls returns the number of calls to Reset().
func (drv *Driver) ResetCalls() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.resetCalls
}

// ReinitCalls returns the number of calls to Reinitialize().
func (drv *Driver) ReinitCalls() int {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.reinitCalls
}

// Programmed returns a copy of the most recently programmed bitstream.
func (drv *Driver) Programmed() []byte {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return slices.Clone(drv.programmed)
}

// Closed returns true if Close() has been called.
func (drv *Driver) Closed() bool {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.closed
}

// Transfers returns the recorded transfers for the command on the bus.
func (drv *Driver) Transfers(bus fpga.Bus, cmd uint16) []Transfer {
	drv.crit.Lock()
	defer drv.crit.Unlock()

	var t []Transfer
	for _, r := range drv.transfers {
		if r.Bus == bus && r.Cmd == cmd {
			t = append(t, r)
		}
	}
	return t
}

// AllTransfers returns every recorded transfer, in order.
func (drv *Driver) AllTransfers() []Transfer {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return slices.Clone(drv.transfers)
}

// ClearTransfers forgets every recorded transfer.
func (drv *Driver) ClearTransfers() {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.transfers = drv.transfers[:0]
}
