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

package fpga

import "errors"

// Bus selects the peripheral addressed by a Transfer.
type Bus int

// List of valid Bus values.
const (
	// user-io bus, the main channel between the application and the core
	BusIO Bus = iota

	// FPGA bus, used for file transfer and sector I/O
	BusFPGA

	// on-screen display bus
	BusOSD
)

func (b Bus) String() string {
	switch b {
	case BusIO:
		return "io"
	case BusFPGA:
		return "fpga"
	case BusOSD:
		return "osd"
	}
	return "unknown bus"
}

// Driver is the hardware specific part of a Device.
//
// Transfer() sends the cmd word to the selected bus, followed by every word in
// out. It then reads len(in) words into in. Either slice can be nil.
type Driver interface {
	// WaitForReady returns when the hardware can accept a new configuration.
	// The wait is bounded by the driver; ErrTimeout is returned if the bound
	// is exceeded
	WaitForReady() error

	// Program writes the raw bitstream to the FPGA
	Program(bitstream []byte) error

	// Reset the core running on the FPGA
	Reset() error

	Transfer(bus Bus, cmd uint16, out []uint16, in []uint16) error

	// ReadMemory and WriteMemory access the memory shared between the
	// processor and the FPGA
	ReadMemory(addr uint32, p []byte) error
	WriteMemory(addr uint32, p []byte) error

	// Reinitialize storage and the user-io layer after a new core has
	// started
	Reinitialize() error

	Close() error
}

// Sentinel errors returned by a Device or a Driver.
var (
	ErrTimeout    = errors.New("fpga: timeout")
	ErrNotReady   = errors.New("fpga: not ready")
	ErrNotRunning = errors.New("fpga: no core running")
	ErrRejected   = errors.New("fpga: bitstream rejected")
)
