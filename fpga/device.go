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

import (
	"fmt"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
)

// State of the Device.
type State int

// List of valid State values.
const (
	NotReady State = iota
	Ready
	Programming
	Running
)

func (s State) String() string {
	switch s {
	case NotReady:
		return "not ready"
	case Ready:
		return "ready"
	case Programming:
		return "programming"
	case Running:
		return "running"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Device is the handle onto the physical FPGA.
type Device struct {
	drv        Driver
	state      State
	generation uint64
	osd        bool

	// number of calls to Program(), successful or not
	programCalls int
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(drv Driver) *Device {
	return &Device{
		drv:   drv,
		state: NotReady,
	}
}

func (dev *Device) String() string {
	return fmt.Sprintf("fpga %s (generation %d)", dev.state, dev.generation)
}

// State returns the current state of the device.
func (dev *Device) State() State {
	return dev.state
}

// Generation returns the current binding generation.
func (dev *Device) Generation() uint64 {
	return dev.generation
}

// IsCurrent returns true if gen is the current binding generation and a core
// is running.
func (dev *Device) IsCurrent(gen uint64) bool {
	return gen == dev.generation && dev.state == Running
}

// ProgramCalls returns the number of times Program() has been called.
func (dev *Device) ProgramCalls() int {
	return dev.programCalls
}

// WaitForReady waits until the hardware can accept a new configuration.
func (dev *Device) WaitForReady() error {
	if err := dev.drv.WaitForReady(); err != nil {
		dev.state = NotReady
		return curated.Errorf("fpga: %v", err)
	}
	dev.state = Ready
	return nil
}

// Program the FPGA with a raw bitstream. The device must be Ready. A new
// binding generation begins even if programming fails because the previous
// configuration no longer exists.
func (dev *Device) Program(bitstream []byte) error {
	if dev.state != Ready {
		return curated.Errorf("fpga: %v (%s)", ErrNotReady, dev.state)
	}

	dev.programCalls++
	dev.generation++
	dev.state = Programming

	if err := dev.drv.Program(bitstream); err != nil {
		dev.state = NotReady
		return curated.Errorf("fpga: %v", err)
	}

	logger.Logf(logger.Debug, "fpga", "programmed %d bytes", len(bitstream))

	return nil
}

// Reset the core. On success the device is Running.
func (dev *Device) Reset() error {
	if dev.state != Programming && dev.state != Running {
		return curated.Errorf("fpga: %v (%s)", ErrNotRunning, dev.state)
	}
	if err := dev.drv.Reset(); err != nil {
		dev.state = NotReady
		return curated.Errorf("fpga: %v", err)
	}
	dev.state = Running
	return nil
}

// Reinitialize storage and user-io after a new core has started.
func (dev *Device) Reinitialize() error {
	if err := dev.drv.Reinitialize(); err != nil {
		return curated.Errorf("fpga: %v", err)
	}
	return nil
}

// EnableOSD shows the on-screen display.
func (dev *Device) EnableOSD() error {
	if err := dev.drv.Transfer(BusOSD, OSDCmdEnable, nil, nil); err != nil {
		return curated.Errorf("fpga: osd: %v", err)
	}
	dev.osd = true
	return nil
}

// DisableOSD hides the on-screen display.
func (dev *Device) DisableOSD() error {
	if err := dev.drv.Transfer(BusOSD, OSDCmdDisable, nil, nil); err != nil {
		return curated.Errorf("fpga: osd: %v", err)
	}
	dev.osd = false
	return nil
}

// OSDEnabled returns true if the on-screen display is showing.
func (dev *Device) OSDEnabled() bool {
	return dev.osd
}

// Transfer a command on the specified bus. The device must be Running.
func (dev *Device) Transfer(bus Bus, cmd uint16, out []uint16, in []uint16) error {
	if dev.state != Running {
		return curated.Errorf("fpga: %v", ErrNotRunning)
	}
	if err := dev.drv.Transfer(bus, cmd, out, in); err != nil {
		return curated.Errorf("fpga: %s: %v", bus, err)
	}
	return nil
}

// ReadMemory from the memory shared with the FPGA. The device must be
// Running.
func (dev *Device) ReadMemory(addr uint32, p []byte) error {
	if dev.state != Running {
		return curated.Errorf("fpga: %v", ErrNotRunning)
	}
	if err := dev.drv.ReadMemory(addr, p); err != nil {
		return curated.Errorf("fpga: read %#08x: %v", addr, err)
	}
	return nil
}

// WriteMemory to the memory shared with the FPGA. The device must be Running.
func (dev *Device) WriteMemory(addr uint32, p []byte) error {
	if dev.state != Running {
		return curated.Errorf("fpga: %v", ErrNotRunning)
	}
	if err := dev.drv.WriteMemory(addr, p); err != nil {
		return curated.Errorf("fpga: write %#08x: %v", addr, err)
	}
	return nil
}

// Close the device and release the driver.
func (dev *Device) Close() error {
	dev.state = NotReady
	return dev.drv.Close()
}
