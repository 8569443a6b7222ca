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

package core

import (
	"image"

	"github.com/golem-fpga/golem/configstring"
	"github.com/golem-fpga/golem/userinput"
)

// Kind identifies the variant of a Core.
type Kind int

// List of valid Kind values.
const (
	KindFpga Kind = iota
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindFpga:
		return "fpga"
	case KindNull:
		return "null"
	}
	return "unknown"
}

// UnknownVersion is returned by Version() when the core doesn't report one.
const UnknownVersion = "unknown"

// Core is the set of operations supported by every core.
type Core interface {
	Kind() Kind
	Name() string
	Version() string

	// LoadFile loads a ROM or data file into the slot described by info. If
	// info is nil the first file slot of the core is used
	LoadFile(path string, info *configstring.LoadFileInfo) error

	MountSav(path string) error
	CheckSav() error

	// MenuOptions returns the menu items declared by the core. The returned
	// slice should not be modified
	MenuOptions() []configstring.Item

	// TriggerMenu performs the action of the item. The returned boolean is
	// true if the menu should close
	TriggerMenu(item configstring.Item) (bool, error)

	StatusMask() StatusBits
	StatusBits() StatusBits
	SetStatusBits(bits StatusBits) error

	TakeScreenshot() (*image.RGBA, error)

	// input is forwarded without filtering. index is 0-based
	KeyDown(code userinput.Scancode)
	KeyUp(code userinput.Scancode)
	ButtonDown(index uint8, button userinput.GamepadButton)
	ButtonUp(index uint8, button userinput.GamepadButton)
	AxisMotion(index uint8, axis userinput.GamepadAxis, value int16)

	// SaveStates returns nil if the core doesn't support save states
	SaveStates() []SaveState

	// seals the interface
	variant()
}

// Null is the core used on platforms without an FPGA.
type Null struct{}

func unreachable(op string) {
	panic("core: " + op + " on null core is unreachable")
}

// Kind implements the Core interface.
func (Null) Kind() Kind { return KindNull }

// Name implements the Core interface.
func (Null) Name() string { return "null" }

// Version implements the Core interface.
func (Null) Version() string { unreachable("Version"); return "" }

// LoadFile implements the Core interface.
func (Null) LoadFile(string, *configstring.LoadFileInfo) error { unreachable("LoadFile"); return nil }

// MountSav implements the Core interface.
func (Null) MountSav(string) error { unreachable("MountSav"); return nil }

// CheckSav implements the Core interface.
func (Null) CheckSav() error { unreachable("CheckSav"); return nil }

// MenuOptions implements the Core interface.
func (Null) MenuOptions() []configstring.Item { unreachable("MenuOptions"); return nil }

// TriggerMenu implements the Core interface.
func (Null) TriggerMenu(configstring.Item) (bool, error) { unreachable("TriggerMenu"); return false, nil }

// StatusMask implements the Core interface.
func (Null) StatusMask() StatusBits { unreachable("StatusMask"); return StatusBits{} }

// StatusBits implements the Core interface.
func (Null) StatusBits() StatusBits { unreachable("StatusBits"); return StatusBits{} }

// SetStatusBits implements the Core interface.
func (Null) SetStatusBits(StatusBits) error { unreachable("SetStatusBits"); return nil }

// TakeScreenshot implements the Core interface.
func (Null) TakeScreenshot() (*image.RGBA, error) { unreachable("TakeScreenshot"); return nil, nil }

// KeyDown implements the Core interface.
func (Null) KeyDown(userinput.Scancode) { unreachable("KeyDown") }

// KeyUp implements the Core interface.
func (Null) KeyUp(userinput.Scancode) { unreachable("KeyUp") }

// ButtonDown implements the Core interface.
func (Null) ButtonDown(uint8, userinput.GamepadButton) { unreachable("ButtonDown") }

// ButtonUp implements the Core interface.
func (Null) ButtonUp(uint8, userinput.GamepadButton) { unreachable("ButtonUp") }

// AxisMotion implements the Core interface.
func (Null) AxisMotion(uint8, userinput.GamepadAxis, int16) { unreachable("AxisMotion") }

// SaveStates implements the Core interface.
func (Null) SaveStates() []SaveState { unreachable("SaveStates"); return nil }

func (Null) variant() {}
