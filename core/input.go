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
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/userinput"
)

// the bit in the joystick word for each gamepad button. buttons not listed
// are not sent to the core.
var joystickBits = map[userinput.GamepadButton]uint32{
	userinput.GamepadButtonDPadRight:     1 << 0,
	userinput.GamepadButtonDPadLeft:      1 << 1,
	userinput.GamepadButtonDPadDown:      1 << 2,
	userinput.GamepadButtonDPadUp:        1 << 3,
	userinput.GamepadButtonA:             1 << 4,
	userinput.GamepadButtonB:             1 << 5,
	userinput.GamepadButtonX:             1 << 6,
	userinput.GamepadButtonY:             1 << 7,
	userinput.GamepadButtonLeftShoulder:  1 << 8,
	userinput.GamepadButtonRightShoulder: 1 << 9,
	userinput.GamepadButtonBack:          1 << 10,
	userinput.GamepadButtonStart:         1 << 11,
	userinput.GamepadButtonLeftStick:     1 << 12,
	userinput.GamepadButtonRightStick:    1 << 13,
	userinput.GamepadButtonGuide:         1 << 14,
}

// transfer on the user-io bus. input has no way of reporting an error so a
// failure is a panic.
func (c *FpgaCore) mustTransfer(op string, cmd uint16, out []uint16) {
	if err := c.dev.Transfer(fpga.BusIO, cmd, out, nil); err != nil {
		panic("core: " + op + ": " + err.Error())
	}
}

// KeyDown implements the Core interface.
func (c *FpgaCore) KeyDown(code userinput.Scancode) {
	c.mustBeCurrent("key down")
	if s := ps2Sequence(code, false); s != nil {
		c.mustTransfer("key down", fpga.UIOKeyboard, s)
	}
}

// KeyUp implements the Core interface.
func (c *FpgaCore) KeyUp(code userinput.Scancode) {
	c.mustBeCurrent("key up")
	if s := ps2Sequence(code, true); s != nil {
		c.mustTransfer("key up", fpga.UIOKeyboard, s)
	}
}

// ButtonDown implements the Core interface.
func (c *FpgaCore) ButtonDown(index uint8, button userinput.GamepadButton) {
	c.mustBeCurrent("button down")
	c.button(index, button, true)
}

// ButtonUp implements the Core interface.
func (c *FpgaCore) ButtonUp(index uint8, button userinput.GamepadButton) {
	c.mustBeCurrent("button up")
	c.button(index, button, false)
}

func (c *FpgaCore) button(index uint8, button userinput.GamepadButton, down bool) {
	cmd, ok := fpga.Joystick(index)
	if !ok {
		return
	}
	bit, ok := joystickBits[button]
	if !ok {
		return
	}

	if down {
		c.joysticks[index] |= bit
	} else {
		c.joysticks[index] &^= bit
	}

	v := c.joysticks[index]
	c.mustTransfer("button", cmd, []uint16{uint16(v), uint16(v >> 16)})
}

// AxisMotion implements the Core interface. Only the left stick is sent to
// the core.
func (c *FpgaCore) AxisMotion(index uint8, axis userinput.GamepadAxis, value int16) {
	c.mustBeCurrent("axis")

	if int(index) >= maxJoysticks {
		return
	}

	switch axis {
	case userinput.GamepadAxisLeftX:
		c.sticks[index][0] = int8(value >> 8)
	case userinput.GamepadAxisLeftY:
		c.sticks[index][1] = int8(value >> 8)
	default:
		return
	}

	x := uint16(uint8(c.sticks[index][0]))
	y := uint16(uint8(c.sticks[index][1]))
	c.mustTransfer("axis", fpga.UIOAStick, []uint16{uint16(index), x | y<<8})
}
