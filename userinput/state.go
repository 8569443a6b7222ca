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

package userinput

// MaxGamepads is the number of gamepads tracked by State. Events from other
// gamepads are ignored by State (they are still forwarded to the core).
const MaxGamepads = 8

// State accumulates the keys and buttons that are held and the most recent
// axis values. It does not allocate after it has been created.
//
// The zero value is ready to use.
type State struct {
	keys    [MaxScancode]bool
	buttons [MaxGamepads][MaxGamepadButton]bool
	axes    [MaxGamepads][MaxGamepadAxis]int16

	// number of keys and buttons held
	held int
}

// KeyDown registers a key press. Returns true if the key was not already
// held; a repeated key down event doesn't change the state.
func (s *State) KeyDown(code Scancode) bool {
	if int(code) >= MaxScancode || s.keys[code] {
		return false
	}
	s.keys[code] = true
	s.held++
	return true
}

// KeyUp registers a key release.
func (s *State) KeyUp(code Scancode) {
	if int(code) >= MaxScancode || !s.keys[code] {
		return
	}
	s.keys[code] = false
	s.held--
}

// ButtonDown registers a gamepad button press. Which is 1-based.
func (s *State) ButtonDown(which uint32, button GamepadButton) {
	if which == 0 || which > MaxGamepads || button >= MaxGamepadButton {
		return
	}
	if !s.buttons[which-1][button] {
		s.buttons[which-1][button] = true
		s.held++
	}
}

// ButtonUp registers a gamepad button release. Which is 1-based.
func (s *State) ButtonUp(which uint32, button GamepadButton) {
	if which == 0 || which > MaxGamepads || button >= MaxGamepadButton {
		return
	}
	if s.buttons[which-1][button] {
		s.buttons[which-1][button] = false
		s.held--
	}
}

// AxisMotion registers the value of a gamepad axis. Which is 1-based.
func (s *State) AxisMotion(which uint32, axis GamepadAxis, value int16) {
	if which == 0 || which > MaxGamepads || axis >= MaxGamepadAxis {
		return
	}
	s.axes[which-1][axis] = value
}

// Update the state with the event. Events of other types are ignored.
func (s *State) Update(ev Event) {
	switch ev := ev.(type) {
	case EventKeyboard:
		if ev.Down {
			if !ev.Repeat {
				s.KeyDown(ev.Scancode)
			}
		} else {
			s.KeyUp(ev.Scancode)
		}
	case EventGamepadButton:
		if ev.Down {
			s.ButtonDown(ev.Which, ev.Button)
		} else {
			s.ButtonUp(ev.Which, ev.Button)
		}
	case EventGamepadAxis:
		s.AxisMotion(ev.Which, ev.Axis, ev.Value)
	}
}

// Clear forgets every key, button and axis value.
func (s *State) Clear() {
	clear(s.keys[:])
	for i := range s.buttons {
		clear(s.buttons[i][:])
		clear(s.axes[i][:])
	}
	s.held = 0
}

// IsEmpty returns true if no key or button is held and every axis is at rest.
func (s *State) IsEmpty() bool {
	if s.held > 0 {
		return false
	}
	for i := range s.axes {
		for _, v := range s.axes[i] {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// KeyHeld returns true if the key is held.
func (s *State) KeyHeld(code Scancode) bool {
	return int(code) < MaxScancode && s.keys[code]
}

// ButtonHeld returns true if the button is held on any gamepad.
func (s *State) ButtonHeld(button GamepadButton) bool {
	if button >= MaxGamepadButton {
		return false
	}
	for i := range s.buttons {
		if s.buttons[i][button] {
			return true
		}
	}
	return false
}

// Axis returns the value of the axis with the largest magnitude across all
// gamepads.
func (s *State) Axis(axis GamepadAxis) int16 {
	if axis >= MaxGamepadAxis {
		return 0
	}
	var v int16
	for i := range s.axes {
		a := s.axes[i][axis]
		if abs(a) > abs(v) {
			v = a
		}
	}
	return v
}

func abs(v int16) int32 {
	if v < 0 {
		return -int32(v)
	}
	return int32(v)
}

// Held returns the number of keys and buttons held.
func (s *State) Held() int {
	return s.held
}
