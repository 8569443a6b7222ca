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

import "math"

// Event represents all the different type of events that can occur in the
// user interface.
type Event interface{}

// EventKeyboard is used to pass details of a keyboard event.
type EventKeyboard struct {
	Scancode Scancode
	Down     bool

	// Repeat is true if the event was generated by the key being held down
	// rather than pressed
	Repeat bool
}

// EventGamepadButton is used to pass details of a gamepad button press or
// release. Which is 1-based.
type EventGamepadButton struct {
	Which  uint32
	Button GamepadButton
	Down   bool
}

// EventGamepadAxis is used to pass details of a gamepad thumbstick or
// trigger movement. Which is 1-based.
type EventGamepadAxis struct {
	Which uint32
	Axis  GamepadAxis
	Value int16
}

// EventQuit is sent when the platform wants the application to stop.
type EventQuit struct{}

// Sink receives the events forwarded by Forward().
type Sink interface {
	KeyDown(code Scancode)
	KeyUp(code Scancode)
	ButtonDown(index uint8, button GamepadButton)
	ButtonUp(index uint8, button GamepadButton)
	AxisMotion(index uint8, axis GamepadAxis, value int16)
}

// Forward the event to the sink without filtering. Key repeats are forwarded.
// Returns false if the event type is not one that a Sink receives.
//
// A gamepad event with a Which value of zero is a programming error and
// causes a panic.
func Forward(ev Event, sink Sink) bool {
	switch ev := ev.(type) {
	case EventKeyboard:
		if ev.Down {
			sink.KeyDown(ev.Scancode)
		} else {
			sink.KeyUp(ev.Scancode)
		}
	case EventGamepadButton:
		if ev.Down {
			sink.ButtonDown(index(ev.Which), ev.Button)
		} else {
			sink.ButtonUp(index(ev.Which), ev.Button)
		}
	case EventGamepadAxis:
		sink.AxisMotion(index(ev.Which), ev.Axis, ev.Value)
	default:
		return false
	}
	return true
}

// index converts the 1-based which value to a 0-based index. Values outside
// the range 1 to 256 are a programming error.
func index(which uint32) uint8 {
	if which == 0 {
		panic("userinput: gamepad identifier is 1-based")
	}
	if which > math.MaxUint8+1 {
		panic("userinput: gamepad identifier out of range")
	}
	return uint8(which - 1)
}
