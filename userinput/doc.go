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

// Package userinput handles input from real hardware that the user is using
// to control the running core.
//
// It can be thought of as a translation layer between the platform (SDL, a
// terminal) and the core. Platform specific event sources translate their
// events into the types defined here: EventKeyboard, EventGamepadButton,
// EventGamepadAxis and EventQuit. Keys are identified by their USB HID usage
// ID (the Scancode type) which is also what SDL uses.
//
// Gamepad events carry a Which field that identifies the controller. Which is
// 1-based. The Forward() function converts it to the 0-based index expected
// by the core.
//
// The State type accumulates the keys and buttons that are currently held.
// Shortcuts are matched against a State.
package userinput
