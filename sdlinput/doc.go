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

// Package sdlinput is an EventSource for the execution loop that reads
// keyboard and game controller events from SDL.
//
// SDL scancodes are USB HID usage codes, as are userinput.Scancode values, so
// keyboard events are passed through unchanged. SDL game controller button and
// axis values follow the same layout as the userinput types.
//
// SDL identifies controllers by an instance ID that changes every time a
// controller is connected. The Source assigns each connected controller the
// lowest free player number, starting at one, and reports that number as the
// Which field of the userinput events. A player number is freed when its
// controller is disconnected.
package sdlinput
