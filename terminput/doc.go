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

// Package terminput is an EventSource that reads key presses from a terminal.
// It is intended for boards without a keyboard or controller attached, where
// the engine is driven over a serial console or an ssh session.
//
// The terminal is put into raw mode with the termios functions of
// "github.com/pkg/term/termios" and restored when the Source is closed.
//
// Terminals report characters, not key presses and releases. Each character
// is turned into key down events, including any modifier implied by the
// character, and the matching key up events are delivered by the following
// Poll(). This means a shortcut such as Ctrl+Q is held for exactly one frame.
package terminput
