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

// Package commands are the actions that can be bound to shortcuts while a
// core is running.
//
// Each ShortcutCommand is executed against the application and the running
// core and returns exactly one Result: the command succeeded, the command
// failed with a message, or the core should be quit. A failed command is not
// fatal. The execution loop logs the message and carries on.
//
// The Table type is the flattened list of bindings built from the shortcut
// mappings in the settings package. Bindings are ordered by command and then
// by the order of the shortcuts of the command. The first binding that
// matches the input state is the only one considered.
package commands
