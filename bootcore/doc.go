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

// Package bootcore builds the boot-core configuration handed to the menu
// firmware. The configuration is created once, from the settings, and passed
// by pointer to whatever needs it. There is no package level state.
//
// The boot-core mode is one of the settings.BootCoreNone,
// settings.BootCoreLast or settings.BootCoreLastExact values. With the last
// core modes, the most recently launched core is booted automatically after
// the timeout. BootCoreLast finds the core by name, which allows a newer
// version of the core to be used. BootCoreLastExact uses the exact path.
package bootcore
