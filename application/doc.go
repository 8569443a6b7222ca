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

// Package application holds the state shared by the commands executed from
// the core loop. The Application type owns the core manager and implements
// the commands.App interface.
//
// Cores are launched with LaunchCore(), LaunchEntry() or BootCore(). Each of
// these returns when the core loop ends and the menu core has been loaded
// again.
package application
