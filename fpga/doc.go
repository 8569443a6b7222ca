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

// Package fpga is the handle onto the physical FPGA. A Device wraps a Driver,
// which knows how to talk to the hardware, and tracks the lifecycle of the
// configuration loaded onto it:
//
//	NotReady -> Ready -> Programming -> Running
//
// WaitForReady() moves the device to Ready (or back to NotReady on failure).
// Program() is only allowed from Ready and Reset() completes the sequence.
//
// Every call to Program() starts a new binding generation. Anything that holds
// on to a Device on behalf of a loaded core records the generation it was
// created in and can check with IsCurrent() whether it has been replaced.
//
// The constants in this package describe the user-io protocol spoken by the
// cores: the buses, the command words and the OSD commands.
package fpga
