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

// Package devmem drives the FPGA of a DE10-Nano (Cyclone V SoC) through
// /dev/mem. It implements the fpga.Driver interface.
//
// Three physical regions are mapped: the HPS FPGA manager registers, the FPGA
// manager data port used to stream a bitstream and the DDR region shared with
// the cores. User-io transfers are 16-bit words strobed through the manager's
// general purpose output and input registers.
//
// The package only builds usefully on Linux. On other platforms Open() always
// fails.
package devmem
