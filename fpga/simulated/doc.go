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

// Package simulated is an in-memory implementation of the fpga.Driver
// interface. It is used when golem runs on a machine without an FPGA and by
// the tests of every package that needs a device.
//
// The simulated driver keeps a record of every transfer, answers the user-io
// requests that have a reply (the config string, sector status) and holds a
// sparse copy of the shared memory. Failures can be injected at every step of
// the load sequence.
package simulated
