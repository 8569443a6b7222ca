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

// Package core defines the capabilities of a core loaded onto the FPGA.
//
// The Core interface is sealed. The only implementations are FpgaCore, which
// drives a real (or simulated) device, and Null, which stands in for a core
// on platforms without FPGA hardware. Every method of Null except Name() and
// Kind() is unreachable in normal operation and panics if called.
//
// An FpgaCore is bound to the fpga.Device generation that was current when it
// was created. Once the device is reprogrammed the core is stale. Fallible
// operations on a stale core return an IoError wrapping ErrStale. Input
// forwarding on a stale core is a programming error and panics.
//
// Save states are exposed through the SaveState interface, which is an
// io.WriterTo and an io.ReaderFrom over a fixed size region of memory shared
// with the core.
package core
