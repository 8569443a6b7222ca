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

// Package bitstream handles the files that hold FPGA configuration data.
//
// A core file (usually with the .rbf extension) is either a raw bitstream or
// a raw bitstream wrapped in a small container. The container is recognised by
// the six byte tag "MiSTer" at the start of the file:
//
//	offset  size  content
//	0       6     "MiSTer"
//	6       6     reserved
//	12      4     payload length (little-endian)
//	16      n     payload
//
// The Unwrap() function returns the payload of a container, or the input
// unchanged if the input is not a container. The Loader type reads a core file
// from disk or over HTTP.
package bitstream
