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

// Package menucore bundles the bitstream of the menu core. The menu core is
// loaded at startup and whenever a core exits.
package menucore

import (
	_ "embed"

	"github.com/golem-fpga/golem/bitstream"
)

// Name is the name the menu core reports in its config string.
const Name = "Menu"

//go:embed menu.rbf
var rbf []byte

// Program returns the raw bitstream of the menu core.
//
// The embedded file is a container. A malformed container is a build problem
// and causes a panic.
func Program() bitstream.Program {
	p, err := bitstream.Unwrap(rbf)
	if err != nil {
		panic(err)
	}
	return p
}
