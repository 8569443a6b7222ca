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

package menucore_test

import (
	"testing"

	"github.com/golem-fpga/golem/menucore"
	"github.com/golem-fpga/golem/test"
)

func TestProgram(t *testing.T) {
	p := menucore.Program()
	test.ExpectEquality(t, len(p), 64)
	test.ExpectEquality(t, string(p[:15]), "golem menu core")
}
