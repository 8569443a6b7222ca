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

package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/golem-fpga/golem/test"
)

type closeFailure struct {
	strings.Builder
	closed bool
}

func (w *closeFailure) Close() error {
	w.closed = true
	return errors.New("disk full")
}

func TestWriteMenuTreeClose(t *testing.T) {
	w := &closeFailure{}
	err := writeMenuTree(w, &menuTree{Core: "NES"})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, w.closed, true)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
