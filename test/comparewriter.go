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

package test

import (
	"strings"
)

// CompareWriter captures output for comparison with expected text. The zero
// value is ready to use.
type CompareWriter struct {
	strings.Builder
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// Lines returns the captured output as a list of lines. A trailing newline
// does not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Clear forgets the captured output.
func (w *CompareWriter) Clear() {
	w.Reset()
}
