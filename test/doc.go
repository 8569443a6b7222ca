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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and stop the test
// immediately.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions: a bool value is successful if it is true and an error
// value is successful if it is nil. The nil value is also considered a
// success. This is how errors usually work and it is the only sensible
// interpretation of an untyped nil.
//
// Every function accepts an optional list of tags. The tags are printed in the
// failure message and are useful when an expectation is inside a loop.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The Compare() function can then be used to test for
// equality.
package test
