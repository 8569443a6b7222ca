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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is the identity of a curated error. For
// example:
//
//	e := curated.Errorf("fpga: not ready after %dms", 100)
//
//	if curated.Is(e, "fpga: not ready after %dms") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("coremanager: %v", e)
//
//	if curated.Has(f, "fpga: not ready after %dms") {
//		fmt.Println("true")
//	}
//
// Curated errors also take part in the errors package protocol. Any value of
// type error given to Errorf() is returned by Unwrap() and so errors.Is() and
// errors.As() can see through a curated error to the sentinel or typed error
// that caused it.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping an error with the same
// prefix twice:
//
//	curated.Errorf("bitstream: %v", curated.Errorf("bitstream: truncated"))
//
// results in the message:
//
//	bitstream: truncated
//
// and not:
//
//	bitstream: bitstream: truncated
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
