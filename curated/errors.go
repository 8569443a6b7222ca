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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is the identity of the
// error for the Is() and Has() functions. Formatting is deferred until
// Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent duplicate parts of the
// message are removed, so that "coremanager: coremanager: timeout" becomes
// "coremanager: timeout".
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	// de-duplicate error message parts
	p := strings.Split(s, ": ")
	n := p[:1]
	for _, q := range p[1:] {
		if q != n[len(n)-1] {
			n = append(n, q)
		}
	}

	return strings.Join(n, ": ")
}

// Unwrap returns every value given to Errorf() that is itself an error.
func (er curated) Unwrap() []error {
	var errs []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}

// find returns the first curated error in the chain of err. The chain
// includes errors wrapped by other error types, such as the typed errors of the
// coremanager and core packages.
func find(err error) (curated, bool) {
	var er curated
	if errors.As(err, &er) {
		return er, true
	}
	return curated{}, false
}

// IsAny checks if there is a curated error in the chain of err.
func IsAny(err error) bool {
	_, ok := find(err)
	return ok
}

// Is checks if the outermost curated error in the chain of err has the
// pattern.
func Is(err error, pattern string) bool {
	er, ok := find(err)
	return ok && er.pattern == pattern
}

// Has checks if a curated error anywhere in the chain of err has the pattern.
func Has(err error, pattern string) bool {
	er, ok := find(err)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, e := range er.Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}
	return false
}
