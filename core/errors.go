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

package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors returned by Core operations.
type ErrorKind int

// List of valid ErrorKind values.
const (
	UnsupportedSlot ErrorKind = iota
	ActionFailed
	CaptureFailed
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case UnsupportedSlot:
		return "unsupported slot"
	case ActionFailed:
		return "action failed"
	case CaptureFailed:
		return "capture failed"
	case IoError:
		return "io error"
	}
	return fmt.Sprintf("error kind(%d)", int(k))
}

// Sentinel errors for use with errors.Is().
var (
	ErrUnsupportedSlot = errors.New("unsupported slot")
	ErrActionFailed    = errors.New("action failed")
	ErrCaptureFailed   = errors.New("capture failed")
	ErrIoError         = errors.New("io error")

	// the core is no longer bound to the device
	ErrStale = errors.New("core is stale")
)

// OperationError is returned by the fallible operations of a Core.
type OperationError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the Kind.
func (e *OperationError) Is(target error) bool {
	switch target {
	case ErrUnsupportedSlot:
		return e.Kind == UnsupportedSlot
	case ErrActionFailed:
		return e.Kind == ActionFailed
	case ErrCaptureFailed:
		return e.Kind == CaptureFailed
	case ErrIoError:
		return e.Kind == IoError
	}
	return false
}

func opError(kind ErrorKind, op string, err error) error {
	return &OperationError{Kind: kind, Op: op, Err: err}
}

// SaveStateErrorKind classifies the errors returned by SaveState operations.
type SaveStateErrorKind int

// List of valid SaveStateErrorKind values.
const (
	SaveStateIoError SaveStateErrorKind = iota
	SizeMismatch
)

func (k SaveStateErrorKind) String() string {
	switch k {
	case SaveStateIoError:
		return "io error"
	case SizeMismatch:
		return "size mismatch"
	}
	return fmt.Sprintf("error kind(%d)", int(k))
}

// ErrSizeMismatch is matched by a SaveStateError of kind SizeMismatch.
// SaveStateError of kind SaveStateIoError match ErrIoError.
var ErrSizeMismatch = errors.New("size mismatch")

// SaveStateError is returned by the operations of a SaveState.
type SaveStateError struct {
	Kind SaveStateErrorKind
	Err  error
}

func (e *SaveStateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("savestate: %s", e.Kind)
	}
	return fmt.Sprintf("savestate: %s: %v", e.Kind, e.Err)
}

func (e *SaveStateError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the Kind.
func (e *SaveStateError) Is(target error) bool {
	switch target {
	case ErrSizeMismatch:
		return e.Kind == SizeMismatch
	case ErrIoError:
		return e.Kind == SaveStateIoError
	}
	return false
}
