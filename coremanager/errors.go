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

package coremanager

import (
	"errors"
	"fmt"
)

// LoadErrorKind classifies the errors returned by a load.
type LoadErrorKind int

// List of valid LoadErrorKind values.
const (
	IoError LoadErrorKind = iota
	MalformedContainer
	DeviceTimeout
	ProgramRejected
	ResetFailed
	InstantiationFailed
)

func (k LoadErrorKind) String() string {
	switch k {
	case IoError:
		return "io error"
	case MalformedContainer:
		return "malformed container"
	case DeviceTimeout:
		return "device timeout"
	case ProgramRejected:
		return "program rejected"
	case ResetFailed:
		return "reset failed"
	case InstantiationFailed:
		return "instantiation failed"
	}
	return fmt.Sprintf("load error kind(%d)", int(k))
}

// Sentinel errors for use with errors.Is().
var (
	ErrIoError             = errors.New("io error")
	ErrMalformedContainer  = errors.New("malformed container")
	ErrDeviceTimeout       = errors.New("device timeout")
	ErrProgramRejected     = errors.New("program rejected")
	ErrResetFailed         = errors.New("reset failed")
	ErrInstantiationFailed = errors.New("instantiation failed")
)

var sentinels = map[LoadErrorKind]error{
	IoError:             ErrIoError,
	MalformedContainer:  ErrMalformedContainer,
	DeviceTimeout:       ErrDeviceTimeout,
	ProgramRejected:     ErrProgramRejected,
	ResetFailed:         ErrResetFailed,
	InstantiationFailed: ErrInstantiationFailed,
}

// LoadError is returned by LoadProgram() and LoadMenu().
type LoadError struct {
	Kind LoadErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("coremanager: %s", e.Kind)
	}
	return fmt.Sprintf("coremanager: %s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the Kind.
func (e *LoadError) Is(target error) bool {
	return sentinels[e.Kind] == target
}
