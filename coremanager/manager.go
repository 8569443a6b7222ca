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
	"io"

	"github.com/golem-fpga/golem/assert"
	"github.com/golem-fpga/golem/bitstream"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/notifications"
)

// CoreManager is implemented by Manager and Null.
type CoreManager interface {
	LoadProgram(path string) (core.Core, error)
	LoadMenu() (core.Core, error)
	ShowMenu() error
	HideMenu() error
}

// Stats about the use of the device.
type Stats struct {
	// number of times the device has been programmed, successfully or not
	ProgramCalls int

	// number of successful loads
	Loads int
}

// Manager loads cores onto a Device.
type Manager struct {
	owner  assert.Owner
	dev    *fpga.Device
	menu   bitstream.Program
	notify notifications.Notify

	current core.Core
	loads   int
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotify sets the recipient of the notices sent by the Manager.
func WithNotify(n notifications.Notify) Option {
	return func(m *Manager) {
		m.notify = n
	}
}

// NewManager is the preferred method of initialisation for the Manager type.
// The menu argument is the raw bitstream loaded by LoadMenu().
//
// The Manager must only be used from the goroutine that created it.
func NewManager(dev *fpga.Device, menu bitstream.Program, opts ...Option) *Manager {
	m := &Manager{
		owner:  assert.NewOwner(),
		dev:    dev,
		menu:   menu,
		notify: notifications.Discard,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Device returns the device owned by the Manager.
func (m *Manager) Device() *fpga.Device {
	return m.dev
}

// Current returns the current core. Returns nil if there is no core, which is
// the case after a failed load.
func (m *Manager) Current() core.Core {
	return m.current
}

// Stats returns the current statistics.
func (m *Manager) Stats() Stats {
	return Stats{
		ProgramCalls: m.dev.ProgramCalls(),
		Loads:        m.loads,
	}
}

// LoadProgram loads the core file onto the device. The file can be a
// container or a raw bitstream. The path can be a URL with the http or https
// scheme.
func (m *Manager) LoadProgram(path string) (core.Core, error) {
	m.checkOwner()

	ld := bitstream.NewLoader(path)
	if err := ld.Load(); err != nil {
		return nil, &LoadError{Kind: IoError, Err: err}
	}

	p, err := bitstream.Unwrap(ld.Data)
	if err != nil {
		return nil, &LoadError{Kind: MalformedContainer, Err: err}
	}

	c, err := m.load(p)
	if err != nil {
		return nil, err
	}

	if err := m.dev.DisableOSD(); err != nil {
		logger.Log(logger.Allow, "coremanager", err)
	}
	m.reinitialize()

	logger.Logf(logger.Allow, "coremanager", "loaded %s", ld.ShortName())
	m.notice(notifications.NotifyCoreLoaded)

	return c, nil
}

// LoadMenu loads the menu core onto the device and shows the on-screen
// display.
func (m *Manager) LoadMenu() (core.Core, error) {
	m.checkOwner()

	c, err := m.load(m.menu)
	if err != nil {
		return nil, err
	}

	if err := m.dev.EnableOSD(); err != nil {
		logger.Log(logger.Allow, "coremanager", err)
	}
	m.reinitialize()

	logger.Log(logger.Allow, "coremanager", "loaded menu")
	m.notice(notifications.NotifyMenuLoaded)

	return c, nil
}

// load the program and create the core. the previous core is dropped before
// the device is touched.
func (m *Manager) load(p bitstream.Program) (core.Core, error) {
	m.drop()

	if err := m.dev.WaitForReady(); err != nil {
		return nil, &LoadError{Kind: DeviceTimeout, Err: err}
	}

	if err := m.dev.Program(p); err != nil {
		return nil, &LoadError{Kind: ProgramRejected, Err: err}
	}

	if err := m.dev.Reset(); err != nil {
		return nil, &LoadError{Kind: ResetFailed, Err: err}
	}

	c, err := core.New(m.dev)
	if err != nil {
		return nil, &LoadError{Kind: InstantiationFailed, Err: err}
	}

	m.current = c
	m.loads++

	return c, nil
}

// drop the current core.
func (m *Manager) drop() {
	if m.current == nil {
		return
	}
	if cl, ok := m.current.(io.Closer); ok {
		if err := cl.Close(); err != nil {
			logger.Log(logger.Allow, "coremanager", err)
		}
	}
	m.current = nil
}

// reinitialization failures are not fatal. the core is running but storage
// or user-io may not work as expected.
func (m *Manager) reinitialize() {
	if err := m.dev.Reinitialize(); err != nil {
		logger.Log(logger.Allow, "coremanager", err)
	}
}

// ShowMenu shows the on-screen display.
func (m *Manager) ShowMenu() error {
	m.checkOwner()
	if err := m.dev.EnableOSD(); err != nil {
		return err
	}
	m.notice(notifications.NotifyOverlayShown)
	return nil
}

// HideMenu hides the on-screen display.
func (m *Manager) HideMenu() error {
	m.checkOwner()
	if err := m.dev.DisableOSD(); err != nil {
		return err
	}
	m.notice(notifications.NotifyOverlayHidden)
	return nil
}

func (m *Manager) checkOwner() {
	if !m.owner.Check() {
		logger.Log(logger.Allow, "coremanager", "used from a goroutine other than the owner")
	}
}

func (m *Manager) notice(n notifications.Notice) {
	if err := m.notify.Notify(n); err != nil {
		logger.Log(logger.Allow, "coremanager", err)
	}
}

// Null is the core manager for platforms without an FPGA. It exists so that
// those platforms have something that satisfies the CoreManager interface.
// Every method is unreachable in normal operation and panics.
type Null struct{}

var errNull = errors.New("coremanager: null core manager is unreachable")

// LoadProgram implements the CoreManager interface.
func (Null) LoadProgram(string) (core.Core, error) { panic(errNull) }

// LoadMenu implements the CoreManager interface.
func (Null) LoadMenu() (core.Core, error) { panic(errNull) }

// ShowMenu implements the CoreManager interface.
func (Null) ShowMenu() error { panic(errNull) }

// HideMenu implements the CoreManager interface.
func (Null) HideMenu() error { panic(errNull) }
