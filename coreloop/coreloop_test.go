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

package coreloop_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/coreloop"
	"github.com/golem-fpga/golem/coremanager"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/fpga/simulated"
	"github.com/golem-fpga/golem/menucore"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/resources"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/test"
	"github.com/golem-fpga/golem/userinput"
)

type app struct {
	mgr       *coremanager.Manager
	settings  *settings.Settings
	notices   []notifications.Notice
	slot      int
	menuQuit  bool
	menuCalls int
}

func (a *app) Notify(n notifications.Notice) error {
	a.notices = append(a.notices, n)
	return nil
}

func (a *app) CoreManager() coremanager.CoreManager { return a.mgr }
func (a *app) Settings() *settings.Settings         { return a.settings }
func (a *app) SaveSlot() int                        { return a.slot }
func (a *app) SetSaveSlot(slot int)                 { a.slot = slot }

func (a *app) CoreMenu(c core.Core) bool {
	a.menuCalls++
	return a.menuQuit
}

// script is an EventSource that returns one batch of events per frame.
type script struct {
	frames [][]userinput.Event
	polls  int
}

func (s *script) Poll(dst []userinput.Event) []userinput.Event {
	if s.polls < len(s.frames) {
		dst = append(dst, s.frames[s.polls]...)
	}
	s.polls++
	return dst
}

type noPacer struct{}

func (noPacer) Wait() {}

// fixture returns an application with a running NES core on a simulated
// device. Transfers made while loading the core are forgotten.
func fixture(t *testing.T) (*app, core.Core, *simulated.Driver) {
	t.Helper()

	t.Setenv(resources.HomeEnv, t.TempDir())

	st, err := settings.NewSettings(filepath.Join(t.TempDir(), "golem.prefs"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = st.Close() })

	menu := menucore.Program()
	drv := simulated.NewDriver("")
	drv.ConfigFor = func(b []byte) string {
		if bytes.Equal(b, menu) {
			return menucore.Name
		}
		return "NES;FS,NES,Load;O12,Aspect,Original,Wide;V,v1"
	}

	a := &app{settings: st}
	a.mgr = coremanager.NewManager(fpga.NewDevice(drv), menu, coremanager.WithNotify(a))

	pth := filepath.Join(t.TempDir(), "nes.rbf")
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0x10, 0x20, 0x30, 0x40}, 0o600))
	c, err := a.mgr.LoadProgram(pth)
	test.DemandSuccess(t, err)

	drv.ClearTransfers()
	a.notices = nil

	return a, c, drv
}

func key(code userinput.Scancode, down bool) userinput.Event {
	return userinput.EventKeyboard{Scancode: code, Down: down}
}

func setShortcuts(t *testing.T, st *settings.Settings, command string, shortcuts ...string) {
	t.Helper()
	test.DemandSuccess(t, st.SetShortcuts(command, shortcuts...))
}

func hasBinding(tbl commands.Table, cmd commands.ShortcutCommand, shortcut string) bool {
	return slices.ContainsFunc(tbl, func(b commands.Binding) bool {
		return b.Command == cmd && b.Shortcut.String() == shortcut
	})
}

func TestKeyRepeat(t *testing.T) {
	a, c, drv := fixture(t)

	src := &script{frames: [][]userinput.Event{
		{
			key(userinput.ScancodeA, true),
			userinput.EventKeyboard{Scancode: userinput.ScancodeA, Down: true, Repeat: true},
			userinput.EventKeyboard{Scancode: userinput.ScancodeA, Down: true, Repeat: true},
		},
		{key(userinput.ScancodeA, false)},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	test.ExpectEquality(t, l.Step(), false)

	// the state registers one press but the core sees every repeat
	test.ExpectEquality(t, l.Input().Held(), 1)
	test.ExpectEquality(t, l.Input().KeyHeld(userinput.ScancodeA), true)
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOKeyboard)), 3)

	test.ExpectEquality(t, l.Step(), false)
	test.ExpectEquality(t, l.Input().IsEmpty(), true)
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOKeyboard)), 4)
}

func TestGamepadIndex(t *testing.T) {
	a, c, drv := fixture(t)

	src := &script{frames: [][]userinput.Event{
		{
			userinput.EventGamepadButton{Which: 1, Button: userinput.GamepadButtonA, Down: true},
			userinput.EventGamepadButton{Which: 2, Button: userinput.GamepadButtonB, Down: true},
			userinput.EventGamepadAxis{Which: 2, Axis: userinput.GamepadAxisLeftX, Value: 0x7fff},
		},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	l.Step()

	j0 := drv.Transfers(fpga.BusIO, fpga.UIOJoystick0)
	test.DemandEquality(t, len(j0), 1)
	test.ExpectEquality(t, j0[0].Out[0], uint16(1<<4))

	j1 := drv.Transfers(fpga.BusIO, fpga.UIOJoystick1)
	test.DemandEquality(t, len(j1), 1)
	test.ExpectEquality(t, j1[0].Out[0], uint16(1<<5))

	st := drv.Transfers(fpga.BusIO, fpga.UIOAStick)
	test.DemandEquality(t, len(st), 1)
	test.ExpectEquality(t, st[0].Out[0], uint16(1))

	test.ExpectEquality(t, l.Input().ButtonHeld(userinput.GamepadButtonA), true)
	test.ExpectEquality(t, l.Input().Axis(userinput.GamepadAxisLeftX), int16(0x7fff))
}

func TestClearAfterMatch(t *testing.T) {
	a, c, drv := fixture(t)

	// reset succeeds and save state fails because the core has no save
	// states. the input state is cleared in both cases
	src := &script{frames: [][]userinput.Event{
		{key(userinput.ScancodeLCtrl, true), key(userinput.ScancodeR, true)},
		{key(userinput.ScancodeLCtrl, true), key(userinput.ScancodeS, true)},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	test.ExpectEquality(t, l.Step(), false)
	test.ExpectEquality(t, l.Input().IsEmpty(), true)
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOSetStatus2)), 2)

	test.ExpectEquality(t, l.Step(), false)
	test.ExpectEquality(t, l.Input().IsEmpty(), true)
	test.ExpectEquality(t, slices.Contains(a.notices, notifications.NotifyStateSaved), false)

	// the keys were forwarded to the core even though they triggered commands
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOKeyboard)), 4)
}

func TestFirstMatchOnly(t *testing.T) {
	a, c, _ := fixture(t)
	setShortcuts(t, a.settings, "show_core_menu", "F1")
	setShortcuts(t, a.settings, "quit_core", "F1")

	src := &script{frames: [][]userinput.Event{
		{key(userinput.ScancodeF1, true)},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	// show_core_menu is registered before quit_core
	test.ExpectEquality(t, l.Step(), false)
	test.ExpectEquality(t, a.menuCalls, 1)
}

func TestQuitHaltsBeforeLaterShortcuts(t *testing.T) {
	a, c, drv := fixture(t)
	setShortcuts(t, a.settings, "quit_core", "Ctrl")

	src := &script{frames: [][]userinput.Event{
		{key(userinput.ScancodeLCtrl, true), key(userinput.ScancodeR, true)},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	test.ExpectEquality(t, l.Step(), true)

	// reset_core was not executed
	test.ExpectEquality(t, len(drv.Transfers(fpga.BusIO, fpga.UIOSetStatus2)), 0)
}

func TestQuitEvent(t *testing.T) {
	a, c, _ := fixture(t)

	src := &script{frames: [][]userinput.Event{
		{},
		{userinput.EventQuit{}},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	test.ExpectSuccess(t, l.Run(context.Background()))
	test.ExpectEquality(t, l.Frame(), 2)
}

func TestRunCancelled(t *testing.T) {
	a, c, _ := fixture(t)

	l := coreloop.New(a, c, &script{}, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Run(ctx)
	test.ExpectEquality(t, errors.Is(err, context.Canceled), true)
}

func TestRebuildOnSettingsChange(t *testing.T) {
	a, c, _ := fixture(t)

	l := coreloop.New(a, c, &script{}, coreloop.WithPacer(noPacer{}))
	defer l.Close()
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "Ctrl+R"), true)

	saved := a.settings.Subscribe()
	defer a.settings.Unsubscribe(saved)

	err := a.settings.Update(func(s *settings.Settings) error {
		return s.SetShortcuts("reset_core", "F5")
	})
	test.DemandSuccess(t, err)

	select {
	case <-saved.C():
	case <-time.After(5 * time.Second):
		t.Fatalf("settings were not saved")
	}

	// the table is only rebuilt during housekeeping
	for range coreloop.HousekeepingInterval - 1 {
		l.Step()
	}
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "F5"), false)

	l.Step()
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "F5"), true)
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "Ctrl+R"), false)
}

func TestRebuildAfterCommand(t *testing.T) {
	a, c, _ := fixture(t)
	setShortcuts(t, a.settings, "show_core_menu", "F1")

	src := &script{frames: [][]userinput.Event{
		{key(userinput.ScancodeF1, true)},
	}}
	l := coreloop.New(a, c, src, coreloop.WithPacer(noPacer{}))
	defer l.Close()

	// changed without an update so there is no notification
	setShortcuts(t, a.settings, "reset_core", "F6")
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "F6"), false)

	l.Step()
	test.ExpectEquality(t, a.menuCalls, 1)
	test.ExpectEquality(t, hasBinding(l.Table(), commands.ResetCore, "F6"), true)
}

func TestRunCore(t *testing.T) {
	a, c, _ := fixture(t)

	src := &script{frames: [][]userinput.Event{
		{},
		{key(userinput.ScancodeLCtrl, true), key(userinput.ScancodeQ, true)},
	}}
	err := coreloop.RunCore(context.Background(), a, c, src, false, coreloop.WithPacer(noPacer{}))
	test.ExpectSuccess(t, err)

	test.DemandEquality(t, a.mgr.Current() != nil, true)
	test.ExpectEquality(t, a.mgr.Current().Name(), menucore.Name)
	test.ExpectEquality(t, a.notices[0], notifications.NotifyToolbarHidden)
	test.ExpectEquality(t, slices.Contains(a.notices, notifications.NotifyOverlayHidden), true)
	test.ExpectEquality(t, a.notices[len(a.notices)-1], notifications.NotifyToolbarShown)
	test.ExpectEquality(t, src.polls, 2)
}

func TestRunCoreQuitFromMenu(t *testing.T) {
	a, c, _ := fixture(t)
	a.menuQuit = true

	src := &script{}
	err := coreloop.RunCore(context.Background(), a, c, src, true, coreloop.WithPacer(noPacer{}))
	test.ExpectSuccess(t, err)

	// the loop never ran but the menu was still loaded
	test.ExpectEquality(t, src.polls, 0)
	test.ExpectEquality(t, a.menuCalls, 1)
	test.ExpectEquality(t, a.mgr.Current().Name(), menucore.Name)
	test.ExpectEquality(t, slices.Contains(a.notices, notifications.NotifyMenuLoaded), true)
}
