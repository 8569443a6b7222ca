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

package application_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/golem-fpga/golem/application"
	"github.com/golem-fpga/golem/bootcore"
	"github.com/golem-fpga/golem/catalog"
	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/coreloop"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/fpga/simulated"
	"github.com/golem-fpga/golem/menucore"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/resources"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/test"
	"github.com/golem-fpga/golem/userinput"
)

type quitSource struct {
	polls int
}

func (s *quitSource) Poll(dst []userinput.Event) []userinput.Event {
	s.polls++
	return append(dst, userinput.EventQuit{})
}

type noPacer struct{}

func (noPacer) Wait() {}

type fixture struct {
	app *application.Application
	drv *simulated.Driver
	st  *settings.Settings
	cat *catalog.Session
	dir string
}

func newFixture(t *testing.T, opts ...application.Option) *fixture {
	t.Helper()

	f := &fixture{dir: t.TempDir()}
	t.Setenv(resources.HomeEnv, f.dir)

	var err error
	f.st, err = settings.NewSettings(filepath.Join(f.dir, "golem.prefs"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = f.st.Close() })

	f.cat, err = catalog.StartSession(filepath.Join(f.dir, "catalog.sqlite3"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = f.cat.EndSession() })

	menu := menucore.Program()
	f.drv = simulated.NewDriver("")
	f.drv.ConfigFor = func(b []byte) string {
		if bytes.Equal(b, menu) {
			return menucore.Name
		}
		return "NES;FS,NES,Load;V,v1"
	}

	opts = append([]application.Option{
		application.WithCatalog(f.cat),
		application.WithLoopOptions(coreloop.WithPacer(noPacer{})),
	}, opts...)

	f.app = application.NewApplication(fpga.NewDevice(f.drv), menu, f.st, opts...)

	return f
}

func (f *fixture) coreFile(t *testing.T, name string) string {
	t.Helper()
	pth := filepath.Join(f.dir, name)
	test.DemandSuccess(t, os.WriteFile(pth, []byte{0x10, 0x20, 0x30, 0x40}, 0o600))
	return pth
}

func TestImplementsApp(t *testing.T) {
	f := newFixture(t)
	test.ExpectImplements[commands.App](t, f.app)
	test.ExpectImplements[notifications.Notify](t, f.app)
}

func TestLaunchCore(t *testing.T) {
	f := newFixture(t)
	pth := f.coreFile(t, "nes.rbf")

	key, err := f.cat.Add(catalog.Entry{Name: "NES", Path: pth})
	test.DemandSuccess(t, err)

	src := &quitSource{}
	test.ExpectSuccess(t, f.app.LaunchCore(context.Background(), pth, src, false))
	test.ExpectEquality(t, src.polls, 1)

	// the menu is loaded when the core ends
	test.DemandEquality(t, f.app.Manager().Current() != nil, true)
	test.ExpectEquality(t, f.app.Manager().Current().Name(), menucore.Name)

	n := f.app.Notices()
	test.ExpectEquality(t, slices.Contains(n, notifications.NotifyCoreLoaded), true)
	test.ExpectEquality(t, n[len(n)-1], notifications.NotifyToolbarShown)

	test.ExpectEquality(t, f.st.LastCoreName.String(), "NES")
	test.ExpectEquality(t, f.st.LastCorePath.String(), pth)

	ent, err := f.cat.Get(key)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.LastPlayed.IsZero(), false)
}

func TestLaunchFailure(t *testing.T) {
	f := newFixture(t)

	src := &quitSource{}
	err := f.app.LaunchCore(context.Background(), filepath.Join(f.dir, "missing.rbf"), src, false)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, src.polls, 0)

	// the menu is loaded after a failed launch
	test.DemandEquality(t, f.app.Manager().Current() != nil, true)
	test.ExpectEquality(t, f.app.Manager().Current().Name(), menucore.Name)
	test.ExpectEquality(t, f.st.LastCorePath.String(), "")
}

func TestLaunchEntry(t *testing.T) {
	f := newFixture(t)
	pth := f.coreFile(t, "nes.rbf")

	key, err := f.cat.Add(catalog.Entry{Name: "NES", Path: pth})
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, f.app.LaunchEntry(context.Background(), key, &quitSource{}, false))
	test.ExpectFailure(t, f.app.LaunchEntry(context.Background(), key+1, &quitSource{}, false))
}

func TestCoreMenu(t *testing.T) {
	var menuCalls int
	f := newFixture(t, application.WithMenuHandler(func(c core.Core) bool {
		menuCalls++
		return true
	}))
	pth := f.coreFile(t, "nes.rbf")

	src := &quitSource{}
	test.ExpectSuccess(t, f.app.LaunchCore(context.Background(), pth, src, true))

	// quitting from the menu means the loop never runs
	test.ExpectEquality(t, menuCalls, 1)
	test.ExpectEquality(t, src.polls, 0)

	n := f.app.Notices()
	i := slices.Index(n, notifications.NotifyOverlayShown)
	test.DemandEquality(t, i >= 0, true)
	test.ExpectEquality(t, slices.Index(n[i:], notifications.NotifyOverlayHidden) > 0, true)
}

func TestSaveSlot(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.app.SaveSlot(), 0)
	f.app.SetSaveSlot(3)
	test.ExpectEquality(t, f.app.SaveSlot(), 3)
}

func TestBootCore(t *testing.T) {
	f := newFixture(t)
	old := f.coreFile(t, "NES_20200101.rbf")
	newer := f.coreFile(t, "NES_20240101.rbf")

	_, err := f.cat.Add(catalog.Entry{Name: "NES", Path: old, ReleasedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)})
	test.DemandSuccess(t, err)
	_, err = f.cat.Add(catalog.Entry{Name: "NES", Path: newer, ReleasedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	test.DemandSuccess(t, err)

	// nothing to boot
	cfg, err := bootcore.New(f.st)
	test.DemandSuccess(t, err)
	booted, err := f.app.BootCore(context.Background(), cfg, &quitSource{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, booted, false)

	test.DemandSuccess(t, f.st.LastCoreName.Set("NES"))
	test.DemandSuccess(t, f.st.LastCorePath.Set(old))

	// the last core mode prefers the newest core with the same name
	test.DemandSuccess(t, f.st.BootCoreMode.Set(settings.BootCoreLast))
	cfg, err = bootcore.New(f.st)
	test.DemandSuccess(t, err)
	pth, ok := f.app.BootCorePath(cfg)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, pth, newer)

	// the exact mode uses the path
	test.DemandSuccess(t, f.st.BootCoreMode.Set(settings.BootCoreLastExact))
	cfg, err = bootcore.New(f.st)
	test.DemandSuccess(t, err)
	pth, ok = f.app.BootCorePath(cfg)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, pth, old)

	booted, err = f.app.BootCore(context.Background(), cfg, &quitSource{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, booted, true)
	test.ExpectEquality(t, f.app.Manager().Current().Name(), menucore.Name)
}

func TestBootCoreCancelled(t *testing.T) {
	f := newFixture(t)
	pth := f.coreFile(t, "nes.rbf")

	test.DemandSuccess(t, f.st.LastCoreName.Set("NES"))
	test.DemandSuccess(t, f.st.LastCorePath.Set(pth))
	test.DemandSuccess(t, f.st.BootCoreMode.Set(settings.BootCoreLastExact))
	test.DemandSuccess(t, f.st.BootCoreTimeout.Set(60))

	cfg, err := bootcore.New(f.st)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &quitSource{}
	booted, err := f.app.BootCore(ctx, cfg, src)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, booted, false)
	test.ExpectEquality(t, src.polls, 0)
}
