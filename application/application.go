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

package application

import (
	"context"
	"slices"
	"time"

	"github.com/golem-fpga/golem/bitstream"
	"github.com/golem-fpga/golem/bootcore"
	"github.com/golem-fpga/golem/catalog"
	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/coreloop"
	"github.com/golem-fpga/golem/coremanager"
	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/settings"
)

// MenuHandler presents the menu of the core and returns when the menu is
// closed. It should return true if the user chose to quit the core.
type MenuHandler func(c core.Core) bool

// the number of notices remembered by the Application
const maxNotices = 32

// Application is the implementation of the commands.App interface.
type Application struct {
	mgr      *coremanager.Manager
	settings *settings.Settings
	catalog  *catalog.Session
	menu     MenuHandler
	forward  notifications.Notify

	slot    int
	notices []notifications.Notice

	// options passed to every core loop
	loopOpts []coreloop.Option
}

// Option configures an Application.
type Option func(*Application)

// WithCatalog sets the catalog used to record played cores.
func WithCatalog(cat *catalog.Session) Option {
	return func(app *Application) {
		app.catalog = cat
	}
}

// WithMenuHandler sets the function called by CoreMenu().
func WithMenuHandler(h MenuHandler) Option {
	return func(app *Application) {
		app.menu = h
	}
}

// WithNotify sets a recipient for notices, in addition to the log.
func WithNotify(n notifications.Notify) Option {
	return func(app *Application) {
		app.forward = n
	}
}

// WithLoopOptions sets the options used for every core loop.
func WithLoopOptions(opts ...coreloop.Option) Option {
	return func(app *Application) {
		app.loopOpts = opts
	}
}

// NewApplication is the preferred method of initialisation for the
// Application type. The menu argument is the bitstream of the menu core.
func NewApplication(dev *fpga.Device, menu bitstream.Program, s *settings.Settings, opts ...Option) *Application {
	app := &Application{
		settings: s,
		forward:  notifications.Discard,
		menu:     func(_ core.Core) bool { return false },
	}
	for _, o := range opts {
		o(app)
	}
	app.mgr = coremanager.NewManager(dev, menu, coremanager.WithNotify(app))
	return app
}

// Notify implements the notifications.Notify interface.
func (app *Application) Notify(notice notifications.Notice) error {
	logger.Logf(logger.Debug, "notice", "%s", notice)

	app.notices = append(app.notices, notice)
	if len(app.notices) > maxNotices {
		app.notices = slices.Delete(app.notices, 0, len(app.notices)-maxNotices)
	}

	return app.forward.Notify(notice)
}

// Notices returns the most recent notices, oldest first.
func (app *Application) Notices() []notifications.Notice {
	return slices.Clone(app.notices)
}

// CoreManager implements the commands.App interface.
func (app *Application) CoreManager() coremanager.CoreManager {
	return app.mgr
}

// Manager returns the concrete core manager.
func (app *Application) Manager() *coremanager.Manager {
	return app.mgr
}

// Settings implements the commands.App interface.
func (app *Application) Settings() *settings.Settings {
	return app.settings
}

// Catalog returns the catalog. Can be nil.
func (app *Application) Catalog() *catalog.Session {
	return app.catalog
}

// SaveSlot implements the commands.App interface.
func (app *Application) SaveSlot() int {
	return app.slot
}

// SetSaveSlot implements the commands.App interface.
func (app *Application) SetSaveSlot(slot int) {
	app.slot = slot
}

// CoreMenu implements the commands.App interface. The overlay is shown for
// the duration of the menu handler.
func (app *Application) CoreMenu(c core.Core) bool {
	if err := app.mgr.ShowMenu(); err != nil {
		logger.Logf(logger.Allow, "application", "show menu: %v", err)
	}

	quit := app.menu(c)

	if err := app.mgr.HideMenu(); err != nil {
		logger.Logf(logger.Allow, "application", "hide menu: %v", err)
	}

	return quit
}

// LaunchCore loads the core at path and runs it until the user quits or the
// context is cancelled. The menu core is loaded when the core ends, or if the
// core fails to load.
func (app *Application) LaunchCore(ctx context.Context, path string, src coreloop.EventSource, showMenu bool) error {
	c, err := app.mgr.LoadProgram(path)
	if err != nil {
		logger.Logf(logger.Allow, "application", "%v", err)
		if _, merr := app.mgr.LoadMenu(); merr != nil {
			logger.Logf(logger.Allow, "application", "%v", merr)
		}
		return curated.Errorf("application: %v", err)
	}

	app.recordLaunch(c, path)

	return coreloop.RunCore(ctx, app, c, src, showMenu, app.loopOpts...)
}

// LaunchEntry launches the core with the catalog key.
func (app *Application) LaunchEntry(ctx context.Context, key int, src coreloop.EventSource, showMenu bool) error {
	if app.catalog == nil {
		return curated.Errorf("application: no catalog")
	}
	ent, err := app.catalog.Get(key)
	if err != nil {
		return curated.Errorf("application: %v", err)
	}
	return app.LaunchCore(ctx, ent.Path, src, showMenu)
}

func (app *Application) recordLaunch(c core.Core, path string) {
	err := app.settings.Update(func(s *settings.Settings) error {
		if err := s.LastCoreName.Set(c.Name()); err != nil {
			return err
		}
		return s.LastCorePath.Set(path)
	})
	if err != nil {
		logger.Logf(logger.Allow, "application", "last core: %v", err)
	}

	if app.catalog == nil {
		return
	}

	ent, ok, err := app.catalog.FindPath(path)
	if err != nil {
		logger.Logf(logger.Allow, "application", "%v", err)
		return
	}
	if !ok {
		return
	}
	if err := app.catalog.RecordPlayed(ent.Key, time.Now()); err != nil {
		logger.Logf(logger.Allow, "application", "%v", err)
	}
}

// BootCorePath returns the path of the core to boot automatically. The
// boolean return value is false if no core should be booted.
//
// In the last core mode the catalog is searched for the most recently
// released core with the same name. The exact path of the last core is used
// if there is no such core in the catalog.
func (app *Application) BootCorePath(cfg *bootcore.Config) (string, bool) {
	target, ok := cfg.Target(app.settings)
	if !ok {
		return "", false
	}

	if cfg.Mode() == settings.BootCoreLastExact {
		return target, true
	}

	fallback := app.settings.LastCorePath.Get().(string)

	if app.catalog != nil {
		var best catalog.Entry
		_, err := app.catalog.SelectAll(catalog.NameAsc, func(ent catalog.Entry) error {
			if ent.Name == target && (best.Path == "" || ent.ReleasedAt.After(best.ReleasedAt)) {
				best = ent
			}
			return nil
		})
		if err != nil {
			logger.Logf(logger.Allow, "application", "%v", err)
		} else if best.Path != "" {
			return best.Path, true
		}
	}

	return fallback, fallback != ""
}

// BootCore waits for the timeout in the boot-core configuration and then
// launches the core. Returns false if no core is booted, either because the
// configuration does not ask for one or because the context was cancelled
// during the timeout.
func (app *Application) BootCore(ctx context.Context, cfg *bootcore.Config, src coreloop.EventSource) (bool, error) {
	path, ok := app.BootCorePath(cfg)
	if !ok {
		return false, nil
	}

	logger.Logf(logger.Allow, "application", "booting %s in %.1fs", path, float64(cfg.Timeout)/10)

	if cfg.Timeout > 0 {
		t := time.NewTimer(time.Duration(cfg.Timeout) * time.Second / 10)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false, nil
		case <-t.C:
		}
	}

	return true, app.LaunchCore(ctx, path, src, false)
}

// the Application is the App for every command
var _ commands.App = (*Application)(nil)
