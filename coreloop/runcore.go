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

package coreloop

import (
	"context"

	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/notifications"
)

// RunCore runs the loop for the core. If showMenu is true the core menu is
// shown before the loop starts, otherwise the overlay is hidden. The loop does
// not run if the user quits the core from the menu.
//
// The menu core is always loaded when the loop ends. An error loading the menu
// is returned in preference to the error from the loop.
func RunCore(ctx context.Context, app commands.App, c core.Core, src EventSource, showMenu bool, opts ...Option) error {
	logger.Log(logger.Debug, "coreloop", "starting core loop")

	notify(app, notifications.NotifyToolbarHidden)

	run := true
	if showMenu {
		run = !app.CoreMenu(c)
	} else if err := app.CoreManager().HideMenu(); err != nil {
		logger.Logf(logger.Allow, "coreloop", "hide menu: %v", err)
	}

	var err error
	if run {
		l := New(app, c, src, opts...)
		err = l.Run(ctx)
		l.Close()
	}

	logger.Log(logger.Debug, "coreloop", "core loop ended")
	logger.Log(logger.Allow, "coreloop", "loading main menu")

	if _, merr := app.CoreManager().LoadMenu(); merr != nil {
		return curated.Errorf("coreloop: %v", merr)
	}

	notify(app, notifications.NotifyToolbarShown)

	return err
}

func notify(app commands.App, notice notifications.Notice) {
	if err := app.Notify(notice); err != nil {
		logger.Logf(logger.Allow, "coreloop", "%s: %v", notice, err)
	}
}
