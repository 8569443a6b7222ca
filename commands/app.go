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

package commands

import (
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/coremanager"
	"github.com/golem-fpga/golem/notifications"
	"github.com/golem-fpga/golem/settings"
)

// App is the application state a command is executed against.
type App interface {
	notifications.Notify

	CoreManager() coremanager.CoreManager
	Settings() *settings.Settings

	// the save state slot used by the SaveState and LoadState commands.
	// zero-based
	SaveSlot() int
	SetSaveSlot(slot int)

	// CoreMenu shows the menu of the core and returns when the menu is
	// closed. Returns true if the user chose to quit the core from the menu
	CoreMenu(c core.Core) bool
}
