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
	"fmt"

	"github.com/golem-fpga/golem/curated"
)

// ShortcutCommand is an action that can be bound to a shortcut.
type ShortcutCommand int

// List of valid ShortcutCommand values. The order is the order in which the
// bindings of a Table are registered.
const (
	ShowCoreMenu ShortcutCommand = iota
	QuitCore
	ResetCore
	TakeScreenshot
	SaveState
	LoadState
	NextSaveSlot
	DumpMenuTree
	NumCommands
)

// the names are the keys of the shortcut mappings in the settings
var commandNames = [NumCommands]string{
	"show_core_menu",
	"quit_core",
	"reset_core",
	"take_screenshot",
	"save_state",
	"load_state",
	"next_save_slot",
	"dump_menu_tree",
}

func (cmd ShortcutCommand) String() string {
	if cmd < 0 || cmd >= NumCommands {
		return fmt.Sprintf("command(%d)", int(cmd))
	}
	return commandNames[cmd]
}

// ParseCommand returns the ShortcutCommand with the name.
func ParseCommand(name string) (ShortcutCommand, error) {
	for i, n := range commandNames {
		if n == name {
			return ShortcutCommand(i), nil
		}
	}
	return 0, curated.Errorf("commands: unknown command %q", name)
}

// All returns every ShortcutCommand in registration order.
func All() []ShortcutCommand {
	c := make([]ShortcutCommand, NumCommands)
	for i := range c {
		c[i] = ShortcutCommand(i)
	}
	return c
}
