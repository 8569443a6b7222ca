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
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/userinput"
)

// Binding of a shortcut to a command.
type Binding struct {
	Command  ShortcutCommand
	Shortcut userinput.Shortcut
}

func (b Binding) String() string {
	return b.Shortcut.String() + " -> " + b.Command.String()
}

// Table is the list of bindings in registration order.
type Table []Binding

// BuildTable flattens the mappings for the named core. Bindings are ordered by
// command and then by the order of the shortcuts of that command. Shortcuts
// that cannot be parsed are logged and skipped.
func BuildTable(m settings.Mappings, coreName string) Table {
	var t Table
	for _, cmd := range All() {
		for _, s := range m.For(cmd.String(), coreName) {
			sc, err := userinput.ParseShortcut(s)
			if err != nil {
				logger.Logf(logger.Allow, "commands", "%s: %v", cmd, err)
				continue
			}
			if sc.IsEmpty() {
				continue
			}
			t = append(t, Binding{Command: cmd, Shortcut: sc})
		}
	}
	return t
}

// Match returns the first binding that matches the input state. The second
// return value is false if no binding matches.
func (t Table) Match(s *userinput.State) (Binding, bool) {
	for _, b := range t {
		if b.Shortcut.Matches(s) {
			return b, true
		}
	}
	return Binding{}, false
}
