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

package settings

import (
	"slices"
	"strings"
)

// DefaultShortcuts are the shortcuts for each command name. Shortcuts are
// separated by commas. An empty string leaves the command unbound.
var DefaultShortcuts = map[string]string{
	"show_core_menu":  "F12, Pad:Guide",
	"quit_core":       "Ctrl+Q, Pad:Back+Pad:Start",
	"reset_core":      "Ctrl+R",
	"take_screenshot": "PrintScreen",
	"save_state":      "Ctrl+S",
	"load_state":      "Ctrl+L",
	"next_save_slot":  "Ctrl+N",
	"dump_menu_tree":  "",
}

// Mappings of command names to shortcuts. Core specific mappings replace the
// global mapping of the command.
type Mappings struct {
	Global map[string][]string
	Core   map[string]map[string][]string
}

// For returns the shortcuts of the command for the named core.
func (m Mappings) For(command string, coreName string) []string {
	if c, ok := m.Core[coreName]; ok {
		if s, ok := c[command]; ok {
			return s
		}
	}
	return m.Global[command]
}

// Commands returns the names of every command with a global mapping, sorted.
func (m Mappings) Commands() []string {
	var c []string
	for k := range m.Global {
		c = append(c, k)
	}
	slices.Sort(c)
	return c
}

// splitShortcuts divides a comma separated list of shortcuts.
func splitShortcuts(s string) []string {
	var l []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			l = append(l, p)
		}
	}
	return l
}

// parseCoreMappings parses the core specific mappings. Entries are separated
// by a vertical bar and have the form:
//
//	CoreName/command=Shortcut,Shortcut
//
// Malformed entries are ignored.
func parseCoreMappings(s string) map[string]map[string][]string {
	m := make(map[string]map[string][]string)
	for _, e := range strings.Split(s, "|") {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		core, cmd, ok := strings.Cut(strings.TrimSpace(k), "/")
		if !ok || core == "" || cmd == "" {
			continue
		}
		if m[core] == nil {
			m[core] = make(map[string][]string)
		}
		m[core][cmd] = splitShortcuts(v)
	}
	return m
}

// formatCoreMappings is the inverse of parseCoreMappings. The output is
// sorted.
func formatCoreMappings(m map[string]map[string][]string) string {
	var e []string
	for core, cmds := range m {
		for cmd, s := range cmds {
			e = append(e, core+"/"+cmd+"="+strings.Join(s, ","))
		}
	}
	slices.Sort(e)
	return strings.Join(e, "|")
}
