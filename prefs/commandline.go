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

package prefs

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// the command line stack holds groups of preference values that override the
// values read from disk. the values in the top group are consumed by
// Disk.Load()
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the values in the group that were never
// consumed, as a prefs string with the keys in sorted order.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}

	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]

	pairs := make([]string, 0, len(top))
	for _, k := range slices.Sorted(maps.Keys(top)) {
		pairs = append(pairs, fmt.Sprintf("%s::%s", k, top[k]))
	}

	return strings.Join(pairs, "; ")
}

// PushCommandLineStack parses a prefs string and adds it as a new group. A
// prefs string is a list of key/value pairs separated by semi-colons. The key
// is separated from the value by a double colon:
//
//	"settings.framerate::50; settings.loglevel::trace"
//
// Pairs without a double colon, or with an empty key, are ignored. Returns
// the number of pairs in the new group.
func PushCommandLineStack(prefs string) int {
	grp := make(map[string]string)

	for p := range strings.SplitSeq(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		grp[k] = strings.TrimSpace(v)
	}

	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, grp)

	return len(grp)
}

// GetCommandLinePref returns the value for the key in the top group. The value
// is consumed and will not be returned again.
func GetCommandLinePref(key string) (string, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return "", false
	}

	top := commandLine.stack[n-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return v, ok
}
