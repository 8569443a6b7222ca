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
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golem-fpga/golem/curated"
)

// WarningBoilerPlate is the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value on a line in the prefs file.
const keySep = " :: "

// DefaultPrefsFile is the name of the preferences file used by the
// application. It is not a path; it should be joined with the resources path.
const DefaultPrefsFile = "golem.prefs"

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the prefs file and so must not
// contain the key separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, strings.TrimSpace(keySep)) || strings.ContainsAny(key, "\n ") {
		return curated.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for k, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	kv, err := readFile(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, v := range dsk.entries {
		kv[k] = v.String()
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(kv[k])
		s.WriteString("\n")
	}

	// write to a temporary file first so that a failed write doesn't destroy
	// the existing prefs
	tmp := fmt.Sprintf("%s.tmp", dsk.path)
	if err := os.WriteFile(tmp, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	if err := os.Rename(tmp, dsk.path); err != nil {
		_ = os.Remove(tmp)
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. Values on
// the top of the command line stack are applied after the file has been read.
func (dsk *Disk) Load() error {
	kv, err := readFile(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		if v, ok := kv[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
		if v, ok := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}

// Path returns the location of the prefs file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// readFile returns the key/value pairs of the prefs file. an empty map is
// returned if the file does not exist.
func readFile(path string) (map[string]string, error) {
	kv := make(map[string]string)

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return kv, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a prefs file (%s)", path)
	}

	for scanner.Scan() {
		p := strings.SplitN(scanner.Text(), keySep, 2)
		if len(p) != 2 {
			continue
		}
		kv[strings.TrimSpace(p[0])] = strings.TrimSpace(p[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return kv, nil
}
