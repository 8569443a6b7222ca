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

package archivefs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/golem-fpga/golem/curated"
)

// Entry represents a single part of a full path.
type Entry struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (e Entry) String() string {
	return e.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	arc archive

	// if the path is inside an archive, the path inside the archive. the root
	// of the archive is the empty string
	inArchive string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of path.
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the
// purposes of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.arc != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the
// Set() function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.arc != nil {
		b, err := afs.arc.read(afs.inArchive)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, int(info.Size()), nil
}

// Close any open archive and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inArchive = ""
	if afs.arc != nil {
		afs.arc.Close()
		afs.arc = nil
	}
}

// List returns the child entries for the current path location. If the
// current path is a file then the list will be the contents of the containing
// directory of that file.
func (afs *Path) List() ([]Entry, error) {
	var ent []Entry

	if afs.arc != nil {
		dir := afs.inArchive
		if !afs.isDir {
			dir = archiveDir(dir)
		}
		ent = listArchive(afs.arc, dir)
	} else {
		dir := afs.current
		if !afs.isDir {
			dir = filepath.Dir(dir)
		}

		lst, err := os.ReadDir(dir)
		if err != nil {
			return []Entry{}, curated.Errorf("archivefs: entries: %v", err)
		}

		for _, d := range lst {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			p := filepath.Join(dir, d.Name())
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Entry{Name: d.Name(), IsDir: true})
				continue
			}

			if arc, err := openArchive(p); err == nil {
				arc.Close()
				ent = append(ent, Entry{Name: d.Name(), IsDir: true, IsArchive: true})
			} else {
				ent = append(ent, Entry{Name: d.Name()})
			}
		}
	}

	Sort(ent)

	return ent, nil
}

// Set the path. The path can lead into and through a supported archive file.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for i, l := range lst {
		current = filepath.Join(current, l)

		fi, err := os.Stat(current)
		if err != nil {
			return curated.Errorf("archivefs: set: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		arc, err := openArchive(current)
		if err != nil {
			if errors.Is(err, errNotArchive) {
				if i < len(lst)-1 {
					return curated.Errorf("archivefs: set: %s is not a directory", current)
				}
				continue
			}
			return curated.Errorf("archivefs: set: %v", err)
		}

		// the root of an archive file is considered to be a directory
		afs.arc = arc
		afs.isDir = true

		inner := path.Join(lst[i+1:]...)
		if inner != "" {
			isDir, ok := findInArchive(arc, inner)
			if !ok {
				afs.Close()
				return curated.Errorf("archivefs: set: %s: %v", inner, errNotInArchive)
			}
			afs.isDir = isDir
			afs.inArchive = inner
			current = filepath.Join(current, filepath.FromSlash(inner))
		}
		break
	}

	// make sure path is clean
	afs.current = filepath.Clean(current)

	return nil
}

// archiveDir returns the directory part of a path inside an archive.
func archiveDir(name string) string {
	d := path.Dir(name)
	if d == "." {
		return ""
	}
	return d
}

// findInArchive looks for the name in the archive. Directories that are
// implied by the path of a file are found even when the archive has no entry
// for them.
func findInArchive(arc archive, name string) (isDir bool, ok bool) {
	for _, f := range arc.files() {
		if f.name == name {
			return f.isDir, true
		}
		if strings.HasPrefix(f.name, name+"/") {
			return true, true
		}
	}
	return false, false
}

// listArchive returns the entries immediately inside the directory of the
// archive.
func listArchive(arc archive, dir string) []Entry {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := make(map[string]bool)
	var ent []Entry

	for _, f := range arc.files() {
		if !strings.HasPrefix(f.name, prefix) || f.name == dir {
			continue
		}
		rest := strings.TrimPrefix(f.name, prefix)
		name, sub, more := strings.Cut(rest, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		ent = append(ent, Entry{Name: name, IsDir: f.isDir || (more && sub != "")})
	}

	return ent
}
