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
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/golem-fpga/golem/curated"
)

// Open and return an io.ReadSeeker for the specified filename. Filename can
// be inside an archive supported by archivefs.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and
// any errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadFile returns the contents of filename. If filename is an archive, or a
// directory inside an archive, the first file with one of the extensions is
// read. The extensions are compared without case and without the leading
// period. An empty list of extensions matches every file.
//
// The returned name is the base name of the file that was read.
func ReadFile(filename string, extensions []string) ([]byte, string, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, "", err
	}
	defer afs.Close()

	if afs.IsDir() {
		if !afs.InArchive() {
			return nil, "", curated.Errorf("archivefs: %s is a directory", filename)
		}

		var found string
		for _, f := range afs.arc.files() {
			if f.isDir || !hasExtension(f.name, extensions) {
				continue
			}
			if afs.inArchive == "" || strings.HasPrefix(f.name, afs.inArchive+"/") {
				found = f.name
				break
			}
		}
		if found == "" {
			return nil, "", curated.Errorf("archivefs: no suitable file in %s", filename)
		}

		b, err := afs.arc.read(found)
		if err != nil {
			return nil, "", curated.Errorf("archivefs: %v", err)
		}
		return b, path.Base(found), nil
	}

	r, sz, err := afs.Open()
	if err != nil {
		return nil, "", err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	b := make([]byte, sz)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, "", curated.Errorf("archivefs: %v", err)
	}

	return b, afs.Base(), nil
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(strings.ToUpper(filepath.Ext(name)), ".")
	for _, e := range extensions {
		if strings.TrimPrefix(strings.ToUpper(e), ".") == ext {
			return true
		}
	}
	return false
}
