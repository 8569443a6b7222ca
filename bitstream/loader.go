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

package bitstream

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/golem-fpga/golem/curated"
)

// FileExtensions is the list of file extensions that are recognised as core
// files.
var FileExtensions = [...]string{".RBF"}

// HasCoreExtension returns true if the filename has one of the recognised
// file extensions. The comparison is case insensitive.
func HasCoreExtension(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Loader is used to specify the core file to load.
type Loader struct {
	// filename of core to load. this can be a local file or a URL with the
	// http or https scheme
	Filename string

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The extension
// and path are removed.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the core file. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("bitstream: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("bitstream: %v", fmt.Sprintf("http status %s", resp.Status))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("bitstream: %v", err)
		}

	case "file":
		ld.Data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf("bitstream: %v", err)
		}

	default:
		return curated.Errorf("bitstream: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("bitstream: %v", fmt.Sprintf("empty core file (%s)", ld.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("bitstream: %v", "unexpected hash value")
	}

	ld.Hash = hash

	return nil
}

// Program returns the FPGA configuration data of the loaded file. See
// Unwrap().
func (ld Loader) Program() (Program, error) {
	return Unwrap(ld.Data)
}
