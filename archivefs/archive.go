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
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode/v2"
)

// MaxFileSize is the largest file that will be read from an archive.
const MaxFileSize = 256 * 1024 * 1024

// errors returned by the archive implementations.
var (
	errNotArchive   = errors.New("not an archive")
	errNotInArchive = errors.New("file not in archive")
	errTooLarge     = errors.New("file too large")
)

var (
	magicZip    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZipEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicRar    = []byte{0x52, 0x61, 0x72, 0x21}
)

// archiveFile is one file in an archive. The name uses forward slashes
// regardless of platform.
type archiveFile struct {
	name  string
	isDir bool
}

// archive is implemented by each supported archive format.
type archive interface {
	files() []archiveFile
	read(name string) ([]byte, error)
	Close() error
}

// openArchive opens the file as an archive. errNotArchive is returned if the
// file is not a supported archive type.
func openArchive(filename string) (archive, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	f.Close()
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	header = header[:n]

	switch {
	case bytes.HasPrefix(header, magicZip) || bytes.HasPrefix(header, magicZipEnd):
		return openZip(filename)
	case bytes.HasPrefix(header, magic7z):
		return open7z(filename)
	case bytes.HasPrefix(header, magicRar):
		return openRar(filename)
	}

	return nil, errNotArchive
}

// limitedRead reads all of r up to MaxFileSize bytes.
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, errTooLarge
	}
	return data, nil
}

func cleanName(name string) string {
	return strings.Trim(path.Clean("/"+strings.ReplaceAll(name, "\\", "/")), "/")
}

type zipArchive struct {
	zf *zip.ReadCloser
}

func openZip(filename string) (archive, error) {
	zf, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	return &zipArchive{zf: zf}, nil
}

func (a *zipArchive) files() []archiveFile {
	var fs []archiveFile
	for _, f := range a.zf.File {
		fs = append(fs, archiveFile{name: cleanName(f.Name), isDir: f.FileInfo().IsDir()})
	}
	return fs
}

func (a *zipArchive) read(name string) ([]byte, error) {
	for _, f := range a.zf.File {
		if cleanName(f.Name) != name || f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return limitedRead(rc)
	}
	return nil, errNotInArchive
}

func (a *zipArchive) Close() error {
	return a.zf.Close()
}

type sevenZipArchive struct {
	r *sevenzip.ReadCloser
}

func open7z(filename string) (archive, error) {
	r, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	return &sevenZipArchive{r: r}, nil
}

func (a *sevenZipArchive) files() []archiveFile {
	var fs []archiveFile
	for _, f := range a.r.File {
		fs = append(fs, archiveFile{name: cleanName(f.Name), isDir: f.FileInfo().IsDir()})
	}
	return fs
}

func (a *sevenZipArchive) read(name string) ([]byte, error) {
	for _, f := range a.r.File {
		if cleanName(f.Name) != name || f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return limitedRead(rc)
	}
	return nil, errNotInArchive
}

func (a *sevenZipArchive) Close() error {
	return a.r.Close()
}

// rar archives can only be read sequentially. the list of files is made when
// the archive is opened and the archive is reopened for every read.
type rarArchive struct {
	filename string
	list     []archiveFile
}

func openRar(filename string) (archive, error) {
	r, err := rardecode.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	a := &rarArchive{filename: filename}
	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		a.list = append(a.list, archiveFile{name: cleanName(hdr.Name), isDir: hdr.IsDir})
	}

	return a, nil
}

func (a *rarArchive) files() []archiveFile {
	return a.list
}

func (a *rarArchive) read(name string) ([]byte, error) {
	r, err := rardecode.OpenReader(a.filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if hdr.IsDir || cleanName(hdr.Name) != name {
			continue
		}
		return limitedRead(r)
	}

	return nil, errNotInArchive
}

func (a *rarArchive) Close() error {
	return nil
}
