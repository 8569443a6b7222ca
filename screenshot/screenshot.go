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

package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/xid"
	"golang.org/x/image/draw"

	"github.com/golem-fpga/golem/curated"
)

// Scale the image to the width. The height is scaled by the same factor. A
// width of zero or less, or a width equal to the width of the image, returns
// the image unchanged.
func Scale(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || width == b.Dx() || b.Dx() == 0 {
		return img
	}

	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Write the image to the writer in the PNG format.
func Write(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	return nil
}

// Filename returns a unique file name for a screenshot of the named core.
func Filename(coreName string, t time.Time) string {
	return fmt.Sprintf("%s_%s_%s.png", sanitise(coreName), t.Format("20060102_150405"), xid.New().String())
}

// Save the image in the directory, scaled to the width. Returns the path of
// the new file.
func Save(dir string, coreName string, img image.Image, width int) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}

	pth := filepath.Join(dir, Filename(coreName, time.Now()))

	f, err := os.OpenFile(pth, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	if err := Write(f, Scale(img, width)); err != nil {
		_ = os.Remove(pth)
		return "", err
	}

	return pth, nil
}

// core names may contain characters that are awkward in file names
func sanitise(name string) string {
	if name == "" {
		return "core"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return '_'
	}, name)
}
