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

package core

import (
	"encoding/binary"
	"image"

	"github.com/golem-fpga/golem/curated"
)

// FramebufferAddress is the address of the scaler frame buffer in the memory
// shared with the core.
const FramebufferAddress uint32 = 0x20000000

// frame buffer header. multi-byte values are big-endian.
const (
	fbHeaderSize   = 16
	fbMagic0       = 0x01
	fbMagic1       = 0x46
	fbHeaderLength = 2
	fbWidth        = 6
	fbHeight       = 8
	fbStride       = 10

	// sanity limit on the frame size
	fbMaxDimension = 4096
)

// TakeScreenshot implements the Core interface. The image is the output of
// the scaler before any scaling is applied.
func (c *FpgaCore) TakeScreenshot() (*image.RGBA, error) {
	if err := c.check("screenshot"); err != nil {
		return nil, err
	}

	var hdr [fbHeaderSize]byte
	if err := c.dev.ReadMemory(FramebufferAddress, hdr[:]); err != nil {
		return nil, opError(CaptureFailed, "screenshot", err)
	}

	if hdr[0] != fbMagic0 || hdr[1] != fbMagic1 {
		return nil, opError(CaptureFailed, "screenshot", curated.Errorf("no frame buffer header"))
	}

	offset := int(binary.BigEndian.Uint16(hdr[fbHeaderLength:]))
	width := int(binary.BigEndian.Uint16(hdr[fbWidth:]))
	height := int(binary.BigEndian.Uint16(hdr[fbHeight:]))
	stride := int(binary.BigEndian.Uint16(hdr[fbStride:]))

	if width == 0 || height == 0 || width > fbMaxDimension || height > fbMaxDimension {
		return nil, opError(CaptureFailed, "screenshot", curated.Errorf("bad frame size %dx%d", width, height))
	}
	if stride < width*3 || offset < fbHeaderSize {
		return nil, opError(CaptureFailed, "screenshot", curated.Errorf("bad frame layout"))
	}

	pix := make([]byte, stride*height)
	if err := c.dev.ReadMemory(FramebufferAddress+uint32(offset), pix); err != nil {
		return nil, opError(CaptureFailed, "screenshot", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		src := pix[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := range width {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}

	return img, nil
}
