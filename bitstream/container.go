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
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/golem-fpga/golem/curated"
)

// Program is the raw configuration data for the FPGA.
type Program []byte

// Container layout.
const (
	Tag        = "MiSTer"
	sizeOffset = 12
	HeaderSize = 16
)

// ErrMalformedContainer is returned by Unwrap() when a container is truncated
// or declares a payload longer than the data available.
var ErrMalformedContainer = errors.New("bitstream: malformed container")

// IsContainer returns true if data starts with the container tag.
func IsContainer(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Tag))
}

// Unwrap returns the payload of a container. The returned slice shares memory
// with the data argument. Data that is not a container is returned unchanged.
func Unwrap(data []byte) (Program, error) {
	if !IsContainer(data) {
		return Program(data), nil
	}

	if len(data) < HeaderSize {
		return nil, curated.Errorf("bitstream: %v: header is %d bytes long", ErrMalformedContainer, len(data))
	}

	size := binary.LittleEndian.Uint32(data[sizeOffset:])
	avail := uint64(len(data) - HeaderSize)
	if uint64(size) > avail {
		return nil, curated.Errorf("bitstream: %v: declares %d bytes but %d available", ErrMalformedContainer, size, avail)
	}

	return Program(data[HeaderSize : HeaderSize+int(size)]), nil
}

// Wrap places a raw bitstream inside a container.
func Wrap(payload []byte) []byte {
	data := make([]byte, HeaderSize+len(payload))
	copy(data, Tag)
	binary.LittleEndian.PutUint32(data[sizeOffset:], uint32(len(payload)))
	copy(data[HeaderSize:], payload)
	return data
}
