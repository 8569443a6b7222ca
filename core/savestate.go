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
	"errors"
	"io"

	"github.com/golem-fpga/golem/configstring"
)

// NumSaveStateSlots is the number of save state slots of a core that supports
// save states.
const NumSaveStateSlots = configstring.SaveStateSlots

// SaveState is one save state slot of a core.
//
// WriteTo() and ReadFrom() transfer the entire region or nothing. ReadFrom()
// fails with a SizeMismatch error if the reader doesn't contain exactly the
// number of bytes in the region.
type SaveState interface {
	// IsDirty returns true if the core has changed the save state since it
	// was last transferred
	IsDirty() bool

	io.WriterTo
	io.ReaderFrom
}

// RegionSaveState is a save state stored in the memory shared with the core.
// The first four bytes of the region are a counter that the core increments
// every time it writes the save state.
type RegionSaveState struct {
	core *FpgaCore
	slot int
	addr uint32
	size uint32

	// value of the counter at the last transfer
	counter uint32
}

func newRegionSaveState(c *FpgaCore, slot int, region configstring.SaveStateRegion) *RegionSaveState {
	return &RegionSaveState{
		core: c,
		slot: slot,
		addr: region.Base + uint32(slot)*region.Size,
		size: region.Size,
	}
}

// Slot returns the slot number of the save state.
func (ss *RegionSaveState) Slot() int {
	return ss.slot
}

// Size returns the number of bytes in the save state.
func (ss *RegionSaveState) Size() int {
	return int(ss.size)
}

func (ss *RegionSaveState) readCounter() (uint32, bool) {
	if ss.size < 4 || ss.core.IsStale() {
		return 0, false
	}
	var b [4]byte
	if err := ss.core.dev.ReadMemory(ss.addr, b[:]); err != nil {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b[:]), true
}

// IsDirty implements the SaveState interface.
func (ss *RegionSaveState) IsDirty() bool {
	c, ok := ss.readCounter()
	return ok && c != ss.counter
}

func (ss *RegionSaveState) updateCounter(p []byte) {
	if len(p) >= 4 {
		ss.counter = binary.LittleEndian.Uint32(p)
	}
}

// WriteTo implements the io.WriterTo interface.
func (ss *RegionSaveState) WriteTo(w io.Writer) (int64, error) {
	if ss.core.IsStale() {
		return 0, &SaveStateError{Kind: SaveStateIoError, Err: ErrStale}
	}

	buf := make([]byte, ss.size)
	if err := ss.core.dev.ReadMemory(ss.addr, buf); err != nil {
		return 0, &SaveStateError{Kind: SaveStateIoError, Err: err}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), &SaveStateError{Kind: SaveStateIoError, Err: err}
	}

	ss.updateCounter(buf)

	return int64(n), nil
}

// ReadFrom implements the io.ReaderFrom interface.
func (ss *RegionSaveState) ReadFrom(r io.Reader) (int64, error) {
	if ss.core.IsStale() {
		return 0, &SaveStateError{Kind: SaveStateIoError, Err: ErrStale}
	}

	// one more byte than the region to detect sources that are too long
	buf := make([]byte, ss.size+1)
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return int64(n), &SaveStateError{Kind: SizeMismatch}
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		if n != int(ss.size) {
			return int64(n), &SaveStateError{Kind: SizeMismatch}
		}
	default:
		return int64(n), &SaveStateError{Kind: SaveStateIoError, Err: err}
	}

	buf = buf[:ss.size]
	if err := ss.core.dev.WriteMemory(ss.addr, buf); err != nil {
		return int64(n), &SaveStateError{Kind: SaveStateIoError, Err: err}
	}

	ss.updateCounter(buf)

	return int64(n), nil
}

// NullSaveState is the save state of a core without save state support. It
// is never returned by a core in normal operation and every method panics.
type NullSaveState struct{}

// IsDirty implements the SaveState interface.
func (NullSaveState) IsDirty() bool { unreachable("IsDirty"); return false }

// WriteTo implements the io.WriterTo interface.
func (NullSaveState) WriteTo(io.Writer) (int64, error) { unreachable("WriteTo"); return 0, nil }

// ReadFrom implements the io.ReaderFrom interface.
func (NullSaveState) ReadFrom(io.Reader) (int64, error) { unreachable("ReadFrom"); return 0, nil }
