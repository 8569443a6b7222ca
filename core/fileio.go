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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golem-fpga/golem/archivefs"
	"github.com/golem-fpga/golem/configstring"
	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/logger"
)

// number of bytes sent with each FIOFileTxDat command.
const fileChunkSize = 4096

// FIOFileTx arguments.
const (
	fileTxEnd   = 0x00
	fileTxStart = 0xff
)

// SectorSize is the size of a sector of a sav file.
const SectorSize = 512

// the bits of the first word returned by UIOGetSDStat. the second and third
// words are the logical block address of the request.
const (
	sdStatRead  = 0x01
	sdStatWrite = 0x02
)

// bytesToWords packs the bytes into little-endian words. an odd final byte
// is padded with zero.
func bytesToWords(p []byte) []uint16 {
	w := make([]uint16, (len(p)+1)/2)
	for i, b := range p {
		if i&1 == 0 {
			w[i/2] = uint16(b)
		} else {
			w[i/2] |= uint16(b) << 8
		}
	}
	return w
}

// wordsToBytes is the inverse of bytesToWords.
func wordsToBytes(w []uint16) []byte {
	p := make([]byte, len(w)*2)
	for i, v := range w {
		p[i*2] = byte(v)
		p[i*2+1] = byte(v >> 8)
	}
	return p
}

// LoadFile implements the Core interface.
func (c *FpgaCore) LoadFile(path string, info *configstring.LoadFileInfo) error {
	if err := c.check("load"); err != nil {
		return err
	}

	var slot configstring.Item
	if info == nil {
		slots := c.cfg.FileSlots()
		if len(slots) == 0 {
			return opError(UnsupportedSlot, "load", curated.Errorf("%s has no file slots", c.Name()))
		}
		slot = slots[0]
	} else {
		var ok bool
		slot, ok = c.cfg.FileSlot(info.Index)
		if !ok {
			return opError(UnsupportedSlot, "load", curated.Errorf("%s has no file slot %d", c.Name(), info.Index))
		}
	}

	data, name, err := archivefs.ReadFile(path, slot.Extensions)
	if err != nil {
		return opError(IoError, "load", err)
	}

	if err := c.transferFile(slot.Index, name, data); err != nil {
		return opError(IoError, "load", err)
	}

	logger.Logf(logger.Allow, "core", "loaded %s (%d bytes) into slot %d", name, len(data), slot.Index)

	return nil
}

// transferFile sends the data to the core.
func (c *FpgaCore) transferFile(index int, name string, data []byte) error {
	if err := c.dev.Transfer(fpga.BusFPGA, fpga.FIOFileIndex, []uint16{uint16(index)}, nil); err != nil {
		return err
	}

	// file size followed by the extension
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(name), "."))
	info := []uint16{uint16(len(data)), uint16(len(data) >> 16)}
	info = append(info, bytesToWords([]byte(ext))...)
	if err := c.dev.Transfer(fpga.BusFPGA, fpga.FIOFileInfo, info, nil); err != nil {
		return err
	}

	if err := c.dev.Transfer(fpga.BusFPGA, fpga.FIOFileTx, []uint16{fileTxStart}, nil); err != nil {
		return err
	}

	for len(data) > 0 {
		n := min(len(data), fileChunkSize)
		if err := c.dev.Transfer(fpga.BusFPGA, fpga.FIOFileTxDat, bytesToWords(data[:n]), nil); err != nil {
			return err
		}
		data = data[n:]
	}

	return c.dev.Transfer(fpga.BusFPGA, fpga.FIOFileTx, []uint16{fileTxEnd}, nil)
}

// savFile is a sav file mounted with MountSav().
type savFile struct {
	path string
	f    *os.File
}

// MountSav implements the Core interface.
func (c *FpgaCore) MountSav(path string) error {
	if err := c.check("mount"); err != nil {
		return err
	}

	slot := -1
	for _, it := range c.cfg.Items {
		if it.Kind == configstring.KindSav {
			slot = it.Index
			break
		}
	}
	if slot < 0 {
		return opError(UnsupportedSlot, "mount", curated.Errorf("%s has no sav slot", c.Name()))
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return opError(IoError, "mount", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return opError(IoError, "mount", err)
	}

	// size in sectors followed by the slot
	sectors := uint32((fi.Size() + SectorSize - 1) / SectorSize)
	err = c.dev.Transfer(fpga.BusIO, fpga.UIOSetSDInfo, []uint16{uint16(sectors), uint16(sectors >> 16), uint16(slot)}, nil)
	if err != nil {
		f.Close()
		return opError(IoError, "mount", err)
	}

	if c.sav != nil {
		c.sav.f.Close()
	}
	c.sav = &savFile{path: path, f: f}

	logger.Logf(logger.Allow, "core", "mounted %s (%d sectors)", path, sectors)

	return nil
}

// CheckSav implements the Core interface.
func (c *FpgaCore) CheckSav() error {
	if c.sav == nil {
		return nil
	}
	if err := c.check("sav"); err != nil {
		return err
	}

	stat := make([]uint16, 3)
	if err := c.dev.Transfer(fpga.BusIO, fpga.UIOGetSDStat, nil, stat); err != nil {
		return opError(IoError, "sav", err)
	}

	lba := int64(stat[1]) | int64(stat[2])<<16
	offset := lba * SectorSize

	switch {
	case stat[0]&sdStatRead != 0:
		sector := make([]byte, SectorSize)
		_, err := c.sav.f.ReadAt(sector, offset)
		if err != nil && !errors.Is(err, io.EOF) {
			return opError(IoError, "sav", err)
		}
		if err := c.dev.Transfer(fpga.BusIO, fpga.UIOSectorRd, bytesToWords(sector), nil); err != nil {
			return opError(IoError, "sav", err)
		}

	case stat[0]&sdStatWrite != 0:
		w := make([]uint16, SectorSize/2)
		if err := c.dev.Transfer(fpga.BusIO, fpga.UIOSectorWr, nil, w); err != nil {
			return opError(IoError, "sav", err)
		}
		if _, err := c.sav.f.WriteAt(wordsToBytes(w), offset); err != nil {
			return opError(IoError, "sav", err)
		}
		if err := c.sav.f.Sync(); err != nil {
			return opError(IoError, "sav", err)
		}
		logger.Logf(logger.Trace, "core", "sav: wrote sector %d", lba)
	}

	return nil
}

// Close releases the resources held by the core. The core can not be used
// after it has been closed.
func (c *FpgaCore) Close() error {
	if c.sav == nil {
		return nil
	}
	err := c.sav.f.Close()
	c.sav = nil
	return err
}
