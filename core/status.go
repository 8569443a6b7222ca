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
	"fmt"

	"github.com/golem-fpga/golem/configstring"
)

// NumStatusBits is the size of the status register file.
const NumStatusBits = 128

// StatusBits is the status register file of a core. Bit zero is the least
// significant bit of the first word.
type StatusBits [NumStatusBits / 32]uint32

// Get returns the value of the bit. Bits outside the register file are zero.
func (s StatusBits) Get(bit int) bool {
	if bit < 0 || bit >= NumStatusBits {
		return false
	}
	return s[bit/32]&(1<<(bit%32)) != 0
}

// Set the value of the bit. Bits outside the register file are ignored.
func (s *StatusBits) Set(bit int, v bool) {
	if bit < 0 || bit >= NumStatusBits {
		return
	}
	if v {
		s[bit/32] |= 1 << (bit % 32)
	} else {
		s[bit/32] &^= 1 << (bit % 32)
	}
}

// Range returns the value of the bits in the range. The least significant
// bit of the result is the Lo bit of the range. Ranges wider than 32 bits are
// truncated.
func (s StatusBits) Range(r configstring.BitRange) uint32 {
	var v uint32
	for i := min(r.Hi, r.Lo+31); i >= r.Lo; i-- {
		v <<= 1
		if s.Get(i) {
			v |= 1
		}
	}
	return v
}

// SetRange sets the bits of the range to the value.
func (s *StatusBits) SetRange(r configstring.BitRange, v uint32) {
	for i := r.Lo; i <= min(r.Hi, r.Lo+31); i++ {
		s.Set(i, v&1 == 1)
		v >>= 1
	}
}

// SetMask sets every bit in the range.
func (s *StatusBits) SetMask(r configstring.BitRange) {
	for i := r.Lo; i <= r.Hi; i++ {
		s.Set(i, true)
	}
}

// And returns the bits set in both s and o.
func (s StatusBits) And(o StatusBits) StatusBits {
	for i := range s {
		s[i] &= o[i]
	}
	return s
}

// IsZero returns true if no bit is set.
func (s StatusBits) IsZero() bool {
	return s == StatusBits{}
}

// Words16 returns the register file as 16-bit words, least significant
// first. This is the order the words are sent to the core.
func (s StatusBits) Words16() []uint16 {
	w := make([]uint16, 0, len(s)*2)
	for _, v := range s {
		w = append(w, uint16(v), uint16(v>>16))
	}
	return w
}

func (s StatusBits) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x", s[3], s[2], s[1], s[0])
}

// maskFromConfig returns the bits used by the options and triggers of the
// config.
func maskFromConfig(cfg *configstring.Config) StatusBits {
	var m StatusBits
	for _, r := range cfg.StatusRanges() {
		m.SetMask(r)
	}
	return m
}
