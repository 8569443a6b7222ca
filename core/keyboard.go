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

import "github.com/golem-fpga/golem/userinput"

// flag for PS/2 codes that are preceded by the 0xe0 prefix.
const ps2Extended = 0x100

// PS/2 prefixes.
const (
	ps2PrefixExtended = 0xe0
	ps2PrefixBreak    = 0xf0
)

// PS/2 scan code set 2 make codes indexed by USB HID usage ID. zero entries
// are keys with no translation.
var ps2 = [userinput.MaxScancode]uint16{
	userinput.ScancodeA: 0x1c,
	userinput.ScancodeB: 0x32,
	userinput.ScancodeC: 0x21,
	userinput.ScancodeD: 0x23,
	userinput.ScancodeE: 0x24,
	userinput.ScancodeF: 0x2b,
	userinput.ScancodeG: 0x34,
	userinput.ScancodeH: 0x33,
	userinput.ScancodeI: 0x43,
	userinput.ScancodeJ: 0x3b,
	userinput.ScancodeK: 0x42,
	userinput.ScancodeL: 0x4b,
	userinput.ScancodeM: 0x3a,
	userinput.ScancodeN: 0x31,
	userinput.ScancodeO: 0x44,
	userinput.ScancodeP: 0x4d,
	userinput.ScancodeQ: 0x15,
	userinput.ScancodeR: 0x2d,
	userinput.ScancodeS: 0x1b,
	userinput.ScancodeT: 0x2c,
	userinput.ScancodeU: 0x3c,
	userinput.ScancodeV: 0x2a,
	userinput.ScancodeW: 0x1d,
	userinput.ScancodeX: 0x22,
	userinput.ScancodeY: 0x35,
	userinput.ScancodeZ: 0x1a,

	userinput.ScancodeKey1: 0x16,
	userinput.ScancodeKey2: 0x1e,
	userinput.ScancodeKey3: 0x26,
	userinput.ScancodeKey4: 0x25,
	userinput.ScancodeKey5: 0x2e,
	userinput.ScancodeKey6: 0x36,
	userinput.ScancodeKey7: 0x3d,
	userinput.ScancodeKey8: 0x3e,
	userinput.ScancodeKey9: 0x46,
	userinput.ScancodeKey0: 0x45,

	userinput.ScancodeReturn:       0x5a,
	userinput.ScancodeEscape:       0x76,
	userinput.ScancodeBackspace:    0x66,
	userinput.ScancodeTab:          0x0d,
	userinput.ScancodeSpace:        0x29,
	userinput.ScancodeMinus:        0x4e,
	userinput.ScancodeEquals:       0x55,
	userinput.ScancodeLeftBracket:  0x54,
	userinput.ScancodeRightBracket: 0x5b,
	userinput.ScancodeBackslash:    0x5d,
	userinput.ScancodeNonUSHash:    0x5d,
	userinput.ScancodeSemicolon:    0x4c,
	userinput.ScancodeApostrophe:   0x52,
	userinput.ScancodeGrave:        0x0e,
	userinput.ScancodeComma:        0x41,
	userinput.ScancodePeriod:       0x49,
	userinput.ScancodeSlash:        0x4a,
	userinput.ScancodeCapsLock:     0x58,

	userinput.ScancodeF1:  0x05,
	userinput.ScancodeF2:  0x06,
	userinput.ScancodeF3:  0x04,
	userinput.ScancodeF4:  0x0c,
	userinput.ScancodeF5:  0x03,
	userinput.ScancodeF6:  0x0b,
	userinput.ScancodeF7:  0x83,
	userinput.ScancodeF8:  0x0a,
	userinput.ScancodeF9:  0x01,
	userinput.ScancodeF10: 0x09,
	userinput.ScancodeF11: 0x78,
	userinput.ScancodeF12: 0x07,

	userinput.ScancodePrintScreen: ps2Extended | 0x7c,
	userinput.ScancodeScrollLock:  0x7e,
	userinput.ScancodeInsert:      ps2Extended | 0x70,
	userinput.ScancodeHome:        ps2Extended | 0x6c,
	userinput.ScancodePageUp:      ps2Extended | 0x7d,
	userinput.ScancodeDelete:      ps2Extended | 0x71,
	userinput.ScancodeEnd:         ps2Extended | 0x69,
	userinput.ScancodePageDown:    ps2Extended | 0x7a,
	userinput.ScancodeRight:       ps2Extended | 0x74,
	userinput.ScancodeLeft:        ps2Extended | 0x6b,
	userinput.ScancodeDown:        ps2Extended | 0x72,
	userinput.ScancodeUp:          ps2Extended | 0x75,

	userinput.ScancodeNumLock:    0x77,
	userinput.ScancodeKPDivide:   ps2Extended | 0x4a,
	userinput.ScancodeKPMultiply: 0x7c,
	userinput.ScancodeKPMinus:    0x7b,
	userinput.ScancodeKPPlus:     0x79,
	userinput.ScancodeKPEnter:    ps2Extended | 0x5a,
	userinput.ScancodeKP1:        0x69,
	userinput.ScancodeKP2:        0x72,
	userinput.ScancodeKP3:        0x7a,
	userinput.ScancodeKP4:        0x6b,
	userinput.ScancodeKP5:        0x73,
	userinput.ScancodeKP6:        0x74,
	userinput.ScancodeKP7:        0x6c,
	userinput.ScancodeKP8:        0x75,
	userinput.ScancodeKP9:        0x7d,
	userinput.ScancodeKP0:        0x70,
	userinput.ScancodeKPPeriod:   0x71,

	userinput.ScancodeNonUSBackslash: 0x61,
	userinput.ScancodeApplication:    ps2Extended | 0x2f,

	userinput.ScancodeLCtrl:  0x14,
	userinput.ScancodeLShift: 0x12,
	userinput.ScancodeLAlt:   0x11,
	userinput.ScancodeLGui:   ps2Extended | 0x1f,
	userinput.ScancodeRCtrl:  ps2Extended | 0x14,
	userinput.ScancodeRShift: 0x59,
	userinput.ScancodeRAlt:   ps2Extended | 0x11,
	userinput.ScancodeRGui:   ps2Extended | 0x27,
}

// ps2Sequence returns the bytes sent to the core for the key, one byte per
// word. returns nil if the key has no translation.
func ps2Sequence(code userinput.Scancode, release bool) []uint16 {
	if int(code) >= len(ps2) {
		return nil
	}
	c := ps2[code]
	if c == 0 {
		return nil
	}

	s := make([]uint16, 0, 3)
	if c&ps2Extended != 0 {
		s = append(s, ps2PrefixExtended)
	}
	if release {
		s = append(s, ps2PrefixBreak)
	}
	return append(s, c&0xff)
}
