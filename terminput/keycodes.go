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

package terminput

import "github.com/golem-fpga/golem/userinput"

// list of ASCII codes for non-alphanumeric characters
const (
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyBackspace      = 127
	keyCtrlH          = 8
)

// list of ASCII codes that can follow keyEsc
const (
	escCSI = '['
	escSS3 = 'O'
)

// press is one key with the modifier keys held with it.
type press struct {
	mod  userinput.Scancode
	code userinput.Scancode
}

// characters that need no modifier
var plain = map[byte]userinput.Scancode{
	' ':  userinput.ScancodeSpace,
	'-':  userinput.ScancodeMinus,
	'=':  userinput.ScancodeEquals,
	'[':  userinput.ScancodeLeftBracket,
	']':  userinput.ScancodeRightBracket,
	'\\': userinput.ScancodeBackslash,
	';':  userinput.ScancodeSemicolon,
	'\'': userinput.ScancodeApostrophe,
	'`':  userinput.ScancodeGrave,
	',':  userinput.ScancodeComma,
	'.':  userinput.ScancodePeriod,
	'/':  userinput.ScancodeSlash,

	keyTab:            userinput.ScancodeTab,
	keyLineFeed:       userinput.ScancodeReturn,
	keyCarriageReturn: userinput.ScancodeReturn,
	keyBackspace:      userinput.ScancodeBackspace,
	keyCtrlH:          userinput.ScancodeBackspace,
}

// characters typed with the shift key on a US keyboard
var shifted = map[byte]userinput.Scancode{
	'!': userinput.ScancodeKey1,
	'@': userinput.ScancodeKey2,
	'#': userinput.ScancodeKey3,
	'$': userinput.ScancodeKey4,
	'%': userinput.ScancodeKey5,
	'^': userinput.ScancodeKey6,
	'&': userinput.ScancodeKey7,
	'*': userinput.ScancodeKey8,
	'(': userinput.ScancodeKey9,
	')': userinput.ScancodeKey0,
	'_': userinput.ScancodeMinus,
	'+': userinput.ScancodeEquals,
	'{': userinput.ScancodeLeftBracket,
	'}': userinput.ScancodeRightBracket,
	'|': userinput.ScancodeBackslash,
	':': userinput.ScancodeSemicolon,
	'"': userinput.ScancodeApostrophe,
	'~': userinput.ScancodeGrave,
	'<': userinput.ScancodeComma,
	'>': userinput.ScancodePeriod,
	'?': userinput.ScancodeSlash,
}

// final byte of CSI and SS3 sequences without parameters
var cursor = map[byte]userinput.Scancode{
	'A': userinput.ScancodeUp,
	'B': userinput.ScancodeDown,
	'C': userinput.ScancodeRight,
	'D': userinput.ScancodeLeft,
	'H': userinput.ScancodeHome,
	'F': userinput.ScancodeEnd,
	'P': userinput.ScancodeF1,
	'Q': userinput.ScancodeF2,
	'R': userinput.ScancodeF3,
	'S': userinput.ScancodeF4,
}

// parameter of CSI sequences ending with a tilde
var tilde = map[int]userinput.Scancode{
	1:  userinput.ScancodeHome,
	2:  userinput.ScancodeInsert,
	3:  userinput.ScancodeDelete,
	4:  userinput.ScancodeEnd,
	5:  userinput.ScancodePageUp,
	6:  userinput.ScancodePageDown,
	7:  userinput.ScancodeHome,
	8:  userinput.ScancodeEnd,
	11: userinput.ScancodeF1,
	12: userinput.ScancodeF2,
	13: userinput.ScancodeF3,
	14: userinput.ScancodeF4,
	15: userinput.ScancodeF5,
	17: userinput.ScancodeF6,
	18: userinput.ScancodeF7,
	19: userinput.ScancodeF8,
	20: userinput.ScancodeF9,
	21: userinput.ScancodeF10,
	23: userinput.ScancodeF11,
	24: userinput.ScancodeF12,
}

// char returns the press for a single character. The second return value is
// false if the character has no key.
func char(c byte) (press, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return press{code: userinput.ScancodeA + userinput.Scancode(c-'a')}, true
	case c >= 'A' && c <= 'Z':
		return press{mod: userinput.ScancodeLShift, code: userinput.ScancodeA + userinput.Scancode(c-'A')}, true
	case c == '0':
		return press{code: userinput.ScancodeKey0}, true
	case c >= '1' && c <= '9':
		return press{code: userinput.ScancodeKey1 + userinput.Scancode(c-'1')}, true
	}

	if sc, ok := plain[c]; ok {
		return press{code: sc}, true
	}
	if sc, ok := shifted[c]; ok {
		return press{mod: userinput.ScancodeLShift, code: sc}, true
	}

	// control characters are Ctrl with a letter
	if c >= 1 && c <= 26 {
		return press{mod: userinput.ScancodeLCtrl, code: userinput.ScancodeA + userinput.Scancode(c-1)}, true
	}

	return press{}, false
}

// decode the bytes into key presses. An escape sequence that is cut short by
// the end of the input is treated as a press of the escape key followed by
// the remaining characters.
func decode(b []byte, dst []press) []press {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c != keyEsc {
			if p, ok := char(c); ok {
				dst = append(dst, p)
			}
			continue
		}

		// lone escape
		if i+1 >= len(b) {
			dst = append(dst, press{code: userinput.ScancodeEscape})
			continue
		}

		switch b[i+1] {
		case escCSI, escSS3:
			if p, n, ok := sequence(b[i+2:], b[i+1] == escSS3); ok {
				dst = append(dst, p)
				i += 1 + n
				continue
			}
			dst = append(dst, press{code: userinput.ScancodeEscape})

		case keyEsc:
			dst = append(dst, press{code: userinput.ScancodeEscape})

		default:
			// escape followed by a character is how terminals send Alt
			if p, ok := char(b[i+1]); ok && p.mod == 0 {
				p.mod = userinput.ScancodeLAlt
				dst = append(dst, p)
				i++
				continue
			}
			dst = append(dst, press{code: userinput.ScancodeEscape})
		}
	}

	return dst
}

// sequence decodes the body of a CSI or SS3 sequence. Returns the press and
// the number of bytes consumed.
func sequence(b []byte, ss3 bool) (press, int, bool) {
	if len(b) == 0 {
		return press{}, 0, false
	}

	if sc, ok := cursor[b[0]]; ok {
		return press{code: sc}, 1, true
	}
	if ss3 {
		return press{}, 0, false
	}

	// numeric parameter followed by a tilde
	n := 0
	for i, c := range b {
		switch {
		case c >= '0' && c <= '9':
			n = n*10 + int(c-'0')
			if n > 99 {
				return press{}, 0, false
			}
		case c == '~' && i > 0:
			if sc, ok := tilde[n]; ok {
				return press{code: sc}, i + 1, true
			}
			return press{}, 0, false
		default:
			return press{}, 0, false
		}
	}

	return press{}, 0, false
}
