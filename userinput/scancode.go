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

package userinput

import (
	"fmt"
	"strings"
)

// Scancode identifies a physical key by its USB HID usage ID. The values are
// the same as those used by SDL.
type Scancode uint16

// MaxScancode is one more than the largest valid Scancode value.
const MaxScancode = 512

// List of named Scancode values.
const (
	ScancodeUnknown        Scancode = 0
	ScancodeA              Scancode = 4
	ScancodeB              Scancode = 5
	ScancodeC              Scancode = 6
	ScancodeD              Scancode = 7
	ScancodeE              Scancode = 8
	ScancodeF              Scancode = 9
	ScancodeG              Scancode = 10
	ScancodeH              Scancode = 11
	ScancodeI              Scancode = 12
	ScancodeJ              Scancode = 13
	ScancodeK              Scancode = 14
	ScancodeL              Scancode = 15
	ScancodeM              Scancode = 16
	ScancodeN              Scancode = 17
	ScancodeO              Scancode = 18
	ScancodeP              Scancode = 19
	ScancodeQ              Scancode = 20
	ScancodeR              Scancode = 21
	ScancodeS              Scancode = 22
	ScancodeT              Scancode = 23
	ScancodeU              Scancode = 24
	ScancodeV              Scancode = 25
	ScancodeW              Scancode = 26
	ScancodeX              Scancode = 27
	ScancodeY              Scancode = 28
	ScancodeZ              Scancode = 29
	ScancodeKey1           Scancode = 30
	ScancodeKey2           Scancode = 31
	ScancodeKey3           Scancode = 32
	ScancodeKey4           Scancode = 33
	ScancodeKey5           Scancode = 34
	ScancodeKey6           Scancode = 35
	ScancodeKey7           Scancode = 36
	ScancodeKey8           Scancode = 37
	ScancodeKey9           Scancode = 38
	ScancodeKey0           Scancode = 39
	ScancodeReturn         Scancode = 40
	ScancodeEscape         Scancode = 41
	ScancodeBackspace      Scancode = 42
	ScancodeTab            Scancode = 43
	ScancodeSpace          Scancode = 44
	ScancodeMinus          Scancode = 45
	ScancodeEquals         Scancode = 46
	ScancodeLeftBracket    Scancode = 47
	ScancodeRightBracket   Scancode = 48
	ScancodeBackslash      Scancode = 49
	ScancodeNonUSHash      Scancode = 50
	ScancodeSemicolon      Scancode = 51
	ScancodeApostrophe     Scancode = 52
	ScancodeGrave          Scancode = 53
	ScancodeComma          Scancode = 54
	ScancodePeriod         Scancode = 55
	ScancodeSlash          Scancode = 56
	ScancodeCapsLock       Scancode = 57
	ScancodeF1             Scancode = 58
	ScancodeF2             Scancode = 59
	ScancodeF3             Scancode = 60
	ScancodeF4             Scancode = 61
	ScancodeF5             Scancode = 62
	ScancodeF6             Scancode = 63
	ScancodeF7             Scancode = 64
	ScancodeF8             Scancode = 65
	ScancodeF9             Scancode = 66
	ScancodeF10            Scancode = 67
	ScancodeF11            Scancode = 68
	ScancodeF12            Scancode = 69
	ScancodePrintScreen    Scancode = 70
	ScancodeScrollLock     Scancode = 71
	ScancodePause          Scancode = 72
	ScancodeInsert         Scancode = 73
	ScancodeHome           Scancode = 74
	ScancodePageUp         Scancode = 75
	ScancodeDelete         Scancode = 76
	ScancodeEnd            Scancode = 77
	ScancodePageDown       Scancode = 78
	ScancodeRight          Scancode = 79
	ScancodeLeft           Scancode = 80
	ScancodeDown           Scancode = 81
	ScancodeUp             Scancode = 82
	ScancodeNumLock        Scancode = 83
	ScancodeKPDivide       Scancode = 84
	ScancodeKPMultiply     Scancode = 85
	ScancodeKPMinus        Scancode = 86
	ScancodeKPPlus         Scancode = 87
	ScancodeKPEnter        Scancode = 88
	ScancodeKP1            Scancode = 89
	ScancodeKP2            Scancode = 90
	ScancodeKP3            Scancode = 91
	ScancodeKP4            Scancode = 92
	ScancodeKP5            Scancode = 93
	ScancodeKP6            Scancode = 94
	ScancodeKP7            Scancode = 95
	ScancodeKP8            Scancode = 96
	ScancodeKP9            Scancode = 97
	ScancodeKP0            Scancode = 98
	ScancodeKPPeriod       Scancode = 99
	ScancodeNonUSBackslash Scancode = 100
	ScancodeApplication    Scancode = 101
	ScancodeLCtrl          Scancode = 224
	ScancodeLShift         Scancode = 225
	ScancodeLAlt           Scancode = 226
	ScancodeLGui           Scancode = 227
	ScancodeRCtrl          Scancode = 228
	ScancodeRShift         Scancode = 229
	ScancodeRAlt           Scancode = 230
	ScancodeRGui           Scancode = 231
)

var scancodeNames = map[Scancode]string{
	ScancodeA:              "A",
	ScancodeB:              "B",
	ScancodeC:              "C",
	ScancodeD:              "D",
	ScancodeE:              "E",
	ScancodeF:              "F",
	ScancodeG:              "G",
	ScancodeH:              "H",
	ScancodeI:              "I",
	ScancodeJ:              "J",
	ScancodeK:              "K",
	ScancodeL:              "L",
	ScancodeM:              "M",
	ScancodeN:              "N",
	ScancodeO:              "O",
	ScancodeP:              "P",
	ScancodeQ:              "Q",
	ScancodeR:              "R",
	ScancodeS:              "S",
	ScancodeT:              "T",
	ScancodeU:              "U",
	ScancodeV:              "V",
	ScancodeW:              "W",
	ScancodeX:              "X",
	ScancodeY:              "Y",
	ScancodeZ:              "Z",
	ScancodeKey1:           "1",
	ScancodeKey2:           "2",
	ScancodeKey3:           "3",
	ScancodeKey4:           "4",
	ScancodeKey5:           "5",
	ScancodeKey6:           "6",
	ScancodeKey7:           "7",
	ScancodeKey8:           "8",
	ScancodeKey9:           "9",
	ScancodeKey0:           "0",
	ScancodeReturn:         "Return",
	ScancodeEscape:         "Escape",
	ScancodeBackspace:      "Backspace",
	ScancodeTab:            "Tab",
	ScancodeSpace:          "Space",
	ScancodeMinus:          "Minus",
	ScancodeEquals:         "Equals",
	ScancodeLeftBracket:    "LeftBracket",
	ScancodeRightBracket:   "RightBracket",
	ScancodeBackslash:      "Backslash",
	ScancodeNonUSHash:      "NonUSHash",
	ScancodeSemicolon:      "Semicolon",
	ScancodeApostrophe:     "Apostrophe",
	ScancodeGrave:          "Grave",
	ScancodeComma:          "Comma",
	ScancodePeriod:         "Period",
	ScancodeSlash:          "Slash",
	ScancodeCapsLock:       "CapsLock",
	ScancodeF1:             "F1",
	ScancodeF2:             "F2",
	ScancodeF3:             "F3",
	ScancodeF4:             "F4",
	ScancodeF5:             "F5",
	ScancodeF6:             "F6",
	ScancodeF7:             "F7",
	ScancodeF8:             "F8",
	ScancodeF9:             "F9",
	ScancodeF10:            "F10",
	ScancodeF11:            "F11",
	ScancodeF12:            "F12",
	ScancodePrintScreen:    "PrintScreen",
	ScancodeScrollLock:     "ScrollLock",
	ScancodePause:          "Pause",
	ScancodeInsert:         "Insert",
	ScancodeHome:           "Home",
	ScancodePageUp:         "PageUp",
	ScancodeDelete:         "Delete",
	ScancodeEnd:            "End",
	ScancodePageDown:       "PageDown",
	ScancodeRight:          "Right",
	ScancodeLeft:           "Left",
	ScancodeDown:           "Down",
	ScancodeUp:             "Up",
	ScancodeNumLock:        "NumLock",
	ScancodeKPDivide:       "KPDivide",
	ScancodeKPMultiply:     "KPMultiply",
	ScancodeKPMinus:        "KPMinus",
	ScancodeKPPlus:         "KPPlus",
	ScancodeKPEnter:        "KPEnter",
	ScancodeKP1:            "KP1",
	ScancodeKP2:            "KP2",
	ScancodeKP3:            "KP3",
	ScancodeKP4:            "KP4",
	ScancodeKP5:            "KP5",
	ScancodeKP6:            "KP6",
	ScancodeKP7:            "KP7",
	ScancodeKP8:            "KP8",
	ScancodeKP9:            "KP9",
	ScancodeKP0:            "KP0",
	ScancodeKPPeriod:       "KPPeriod",
	ScancodeNonUSBackslash: "NonUSBackslash",
	ScancodeApplication:    "Application",
	ScancodeLCtrl:          "LCtrl",
	ScancodeLShift:         "LShift",
	ScancodeLAlt:           "LAlt",
	ScancodeLGui:           "LGui",
	ScancodeRCtrl:          "RCtrl",
	ScancodeRShift:         "RShift",
	ScancodeRAlt:           "RAlt",
	ScancodeRGui:           "RGui",
}

var scancodeLookup map[string]Scancode

func init() {
	scancodeLookup = make(map[string]Scancode, len(scancodeNames))
	for k, v := range scancodeNames {
		scancodeLookup[strings.ToLower(v)] = k
	}

	// alternative names
	scancodeLookup["enter"] = ScancodeReturn
	scancodeLookup["esc"] = ScancodeEscape
	scancodeLookup["del"] = ScancodeDelete
	scancodeLookup["pgup"] = ScancodePageUp
	scancodeLookup["pgdn"] = ScancodePageDown
}

func (sc Scancode) String() string {
	if n, ok := scancodeNames[sc]; ok {
		return n
	}
	return fmt.Sprintf("Scancode(%d)", uint16(sc))
}

// ParseScancode returns the Scancode for the name. Names are case
// insensitive.
func ParseScancode(name string) (Scancode, error) {
	if sc, ok := scancodeLookup[strings.ToLower(strings.TrimSpace(name))]; ok {
		return sc, nil
	}
	return ScancodeUnknown, fmt.Errorf("userinput: unknown key %q", name)
}
