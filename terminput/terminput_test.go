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

import (
	"slices"
	"testing"

	"github.com/golem-fpga/golem/test"
	"github.com/golem-fpga/golem/userinput"
)

func expectPresses(t *testing.T, input string, expected ...press) {
	t.Helper()
	got := decode([]byte(input), nil)
	if !slices.Equal(got, expected) {
		t.Errorf("decoding %q: got %v, expected %v", input, got, expected)
	}
}

func TestDecode(t *testing.T) {
	expectPresses(t, "a", press{code: userinput.ScancodeA})
	expectPresses(t, "Q", press{mod: userinput.ScancodeLShift, code: userinput.ScancodeQ})
	expectPresses(t, "10", press{code: userinput.ScancodeKey1}, press{code: userinput.ScancodeKey0})
	expectPresses(t, "\r", press{code: userinput.ScancodeReturn})
	expectPresses(t, "?", press{mod: userinput.ScancodeLShift, code: userinput.ScancodeSlash})

	// Ctrl+Q
	expectPresses(t, "\x11", press{mod: userinput.ScancodeLCtrl, code: userinput.ScancodeQ})

	// tab is not Ctrl+I
	expectPresses(t, "\t", press{code: userinput.ScancodeTab})
}

func TestDecodeEscape(t *testing.T) {
	expectPresses(t, "\x1b", press{code: userinput.ScancodeEscape})
	expectPresses(t, "\x1b[A", press{code: userinput.ScancodeUp})
	expectPresses(t, "\x1bOP", press{code: userinput.ScancodeF1})
	expectPresses(t, "\x1b[24~", press{code: userinput.ScancodeF12})
	expectPresses(t, "\x1b[3~x", press{code: userinput.ScancodeDelete}, press{code: userinput.ScancodeX})

	// alt
	expectPresses(t, "\x1bx", press{mod: userinput.ScancodeLAlt, code: userinput.ScancodeX})

	// unknown sequence
	expectPresses(t, "\x1b[99~",
		press{code: userinput.ScancodeEscape},
		press{code: userinput.ScancodeLeftBracket},
		press{code: userinput.ScancodeKey9},
		press{code: userinput.ScancodeKey9},
		press{mod: userinput.ScancodeLShift, code: userinput.ScancodeGrave},
	)
}

func TestPoll(t *testing.T) {
	src := newSource(nil)
	src.bytes <- []byte("\x11")

	// key down events in the first frame
	ev := src.Poll(nil)
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0].(userinput.EventKeyboard), userinput.EventKeyboard{Scancode: userinput.ScancodeLCtrl, Down: true})
	test.ExpectEquality(t, ev[1].(userinput.EventKeyboard), userinput.EventKeyboard{Scancode: userinput.ScancodeQ, Down: true})

	// the shortcut is held for the frame
	var s userinput.State
	for _, e := range ev {
		s.Update(e)
	}
	test.ExpectEquality(t, userinput.MustParseShortcut("Ctrl+Q").Matches(&s), true)

	// key up events in the next frame
	ev = src.Poll(ev[:0])
	test.DemandEquality(t, len(ev), 2)
	test.ExpectEquality(t, ev[0].(userinput.EventKeyboard), userinput.EventKeyboard{Scancode: userinput.ScancodeQ})
	test.ExpectEquality(t, ev[1].(userinput.EventKeyboard), userinput.EventKeyboard{Scancode: userinput.ScancodeLCtrl})

	// nothing more
	ev = src.Poll(ev[:0])
	test.ExpectEquality(t, len(ev), 0)
}
