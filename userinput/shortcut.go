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

// keyGroup is satisfied when any of the keys in the group is held. modifier
// names like "Ctrl" resolve to a group of the left and right keys.
type keyGroup struct {
	name  string
	codes []Scancode
}

type axisCondition struct {
	axis     GamepadAxis
	negative bool
}

// Shortcut is a combination of keys, gamepad buttons and gamepad axes that
// must all be held at the same time.
//
// The string form of a shortcut is a list of inputs separated by a plus sign.
// Gamepad buttons are prefixed with "Pad:" and axes with "Axis:". An axis is
// held when it is pushed past AxisThreshold in the positive direction, or in
// the negative direction if the axis name is preceded by a minus sign:
//
//	Ctrl+F12
//	Pad:Back+Pad:Start
//	LAlt+Axis:-LeftX
type Shortcut struct {
	keys    []keyGroup
	buttons []GamepadButton
	axes    []axisCondition
}

var modifiers = map[string][]Scancode{
	"ctrl":  {ScancodeLCtrl, ScancodeRCtrl},
	"shift": {ScancodeLShift, ScancodeRShift},
	"alt":   {ScancodeLAlt, ScancodeRAlt},
	"gui":   {ScancodeLGui, ScancodeRGui},
}

// ParseShortcut parses the string form of a shortcut.
func ParseShortcut(s string) (Shortcut, error) {
	var sc Shortcut

	for _, tok := range strings.Split(s, "+") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Shortcut{}, fmt.Errorf("userinput: empty input in shortcut %q", s)
		}

		lower := strings.ToLower(tok)
		switch {
		case strings.HasPrefix(lower, "pad:"):
			b, err := ParseGamepadButton(tok[4:])
			if err != nil {
				return Shortcut{}, err
			}
			sc.buttons = append(sc.buttons, b)

		case strings.HasPrefix(lower, "axis:"):
			name := tok[5:]
			cond := axisCondition{}
			if strings.HasPrefix(name, "-") {
				cond.negative = true
				name = name[1:]
			}
			a, err := ParseGamepadAxis(name)
			if err != nil {
				return Shortcut{}, err
			}
			cond.axis = a
			sc.axes = append(sc.axes, cond)

		default:
			if codes, ok := modifiers[lower]; ok {
				sc.keys = append(sc.keys, keyGroup{name: tok, codes: codes})
				continue
			}
			code, err := ParseScancode(tok)
			if err != nil {
				return Shortcut{}, err
			}
			sc.keys = append(sc.keys, keyGroup{name: code.String(), codes: []Scancode{code}})
		}
	}

	return sc, nil
}

// MustParseShortcut is like ParseShortcut but panics if the string cannot be
// parsed. Intended for default values.
func MustParseShortcut(s string) Shortcut {
	sc, err := ParseShortcut(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// IsEmpty returns true if the shortcut has no inputs. An empty shortcut never
// matches.
func (sc Shortcut) IsEmpty() bool {
	return len(sc.keys) == 0 && len(sc.buttons) == 0 && len(sc.axes) == 0
}

// Matches returns true if every input of the shortcut is held in the State.
func (sc Shortcut) Matches(s *State) bool {
	if sc.IsEmpty() {
		return false
	}

	for _, g := range sc.keys {
		held := false
		for _, c := range g.codes {
			if s.KeyHeld(c) {
				held = true
				break
			}
		}
		if !held {
			return false
		}
	}

	for _, b := range sc.buttons {
		if !s.ButtonHeld(b) {
			return false
		}
	}

	for _, a := range sc.axes {
		v := int32(s.Axis(a.axis))
		if a.negative {
			v = -v
		}
		if v <= AxisThreshold {
			return false
		}
	}

	return true
}

func (sc Shortcut) String() string {
	var p []string
	for _, g := range sc.keys {
		p = append(p, g.name)
	}
	for _, b := range sc.buttons {
		p = append(p, "Pad:"+b.String())
	}
	for _, a := range sc.axes {
		if a.negative {
			p = append(p, "Axis:-"+a.axis.String())
		} else {
			p = append(p, "Axis:"+a.axis.String())
		}
	}
	return strings.Join(p, "+")
}
