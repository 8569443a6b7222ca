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

package configstring

import (
	"strconv"
	"strings"

	"github.com/golem-fpga/golem/curated"
)

// the bit characters of single character bit specifications.
const bitChars = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// Parse the config string.
func Parse(s string) (*Config, error) {
	entries := strings.Split(strings.TrimRight(s, "\x00"), ";")

	cfg := &Config{
		Name: strings.TrimSpace(entries[0]),
	}
	if cfg.Name == "" {
		return nil, curated.Errorf("configstring: no core name")
	}

	for _, e := range entries[1:] {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if err := parseEntry(cfg, e); err != nil {
			return nil, curated.Errorf("configstring: %v", err)
		}
	}

	return cfg, nil
}

func parseEntry(cfg *Config, raw string) error {
	it := Item{Raw: raw}
	e := raw

	// some entries start with letters that are otherwise used as prefixes
	for _, word := range []string{"DIP", "DEFMRA", "CHEAT"} {
		if strings.HasPrefix(e, word) {
			it.Kind = KindInfo
			it.Label = e
			cfg.Items = append(cfg.Items, it)
			return nil
		}
	}

	// prefixes
	for len(e) >= 2 {
		switch e[0] {
		case 'H', 'h', 'D', 'd':
			bit := strings.IndexByte(bitChars, e[1])
			if bit < 0 {
				return curated.Errorf("bad condition in %q", raw)
			}
			c := Condition{Bit: bit, Set: e[0] == 'H' || e[0] == 'D'}
			if e[0] == 'H' || e[0] == 'h' {
				it.HideIf = append(it.HideIf, c)
			} else {
				it.DisableIf = append(it.DisableIf, c)
			}
			e = e[2:]
			continue

		case 'P':
			n, rest := leadingNumber(e[1:])
			if n < 0 {
				break
			}
			if strings.HasPrefix(rest, ",") {
				it.Kind = KindPage
				it.Page = n
				it.Label = rest[1:]
				cfg.Items = append(cfg.Items, it)
				return nil
			}
			it.Page = n
			e = rest
			continue
		}
		break
	}

	if e == "" {
		return curated.Errorf("empty entry %q", raw)
	}

	fields := strings.Split(e, ",")
	head := fields[0]
	if head == "" {
		return curated.Errorf("missing entry type in %q", raw)
	}

	switch {
	case head == "-" || strings.HasPrefix(head, "-"):
		it.Kind = KindSeparator
		if len(fields) > 1 {
			it.Label = strings.Join(fields[1:], ",")
		}

	case strings.HasPrefix(head, "SS"):
		base, size, ok := strings.Cut(head[2:], ":")
		if !ok {
			return curated.Errorf("bad save state region %q", raw)
		}
		b, err := strconv.ParseUint(base, 16, 32)
		if err != nil {
			return curated.Errorf("bad save state base %q", raw)
		}
		z, err := strconv.ParseUint(size, 16, 32)
		if err != nil || z == 0 {
			return curated.Errorf("bad save state size %q", raw)
		}
		if b+SaveStateSlots*z > 1<<32 {
			return curated.Errorf("save state region out of range %q", raw)
		}
		cfg.SaveStates = &SaveStateRegion{Base: uint32(b), Size: uint32(z)}
		return nil

	case head[0] == 'F':
		it.Kind = KindFile
		flags := head[1:]
		for len(flags) > 0 && (flags[0] == 'S' || flags[0] == 'C') {
			if flags[0] == 'S' {
				it.Remember = true
			} else {
				it.LoadOnRun = true
			}
			flags = flags[1:]
		}
		it.Index = 1
		if flags != "" {
			n, rest := leadingNumber(flags)
			if n < 0 || rest != "" {
				return curated.Errorf("bad file slot %q", raw)
			}
			it.Index = n
		}
		parseFileFields(&it, fields)

	case head[0] == 'S':
		it.Kind = KindSav
		it.Index = 0
		if len(head) > 1 {
			n, rest := leadingNumber(head[1:])
			if n < 0 || rest != "" {
				return curated.Errorf("bad sav slot %q", raw)
			}
			it.Index = n
		}
		parseFileFields(&it, fields)

	case head[0] == 'O' || head[0] == 'o':
		it.Kind = KindOption
		bits, err := parseBits(head[1:], head[0] == 'o')
		if err != nil {
			return curated.Errorf("%v in %q", err, raw)
		}
		it.Bits = bits
		if len(fields) > 1 {
			it.Label = fields[1]
		}
		if len(fields) > 2 {
			it.Choices = fields[2:]
		}
		if it.Bits.Width() < 31 && len(it.Choices) > 1<<it.Bits.Width() {
			return curated.Errorf("%d choices for %d bits in %q", len(it.Choices), it.Bits.Width(), raw)
		}

	case head[0] == 'T' || head[0] == 't' || head[0] == 'R' || head[0] == 'r':
		it.Kind = KindTrigger
		it.CloseMenu = head[0] == 'R' || head[0] == 'r'
		bits, err := parseBits(head[1:], head[0] == 't' || head[0] == 'r')
		if err != nil {
			return curated.Errorf("%v in %q", err, raw)
		}
		if bits.Width() != 1 {
			return curated.Errorf("trigger with more than one bit in %q", raw)
		}
		it.Bits = bits
		if len(fields) > 1 {
			it.Label = fields[1]
		}

	case head == "V":
		if len(fields) > 1 {
			cfg.Version = strings.TrimSpace(strings.Join(fields[1:], ","))
		}
		return nil

	case head[0] == 'J' || head[0] == 'j':
		if len(fields) > 1 {
			cfg.Buttons = fields[1:]
		}
		return nil

	default:
		it.Kind = KindInfo
		it.Label = e
	}

	cfg.Items = append(cfg.Items, it)
	return nil
}

// parseFileFields sets the extensions and label of a file or sav item.
func parseFileFields(it *Item, fields []string) {
	if len(fields) > 1 {
		ext := fields[1]
		for len(ext) > 0 {
			n := min(3, len(ext))
			if x := strings.ToUpper(strings.TrimSpace(ext[:n])); x != "" {
				it.Extensions = append(it.Extensions, x)
			}
			ext = ext[n:]
		}
	}
	if len(fields) > 2 {
		it.Label = fields[2]
	}
}

// leadingNumber returns the decimal number at the start of s and the
// remainder of the string. The number is -1 if s does not start with a digit.
func leadingNumber(s string) (int, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return -1, s
	}
	n, _ := strconv.Atoi(s[:i])
	return n, s[i:]
}

// parseBits parses a bit specification. the high flag adds 32 to single
// character specifications.
func parseBits(s string, high bool) (BitRange, error) {
	if strings.HasPrefix(s, "[") {
		end := strings.IndexByte(s, ']')
		if end < 0 || end != len(s)-1 {
			return BitRange{}, curated.Errorf("bad bit range %q", s)
		}
		a, b, isRange := strings.Cut(s[1:end], ":")
		hi, err := strconv.Atoi(a)
		if err != nil {
			return BitRange{}, curated.Errorf("bad bit range %q", s)
		}
		lo := hi
		if isRange {
			lo, err = strconv.Atoi(b)
			if err != nil {
				return BitRange{}, curated.Errorf("bad bit range %q", s)
			}
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < 0 || hi >= 128 {
			return BitRange{}, curated.Errorf("bit range out of bounds %q", s)
		}
		return BitRange{Lo: lo, Hi: hi}, nil
	}

	if len(s) < 1 || len(s) > 2 {
		return BitRange{}, curated.Errorf("bad bits %q", s)
	}

	offset := 0
	if high {
		offset = 32
	}

	lo := strings.IndexByte(bitChars, s[0])
	if lo < 0 {
		return BitRange{}, curated.Errorf("bad bits %q", s)
	}
	hi := lo
	if len(s) == 2 {
		hi = strings.IndexByte(bitChars, s[1])
		if hi < 0 {
			return BitRange{}, curated.Errorf("bad bits %q", s)
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return BitRange{Lo: lo + offset, Hi: hi + offset}, nil
}
