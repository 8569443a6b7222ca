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

import "fmt"

// Kind is the type of a menu Item.
type Kind int

// List of valid Kind values.
const (
	KindInfo Kind = iota
	KindSeparator
	KindFile
	KindSav
	KindOption
	KindTrigger
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindSeparator:
		return "separator"
	case KindFile:
		return "file"
	case KindSav:
		return "sav"
	case KindOption:
		return "option"
	case KindTrigger:
		return "trigger"
	case KindPage:
		return "page"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BitRange is an inclusive range of status bits.
type BitRange struct {
	Lo int
	Hi int
}

// Width returns the number of bits in the range.
func (r BitRange) Width() int {
	return r.Hi - r.Lo + 1
}

func (r BitRange) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("[%d]", r.Lo)
	}
	return fmt.Sprintf("[%d:%d]", r.Hi, r.Lo)
}

// Condition hides or disables an Item depending on the value of a status
// bit.
type Condition struct {
	Bit int

	// if Set is true the condition is met when the bit is one, otherwise it
	// is met when the bit is zero
	Set bool
}

// Item is one entry of the menu.
type Item struct {
	Kind  Kind
	Label string

	// the page the item belongs to. zero is the main page. for a KindPage
	// item this is the page being introduced
	Page int

	// file slot for KindFile and KindSav items
	Index int

	// file extensions for KindFile and KindSav items, upper case and without
	// the leading period
	Extensions []string

	// remember the selected file (FS) or load it when the core starts (FC)
	Remember  bool
	LoadOnRun bool

	// status bits for KindOption and KindTrigger items
	Bits BitRange

	// choices for KindOption items
	Choices []string

	// for KindTrigger items. true if the menu should close after the trigger
	CloseMenu bool

	HideIf    []Condition
	DisableIf []Condition

	// the entry as it appears in the config string
	Raw string
}

// LoadFileInfo describes the slot a file is loaded into. It is derived from a
// KindFile Item.
type LoadFileInfo struct {
	Index      int
	Extensions []string
	Label      string
	Remember   bool
}

// FileInfo returns the LoadFileInfo for a KindFile item. The second return
// value is false for other kinds.
func (it Item) FileInfo() (LoadFileInfo, bool) {
	if it.Kind != KindFile {
		return LoadFileInfo{}, false
	}
	return LoadFileInfo{
		Index:      it.Index,
		Extensions: it.Extensions,
		Label:      it.Label,
		Remember:   it.Remember,
	}, true
}

// SaveStateSlots is the number of consecutive slots in a SaveStateRegion.
const SaveStateSlots = 4

// SaveStateRegion is the memory region declared by an SS entry. Slots are
// laid out consecutively from Base, each of Size bytes.
type SaveStateRegion struct {
	Base uint32
	Size uint32
}

// Config is the parsed config string.
type Config struct {
	Name    string
	Version string
	Items   []Item

	// names of the joystick buttons, in bit order from bit 4 of the
	// joystick word
	Buttons []string

	// nil if the core doesn't support save states
	SaveStates *SaveStateRegion
}

// FileSlots returns the items of KindFile.
func (c *Config) FileSlots() []Item {
	var s []Item
	for _, it := range c.Items {
		if it.Kind == KindFile {
			s = append(s, it)
		}
	}
	return s
}

// FileSlot returns the KindFile item with the given index.
func (c *Config) FileSlot(index int) (Item, bool) {
	for _, it := range c.Items {
		if it.Kind == KindFile && it.Index == index {
			return it, true
		}
	}
	return Item{}, false
}

// Page returns the items on the page, in order. Page zero is the main page.
func (c *Config) Page(page int) []Item {
	var s []Item
	for _, it := range c.Items {
		if it.Kind == KindPage {
			if page == 0 {
				s = append(s, it)
			}
			continue
		}
		if it.Page == page {
			s = append(s, it)
		}
	}
	return s
}

// StatusRanges returns the status bits used by options and triggers.
func (c *Config) StatusRanges() []BitRange {
	var s []BitRange
	for _, it := range c.Items {
		if it.Kind == KindOption || it.Kind == KindTrigger {
			s = append(s, it.Bits)
		}
	}
	return s
}
