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
	"strings"

	"github.com/golem-fpga/golem/configstring"
	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/fpga"
	"github.com/golem-fpga/golem/logger"
)

// the maximum length of the config string. the string ends at the first zero
// word.
const maxConfigString = 4096

// number of joysticks a core can receive input for.
const maxJoysticks = 6

// FpgaCore is a core running on the FPGA.
type FpgaCore struct {
	dev *fpga.Device
	gen uint64

	cfg  *configstring.Config
	mask StatusBits

	// last value written to the status register file
	status StatusBits

	// button mask and left stick position of each joystick
	joysticks [maxJoysticks]uint32
	sticks    [maxJoysticks][2]int8

	// the most recently mounted sav file
	sav *savFile

	saveStates []SaveState
}

// New creates a core for whatever is running on the device. The config string
// is read from the core and parsed. The device must be Running.
func New(dev *fpga.Device) (*FpgaCore, error) {
	if dev.State() != fpga.Running {
		return nil, curated.Errorf("core: %v", fpga.ErrNotRunning)
	}

	in := make([]uint16, maxConfigString)
	if err := dev.Transfer(fpga.BusIO, fpga.UIOGetString, nil, in); err != nil {
		return nil, curated.Errorf("core: config string: %v", err)
	}

	var s strings.Builder
	for _, w := range in {
		if w&0xff == 0 {
			break
		}
		s.WriteByte(byte(w))
	}

	cfg, err := configstring.Parse(s.String())
	if err != nil {
		return nil, curated.Errorf("core: %v", err)
	}

	c := &FpgaCore{
		dev:  dev,
		gen:  dev.Generation(),
		cfg:  cfg,
		mask: maskFromConfig(cfg),
	}

	if cfg.SaveStates != nil {
		for i := range NumSaveStateSlots {
			c.saveStates = append(c.saveStates, newRegionSaveState(c, i, *cfg.SaveStates))
		}
	}

	// the status register file starts at zero
	if err := c.writeStatus(); err != nil {
		return nil, curated.Errorf("core: %v", err)
	}

	logger.Logf(logger.Allow, "core", "%s (version %s) with %d menu items", c.Name(), c.Version(), len(cfg.Items))

	return c, nil
}

func (c *FpgaCore) String() string {
	return c.Name()
}

// Kind implements the Core interface.
func (c *FpgaCore) Kind() Kind {
	return KindFpga
}

// Name implements the Core interface.
func (c *FpgaCore) Name() string {
	return c.cfg.Name
}

// Version implements the Core interface.
func (c *FpgaCore) Version() string {
	if c.cfg.Version == "" {
		return UnknownVersion
	}
	return c.cfg.Version
}

// Config returns the parsed config string.
func (c *FpgaCore) Config() *configstring.Config {
	return c.cfg
}

// IsStale returns true if the device has been reprogrammed since the core was
// created.
func (c *FpgaCore) IsStale() bool {
	return !c.dev.IsCurrent(c.gen)
}

// check returns an IoError wrapping ErrStale if the core is stale.
func (c *FpgaCore) check(op string) error {
	if c.IsStale() {
		return opError(IoError, op, ErrStale)
	}
	return nil
}

// mustBeCurrent panics if the core is stale. used by the input path where
// there is no way of reporting an error.
func (c *FpgaCore) mustBeCurrent(op string) {
	if c.IsStale() {
		panic("core: " + op + ": " + ErrStale.Error())
	}
}

// MenuOptions implements the Core interface.
func (c *FpgaCore) MenuOptions() []configstring.Item {
	return c.cfg.Items
}

// StatusMask implements the Core interface.
func (c *FpgaCore) StatusMask() StatusBits {
	return c.mask
}

// StatusBits implements the Core interface.
func (c *FpgaCore) StatusBits() StatusBits {
	return c.status
}

// SetStatusBits implements the Core interface.
func (c *FpgaCore) SetStatusBits(bits StatusBits) error {
	if err := c.check("status"); err != nil {
		return err
	}
	prev := c.status
	c.status = bits
	if err := c.writeStatus(); err != nil {
		c.status = prev
		return opError(IoError, "status", err)
	}
	return nil
}

func (c *FpgaCore) writeStatus() error {
	return c.dev.Transfer(fpga.BusIO, fpga.UIOSetStatus2, c.status.Words16(), nil)
}

// pulse sets the bit and then clears it.
func (c *FpgaCore) pulse(bit int) error {
	s := c.status
	s.Set(bit, true)
	if err := c.SetStatusBits(s); err != nil {
		return err
	}
	s.Set(bit, false)
	return c.SetStatusBits(s)
}

// TriggerMenu implements the Core interface.
func (c *FpgaCore) TriggerMenu(item configstring.Item) (bool, error) {
	if err := c.check("menu"); err != nil {
		return false, err
	}

	for _, cond := range item.DisableIf {
		if c.status.Get(cond.Bit) == cond.Set {
			return false, opError(ActionFailed, "menu", curated.Errorf("%s is disabled", item.Label))
		}
	}

	switch item.Kind {
	case configstring.KindOption:
		n := uint32(len(item.Choices))
		if n == 0 {
			n = 1 << min(item.Bits.Width(), 31)
		}
		s := c.status
		s.SetRange(item.Bits, (s.Range(item.Bits)+1)%n)
		if err := c.SetStatusBits(s); err != nil {
			return false, opError(ActionFailed, "menu", err)
		}
		return false, nil

	case configstring.KindTrigger:
		if err := c.pulse(item.Bits.Lo); err != nil {
			return false, opError(ActionFailed, "menu", err)
		}
		return item.CloseMenu, nil
	}

	return false, opError(ActionFailed, "menu", curated.Errorf("%s items have no action", item.Kind))
}

// SaveStates implements the Core interface.
func (c *FpgaCore) SaveStates() []SaveState {
	return c.saveStates
}

func (c *FpgaCore) variant() {}
