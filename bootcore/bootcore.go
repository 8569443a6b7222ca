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

package bootcore

import (
	"bytes"
	"math"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/settings"
)

// CoreTypeLen is the size of the CoreType field, including the terminating
// NUL.
const CoreTypeLen = 64

// Config is the boot-core configuration. The layout is fixed.
type Config struct {
	// the boot-core mode as a NUL terminated string. empty if no core is to be
	// booted automatically
	CoreType [CoreTypeLen]byte

	// the timeout in tenths of a second
	Timeout uint16
}

// New creates the Config from the settings. The timeout setting is in
// seconds and is multiplied by ten. Timeouts too large for the Timeout field
// are clamped.
func New(s *settings.Settings) (*Config, error) {
	cfg := &Config{}

	timeout := s.BootCoreTimeout.Get().(int)
	if timeout < 0 {
		return nil, curated.Errorf("bootcore: negative timeout (%d)", timeout)
	}
	timeout *= 10
	if timeout > math.MaxUint16 {
		timeout = math.MaxUint16
	}
	cfg.Timeout = uint16(timeout)

	mode := s.BootCoreMode.Get().(string)
	switch mode {
	case settings.BootCoreNone:
	case settings.BootCoreLast, settings.BootCoreLastExact:
		n := copy(cfg.CoreType[:CoreTypeLen-1], mode)
		cfg.CoreType[n] = 0x00
	default:
		return nil, curated.Errorf("bootcore: unknown mode %q", mode)
	}

	logger.Logf(logger.Allow, "bootcore", "mode = %q, timeout = %d", mode, cfg.Timeout)

	return cfg, nil
}

// Mode returns the CoreType field as a string. The string ends at the first
// NUL.
func (cfg *Config) Mode() string {
	n := bytes.IndexByte(cfg.CoreType[:], 0x00)
	if n < 0 {
		n = len(cfg.CoreType)
	}
	return string(cfg.CoreType[:n])
}

// Enabled returns true if a core should be booted automatically.
func (cfg *Config) Enabled() bool {
	return cfg.Mode() != settings.BootCoreNone
}

// Target returns the name or path of the core to boot. For the
// BootCoreLastExact mode the value is the path of the last core. For the
// BootCoreLast mode it is the name. The boolean return value is false if
// there is no core to boot.
func (cfg *Config) Target(s *settings.Settings) (string, bool) {
	var t string
	switch cfg.Mode() {
	case settings.BootCoreLast:
		t = s.LastCoreName.Get().(string)
	case settings.BootCoreLastExact:
		t = s.LastCorePath.Get().(string)
	}
	return t, t != ""
}
