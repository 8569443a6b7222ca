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

package bootcore_test

import (
	"path/filepath"
	"testing"

	"github.com/golem-fpga/golem/bootcore"
	"github.com/golem-fpga/golem/settings"
	"github.com/golem-fpga/golem/test"
)

func newSettings(t *testing.T) *settings.Settings {
	t.Helper()
	s, err := settings.NewSettings(filepath.Join(t.TempDir(), "golem.prefs"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDisabled(t *testing.T) {
	s := newSettings(t)

	cfg, err := bootcore.New(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Enabled(), false)
	test.ExpectEquality(t, cfg.Mode(), "")
	test.ExpectEquality(t, cfg.Timeout, uint16(0))
	test.ExpectEquality(t, cfg.CoreType, [bootcore.CoreTypeLen]byte{})

	_, ok := cfg.Target(s)
	test.ExpectEquality(t, ok, false)
}

func TestLastCore(t *testing.T) {
	s := newSettings(t)
	test.DemandSuccess(t, s.BootCoreMode.Set(settings.BootCoreLast))
	test.DemandSuccess(t, s.BootCoreTimeout.Set(5))

	cfg, err := bootcore.New(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Enabled(), true)
	test.ExpectEquality(t, cfg.Mode(), "lastcore")
	test.ExpectEquality(t, cfg.Timeout, uint16(50))

	// NUL terminated
	test.ExpectEquality(t, cfg.CoreType[len("lastcore")], byte(0))

	// nothing has been launched yet
	_, ok := cfg.Target(s)
	test.ExpectEquality(t, ok, false)

	test.DemandSuccess(t, s.LastCoreName.Set("NES"))
	test.DemandSuccess(t, s.LastCorePath.Set("/media/fat/_Console/NES_20231012.rbf"))
	target, ok := cfg.Target(s)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, target, "NES")
}

func TestLastExactCore(t *testing.T) {
	s := newSettings(t)
	test.DemandSuccess(t, s.BootCoreMode.Set(settings.BootCoreLastExact))
	test.DemandSuccess(t, s.LastCoreName.Set("NES"))
	test.DemandSuccess(t, s.LastCorePath.Set("/media/fat/_Console/NES_20231012.rbf"))

	cfg, err := bootcore.New(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Mode(), "lastexactcore")

	target, ok := cfg.Target(s)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, target, "/media/fat/_Console/NES_20231012.rbf")
}

func TestTimeout(t *testing.T) {
	s := newSettings(t)

	test.DemandSuccess(t, s.BootCoreTimeout.Set(100000))
	cfg, err := bootcore.New(s)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Timeout, uint16(65535))

	test.DemandSuccess(t, s.BootCoreTimeout.Set(-1))
	_, err = bootcore.New(s)
	test.ExpectFailure(t, err)
}
