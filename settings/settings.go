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

package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/prefs"
	"github.com/golem-fpga/golem/resources"
)

// PrefsEnv is the environment variable holding preferences that override the
// values in the prefs file.
const PrefsEnv = "GOLEM_PREFS"

// the name of the environment file
const envFile = ".env"

// List of valid values for the BootCoreMode preference.
const (
	BootCoreNone      = ""
	BootCoreLast      = "lastcore"
	BootCoreLastExact = "lastexactcore"
)

// Settings is the collection of user preferences.
type Settings struct {
	dsk *prefs.Disk

	shortcuts     map[string]*prefs.String
	CoreShortcuts prefs.String

	// screenshots are scaled to this width. zero keeps the width of the
	// framebuffer
	ScreenshotWidth prefs.Int

	FrameRate prefs.Float
	LogLevel  prefs.String
	StatsView prefs.Bool

	BootCoreMode    prefs.String
	BootCoreTimeout prefs.Int
	LastCoreName    prefs.String
	LastCorePath    prefs.String

	crit      sync.Mutex
	notifiers []*prefs.Notifier
	closed    bool

	save chan bool
	done chan bool
}

// NewSettings is the preferred method of initialisation for the Settings
// type. An empty path uses the default prefs file in the resources directory.
func NewSettings(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("settings: %v", err)
		}
	}

	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	s := &Settings{
		dsk:       dsk,
		shortcuts: make(map[string]*prefs.String),
		save:      make(chan bool, 1),
		done:      make(chan bool),
	}

	s.LogLevel.SetHookPre(func(v prefs.Value) error {
		_, err := logger.ParseLevel(v.(string))
		return err
	})
	s.LogLevel.SetHookPost(func(v prefs.Value) error {
		l, _ := logger.ParseLevel(v.(string))
		logger.SetLevel(l)
		return nil
	})
	s.FrameRate.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return curated.Errorf("negative frame rate")
		}
		return nil
	})
	s.BootCoreMode.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BootCoreNone, BootCoreLast, BootCoreLastExact:
			return nil
		}
		return curated.Errorf("unknown bootcore mode %q", v)
	})

	for cmd, def := range DefaultShortcuts {
		p := &prefs.String{}
		if err := p.Set(def); err != nil {
			return nil, curated.Errorf("settings: %v", err)
		}
		if err := dsk.Add("settings.shortcut."+cmd, p); err != nil {
			return nil, curated.Errorf("settings: %v", err)
		}
		s.shortcuts[cmd] = p
	}

	add := []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			String() string
			Reset() error
		}
		def prefs.Value
	}{
		{key: "settings.shortcut.cores", p: &s.CoreShortcuts, def: ""},
		{key: "settings.screenshotwidth", p: &s.ScreenshotWidth, def: 0},
		{key: "settings.framerate", p: &s.FrameRate, def: 60.0},
		{key: "settings.loglevel", p: &s.LogLevel, def: "info"},
		{key: "settings.statsview", p: &s.StatsView, def: false},
		{key: "bootcore.mode", p: &s.BootCoreMode, def: BootCoreNone},
		{key: "bootcore.timeout", p: &s.BootCoreTimeout, def: 0},
		{key: "bootcore.lastcore.name", p: &s.LastCoreName, def: ""},
		{key: "bootcore.lastcore.path", p: &s.LastCorePath, def: ""},
	}
	for _, a := range add {
		if err := a.p.Set(a.def); err != nil {
			return nil, curated.Errorf("settings: %s: %v", a.key, err)
		}
		if err := dsk.Add(a.key, a.p); err != nil {
			return nil, curated.Errorf("settings: %v", err)
		}
	}

	if err := dsk.Load(); err != nil {
		return nil, curated.Errorf("settings: %v", err)
	}

	go s.saver()

	return s, nil
}

// LoadEnv reads the .env file in each directory and then pushes the value of
// GOLEM_PREFS onto the prefs command line stack. A missing .env file is not
// an error. Variables already present in the environment are not replaced.
//
// LoadEnv should be called before NewSettings(). The return value is true if
// a prefs string was pushed, in which case the caller should pop it when the
// settings have been loaded.
func LoadEnv(dirs ...string) (bool, error) {
	for _, d := range dirs {
		err := godotenv.Load(filepath.Join(d, envFile))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return false, curated.Errorf("settings: %v", err)
		}
	}

	if p := strings.TrimSpace(os.Getenv(PrefsEnv)); p != "" {
		prefs.PushCommandLineStack(p)
		return true, nil
	}

	return false, nil
}

// Path returns the location of the prefs file.
func (s *Settings) Path() string {
	return s.dsk.Path()
}

// Mappings returns the current shortcut mappings.
func (s *Settings) Mappings() Mappings {
	m := Mappings{
		Global: make(map[string][]string),
		Core:   parseCoreMappings(s.CoreShortcuts.String()),
	}
	for cmd, p := range s.shortcuts {
		m.Global[cmd] = splitShortcuts(p.String())
	}
	return m
}

// SetShortcuts changes the global mapping of a command.
func (s *Settings) SetShortcuts(command string, shortcuts ...string) error {
	p, ok := s.shortcuts[command]
	if !ok {
		return curated.Errorf("settings: unknown command %q", command)
	}
	return p.Set(strings.Join(shortcuts, ", "))
}

// SetCoreShortcuts changes the mapping of a command for the named core. No
// shortcuts removes the core specific mapping.
func (s *Settings) SetCoreShortcuts(coreName string, command string, shortcuts ...string) error {
	if _, ok := s.shortcuts[command]; !ok {
		return curated.Errorf("settings: unknown command %q", command)
	}
	if coreName == "" || strings.ContainsAny(coreName, "/|=") {
		return curated.Errorf("settings: illegal core name %q", coreName)
	}

	m := parseCoreMappings(s.CoreShortcuts.String())
	if len(shortcuts) == 0 {
		delete(m[coreName], command)
		if len(m[coreName]) == 0 {
			delete(m, coreName)
		}
	} else {
		if m[coreName] == nil {
			m[coreName] = make(map[string][]string)
		}
		m[coreName][command] = shortcuts
	}

	return s.CoreShortcuts.Set(formatCoreMappings(m))
}

// Update calls the function and then schedules a save of the settings. The
// save happens in the background. Subscribers are notified when it completes.
func (s *Settings) Update(f func(s *Settings) error) error {
	if err := f(s); err != nil {
		return err
	}

	s.crit.Lock()
	defer s.crit.Unlock()
	if s.closed {
		return curated.Errorf("settings: closed")
	}

	select {
	case s.save <- true:
	default:
		// a save is already pending
	}

	return nil
}

// Subscribe returns a Notifier that is signalled after every save.
func (s *Settings) Subscribe() *prefs.Notifier {
	s.crit.Lock()
	defer s.crit.Unlock()
	n := prefs.NewNotifier()
	s.notifiers = append(s.notifiers, n)
	return n
}

// Unsubscribe stops the Notifier from being signalled.
func (s *Settings) Unsubscribe(n *prefs.Notifier) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.notifiers = slices.DeleteFunc(s.notifiers, func(m *prefs.Notifier) bool { return m == n })
}

// Save writes the settings to disk immediately. Subscribers are not notified.
func (s *Settings) Save() error {
	return s.dsk.Save()
}

// Close stops the background saver after any pending save has completed.
func (s *Settings) Close() error {
	s.crit.Lock()
	if s.closed {
		s.crit.Unlock()
		return nil
	}
	s.closed = true
	close(s.save)
	s.crit.Unlock()

	<-s.done
	return nil
}

func (s *Settings) saver() {
	defer close(s.done)

	for range s.save {
		if err := s.dsk.Save(); err != nil {
			logger.Log(logger.Allow, "settings", err)
			continue
		}

		s.crit.Lock()
		for _, n := range s.notifiers {
			n.Send()
		}
		s.crit.Unlock()
	}
}
