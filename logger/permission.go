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

package logger

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Permission implementatins indicate whether the environment making a log
// request is allowed to create new log entries
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed
var Allow Permission = allow{}

// Level is the verbosity of the central log.
type Level int32

// List of valid Level values.
const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	}
	return fmt.Sprintf("level(%d)", int32(l))
}

// ParseLevel converts a string to a Level. An empty string is LevelInfo.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
}

var level atomic.Int32

// SetLevel sets the verbosity of the central log.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// GetLevel returns the verbosity of the central log.
func GetLevel() Level {
	return Level(level.Load())
}

type leveled Level

func (l leveled) AllowLogging() bool {
	return Level(level.Load()) >= Level(l)
}

// Debug permits logging when the level is LevelDebug or higher.
var Debug Permission = leveled(LevelDebug)

// Trace permits logging only when the level is LevelTrace.
var Trace Permission = leveled(LevelTrace)
