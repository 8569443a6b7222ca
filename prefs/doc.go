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

// Package prefs holds typed preference values and the Disk type that saves
// and loads them.
//
// The Bool, String, Int and Float types can be read and written from any
// goroutine. Hooks can be attached to a value to validate a new value
// (SetHookPre) or to react to it (SetHookPost).
//
// A Disk associates preference values with keys and a file. More than one Disk
// can share a file. Saving a Disk preserves entries written by any other Disk
// that uses the same file.
//
// The file format is line based, with a single header line:
//
//	*** do not edit this file by hand ***
//	coreloop.fps :: 60
//	logger.level :: info
//
// Values can be overridden for the duration of a load with the command line
// stack. See PushCommandLineStack().
//
// The Notifier type is a single-slot signal used to tell a consumer, without
// blocking the sender, that preferences have changed.
package prefs
