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

// Package logger is the central log for the application. Entries are kept in
// memory, up to a fixed maximum, and can be written to any io.Writer or echoed
// as they arrive.
//
// Every log request carries a Permission. The Allow permission always
// succeeds. The Debug and Trace permissions succeed only when the verbosity
// set by SetLevel() is high enough, which means a call like:
//
//	logger.Logf(logger.Trace, "coreloop", "fps: %.2f", fps)
//
// costs very little when tracing is disabled, apart from the evaluation of the
// arguments.
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
package logger
