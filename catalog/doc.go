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

// Package catalog records the cores installed on the system. The catalog is
// an SQLite database with a single table of cores.
//
// Use of the catalog requires starting a session:
//
//	cat, _ := catalog.StartSession(path)
//	defer cat.EndSession()
//
// An empty path means the default location in the resources directory.
//
// Entries are added with Add() and selected with SelectAll() or Get(). The
// order of selection is specified by a SortOrder. The sort orders cycle with
// Next(), which is how the menu steps through them.
//
// The time a core was last played is recorded with RecordPlayed(). Cores that
// have never been played have a zero LastPlayed time and are sorted after
// played cores in the LastPlayed order.
package catalog
