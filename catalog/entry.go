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

package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/golem-fpga/golem/curated"
)

// Entry is a single core in the catalog.
type Entry struct {
	// Key is assigned by the catalog when the entry is added
	Key int

	Name        string
	Slug        string
	Version     string
	Path        string
	Author      string
	Description string

	ReleasedAt   time.Time
	DownloadedAt time.Time

	// zero if the core has never been played
	LastPlayed time.Time

	Favorite bool
}

// String returns information about the entry in a human readable format.
func (ent Entry) String() string {
	s := strings.Builder{}
	s.WriteString(ent.Name)
	if ent.Version != "" {
		s.WriteString(fmt.Sprintf(" (%s)", ent.Version))
	}
	if ent.Favorite {
		s.WriteString(" *")
	}
	s.WriteString(fmt.Sprintf(" [%s]", ent.Path))
	if !ent.LastPlayed.IsZero() {
		s.WriteString(fmt.Sprintf(" played %s", ent.LastPlayed.Format(time.DateTime)))
	}
	return s.String()
}

// SortOrder specifies the order in which entries are selected.
type SortOrder int

// List of valid SortOrder values.
const (
	NameAsc SortOrder = iota
	NameDesc
	LastPlayed
	Favorites
	numSortOrders
)

func (o SortOrder) String() string {
	switch o {
	case NameAsc:
		return "name"
	case NameDesc:
		return "name (descending)"
	case LastPlayed:
		return "last played"
	case Favorites:
		return "favorites"
	}
	return "unknown sort order"
}

// Next returns the sort order that follows this one. The last sort order is
// followed by the first.
func (o SortOrder) Next() SortOrder {
	return (o + 1) % numSortOrders
}

// ParseSortOrder is the inverse of SortOrder.String(). The "desc" and
// "played" abbreviations are also accepted.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return NameAsc, nil
	case "name (descending)", "desc":
		return NameDesc, nil
	case "last played", "played":
		return LastPlayed, nil
	case "favorites":
		return Favorites, nil
	}
	return NameAsc, curated.Errorf("catalog: unknown sort order: %s", s)
}

// the ORDER BY clause for each sort order. the id is always the final key so
// that selection is stable for entries with equal names
func (o SortOrder) clause() string {
	switch o {
	case NameDesc:
		return "name COLLATE NOCASE DESC, id DESC"
	case LastPlayed:
		return "last_played IS NULL, last_played DESC, name COLLATE NOCASE ASC, id ASC"
	case Favorites:
		return "favorite DESC, name COLLATE NOCASE ASC, id ASC"
	}
	return "name COLLATE NOCASE ASC, id ASC"
}
