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

package catalog_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golem-fpga/golem/catalog"
	"github.com/golem-fpga/golem/test"
)

func session(t *testing.T) *catalog.Session {
	t.Helper()
	cat, err := catalog.StartSession(filepath.Join(t.TempDir(), "catalog.sqlite3"))
	test.DemandSuccess(t, err)
	t.Cleanup(func() { cat.EndSession() })
	return cat
}

func names(t *testing.T, cat *catalog.Session, order catalog.SortOrder) string {
	t.Helper()
	ents, err := cat.Entries(order)
	test.DemandSuccess(t, err)
	var n []string
	for _, e := range ents {
		n = append(n, e.Name)
	}
	return strings.Join(n, ",")
}

func TestSortOrderCycle(t *testing.T) {
	o := catalog.NameAsc
	o = o.Next()
	test.ExpectEquality(t, o, catalog.NameDesc)
	o = o.Next()
	test.ExpectEquality(t, o, catalog.LastPlayed)
	o = o.Next()
	test.ExpectEquality(t, o, catalog.Favorites)
	o = o.Next()
	test.ExpectEquality(t, o, catalog.NameAsc)

	for _, o := range []catalog.SortOrder{catalog.NameAsc, catalog.NameDesc, catalog.LastPlayed, catalog.Favorites} {
		p, err := catalog.ParseSortOrder(o.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, o)
	}

	_, err := catalog.ParseSortOrder("random")
	test.ExpectFailure(t, err)
}

func TestAddAndGet(t *testing.T) {
	cat := session(t)

	n, err := cat.NumEntries()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	key, err := cat.Add(catalog.Entry{Name: "NES", Slug: "nes", Version: "1.0", Path: "/cores/nes.rbf"})
	test.DemandSuccess(t, err)

	ent, err := cat.Get(key)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.Key, key)
	test.ExpectEquality(t, ent.Name, "NES")
	test.ExpectEquality(t, ent.Path, "/cores/nes.rbf")
	test.ExpectEquality(t, ent.LastPlayed.IsZero(), true)
	test.ExpectEquality(t, ent.Favorite, false)

	// paths are unique
	_, err = cat.Add(catalog.Entry{Name: "NES again", Path: "/cores/nes.rbf"})
	test.ExpectFailure(t, err)

	// name and path are required
	_, err = cat.Add(catalog.Entry{Path: "/cores/x.rbf"})
	test.ExpectFailure(t, err)
	_, err = cat.Add(catalog.Entry{Name: "X"})
	test.ExpectFailure(t, err)

	has, err := cat.Has("nes", "1.0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, has, true)
	has, err = cat.Has("nes", "2.0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, has, false)

	ent, ok, err := cat.FindPath("/cores/nes.rbf")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, ent.Key, key)
	_, ok, err = cat.FindPath("/cores/missing.rbf")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, false)

	_, err = cat.Get(key + 100)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, cat.Delete(key))
	test.ExpectFailure(t, cat.Delete(key))
	n, err = cat.NumEntries()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestSortOrders(t *testing.T) {
	cat := session(t)

	a, err := cat.Add(catalog.Entry{Name: "amiga", Path: "/cores/amiga.rbf"})
	test.DemandSuccess(t, err)
	c, err := cat.Add(catalog.Entry{Name: "C64", Path: "/cores/c64.rbf"})
	test.DemandSuccess(t, err)
	_, err = cat.Add(catalog.Entry{Name: "Bally", Path: "/cores/bally.rbf"})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, names(t, cat, catalog.NameAsc), "amiga,Bally,C64")
	test.ExpectEquality(t, names(t, cat, catalog.NameDesc), "C64,Bally,amiga")

	now := time.Now()
	test.ExpectSuccess(t, cat.RecordPlayed(a, now.Add(-time.Hour)))
	test.ExpectSuccess(t, cat.RecordPlayed(c, now))
	test.ExpectEquality(t, names(t, cat, catalog.LastPlayed), "C64,amiga,Bally")

	test.ExpectSuccess(t, cat.SetFavorite(c, true))
	test.ExpectEquality(t, names(t, cat, catalog.Favorites), "C64,amiga,Bally")
	test.ExpectSuccess(t, cat.SetFavorite(c, false))
	test.ExpectEquality(t, names(t, cat, catalog.Favorites), "amiga,Bally,C64")

	test.ExpectFailure(t, cat.RecordPlayed(999, now))
	test.ExpectFailure(t, cat.SetFavorite(999, true))

	ent, err := cat.Get(c)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.LastPlayed.UnixNano(), now.UnixNano())
}

func TestList(t *testing.T) {
	cat := session(t)

	w := &test.CompareWriter{}
	test.ExpectSuccess(t, cat.List(w, catalog.NameAsc))
	test.ExpectSuccess(t, w.Compare("catalog is empty\n"))

	_, err := cat.Add(catalog.Entry{Name: "NES", Version: "1.0", Path: "/cores/nes.rbf", Favorite: true})
	test.DemandSuccess(t, err)

	w.Clear()
	test.ExpectSuccess(t, cat.List(w, catalog.NameAsc))
	test.ExpectEquality(t, len(w.Lines()), 2)
	test.ExpectEquality(t, w.Lines()[0], "001 NES (1.0) * [/cores/nes.rbf]")
	test.ExpectEquality(t, w.Lines()[1], "Total: 1")
}

func TestReopen(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "catalog.sqlite3")

	cat, err := catalog.StartSession(pth)
	test.DemandSuccess(t, err)
	_, err = cat.Add(catalog.Entry{Name: "NES", Path: "/cores/nes.rbf"})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, cat.EndSession())

	cat, err = catalog.StartSession(pth)
	test.DemandSuccess(t, err)
	defer cat.EndSession()
	n, err := cat.NumEntries()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
}
