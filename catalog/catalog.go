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
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	// sqlite3 driver for database/sql
	_ "github.com/mattn/go-sqlite3"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/resources"
)

// DefaultCatalogFile is the name of the catalog in the resources directory.
const DefaultCatalogFile = "catalog.sqlite3"

const schema = `CREATE TABLE IF NOT EXISTS cores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	slug TEXT NOT NULL DEFAULT '',
	version TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL UNIQUE,
	author TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	released_at INTEGER NOT NULL DEFAULT 0,
	downloaded_at INTEGER NOT NULL DEFAULT 0,
	last_played INTEGER,
	favorite INTEGER NOT NULL DEFAULT 0
);`

const columns = `id, name, slug, version, path, author, description,
	released_at, downloaded_at, last_played, favorite`

// Session is an open catalog.
type Session struct {
	*sql.DB
	path string
}

// StartSession opens the catalog at path, creating it if necessary. An empty
// path means DefaultCatalogFile in the resources directory.
func StartSession(path string) (*Session, error) {
	if path == "" {
		var err error
		path, err = resources.JoinPath(DefaultCatalogFile)
		if err != nil {
			return nil, curated.Errorf("catalog: %v", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, curated.Errorf("catalog: %v", err)
	}

	// a single connection serialises writers and keeps an in-memory database
	// from being split over several connections
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, curated.Errorf("catalog: %v", err)
	}

	logger.Logf(logger.Allow, "catalog", "session started: %s", path)

	return &Session{DB: db, path: path}, nil
}

// EndSession closes the catalog.
func (cat *Session) EndSession() error {
	if err := cat.DB.Close(); err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	return nil
}

// Path returns the path of the catalog file.
func (cat *Session) Path() string {
	return cat.path
}

// NumEntries returns the number of entries in the catalog.
func (cat *Session) NumEntries() (int, error) {
	var n int
	if err := cat.QueryRow("SELECT COUNT(*) FROM cores").Scan(&n); err != nil {
		return 0, curated.Errorf("catalog: %v", err)
	}
	return n, nil
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// Add an entry to the catalog. The Key field of the entry is ignored. Returns
// the key of the new entry.
//
// The path of every entry must be unique.
func (cat *Session) Add(ent Entry) (int, error) {
	if ent.Name == "" {
		return 0, curated.Errorf("catalog: entry has no name")
	}
	if ent.Path == "" {
		return 0, curated.Errorf("catalog: entry has no path")
	}

	var lastPlayed sql.NullInt64
	if !ent.LastPlayed.IsZero() {
		lastPlayed = sql.NullInt64{Int64: ent.LastPlayed.UnixNano(), Valid: true}
	}

	res, err := cat.Exec(`INSERT INTO cores (name, slug, version, path, author,
		description, released_at, downloaded_at, last_played, favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ent.Name, ent.Slug, ent.Version, ent.Path, ent.Author, ent.Description,
		unixNano(ent.ReleasedAt), unixNano(ent.DownloadedAt), lastPlayed, ent.Favorite)
	if err != nil {
		return 0, curated.Errorf("catalog: %v", err)
	}

	key, err := res.LastInsertId()
	if err != nil {
		return 0, curated.Errorf("catalog: %v", err)
	}

	return int(key), nil
}

// Delete the entry with the specified key.
func (cat *Session) Delete(key int) error {
	res, err := cat.Exec("DELETE FROM cores WHERE id = ?", key)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	return affected(res, key)
}

func affected(res sql.Result, key int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	if n == 0 {
		return curated.Errorf("catalog: key not available (%d)", key)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Entry, error) {
	var ent Entry
	var releasedAt, downloadedAt int64
	var lastPlayed sql.NullInt64

	err := row.Scan(&ent.Key, &ent.Name, &ent.Slug, &ent.Version, &ent.Path,
		&ent.Author, &ent.Description, &releasedAt, &downloadedAt,
		&lastPlayed, &ent.Favorite)
	if err != nil {
		return Entry{}, err
	}

	ent.ReleasedAt = fromUnixNano(releasedAt)
	ent.DownloadedAt = fromUnixNano(downloadedAt)
	if lastPlayed.Valid {
		ent.LastPlayed = fromUnixNano(lastPlayed.Int64)
	}

	return ent, nil
}

// Get the entry with the specified key.
func (cat *Session) Get(key int) (Entry, error) {
	row := cat.QueryRow(fmt.Sprintf("SELECT %s FROM cores WHERE id = ?", columns), key)
	ent, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, curated.Errorf("catalog: key not available (%d)", key)
		}
		return Entry{}, curated.Errorf("catalog: %v", err)
	}
	return ent, nil
}

// FindPath returns the entry with the specified path. The boolean return
// value is false if there is no such entry.
func (cat *Session) FindPath(path string) (Entry, bool, error) {
	row := cat.QueryRow(fmt.Sprintf("SELECT %s FROM cores WHERE path = ?", columns), path)
	ent, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, false, nil
		}
		return Entry{}, false, curated.Errorf("catalog: %v", err)
	}
	return ent, true, nil
}

// Has returns true if a core with the slug and version is in the catalog.
func (cat *Session) Has(slug string, version string) (bool, error) {
	var n int
	err := cat.QueryRow("SELECT COUNT(*) FROM cores WHERE slug = ? AND version = ?",
		slug, version).Scan(&n)
	if err != nil {
		return false, curated.Errorf("catalog: %v", err)
	}
	return n > 0, nil
}

// SetFavorite sets the favorite flag of the entry.
func (cat *Session) SetFavorite(key int, favorite bool) error {
	res, err := cat.Exec("UPDATE cores SET favorite = ? WHERE id = ?", favorite, key)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	return affected(res, key)
}

// RecordPlayed sets the last played time of the entry.
func (cat *Session) RecordPlayed(key int, when time.Time) error {
	res, err := cat.Exec("UPDATE cores SET last_played = ? WHERE id = ?", when.UnixNano(), key)
	if err != nil {
		return curated.Errorf("catalog: %v", err)
	}
	return affected(res, key)
}

// SelectAll entries in the catalog in the specified order. onSelect can be
// nil.
//
// Selection stops with the first error returned by onSelect(). Returns the
// last matched entry, or the entry matched when the error occurred.
func (cat *Session) SelectAll(order SortOrder, onSelect func(Entry) error) (Entry, error) {
	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	rows, err := cat.Query(fmt.Sprintf("SELECT %s FROM cores ORDER BY %s", columns, order.clause()))
	if err != nil {
		return Entry{}, curated.Errorf("catalog: %v", err)
	}
	defer rows.Close()

	var ent Entry
	for rows.Next() {
		ent, err = scan(rows)
		if err != nil {
			return Entry{}, curated.Errorf("catalog: %v", err)
		}
		if err := onSelect(ent); err != nil {
			return ent, err
		}
	}

	if err := rows.Err(); err != nil {
		return ent, curated.Errorf("catalog: %v", err)
	}

	return ent, nil
}

// Entries returns every entry in the specified order.
func (cat *Session) Entries(order SortOrder) ([]Entry, error) {
	var ents []Entry
	_, err := cat.SelectAll(order, func(ent Entry) error {
		ents = append(ents, ent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ents, nil
}

// List the entries in the specified order.
func (cat *Session) List(output io.Writer, order SortOrder) error {
	ents, err := cat.Entries(order)
	if err != nil {
		return err
	}

	if len(ents) == 0 {
		if _, err := io.WriteString(output, "catalog is empty\n"); err != nil {
			return err
		}
		return nil
	}

	for _, ent := range ents {
		if _, err := fmt.Fprintf(output, "%03d %s\n", ent.Key, ent.String()); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(output, "Total: %d\n", len(ents)); err != nil {
		return err
	}

	return nil
}
