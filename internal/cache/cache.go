// Package cache keeps an offline snapshot of the last successfully fetched
// gallery in a SQLite file, so the CLI and TUI can still show the last-known
// works (clearly labeled stale) when the backend is unreachable.
package cache

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"atelier-cli/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS works (
    id            INTEGER PRIMARY KEY,
    title         TEXT NOT NULL,
    image_url     TEXT NOT NULL,
    category_id   INTEGER NOT NULL,
    category_name TEXT NOT NULL,
    position      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// Cache is a handle to the snapshot database.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database under dir.
func Open(dir string) (*Cache, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, "snapshot.db"))
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: init schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveSnapshot replaces the stored snapshot with the given gallery state,
// preserving store order via the position column.
func (c *Cache) SaveSnapshot(works []model.Work, categories []model.Category) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("cache: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM works", "DELETE FROM categories"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("cache: clear: %w", err)
		}
	}
	for _, cat := range categories {
		if _, err := tx.Exec("INSERT INTO categories (id, name) VALUES (?, ?)", cat.ID, cat.Name); err != nil {
			return fmt.Errorf("cache: insert category: %w", err)
		}
	}
	for i, w := range works {
		catID, catName := int64(0), ""
		if w.Category != nil {
			catID, catName = w.Category.ID, w.Category.Name
		} else if w.CategoryID != 0 {
			catID = w.CategoryID
			if cat, ok := model.CategoryByID(categories, catID); ok {
				catName = cat.Name
			}
		}
		if _, err := tx.Exec(
			"INSERT INTO works (id, title, image_url, category_id, category_name, position) VALUES (?, ?, ?, ?, ?, ?)",
			w.ID, w.Title, w.ImageURL, catID, catName, i,
		); err != nil {
			return fmt.Errorf("cache: insert work: %w", err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES ('fetched_at', ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("cache: stamp: %w", err)
	}
	return tx.Commit()
}

// LoadSnapshot returns the stored gallery state in original store order and
// the time it was fetched. An empty cache yields empty slices and a zero time.
func (c *Cache) LoadSnapshot() ([]model.Work, []model.Category, time.Time, error) {
	var fetchedAt time.Time
	var stamp string
	err := c.db.QueryRow("SELECT value FROM meta WHERE key = 'fetched_at'").Scan(&stamp)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, nil, time.Time{}, fmt.Errorf("cache: read stamp: %w", err)
	default:
		fetchedAt, _ = time.Parse(time.RFC3339, stamp)
	}

	rows, err := c.db.Query("SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("cache: read categories: %w", err)
	}
	defer rows.Close()
	var categories []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, nil, time.Time{}, fmt.Errorf("cache: scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("cache: read categories: %w", err)
	}

	wrows, err := c.db.Query("SELECT id, title, image_url, category_id, category_name FROM works ORDER BY position")
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("cache: read works: %w", err)
	}
	defer wrows.Close()
	var works []model.Work
	for wrows.Next() {
		var w model.Work
		var catID int64
		var catName string
		if err := wrows.Scan(&w.ID, &w.Title, &w.ImageURL, &catID, &catName); err != nil {
			return nil, nil, time.Time{}, fmt.Errorf("cache: scan work: %w", err)
		}
		if catID != 0 {
			w.CategoryID = catID
			w.Category = &model.Category{ID: catID, Name: catName}
		}
		works = append(works, w)
	}
	if err := wrows.Err(); err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("cache: read works: %w", err)
	}

	return works, categories, fetchedAt, nil
}
