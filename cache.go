package ansi16

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
)

// Cache stores previously converted images keyed by the SHA-1 of the source
// file, the name of the scaler and the requested dimensions
type Cache struct {
	db *sql.DB
}

// NewCache opens, creating if necessary, the SQLite database in file
func NewCache(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL, scaler TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, data BLOB NOT NULL, UNIQUE(sha1, scaler, width, height))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Find returns the stored conversion, or nil if there isn't one
func (c *Cache) Find(sha, scaler string, width, height int) ([]byte, error) {
	var data []byte
	switch err := c.db.QueryRow("SELECT data FROM conversion WHERE sha1 = ? AND scaler = ? AND width = ? AND height = ?", sha, scaler, width, height).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return data, nil
	default:
		return nil, err
	}
}

// Store saves a conversion, replacing any existing one
func (c *Cache) Store(sha, scaler string, width, height int, data []byte) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO conversion (sha1, scaler, width, height, data) VALUES (?, ?, ?, ?, ?)", sha, scaler, width, height, data); err != nil {
		return err
	}
	return nil
}

// Purge removes every stored conversion
func (c *Cache) Purge() error {
	if _, err := c.db.Exec("DELETE FROM conversion"); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}
