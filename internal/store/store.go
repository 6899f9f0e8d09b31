// Package store persists codon libraries to a local SQLite database,
// one JSON blob snapshot per library.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store is a SQLite-backed collection of named codon libraries.
// Every save replaces the library's full snapshot.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the library database at path.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS libraries (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create libraries table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save writes a library snapshot, replacing any previous one by name.
func (s *Store) Save(rec *codon.LibraryRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO libraries (name, payload) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload`,
		rec.Name, payload,
	)
	if err != nil {
		return fmt.Errorf("save library %q: %w", rec.Name, err)
	}
	return nil
}

// Load reads one library snapshot by name.
func (s *Store) Load(name string) (*codon.LibraryRecord, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM libraries WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no library named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load library %q: %w", name, err)
	}

	rec := &codon.LibraryRecord{}
	if err := json.Unmarshal(payload, rec); err != nil {
		return nil, fmt.Errorf("decode library %q: %w", name, err)
	}
	return rec, nil
}

// List returns every stored library name in alphabetical order.
func (s *Store) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM libraries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes one library by name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM libraries WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete library %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no library named %q", name)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
