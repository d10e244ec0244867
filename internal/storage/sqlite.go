// Package storage provides SQLite-based persistence for palette history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/config"
)

// ErrNotFound is returned when a palette ID does not exist.
var ErrNotFound = errors.New("storage: palette not found")

// Store manages the SQLite database connection for palette history.
type Store struct {
	db *sql.DB
}

// PaletteEntry is one saved color sequence.
type PaletteEntry struct {
	ID        int64
	Source    string // where the colors came from, e.g. an image path
	Colors    []color.Color
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS palettes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL DEFAULT '',
			colors TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_palettes_created ON palettes(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePalette records a color sequence. Order is preserved.
// Returns the ID of the inserted record.
func (s *Store) SavePalette(source string, colors []color.Color) (int64, error) {
	if len(colors) == 0 {
		return 0, errors.New("storage: cannot save an empty palette")
	}

	result, err := s.db.Exec(
		"INSERT INTO palettes (source, colors) VALUES (?, ?)",
		source, color.JoinHex(colors),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save palette: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentPalettes retrieves the most recently saved palettes, newest first.
func (s *Store) RecentPalettes(limit int) ([]PaletteEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, source, colors, created_at
		 FROM palettes
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query palettes: %w", err)
	}
	defer rows.Close()

	var entries []PaletteEntry
	for rows.Next() {
		e, err := scanPalette(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PaletteByID retrieves one palette.
func (s *Store) PaletteByID(id int64) (PaletteEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, source, colors, created_at
		 FROM palettes
		 WHERE id = ?`,
		id,
	)

	e, err := scanPalette(row)
	if errors.Is(err, sql.ErrNoRows) {
		return PaletteEntry{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return e, err
}

// DeletePalette removes one palette.
func (s *Store) DeletePalette(id int64) error {
	result, err := s.db.Exec("DELETE FROM palettes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete palette: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPalette(row rowScanner) (PaletteEntry, error) {
	var e PaletteEntry
	var colors string
	var createdAt any

	if err := row.Scan(&e.ID, &e.Source, &colors, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, err
		}
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	parsed, err := color.ParseList(colors)
	if err != nil {
		return e, fmt.Errorf("storage: palette %d: %w", e.ID, err)
	}
	e.Colors = parsed

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = t
		}
	}

	return e, nil
}
