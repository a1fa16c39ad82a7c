// Package library is the durable record store: one SQLite table of books
// keyed by per-source identifier columns, with idempotent upserts.
package library

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/akorhonen/librarian/internal/source"
)

// Exactly one of the three identifier columns is populated per row; the
// partial unique indexes enforce uniqueness only over non-null values.
const schema = `
CREATE TABLE IF NOT EXISTS books (
  id            INTEGER PRIMARY KEY,
  gutenberg_id  INTEGER UNIQUE,
  ia_title_id   TEXT UNIQUE,
  gb_title_id   TEXT UNIQUE,
  author        TEXT,
  title         TEXT,
  category      TEXT,
  source_url    TEXT,
  content       TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_gutenberg
ON books(gutenberg_id)
WHERE gutenberg_id IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS idx_archive
ON books(ia_title_id)
WHERE ia_title_id IS NOT NULL;

CREATE UNIQUE INDEX IF NOT EXISTS idx_google
ON books(gb_title_id)
WHERE gb_title_id IS NOT NULL;
`

// Record is a fully resolved book ready to persist.
type Record struct {
	Identity  source.Identity
	Title     string
	Author    string
	Category  string
	SourceURL string
	Content   string
}

// Store wraps the SQLite library database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the library database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Exists reports whether a record for identity is already stored. The batch
// coordinator consults this before any network fetch.
func (s *Store) Exists(identity source.Identity) (bool, error) {
	column := identity.Kind.Column()
	if column == "" {
		return false, fmt.Errorf("unknown source kind %q", identity.Kind)
	}

	query := fmt.Sprintf("SELECT 1 FROM books WHERE %s = ?", column)
	var one int
	err := s.db.QueryRow(query, bindIdentifier(identity)).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("existence check failed: %w", err)
	}
	return true, nil
}

// Upsert inserts rec, or overwrites the descriptive fields of the existing
// row holding the same identifier. The identifier column itself is never
// changed, and records with empty content are refused.
func (s *Store) Upsert(rec Record) error {
	if strings.TrimSpace(rec.Content) == "" {
		return fmt.Errorf("refusing to store empty content for %s %s", rec.Identity.Kind, rec.Identity.ID)
	}
	column := rec.Identity.Kind.Column()
	if column == "" {
		return fmt.Errorf("unknown source kind %q", rec.Identity.Kind)
	}

	query := fmt.Sprintf(`
		INSERT INTO books (%s, author, title, category, source_url, content)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(%s) DO UPDATE SET
		  title=excluded.title,
		  category=excluded.category,
		  source_url=excluded.source_url,
		  content=excluded.content,
		  author=excluded.author`, column, column)

	if _, err := s.db.Exec(query, bindIdentifier(rec.Identity), rec.Author, rec.Title, rec.Category, rec.SourceURL, rec.Content); err != nil {
		return fmt.Errorf("upsert failed for %s %s: %w", rec.Identity.Kind, rec.Identity.ID, err)
	}
	return nil
}

// Count returns the number of stored books.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&count); err != nil {
		return 0, fmt.Errorf("count failed: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// bindIdentifier converts the identifier to the type of its column:
// Gutenberg ids are integers, the rest are text.
func bindIdentifier(identity source.Identity) any {
	if identity.Kind == source.KindGutenberg {
		if n, err := strconv.Atoi(identity.ID); err == nil {
			return n
		}
	}
	return identity.ID
}
