package showcase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/eringen/showcase/gallery"
)

// ErrNotFound is returned when a requested example does not exist.
var ErrNotFound = errors.New("showcase: not found")

// Store wraps a SQLite database holding the example index.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the server read while the watcher rewrites the index.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS examples (
    route TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    has_front_matter INTEGER NOT NULL DEFAULT 0,
    category TEXT NOT NULL DEFAULT '',
    title TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    is_pro INTEGER NOT NULL DEFAULT 0,
    preview_path TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS examples_position ON examples(position);
`)
	return err
}

// ReplaceExamples swaps the whole index for recs in one transaction.
// List order follows the order of recs.
func (s *Store) ReplaceExamples(ctx context.Context, recs []gallery.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM examples`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO examples
		(route, name, has_front_matter, category, title, description, is_pro, preview_path, body, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range recs {
		meta := r.Meta()
		if _, err := stmt.ExecContext(ctx,
			r.Route, r.Name, boolToInt(r.FrontMatter != nil), meta.Category, meta.Title,
			meta.Description, boolToInt(meta.IsProExample), meta.PreviewPath, r.Body, i,
		); err != nil {
			return fmt.Errorf("insert %s: %w", r.Route, err)
		}
	}
	return tx.Commit()
}

// ListUnderRoute returns every indexed example strictly below route, in
// index order.
func (s *Store) ListUnderRoute(ctx context.Context, route string) ([]gallery.Record, error) {
	prefix := strings.TrimRight(route, "/") + "/"
	rows, err := s.db.QueryContext(ctx, `SELECT route, name, has_front_matter, category, title, description, is_pro, preview_path, body
		FROM examples WHERE substr(route, 1, length(?)) = ? AND length(route) > length(?) ORDER BY position`,
		prefix, prefix, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []gallery.Record
	for rows.Next() {
		r, err := scanExample(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

// GetExample returns a single indexed example by route.
func (s *Store) GetExample(ctx context.Context, route string) (gallery.Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT route, name, has_front_matter, category, title, description, is_pro, preview_path, body
		FROM examples WHERE route = ?`, route)
	r, err := scanExample(row)
	if errors.Is(err, sql.ErrNoRows) {
		return gallery.Record{}, ErrNotFound
	}
	return r, err
}

// CountExamples returns the number of indexed examples.
func (s *Store) CountExamples(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM examples`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExample(sc scanner) (gallery.Record, error) {
	var (
		r            gallery.Record
		hasFM, isPro int
		fm           gallery.FrontMatter
	)
	if err := sc.Scan(&r.Route, &r.Name, &hasFM, &fm.Category, &fm.Title, &fm.Description, &isPro, &fm.PreviewPath, &r.Body); err != nil {
		return gallery.Record{}, err
	}
	if hasFM == 1 {
		fm.IsProExample = isPro == 1
		r.FrontMatter = &fm
	}
	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
