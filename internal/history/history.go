// Package history persists bench runs to SQLite so regressions can be
// spotted against earlier runs of the same input.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one persisted bench run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Input     string
	Revision  string
	WallNS    int64
	Report    json.RawMessage
}

// Store is a SQLite-backed run archive. Use ":memory:" for tests.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		input TEXT NOT NULL,
		revision TEXT,
		wall_ns INTEGER NOT NULL,
		report BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append records one completed run.
func (s *Store) Append(ctx context.Context, run Run) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, created_at, input, revision, wall_ns, report) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.CreatedAt.Unix(), run.Input, run.Revision, run.WallNS, []byte(run.Report),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, input, revision, wall_ns, report FROM runs ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// LatestByInput returns the most recent run for input, or nil when the
// input has never been benched.
func (s *Store) LatestByInput(ctx context.Context, input string) (*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, input, revision, wall_ns, report FROM runs WHERE input = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		input,
	)
	if err != nil {
		return nil, fmt.Errorf("query latest run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdUnix int64
		var reportBlob []byte
		if err := rows.Scan(&r.ID, &createdUnix, &r.Input, &r.Revision, &r.WallNS, &reportBlob); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt = time.Unix(createdUnix, 0)
		r.Report = json.RawMessage(reportBlob)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
