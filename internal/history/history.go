// Package history records ROM launches in a local sqlite database so the
// browser can show play counts. History is best-effort: failures degrade to
// zero counts and never block a launch.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens sqlite with sensible defaults.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	return db, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordLaunch inserts a play event for rom.
func (s *Store) RecordLaunch(ctx context.Context, rom string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO plays (id, rom, started_at) VALUES (?, ?, ?)`,
		uuid.NewString(), rom, now(),
	)
	if err != nil {
		return fmt.Errorf("record launch: %w", err)
	}
	return nil
}

// Counts returns the number of recorded launches per ROM filename.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rom, COUNT(*) FROM plays GROUP BY rom`)
	if err != nil {
		return nil, fmt.Errorf("play counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var rom string
		var n int
		if err := rows.Scan(&rom, &n); err != nil {
			return nil, err
		}
		out[rom] = n
	}
	return out, rows.Err()
}

// LastPlayed returns the most recent launch time per ROM filename.
func (s *Store) LastPlayed(ctx context.Context) (map[string]time.Time, error) {
	// Scanning the raw column keeps the driver's timestamp conversion;
	// ascending order means the last row per rom wins.
	rows, err := s.db.QueryContext(ctx,
		`SELECT rom, started_at FROM plays ORDER BY started_at`)
	if err != nil {
		return nil, fmt.Errorf("last played: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var rom string
		var at time.Time
		if err := rows.Scan(&rom, &at); err != nil {
			return nil, err
		}
		out[rom] = at
	}
	return out, rows.Err()
}

// now returns UTC time truncated to seconds (consistent with SQLite default).
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
