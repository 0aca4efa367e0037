package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS render_passes (
	id             TEXT PRIMARY KEY,
	created_at     DATETIME NOT NULL,
	range_start    DATETIME NOT NULL,
	range_end      DATETIME NOT NULL,
	city           TEXT NOT NULL DEFAULT '',
	access_codes   TEXT NOT NULL DEFAULT '[]',
	station_count  INTEGER NOT NULL,
	series_points  INTEGER NOT NULL,
	duration_ms    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_render_passes_created_at ON render_passes(created_at);
`

// Migrate creates the schema.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "sqlite: migrate")
	}
	return nil
}

// RecordPass appends one render pass to the log.
func (s *SQLiteStore) RecordPass(ctx context.Context, rec PassRecord) error {
	codes, err := json.Marshal(rec.AccessCodes)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal access codes")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO render_passes
			(id, created_at, range_start, range_end, city, access_codes, station_count, series_points, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		rec.Start.UTC().Format(time.RFC3339Nano),
		rec.End.UTC().Format(time.RFC3339Nano),
		rec.City,
		string(codes),
		rec.StationCount,
		rec.SeriesPoints,
		rec.DurationMS,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert pass")
	}
	return nil
}

// ListPasses returns the most recent passes, newest first.
func (s *SQLiteStore) ListPasses(ctx context.Context, limit int) ([]PassRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, range_start, range_end, city, access_codes, station_count, series_points, duration_ms
		FROM render_passes
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list passes")
	}
	defer rows.Close() //nolint:errcheck

	var out []PassRecord
	for rows.Next() {
		var rec PassRecord
		var createdAt, start, end, codes string
		if err := rows.Scan(&rec.ID, &createdAt, &start, &end, &rec.City, &codes,
			&rec.StationCount, &rec.SeriesPoints, &rec.DurationMS); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan pass")
		}
		if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: parse created_at")
		}
		if rec.Start, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, eris.Wrap(err, "sqlite: parse range_start")
		}
		if rec.End, err = time.Parse(time.RFC3339Nano, end); err != nil {
			return nil, eris.Wrap(err, "sqlite: parse range_end")
		}
		if err := json.Unmarshal([]byte(codes), &rec.AccessCodes); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal access codes")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate passes")
	}
	return out, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
