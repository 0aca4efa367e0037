package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/evdash/internal/db"
)

// PostgresStore implements Store using a pgx pool.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS render_passes (
	id             TEXT PRIMARY KEY,
	created_at     TIMESTAMPTZ NOT NULL,
	range_start    TIMESTAMPTZ NOT NULL,
	range_end      TIMESTAMPTZ NOT NULL,
	city           TEXT NOT NULL DEFAULT '',
	access_codes   TEXT[] NOT NULL DEFAULT '{}',
	station_count  INTEGER NOT NULL,
	series_points  INTEGER NOT NULL,
	duration_ms    BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_render_passes_created_at ON render_passes(created_at)`

// Migrate creates the schema.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresMigration); err != nil {
		return eris.Wrap(err, "postgres: migrate")
	}
	return nil
}

// RecordPass appends one render pass to the log.
func (s *PostgresStore) RecordPass(ctx context.Context, rec PassRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO render_passes
			(id, created_at, range_start, range_end, city, access_codes, station_count, series_points, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.CreatedAt, rec.Start, rec.End, rec.City, rec.AccessCodes,
		rec.StationCount, rec.SeriesPoints, rec.DurationMS,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert pass")
	}
	return nil
}

// ListPasses returns the most recent passes, newest first.
func (s *PostgresStore) ListPasses(ctx context.Context, limit int) ([]PassRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, created_at, range_start, range_end, city, access_codes, station_count, series_points, duration_ms
		FROM render_passes
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list passes")
	}
	defer rows.Close()

	var out []PassRecord
	for rows.Next() {
		var rec PassRecord
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Start, &rec.End, &rec.City,
			&rec.AccessCodes, &rec.StationCount, &rec.SeriesPoints, &rec.DurationMS); err != nil {
			return nil, eris.Wrap(err, "postgres: scan pass")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "postgres: iterate passes")
	}
	return out, nil
}

// Close releases the pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
