package store

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &PostgresStore{pool: mock}, mock
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS render_passes`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RecordPass(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rec := testPass(time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC))
	mock.ExpectExec(`INSERT INTO render_passes`).
		WithArgs(rec.ID, rec.CreatedAt, rec.Start, rec.End, rec.City, rec.AccessCodes,
			rec.StationCount, rec.SeriesPoints, rec.DurationMS).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.RecordPass(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RecordPass_Error(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rec := testPass(time.Now().UTC())
	mock.ExpectExec(`INSERT INTO render_passes`).
		WithArgs(rec.ID, rec.CreatedAt, rec.Start, rec.End, rec.City, rec.AccessCodes,
			rec.StationCount, rec.SeriesPoints, rec.DurationMS).
		WillReturnError(assert.AnError)

	err := s.RecordPass(context.Background(), rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert pass")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListPasses(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rec := testPass(time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC))
	rows := pgxmock.NewRows([]string{
		"id", "created_at", "range_start", "range_end", "city",
		"access_codes", "station_count", "series_points", "duration_ms",
	}).AddRow(rec.ID, rec.CreatedAt, rec.Start, rec.End, rec.City,
		rec.AccessCodes, rec.StationCount, rec.SeriesPoints, rec.DurationMS)

	mock.ExpectQuery(`SELECT id, created_at, range_start, range_end, city`).
		WithArgs(10).
		WillReturnRows(rows)

	passes, err := s.ListPasses(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, passes, 1)
	assert.Equal(t, rec.ID, passes[0].ID)
	assert.Equal(t, rec.AccessCodes, passes[0].AccessCodes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
