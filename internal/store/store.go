// Package store persists an audit log of render passes. The log is
// append-only and is never read back into a computation: every pass
// recomputes from the source files regardless of what is recorded here.
package store

import (
	"context"
	"time"
)

// PassRecord is one completed render pass.
type PassRecord struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	City         string    `json:"city,omitempty"`
	AccessCodes  []string  `json:"access_codes"`
	StationCount int       `json:"station_count"`
	SeriesPoints int       `json:"series_points"`
	DurationMS   int64     `json:"duration_ms"`
}

// Store is the audit log backend.
type Store interface {
	RecordPass(ctx context.Context, rec PassRecord) error
	ListPasses(ctx context.Context, limit int) ([]PassRecord, error)
	Migrate(ctx context.Context) error
	Close() error
}
