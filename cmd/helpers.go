package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/store"
)

// fetchOptions builds the remote download options from config.
func fetchOptions() (fetcher.HTTPOptions, fetcher.FTPOptions) {
	timeout := time.Duration(cfg.Fetch.TimeoutSecs) * time.Second
	return fetcher.HTTPOptions{UserAgent: cfg.Fetch.UserAgent, Timeout: timeout},
		fetcher.FTPOptions{Timeout: timeout}
}

// initStore opens the render-pass audit log per config. Driver "none"
// disables it.
func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "none", "off":
		return nil, nil
	case "sqlite":
		st, err := store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close() //nolint:errcheck
			return nil, err
		}
		return st, nil
	case "postgres":
		st, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close() //nolint:errcheck
			return nil, err
		}
		return st, nil
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// parseDate parses a YYYY-MM-DD flag or query value.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "parse date %q", s)
	}
	return t, nil
}
