// Package dashboard orchestrates one render pass: everything the frontend
// needs for a single interaction, recomputed from the source files each time.
package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/evdash/internal/boundary"
	"github.com/sells-group/evdash/internal/config"
	"github.com/sells-group/evdash/internal/dataset"
	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/geo"
	"github.com/sells-group/evdash/internal/model"
	"github.com/sells-group/evdash/internal/query"
	"github.com/sells-group/evdash/internal/store"
)

// DefaultSeriesLabel labels the growth chart when no city is selected.
const DefaultSeriesLabel = "United States"

// Engine runs render passes. It holds configuration only; no dataset state
// survives between passes.
type Engine struct {
	data     config.DataConfig
	httpOpts fetcher.HTTPOptions
	ftpOpts  fetcher.FTPOptions
	store    store.Store // optional audit log, may be nil
}

// New creates an Engine.
func New(cfg *config.Config, st store.Store) *Engine {
	return &Engine{
		data: cfg.Data,
		httpOpts: fetcher.HTTPOptions{
			UserAgent: cfg.Fetch.UserAgent,
			Timeout:   time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		},
		ftpOpts: fetcher.FTPOptions{
			Timeout: time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		},
		store: st,
	}
}

// Request is the user selection driving one render pass. Nil Start/End mean
// the default degenerate range: earliest open date to earliest open date.
// Nil AccessCodes means every code present in the working set; an explicitly
// empty slice matches nothing. Manual coordinates clear the city selection.
type Request struct {
	Start       *time.Time
	End         *time.Time
	City        string
	AccessCodes []string
	Manual      *geo.ManualCoords
	Heatmap     bool
}

// StationMarker is a filtered station plus its legend bucket.
type StationMarker struct {
	model.ChargingStation
	Class     geo.LegendClass `json:"legend_class"`
	FillColor [3]int          `json:"fill_color"`
}

// Result is everything one render pass produces.
type Result struct {
	PassID            string                    `json:"pass_id"`
	Filter            model.StationFilter       `json:"filter"`
	Stations          []StationMarker           `json:"stations"`
	Series            []model.StationCountPoint `json:"series"`
	SeriesLabel       string                    `json:"series_label"`
	View              model.MapView             `json:"view"`
	BBox              *geo.BBox                 `json:"bbox,omitempty"`
	Cities            []string                  `json:"cities"`
	AccessCodeOptions []string                  `json:"access_code_options"`
	DateMin           time.Time                 `json:"date_min"`
	DateMax           time.Time                 `json:"date_max"`
	Population        []model.PopulationPoint   `json:"population,omitempty"`
	Boundary          json.RawMessage           `json:"boundary,omitempty"`
}

// Render runs one full pass: load, normalize, filter, derive. The three input
// reads fan out; everything after them is sequential. A failed input read
// aborts the whole pass.
func (e *Engine) Render(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	var (
		stations   []model.ChargingStation
		population []model.PopulationPoint
		counties   json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stations, err = dataset.LoadStations(gctx, e.data.Stations, e.httpOpts, e.ftpOpts)
		return err
	})
	g.Go(func() error {
		var err error
		population, err = dataset.LoadPopulation(gctx, e.data.Population, e.httpOpts, e.ftpOpts)
		return err
	})
	g.Go(func() error {
		var err error
		counties, err = boundary.Load(e.data.Boundary)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Manual coordinates clear the city selection entirely.
	city := req.City
	if req.Manual != nil {
		city = ""
	}

	dateMin, dateMax, _ := query.DateBounds(stations)

	f := model.StationFilter{
		Start: dateMin,
		End:   dateMin,
		City:  city,
	}
	if req.Start != nil {
		f.Start = *req.Start
	}
	if req.End != nil {
		f.End = *req.End
	}
	if req.AccessCodes != nil {
		f.AccessCodes = req.AccessCodes
	} else {
		f.AccessCodes = query.AccessCodes(stations)
	}

	filtered := query.Filter(stations, f)

	markers := make([]StationMarker, len(filtered))
	for i, s := range filtered {
		class := geo.Classify(s.ConnectorTypes)
		markers[i] = StationMarker{ChargingStation: s, Class: class, FillColor: geo.FillColor(class)}
	}

	label := DefaultSeriesLabel
	if city != "" {
		label = city
	}

	res := &Result{
		PassID:            uuid.NewString(),
		Filter:            f,
		Stations:          markers,
		Series:            query.CountSeries(filtered),
		SeriesLabel:       label,
		View:              geo.ResolveView(stations, city, req.Manual),
		Cities:            query.Cities(stations),
		AccessCodeOptions: query.AccessCodes(stations),
		DateMin:           dateMin,
		DateMax:           dateMax,
		Boundary:          counties,
	}
	if box, ok := geo.BoundingBox(filtered); ok {
		res.BBox = &box
	}
	if req.Heatmap {
		res.Population = population
	}

	elapsed := time.Since(started)
	e.recordPass(ctx, res, elapsed)

	zap.L().Debug("render pass complete",
		zap.String("pass_id", res.PassID),
		zap.Int("stations", len(res.Stations)),
		zap.Int("series_points", len(res.Series)),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}

// recordPass appends the pass to the audit log. Best effort: a store failure
// never fails the pass.
func (e *Engine) recordPass(ctx context.Context, res *Result, elapsed time.Duration) {
	if e.store == nil {
		return
	}
	rec := store.PassRecord{
		ID:           res.PassID,
		CreatedAt:    time.Now().UTC(),
		Start:        res.Filter.Start,
		End:          res.Filter.End,
		City:         res.Filter.City,
		AccessCodes:  res.Filter.AccessCodes,
		StationCount: len(res.Stations),
		SeriesPoints: len(res.Series),
		DurationMS:   elapsed.Milliseconds(),
	}
	if err := e.store.RecordPass(ctx, rec); err != nil {
		zap.L().Warn("failed to record render pass",
			zap.String("pass_id", res.PassID),
			zap.Error(err),
		)
	}
}
