package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/evdash/internal/config"
	"github.com/sells-group/evdash/internal/cost"
	"github.com/sells-group/evdash/internal/dashboard"
	"github.com/sells-group/evdash/internal/dataset"
	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/geo"
	"github.com/sells-group/evdash/internal/model"
	"github.com/sells-group/evdash/internal/query"
)

var errBadCoordinates = eris.New("invalid lat/lon coordinates")

// api holds the handlers' shared dependencies.
type api struct {
	engine  *dashboard.Engine
	cfg     *config.Config
	limiter *rate.Limiter
}

// newAPIRouter builds the dashboard HTTP surface.
func newAPIRouter(engine *dashboard.Engine, cfg *config.Config) chi.Router {
	a := &api{
		engine:  engine,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.Server.RatePerSec), cfg.Server.RateBurst),
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", a.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.With(a.throttle).Get("/dashboard", a.handleDashboard)
		r.Get("/cost", a.handleCost)
		r.Get("/catalog", a.handleCatalog)
		r.Get("/cities", a.handleCities)
	})

	return r
}

// throttle bounds how fast render passes can be triggered; each one re-reads
// the source files.
func (a *api) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *api) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDashboard runs one render pass.
// GET /api/v1/dashboard?start=2019-05-01&end=2021-06-30&city=Austin,+TX&access=public,private&lat=29.76&lat_dir=N&lon=95.37&lon_dir=W&heatmap=true
func (a *api) handleDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := parseDashboardRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := a.engine.Render(r.Context(), req)
	if err != nil {
		zap.L().Error("render pass failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load dashboard data")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func parseDashboardRequest(r *http.Request) (dashboard.Request, error) {
	q := r.URL.Query()
	var req dashboard.Request

	if v := q.Get("start"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return req, err
		}
		req.Start = &t
	}
	if v := q.Get("end"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return req, err
		}
		req.End = &t
	}

	req.City = q.Get("city")

	// Absent means "all codes"; present but empty means a fully deselected
	// picker, which matches nothing.
	if vals, ok := q["access"]; ok {
		req.AccessCodes = splitCodes(vals)
	}

	if q.Get("lat") != "" && q.Get("lon") != "" {
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
		if latErr != nil || lonErr != nil {
			return req, errBadCoordinates
		}
		req.Manual = &geo.ManualCoords{
			Latitude:  lat,
			Longitude: lon,
			LatDir:    strings.ToUpper(q.Get("lat_dir")),
			LonDir:    strings.ToUpper(q.Get("lon_dir")),
		}
	}

	req.Heatmap, _ = strconv.ParseBool(q.Get("heatmap"))
	return req, nil
}

// splitCodes flattens repeated and comma-separated access params.
func splitCodes(vals []string) []string {
	codes := []string{}
	for _, v := range vals {
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
	}
	return codes
}

// costPanel is one side of the comparison.
type costPanel struct {
	Vehicle    string              `json:"vehicle"`
	Efficiency float64             `json:"efficiency"`
	UnitPrice  float64             `json:"unit_price"`
	Cost       model.CostBreakdown `json:"cost"`
}

// handleCost computes both sides of the cost comparison.
// GET /api/v1/cost?gas=Toyota+Corolla&ev=Tesla+Model+3&miles=250
func (a *api) handleCost(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	gasName := q.Get("gas")
	if gasName == "" {
		gasName = cost.GasCatalog[0].Name
	}
	evName := q.Get("ev")
	if evName == "" {
		evName = cost.EVCatalog[0].Name
	}

	miles := 250.0
	if v := q.Get("miles"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid miles")
			return
		}
		miles = m
	}
	miles = cost.ClampMiles(miles)

	gas, err := cost.Profile(cost.GasCatalog, gasName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ev, err := cost.Profile(cost.EVCatalog, evName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]costPanel{
		"gas": {
			Vehicle:    gas.Name,
			Efficiency: gas.Efficiency,
			UnitPrice:  a.cfg.Pricing.GasPerGallon,
			Cost:       cost.RoundCents(cost.Compute(miles, gas.Efficiency, a.cfg.Pricing.GasPerGallon)),
		},
		"electric": {
			Vehicle:    ev.Name,
			Efficiency: ev.Efficiency,
			UnitPrice:  a.cfg.Pricing.ElectricityPerKWh,
			Cost:       cost.RoundCents(cost.Compute(miles, ev.Efficiency, a.cfg.Pricing.ElectricityPerKWh)),
		},
	})
}

// handleCatalog returns the vehicle catalogs and unit prices.
func (a *api) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"gas":      cost.GasCatalog,
		"electric": cost.EVCatalog,
		"pricing":  a.cfg.Pricing,
	})
}

// handleCities returns the city picker options from a fresh working set.
func (a *api) handleCities(w http.ResponseWriter, r *http.Request) {
	httpOpts := fetcher.HTTPOptions{
		UserAgent: a.cfg.Fetch.UserAgent,
		Timeout:   time.Duration(a.cfg.Fetch.TimeoutSecs) * time.Second,
	}
	ftpOpts := fetcher.FTPOptions{
		Timeout: time.Duration(a.cfg.Fetch.TimeoutSecs) * time.Second,
	}
	stations, err := dataset.LoadStations(r.Context(), a.cfg.Data.Stations, httpOpts, ftpOpts)
	if err != nil {
		zap.L().Error("cities load failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load stations")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"cities": query.Cities(stations)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
