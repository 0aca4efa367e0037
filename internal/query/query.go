// Package query filters the station working set and derives the cumulative
// growth series. All functions are pure: they never mutate their input and
// hold no state between render passes.
package query

import (
	"sort"
	"time"

	"github.com/sells-group/evdash/internal/model"
)

// Filter returns the stations matching every predicate of f: open date within
// [f.Start, f.End] inclusive, CityState equal to f.City when set, and access
// code contained in f.AccessCodes. Input order is preserved.
func Filter(stations []model.ChargingStation, f model.StationFilter) []model.ChargingStation {
	allowed := make(map[string]struct{}, len(f.AccessCodes))
	for _, code := range f.AccessCodes {
		allowed[code] = struct{}{}
	}

	out := make([]model.ChargingStation, 0, len(stations))
	for _, s := range stations {
		if s.OpenDate.Before(f.Start) || s.OpenDate.After(f.End) {
			continue
		}
		if f.City != "" && s.CityState != f.City {
			continue
		}
		if _, ok := allowed[s.AccessCode]; !ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// CountSeries groups stations by open date and returns the running cumulative
// count, ordered by date ascending. One entry per distinct date present in
// the input; calendar gaps are not filled.
func CountSeries(stations []model.ChargingStation) []model.StationCountPoint {
	perDate := make(map[time.Time]int)
	for _, s := range stations {
		perDate[s.OpenDate]++
	}

	dates := make([]time.Time, 0, len(perDate))
	for d := range perDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	series := make([]model.StationCountPoint, 0, len(dates))
	total := 0
	for _, d := range dates {
		total += perDate[d]
		series = append(series, model.StationCountPoint{Date: d, Cumulative: total})
	}
	return series
}

// AccessCodes returns the distinct access codes in the working set, sorted.
// This is the option list for the access picker and the default allow-set.
func AccessCodes(stations []model.ChargingStation) []string {
	seen := make(map[string]struct{})
	var codes []string
	for _, s := range stations {
		if s.AccessCode == "" {
			continue
		}
		if _, ok := seen[s.AccessCode]; !ok {
			seen[s.AccessCode] = struct{}{}
			codes = append(codes, s.AccessCode)
		}
	}
	sort.Strings(codes)
	return codes
}

// Cities returns the distinct "City, ST" keys in the working set, sorted.
func Cities(stations []model.ChargingStation) []string {
	seen := make(map[string]struct{})
	var cities []string
	for _, s := range stations {
		if _, ok := seen[s.CityState]; !ok {
			seen[s.CityState] = struct{}{}
			cities = append(cities, s.CityState)
		}
	}
	sort.Strings(cities)
	return cities
}

// DateBounds returns the earliest and latest open dates in the working set.
// ok is false for an empty set.
func DateBounds(stations []model.ChargingStation) (min, max time.Time, ok bool) {
	for _, s := range stations {
		if !ok {
			min, max, ok = s.OpenDate, s.OpenDate, true
			continue
		}
		if s.OpenDate.Before(min) {
			min = s.OpenDate
		}
		if s.OpenDate.After(max) {
			max = s.OpenDate
		}
	}
	return min, max, ok
}
