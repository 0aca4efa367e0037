// Package dataset loads and normalizes the charging-station and population
// input files. Everything here is stateless: each render pass loads fresh and
// discards the working set when it is done.
package dataset

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/model"
)

// Sentinel values substituted for absent text fields at normalization time.
// Downstream consumers never observe an empty field.
const (
	SentinelStation   = "Unknown Station"
	SentinelCity      = "Unknown City"
	SentinelState     = "Unknown State"
	SentinelFacility  = "Unknown Facility"
	SentinelPhone     = "Unknown Number"
	SentinelPricing   = "Unknown Pricing"
	SentinelConnector = "Unknown Connector"
	SentinelHours     = "Unknown Hours"
)

// Source column headers of the NREL alternative fuel stations export.
const (
	colName       = "Station Name"
	colAddress    = "Street Address"
	colCity       = "City"
	colState      = "State"
	colZIP        = "ZIP"
	colLatitude   = "Latitude"
	colLongitude  = "Longitude"
	colConnectors = "EV Connector Types"
	colHours      = "Access Days Time"
	colOpenDate   = "Open Date"
	colFacility   = "Facility Type"
	colAccessCode = "Access Code"
	colPricing    = "EV Pricing"
	colPhone      = "Station Phone"
)

// openDateLayouts are the date formats accepted for the Open Date column.
var openDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
}

var titleCaser = cases.Title(language.AmericanEnglish)

// LoadStations reads and normalizes the station dataset from a local path,
// http(s) URL, or ftp URL. Files ending in .xlsx are read as spreadsheets,
// anything else as CSV. An unreadable source is fatal; malformed rows are
// silently excluded.
func LoadStations(ctx context.Context, src string, httpOpts fetcher.HTTPOptions, ftpOpts fetcher.FTPOptions) ([]model.ChargingStation, error) {
	table, err := loadTable(ctx, src, httpOpts, ftpOpts)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load stations from %s", src)
	}

	stations := Normalize(DecodeStations(table))
	zap.L().Debug("stations loaded",
		zap.String("source", src),
		zap.Int("raw_rows", len(table.Rows)),
		zap.Int("working_set", len(stations)),
	)
	return stations, nil
}

func loadTable(ctx context.Context, src string, httpOpts fetcher.HTTPOptions, ftpOpts fetcher.FTPOptions) (*fetcher.Table, error) {
	if strings.HasSuffix(strings.ToLower(src), ".xlsx") && !fetcher.IsRemote(src) {
		return fetcher.ReadXLSX(src)
	}

	rc, err := fetcher.Open(ctx, src, httpOpts, ftpOpts)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck

	return fetcher.ReadCSV(rc)
}

// DecodeStations projects a raw table onto the relevant station columns.
// Open dates are parsed here; a value that fails every layout stays the zero
// time and the row is dropped by Normalize. Rows without usable coordinates
// are dropped immediately: they cannot be placed on the map at all.
func DecodeStations(t *fetcher.Table) []model.ChargingStation {
	idx := t.ColumnIndex(
		colName, colAddress, colCity, colState, colZIP,
		colLatitude, colLongitude, colConnectors, colHours,
		colOpenDate, colFacility, colAccessCode, colPricing, colPhone,
	)

	stations := make([]model.ChargingStation, 0, len(t.Rows))
	for _, row := range t.Rows {
		lat, latErr := strconv.ParseFloat(fetcher.Field(row, idx[colLatitude]), 64)
		lon, lonErr := strconv.ParseFloat(fetcher.Field(row, idx[colLongitude]), 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		stations = append(stations, model.ChargingStation{
			Name:           fetcher.Field(row, idx[colName]),
			StreetAddress:  fetcher.Field(row, idx[colAddress]),
			City:           fetcher.Field(row, idx[colCity]),
			State:          fetcher.Field(row, idx[colState]),
			ZIP:            fetcher.Field(row, idx[colZIP]),
			Latitude:       lat,
			Longitude:      lon,
			ConnectorTypes: fetcher.Field(row, idx[colConnectors]),
			AccessHours:    fetcher.Field(row, idx[colHours]),
			OpenDate:       ParseOpenDate(fetcher.Field(row, idx[colOpenDate])),
			FacilityType:   fetcher.Field(row, idx[colFacility]),
			AccessCode:     fetcher.Field(row, idx[colAccessCode]),
			Pricing:        fetcher.Field(row, idx[colPricing]),
			Phone:          fetcher.Field(row, idx[colPhone]),
		})
	}
	return stations
}

// Normalize produces the working set: records whose open date is absent are
// dropped, empty text fields get their sentinels, and the "City, ST" key is
// derived. Normalize is idempotent.
func Normalize(stations []model.ChargingStation) []model.ChargingStation {
	out := make([]model.ChargingStation, 0, len(stations))
	for _, s := range stations {
		if s.OpenDate.IsZero() {
			continue
		}

		s.Name = orSentinel(s.Name, SentinelStation)
		s.City = orSentinel(s.City, SentinelCity)
		s.State = orSentinel(s.State, SentinelState)
		s.FacilityType = orSentinel(s.FacilityType, SentinelFacility)
		s.Phone = orSentinel(s.Phone, SentinelPhone)
		s.Pricing = orSentinel(s.Pricing, SentinelPricing)
		s.ConnectorTypes = orSentinel(s.ConnectorTypes, SentinelConnector)
		s.AccessHours = orSentinel(s.AccessHours, SentinelHours)
		s.CityState = CityStateKey(s.City, s.State)

		out = append(out, s)
	}
	return out
}

// ParseOpenDate parses an Open Date cell. The zero time means absent: an
// empty or unparsable value.
func ParseOpenDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range openDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CityStateKey derives the "City, ST" selection key: title-cased city plus
// the state code as-is.
func CityStateKey(city, state string) string {
	return titleCaser.String(strings.ToLower(city)) + ", " + state
}

func orSentinel(v, sentinel string) string {
	if strings.TrimSpace(v) == "" {
		return sentinel
	}
	return v
}
