// Package model defines the core data types shared across the dashboard.
package model

import "time"

// ChargingStation is one normalized row of the station dataset. Rows without a
// parsable open date never make it into a working set, so OpenDate is always
// set on a normalized record. Text fields that were absent in the source are
// filled with per-field sentinels at normalization time.
type ChargingStation struct {
	Name           string    `json:"name"`
	StreetAddress  string    `json:"street_address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZIP            string    `json:"zip"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ConnectorTypes string    `json:"connector_types"`
	AccessHours    string    `json:"access_hours"`
	OpenDate       time.Time `json:"open_date"`
	FacilityType   string    `json:"facility_type"`
	AccessCode     string    `json:"access_code"`
	Pricing        string    `json:"pricing"`
	Phone          string    `json:"phone"`

	// CityState is the derived "City, ST" key: title-cased city plus state.
	CityState string `json:"city_state"`
}

// PopulationPoint is one row of the population reference dataset, used as a
// heatmap weight by the frontend.
type PopulationPoint struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population float64 `json:"population"`
}

// StationFilter selects a subset of the working set. All predicates must hold:
// open date within [Start, End] inclusive, CityState equal to City when City
// is non-empty, and access code contained in AccessCodes. An empty AccessCodes
// set matches nothing, mirroring a fully deselected access picker.
type StationFilter struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	City        string    `json:"city,omitempty"`
	AccessCodes []string  `json:"access_codes"`
}

// StationCountPoint is one entry of the cumulative growth series.
type StationCountPoint struct {
	Date       time.Time `json:"date"`
	Cumulative int       `json:"cumulative"`
}

// MapView is the camera the frontend should apply to the map.
type MapView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
}
