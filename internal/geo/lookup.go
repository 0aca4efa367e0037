// Package geo resolves city coordinates, map camera placement, and the
// two-color station legend.
package geo

import (
	"strings"

	"github.com/sells-group/evdash/internal/model"
)

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LookupCity returns the coordinate of the first station in dataset order
// whose CityState contains cityKey as a substring. The substring semantics
// are deliberate: "Austin, TX" also matches "South Austin, TX".
func LookupCity(stations []model.ChargingStation, cityKey string) (Coordinate, bool) {
	for _, s := range stations {
		if strings.Contains(s.CityState, cityKey) {
			return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}, true
		}
	}
	return Coordinate{}, false
}
