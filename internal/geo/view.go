package geo

import (
	"math"

	"github.com/sells-group/evdash/internal/model"
)

// Default continental US camera, and the zoom tiers for a selected city and a
// manually entered point.
const (
	DefaultLatitude  = 40.0
	DefaultLongitude = -100.0
	DefaultZoom      = 3.0
	CityZoom         = 10.0
	PointZoom        = 12.0
)

// ManualCoords is a user-entered location. Magnitudes are entered unsigned;
// LatDir "S" and LonDir "W" flip the sign.
type ManualCoords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	LatDir    string  `json:"lat_dir"`
	LonDir    string  `json:"lon_dir"`
}

// Signed applies the hemisphere directions to the entered magnitudes.
func (m ManualCoords) Signed() Coordinate {
	lat, lon := m.Latitude, m.Longitude
	if m.LatDir == "S" {
		lat = -math.Abs(lat)
	}
	if m.LonDir == "W" {
		lon = -math.Abs(lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}
}

// DefaultView is the continental US camera.
func DefaultView() model.MapView {
	return model.MapView{
		Latitude:  DefaultLatitude,
		Longitude: DefaultLongitude,
		Zoom:      DefaultZoom,
	}
}

// ResolveView picks the map camera for a render pass. A selected city zooms
// to its looked-up coordinate; manual coordinates zoom tighter still. Callers
// clear the city selection before passing manual coordinates, so at most one
// of city/manual is set here. A city with no match falls back to the default
// view.
func ResolveView(stations []model.ChargingStation, city string, manual *ManualCoords) model.MapView {
	if city != "" {
		if c, ok := LookupCity(stations, city); ok {
			return model.MapView{Latitude: c.Latitude, Longitude: c.Longitude, Zoom: CityZoom}
		}
		return DefaultView()
	}

	if manual != nil {
		c := manual.Signed()
		return model.MapView{Latitude: c.Latitude, Longitude: c.Longitude, Zoom: PointZoom}
	}

	return DefaultView()
}
