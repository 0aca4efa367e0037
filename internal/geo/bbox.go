package geo

import (
	"github.com/twpayne/go-geom"

	"github.com/sells-group/evdash/internal/model"
)

// BBox is a [minLon, minLat, maxLon, maxLat] envelope, GeoJSON bbox order.
type BBox [4]float64

// BoundingBox computes the envelope of a station set as a map-fit hint for
// the frontend. ok is false for an empty set.
func BoundingBox(stations []model.ChargingStation) (BBox, bool) {
	if len(stations) == 0 {
		return BBox{}, false
	}

	coords := make([]float64, 0, len(stations)*2)
	for _, s := range stations {
		coords = append(coords, s.Longitude, s.Latitude)
	}

	b := geom.NewBounds(geom.XY)
	b.Extend(geom.NewMultiPointFlat(geom.XY, coords))

	return BBox{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}, true
}
