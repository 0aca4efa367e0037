package boundary

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// featureCollection is the minimal GeoJSON output shape.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
	Geometry   geometry          `json:"geometry"`
}

type geometry struct {
	Type        string           `json:"type"`
	Coordinates [][][][2]float64 `json:"coordinates"`
}

// ConvertShapefile reads a TIGER/Line polygon shapefile and writes it as a
// GeoJSON FeatureCollection usable as the dashboard boundary layer. All
// attribute fields are carried over as string properties. Non-polygon shapes
// are skipped.
func ConvertShapefile(shpPath, outPath string) (int, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return 0, eris.Wrapf(err, "boundary: open shapefile %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	fieldNames := make([]string, len(fields))
	for i, f := range fields {
		fieldNames[i] = strings.TrimRight(f.String(), "\x00")
	}

	fc := featureCollection{Type: "FeatureCollection"}
	for reader.Next() {
		_, shape := reader.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		coords := polygonRings(poly.NumParts, poly.Parts, poly.Points)
		if len(coords) == 0 {
			continue
		}

		props := make(map[string]string, len(fieldNames))
		for i, name := range fieldNames {
			props[name] = strings.TrimSpace(reader.Attribute(i))
		}

		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   geometry{Type: "MultiPolygon", Coordinates: coords},
		})
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return 0, eris.Wrap(err, "boundary: marshal feature collection")
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, eris.Wrapf(err, "boundary: write %s", outPath)
	}

	zap.L().Info("shapefile converted",
		zap.String("shapefile", shpPath),
		zap.String("out", outPath),
		zap.Int("features", len(fc.Features)),
	)
	return len(fc.Features), nil
}

// polygonRings splits a shapefile polygon's flat point list into MultiPolygon
// coordinates: one single-ring polygon per part.
func polygonRings(numParts int32, parts []int32, points []shp.Point) [][][][2]float64 {
	if numParts == 0 || len(points) == 0 {
		return nil
	}

	coords := make([][][][2]float64, 0, numParts)
	for i := int32(0); i < numParts; i++ {
		start := parts[i]
		end := int32(len(points))
		if i+1 < numParts {
			end = parts[i+1]
		}
		if end <= start {
			continue
		}

		ring := make([][2]float64, 0, end-start)
		for j := start; j < end; j++ {
			ring = append(ring, [2]float64{points[j].X, points[j].Y})
		}
		coords = append(coords, [][][2]float64{ring})
	}
	return coords
}
