package boundary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Passthrough(t *testing.T) {
	payload := `{"type":"Topology","objects":{"counties":{}}}`
	path := filepath.Join(t.TempDir(), "counties.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	raw, err := Load(path)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw), "payload is passed through untransformed")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestPolygonRings(t *testing.T) {
	points := []shp.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0},
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 5},
	}

	coords := polygonRings(2, []int32{0, 4}, points)
	require.Len(t, coords, 2, "one polygon per part")
	require.Len(t, coords[0], 1, "single ring per polygon")
	assert.Equal(t, [2]float64{0, 0}, coords[0][0][0])
	assert.Equal(t, [2]float64{5, 5}, coords[1][0][0])
}

func TestPolygonRings_Empty(t *testing.T) {
	assert.Nil(t, polygonRings(0, nil, nil))
}
