package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/evdash/internal/model"
)

func testStations() []model.ChargingStation {
	return []model.ChargingStation{
		{Name: "A", CityState: "Austin, TX", Latitude: 30.2672, Longitude: -97.7431},
		{Name: "B", CityState: "South Austin, TX", Latitude: 30.2000, Longitude: -97.8000},
		{Name: "C", CityState: "Seattle, WA", Latitude: 47.6089, Longitude: -122.3401},
	}
}

func TestLookupCity_FirstMatchInDatasetOrder(t *testing.T) {
	c, ok := LookupCity(testStations(), "Austin, TX")
	require.True(t, ok)
	assert.Equal(t, 30.2672, c.Latitude)
	assert.Equal(t, -97.7431, c.Longitude)
}

func TestLookupCity_SubstringSemantics(t *testing.T) {
	// "South Austin, TX" also contains "Austin, TX"; with the exact-city
	// station removed, the substring match finds it.
	stations := testStations()[1:]
	c, ok := LookupCity(stations, "Austin, TX")
	require.True(t, ok)
	assert.Equal(t, 30.2000, c.Latitude)
}

func TestLookupCity_NotFound(t *testing.T) {
	_, ok := LookupCity(testStations(), "Boise, ID")
	assert.False(t, ok)

	_, ok = LookupCity(nil, "Austin, TX")
	assert.False(t, ok)
}

func TestManualCoords_Signed(t *testing.T) {
	tests := []struct {
		name    string
		in      ManualCoords
		wantLat float64
		wantLon float64
	}{
		{"north east", ManualCoords{Latitude: 30, Longitude: 97, LatDir: "N", LonDir: "E"}, 30, 97},
		{"south west", ManualCoords{Latitude: 30, Longitude: 97, LatDir: "S", LonDir: "W"}, -30, -97},
		{"already negative west", ManualCoords{Latitude: 30, Longitude: -97, LatDir: "N", LonDir: "W"}, 30, -97},
		{"southern already negative", ManualCoords{Latitude: -30, Longitude: 97, LatDir: "S", LonDir: "E"}, -30, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in.Signed()
			assert.Equal(t, tt.wantLat, c.Latitude)
			assert.Equal(t, tt.wantLon, c.Longitude)
		})
	}
}

func TestResolveView_Default(t *testing.T) {
	v := ResolveView(testStations(), "", nil)
	assert.Equal(t, model.MapView{Latitude: 40, Longitude: -100, Zoom: 3}, v)
}

func TestResolveView_City(t *testing.T) {
	v := ResolveView(testStations(), "Seattle, WA", nil)
	assert.Equal(t, model.MapView{Latitude: 47.6089, Longitude: -122.3401, Zoom: 10}, v)
}

func TestResolveView_CityNotFoundFallsBack(t *testing.T) {
	v := ResolveView(testStations(), "Boise, ID", nil)
	assert.Equal(t, DefaultView(), v)
}

func TestResolveView_ManualCoords(t *testing.T) {
	v := ResolveView(testStations(), "", &ManualCoords{Latitude: 29.76, Longitude: 95.37, LatDir: "N", LonDir: "W"})
	assert.Equal(t, model.MapView{Latitude: 29.76, Longitude: -95.37, Zoom: 12}, v)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassTesla, Classify("J1772 TESLA"))
	assert.Equal(t, ClassTesla, Classify("Tesla Supercharger"))
	assert.Equal(t, ClassOther, Classify("J1772 CHADEMO"))
	assert.Equal(t, ClassOther, Classify("Unknown Connector"))
}

func TestFillColor(t *testing.T) {
	assert.Equal(t, [3]int{255, 0, 0}, FillColor(ClassTesla))
	assert.Equal(t, [3]int{0, 255, 0}, FillColor(ClassOther))
}

func TestBoundingBox(t *testing.T) {
	box, ok := BoundingBox(testStations())
	require.True(t, ok)
	assert.Equal(t, BBox{-122.3401, 30.2000, -97.7431, 47.6089}, box)
}

func TestBoundingBox_Empty(t *testing.T) {
	_, ok := BoundingBox(nil)
	assert.False(t, ok)
}
