package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/evdash/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testStations() []model.ChargingStation {
	return []model.ChargingStation{
		{Name: "A", CityState: "Austin, TX", AccessCode: "public", OpenDate: day(2019, 5, 1)},
		{Name: "B", CityState: "Austin, TX", AccessCode: "private", OpenDate: day(2019, 5, 1)},
		{Name: "C", CityState: "Seattle, WA", AccessCode: "public", OpenDate: day(2020, 11, 15)},
		{Name: "D", CityState: "Dallas, TX", AccessCode: "public", OpenDate: day(2021, 6, 30)},
	}
}

func names(stations []model.ChargingStation) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.Name
	}
	return out
}

func TestFilter_DateRange(t *testing.T) {
	got := Filter(testStations(), model.StationFilter{
		Start:       day(2019, 1, 1),
		End:         day(2020, 12, 31),
		AccessCodes: []string{"public", "private"},
	})
	assert.Equal(t, []string{"A", "B", "C"}, names(got))
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	got := Filter(testStations(), model.StationFilter{
		Start:       day(2019, 5, 1),
		End:         day(2021, 6, 30),
		AccessCodes: []string{"public", "private"},
	})
	assert.Len(t, got, 4, "both endpoints are inclusive")
}

func TestFilter_DegenerateRange(t *testing.T) {
	// Default UI state: earliest date to earliest date.
	got := Filter(testStations(), model.StationFilter{
		Start:       day(2019, 5, 1),
		End:         day(2019, 5, 1),
		AccessCodes: []string{"public", "private"},
	})
	assert.Equal(t, []string{"A", "B"}, names(got))

	// A degenerate range off any open date matches nothing.
	got = Filter(testStations(), model.StationFilter{
		Start:       day(2019, 5, 2),
		End:         day(2019, 5, 2),
		AccessCodes: []string{"public", "private"},
	})
	assert.Empty(t, got)
}

func TestFilter_City(t *testing.T) {
	got := Filter(testStations(), model.StationFilter{
		Start:       day(2019, 1, 1),
		End:         day(2022, 1, 1),
		City:        "Austin, TX",
		AccessCodes: []string{"public", "private"},
	})
	assert.Equal(t, []string{"A", "B"}, names(got))

	// Exact match only: no substring semantics here.
	got = Filter(testStations(), model.StationFilter{
		Start:       day(2019, 1, 1),
		End:         day(2022, 1, 1),
		City:        "Austin",
		AccessCodes: []string{"public", "private"},
	})
	assert.Empty(t, got)
}

func TestFilter_AccessCodes(t *testing.T) {
	got := Filter(testStations(), model.StationFilter{
		Start:       day(2019, 1, 1),
		End:         day(2022, 1, 1),
		AccessCodes: []string{"private"},
	})
	assert.Equal(t, []string{"B"}, names(got))

	// Fully deselected access picker matches nothing.
	got = Filter(testStations(), model.StationFilter{
		Start: day(2019, 1, 1),
		End:   day(2022, 1, 1),
	})
	assert.Empty(t, got)
}

func TestFilter_Composable(t *testing.T) {
	all := []string{"public", "private"}
	wide := model.StationFilter{Start: day(2019, 1, 1), End: day(2022, 1, 1), AccessCodes: all}
	narrow := model.StationFilter{Start: day(2019, 1, 1), End: day(2022, 1, 1), City: "Austin, TX", AccessCodes: all}

	direct := Filter(testStations(), narrow)
	staged := Filter(Filter(testStations(), wide), narrow)
	assert.Equal(t, direct, staged)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := testStations()
	_ = Filter(in, model.StationFilter{Start: day(2019, 1, 1), End: day(2022, 1, 1), AccessCodes: []string{"public"}})
	assert.Equal(t, testStations(), in)
}

func TestCountSeries(t *testing.T) {
	series := CountSeries(testStations())

	require.Len(t, series, 3, "one entry per distinct open date")
	assert.Equal(t, day(2019, 5, 1), series[0].Date)
	assert.Equal(t, 2, series[0].Cumulative)
	assert.Equal(t, 3, series[1].Cumulative)
	assert.Equal(t, 4, series[2].Cumulative)
}

func TestCountSeries_MonotonicAndTotals(t *testing.T) {
	stations := testStations()
	series := CountSeries(stations)

	prev := 0
	for _, p := range series {
		assert.GreaterOrEqual(t, p.Cumulative, prev)
		prev = p.Cumulative
	}
	assert.Equal(t, len(stations), series[len(series)-1].Cumulative)
}

func TestCountSeries_Empty(t *testing.T) {
	assert.Empty(t, CountSeries(nil))
}

func TestAccessCodes(t *testing.T) {
	assert.Equal(t, []string{"private", "public"}, AccessCodes(testStations()))
}

func TestCities(t *testing.T) {
	assert.Equal(t, []string{"Austin, TX", "Dallas, TX", "Seattle, WA"}, Cities(testStations()))
}

func TestDateBounds(t *testing.T) {
	min, max, ok := DateBounds(testStations())
	require.True(t, ok)
	assert.Equal(t, day(2019, 5, 1), min)
	assert.Equal(t, day(2021, 6, 30), max)

	_, _, ok = DateBounds(nil)
	assert.False(t, ok)
}
