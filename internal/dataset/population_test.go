package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/evdash/internal/fetcher"
)

func TestDecodePopulation_ShortNames(t *testing.T) {
	in := "lat,lng,population\n40.71,-74.01,8804190\n41.88,-87.63,2746388\nbad,-87.63,100\n"
	table, err := fetcher.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	points := DecodePopulation(table)
	require.Len(t, points, 2, "unparsable row is excluded")
	assert.Equal(t, 40.71, points[0].Latitude)
	assert.Equal(t, -74.01, points[0].Longitude)
	assert.Equal(t, 8804190.0, points[0].Population)
}

func TestDecodePopulation_RenamedColumns(t *testing.T) {
	in := "Latitude,Longitude,Population\n29.76,-95.37,2304580\n"
	table, err := fetcher.ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	points := DecodePopulation(table)
	require.Len(t, points, 1)
	assert.Equal(t, 2304580.0, points[0].Population)
}

func TestLoadPopulation_MissingFileIsFatal(t *testing.T) {
	_, err := LoadPopulation(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), fetcher.HTTPOptions{}, fetcher.FTPOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load population")
}

func TestLoadPopulation_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "population.csv")
	require.NoError(t, os.WriteFile(path, []byte("lat,lng,population\n40.0,-100.0,500\n"), 0o644))

	points, err := LoadPopulation(context.Background(), path, fetcher.HTTPOptions{}, fetcher.FTPOptions{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 500.0, points[0].Population)
}
