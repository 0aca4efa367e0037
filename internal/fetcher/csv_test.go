package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "Name,City,State\nstation a, Austin ,TX\nstation b,Dallas\n"
	table, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "City", "State"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Austin", table.Rows[0][1], "fields are trimmed")
	assert.Len(t, table.Rows[1], 2, "short rows are accepted")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty file")
}

func TestColumnIndex(t *testing.T) {
	table := &Table{Header: []string{"Station Name", " ZIP ", "Latitude"}}
	idx := table.ColumnIndex("station name", "ZIP", "Longitude")

	assert.Equal(t, 0, idx["station name"], "lookup is case-insensitive")
	assert.Equal(t, 1, idx["ZIP"], "header whitespace is ignored")
	assert.Equal(t, -1, idx["Longitude"], "missing column maps to -1")
}

func TestField(t *testing.T) {
	row := []string{"a", "b"}
	assert.Equal(t, "b", Field(row, 1))
	assert.Equal(t, "", Field(row, 5))
	assert.Equal(t, "", Field(row, -1))
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/ev_stations.csv"))
	assert.True(t, IsRemote("ftp://host/pub/data.zip"))
	assert.False(t, IsRemote("/var/data/ev_stations.csv"))
	assert.False(t, IsRemote("ev_stations.csv"))
}

func TestForURL_UnsupportedScheme(t *testing.T) {
	_, err := ForURL("gopher://example.com/x", HTTPOptions{}, FTPOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scheme")
}
