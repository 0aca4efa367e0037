package dataset

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/evdash/internal/fetcher"
)

func TestStationsTable_RoundTrip(t *testing.T) {
	stations := loadFixture(t)

	table := StationsTable(stations)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(table, &buf))

	reparsed, err := fetcher.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, Normalize(DecodeStations(reparsed)), stations)
}

func TestExport_XLSX(t *testing.T) {
	stations := loadFixture(t)
	path := filepath.Join(t.TempDir(), "filtered.xlsx")

	require.NoError(t, Export(stations, path))

	table, err := fetcher.ReadXLSX(path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, len(stations))
}

func TestExport_CSV(t *testing.T) {
	stations := loadFixture(t)
	path := filepath.Join(t.TempDir(), "filtered.csv")

	require.NoError(t, Export(stations, path))

	stations2, err := LoadStations(t.Context(), path, fetcher.HTTPOptions{}, fetcher.FTPOptions{})
	require.NoError(t, err)
	assert.Equal(t, stations, stations2)
}
