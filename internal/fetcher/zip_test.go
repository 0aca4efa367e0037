package fetcher

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestZIP(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "archive.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range entries {
		fw, err := w.Create(name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractZIP(t *testing.T) {
	zipPath := writeTestZIP(t, map[string]string{
		"data/ev_stations.csv": "Station Name\nX\n",
		"readme.txt":           "notes",
	})

	dest := t.TempDir()
	paths, err := ExtractZIP(zipPath, dest)
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	data, err := os.ReadFile(filepath.Join(dest, "ev_stations.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Station Name")
}

func TestExtractZIPByExt(t *testing.T) {
	zipPath := writeTestZIP(t, map[string]string{
		"notes.txt":            "notes",
		"dump/EV_Stations.CSV": "Station Name\nX\n",
	})

	path, err := ExtractZIPByExt(zipPath, ".csv", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "EV_Stations.CSV", filepath.Base(path))
}

func TestExtractZIPByExt_NotFound(t *testing.T) {
	zipPath := writeTestZIP(t, map[string]string{"notes.txt": "notes"})

	_, err := ExtractZIPByExt(zipPath, ".csv", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .csv file found")
}
