package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// Table is a decoded tabular file: one header row plus data rows. Rows may
// have fewer fields than the header; consumers index defensively.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadCSV decodes a CSV stream into a Table. The first row is the header.
// Rows with a variable field count are accepted; fields are trimmed.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var t Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}

		for i, field := range record {
			record[i] = strings.TrimSpace(field)
		}

		if t.Header == nil {
			t.Header = record
			continue
		}
		t.Rows = append(t.Rows, record)
	}

	if t.Header == nil {
		return nil, eris.New("csv: empty file")
	}

	return &t, nil
}

// ColumnIndex returns a case-insensitive header lookup for a Table.
// Missing columns map to -1.
func (t *Table) ColumnIndex(names ...string) map[string]int {
	idx := make(map[string]int, len(names))
	for _, name := range names {
		idx[name] = -1
	}
	for i, h := range t.Header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				idx[name] = i
			}
		}
	}
	return idx
}

// Field returns the row value at column i, or "" when the row is short or the
// column is absent.
func Field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
