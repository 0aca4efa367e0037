package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/model"
)

// StationsTable renders a working set back into tabular form with the source
// column headers, for CSV or XLSX export.
func StationsTable(stations []model.ChargingStation) *fetcher.Table {
	t := &fetcher.Table{
		Header: []string{
			colName, colAddress, colCity, colState, colZIP,
			colLatitude, colLongitude, colConnectors, colHours,
			colOpenDate, colFacility, colAccessCode, colPricing, colPhone,
		},
	}
	for _, s := range stations {
		t.Rows = append(t.Rows, []string{
			s.Name, s.StreetAddress, s.City, s.State, s.ZIP,
			strconv.FormatFloat(s.Latitude, 'f', -1, 64),
			strconv.FormatFloat(s.Longitude, 'f', -1, 64),
			s.ConnectorTypes, s.AccessHours,
			s.OpenDate.Format("2006-01-02"),
			s.FacilityType, s.AccessCode, s.Pricing, s.Phone,
		})
	}
	return t
}

// WriteCSV writes a table as CSV.
func WriteCSV(t *fetcher.Table, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return eris.Wrap(err, "dataset: write csv header")
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "dataset: write csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "dataset: flush csv")
}

// Export writes a working set to the given path, picking the format from the
// file extension: .xlsx for a spreadsheet, anything else CSV.
func Export(stations []model.ChargingStation, path string) error {
	t := StationsTable(stations)
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return fetcher.WriteXLSX(t, path, "stations")
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "dataset: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	return WriteCSV(t, f)
}
