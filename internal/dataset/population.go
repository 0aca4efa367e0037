package dataset

import (
	"context"
	"strconv"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/evdash/internal/fetcher"
	"github.com/sells-group/evdash/internal/model"
)

// Population source columns. The upstream file ships lowercase short names;
// already-renamed exports are accepted too.
var (
	popLatColumns = []string{"lat", "Latitude"}
	popLonColumns = []string{"lng", "Longitude"}
	popColumns    = []string{"population", "Population"}
)

// LoadPopulation reads the population reference dataset. Rows with unparsable
// numbers are silently excluded; an unreadable source is fatal.
func LoadPopulation(ctx context.Context, src string, httpOpts fetcher.HTTPOptions, ftpOpts fetcher.FTPOptions) ([]model.PopulationPoint, error) {
	table, err := loadTable(ctx, src, httpOpts, ftpOpts)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: load population from %s", src)
	}

	points := DecodePopulation(table)
	zap.L().Debug("population loaded",
		zap.String("source", src),
		zap.Int("points", len(points)),
	)
	return points, nil
}

// DecodePopulation projects a raw table onto Latitude/Longitude/Population.
func DecodePopulation(t *fetcher.Table) []model.PopulationPoint {
	latIdx := firstColumn(t, popLatColumns)
	lonIdx := firstColumn(t, popLonColumns)
	popIdx := firstColumn(t, popColumns)

	points := make([]model.PopulationPoint, 0, len(t.Rows))
	for _, row := range t.Rows {
		lat, latErr := strconv.ParseFloat(fetcher.Field(row, latIdx), 64)
		lon, lonErr := strconv.ParseFloat(fetcher.Field(row, lonIdx), 64)
		pop, popErr := strconv.ParseFloat(fetcher.Field(row, popIdx), 64)
		if latErr != nil || lonErr != nil || popErr != nil {
			continue
		}
		points = append(points, model.PopulationPoint{
			Latitude:   lat,
			Longitude:  lon,
			Population: pop,
		})
	}
	return points
}

func firstColumn(t *fetcher.Table, names []string) int {
	idx := t.ColumnIndex(names...)
	for _, name := range names {
		if idx[name] >= 0 {
			return idx[name]
		}
	}
	return -1
}
