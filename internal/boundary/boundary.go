// Package boundary handles the geographic boundary dataset. The counties file
// is consumed opaquely: validated and passed straight through to the map
// layer. A converter builds such a file from a Census TIGER/Line shapefile.
package boundary

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
)

// Load reads a GeoJSON/TopoJSON boundary file and returns it untransformed.
// The payload only has to be valid JSON; its structure belongs to the map
// renderer.
func Load(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "boundary: read %s", path)
	}
	if !json.Valid(data) {
		return nil, eris.Errorf("boundary: %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}
