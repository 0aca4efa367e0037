package geo

import "strings"

// LegendClass buckets a station for the two-color map legend.
type LegendClass string

const (
	ClassTesla LegendClass = "tesla"
	ClassOther LegendClass = "other"
)

// brandMarker flags a station as "primary brand" when present in its
// connector-type text.
const brandMarker = "tesla"

// Legend fill colors (RGB).
var (
	ColorTesla = [3]int{255, 0, 0}
	ColorOther = [3]int{0, 255, 0}
)

// Classify buckets a station by its connector-type text. The match is a
// case-insensitive substring check.
func Classify(connectorTypes string) LegendClass {
	if strings.Contains(strings.ToLower(connectorTypes), brandMarker) {
		return ClassTesla
	}
	return ClassOther
}

// FillColor returns the legend RGB for a class.
func FillColor(class LegendClass) [3]int {
	if class == ClassTesla {
		return ColorTesla
	}
	return ColorOther
}
