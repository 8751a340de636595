package overpass

import (
	"fmt"
	"strings"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
)

// queryTimeoutSeconds is the execution timeout requested from the Overpass
// interpreter itself, separate from the HTTP client timeout.
const queryTimeoutSeconds = 25

// BuildQuery emits an Overpass QL query matching nodes, ways, and relations
// whose amenity tag equals any of the given values inside the bounding box.
// One union member per element type per amenity value gives true boolean-OR
// semantics; "out center" requests center coordinates for way/relation
// geometry alongside full tags.
func BuildQuery(box geo.BoundingBox, amenities []string) string {
	bbox := fmt.Sprintf("(%g,%g,%g,%g)", box.South, box.West, box.North, box.East)

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", queryTimeoutSeconds)
	for _, amenity := range amenities {
		filter := fmt.Sprintf("[\"amenity\"=%q]", amenity)
		for _, elem := range []string{"node", "way", "relation"} {
			fmt.Fprintf(&b, "  %s%s%s;\n", elem, filter, bbox)
		}
	}
	b.WriteString(");\nout center tags;\n")

	return b.String()
}
