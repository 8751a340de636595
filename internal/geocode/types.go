package geocode

import "github.com/rehabcade/spin-to-eat-v2/internal/geo"

// Place is the normalized best match for a free-text place query.
type Place struct {
	Name   string
	Center geo.Point
	// Box is the geocoder-returned bounding box, nil when the provider
	// returned only a center point.
	Box *geo.BoundingBox
}

// nominatimResult mirrors the relevant parts of the OSM search payload.
// Coordinates and bounds arrive as strings and must be parsed.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	// BoundingBox is ordered [south, north, west, east], which is not
	// the canonical order; it must be reordered and validated.
	BoundingBox []string `json:"boundingbox"`
}
