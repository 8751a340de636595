// Package poi defines the canonical point-of-interest record produced by
// the provider normalizers and consumed by the result assembler.
package poi

import "strings"

// Record is the canonical POI representation. IDs combine the provider
// kind with the provider-native identifier (e.g. "way/123", "fsq/abc")
// so they stay stable across repeated calls against the same upstream data.
type Record struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	Categories   []string `json:"categories"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	OpeningHours string   `json:"opening_hours"`
	Amenity      string   `json:"amenity"`
}

// JoinAddress concatenates address sub-fields in the given order, skipping
// absent fields so the result never contains empty components or stray commas.
func JoinAddress(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			present = append(present, trimmed)
		}
	}
	return strings.Join(present, ", ")
}
