package overpass

import (
	"fmt"

	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
	"github.com/rehabcade/spin-to-eat-v2/platform/phone"
)

// Normalize maps raw Overpass elements into canonical records. Elements
// without a usable coordinate pair are dropped silently; record IDs are
// the OSM element type plus native id and never change between calls.
func Normalize(elements []Element) []poi.Record {
	records := make([]poi.Record, 0, len(elements))
	for _, el := range elements {
		record, ok := normalizeElement(el)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func normalizeElement(el Element) (poi.Record, bool) {
	lat, lon, ok := coordinates(el)
	if !ok {
		return poi.Record{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	name := tags["name"]
	if name == "" {
		name = "Unnamed place"
	}

	categories := []string{}
	if cuisine := tags["cuisine"]; cuisine != "" {
		categories = append(categories, cuisine)
	}

	return poi.Record{
		ID:   fmt.Sprintf("%s/%d", el.Type, el.ID),
		Name: name,
		Lat:  lat,
		Lon:  lon,
		// Overpass tags one cuisine value per feature; the canonical
		// record still carries a list to match the listing provider.
		Categories: categories,
		Address: poi.JoinAddress(
			tags["addr:housenumber"],
			tags["addr:street"],
			firstTag(tags, "addr:city", "addr:town", "addr:village"),
			tags["addr:state"],
		),
		Phone:        phone.NormalizeE164(firstTag(tags, "phone", "contact:phone")),
		Website:      firstTag(tags, "website", "contact:website"),
		OpeningHours: tags["opening_hours"],
		Amenity:      tags["amenity"],
	}, true
}

// coordinates extracts the usable coordinate pair: direct lat/lon for
// nodes, the precomputed center for ways and relations.
func coordinates(el Element) (float64, float64, bool) {
	if el.Type == "way" || el.Type == "relation" {
		if el.Center == nil {
			return 0, 0, false
		}
		return el.Center.Lat, el.Center.Lon, true
	}
	if el.Lat == nil || el.Lon == nil {
		return 0, 0, false
	}
	return *el.Lat, *el.Lon, true
}

func firstTag(tags map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := tags[key]; value != "" {
			return value
		}
	}
	return ""
}
