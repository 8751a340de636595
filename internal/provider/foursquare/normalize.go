package foursquare

import (
	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
	"github.com/rehabcade/spin-to-eat-v2/platform/phone"
)

// Normalize maps raw listings into canonical records. Listings without a
// main geocode are dropped silently. IDs prefix the provider-native id
// with "fsq/" so they never collide with map-feature ids.
func Normalize(places []Place) []poi.Record {
	records := make([]poi.Record, 0, len(places))
	for _, place := range places {
		record, ok := normalizePlace(place)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func normalizePlace(place Place) (poi.Record, bool) {
	if place.FsqID == "" || place.Geocodes.Main == nil {
		return poi.Record{}, false
	}

	categories := make([]string, 0, len(place.Categories))
	for _, category := range place.Categories {
		if category.Name != "" {
			categories = append(categories, category.Name)
		}
	}

	amenity := ""
	if len(categories) > 0 {
		amenity = categories[0]
	}

	name := place.Name
	if name == "" {
		name = "Unnamed place"
	}

	return poi.Record{
		ID:         "fsq/" + place.FsqID,
		Name:       name,
		Lat:        place.Geocodes.Main.Latitude,
		Lon:        place.Geocodes.Main.Longitude,
		Categories: categories,
		Address: poi.JoinAddress(
			place.Location.Address,
			place.Location.Locality,
			place.Location.Region,
		),
		Phone:        phone.NormalizeE164(place.Tel),
		Website:      place.Website,
		OpeningHours: place.Hours.Display,
		Amenity:      amenity,
	}, true
}
