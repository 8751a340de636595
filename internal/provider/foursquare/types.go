package foursquare

// searchResponse is the v3 places search envelope.
type searchResponse struct {
	Results []Place `json:"results"`
}

// Place is one raw business listing. Coordinates live inside the nested
// geocodes object and may be absent; everything else is optional too.
type Place struct {
	FsqID      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	Geocodes   Geocodes   `json:"geocodes"`
	Location   Location   `json:"location"`
	Tel        string     `json:"tel"`
	Website    string     `json:"website"`
	Hours      Hours      `json:"hours"`
}

// Category is a provider-native category with a numeric code.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Geocodes carries the listing's coordinate variants; Main is the one
// normalization uses.
type Geocodes struct {
	Main *LatLng `json:"main"`
}

// LatLng is a coordinate pair in the listing schema.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the listing's structured address.
type Location struct {
	Address          string `json:"address"`
	Locality         string `json:"locality"`
	Region           string `json:"region"`
	Postcode         string `json:"postcode"`
	FormattedAddress string `json:"formatted_address"`
}

// Hours is the listing's opening-hours summary.
type Hours struct {
	Display string `json:"display"`
	OpenNow bool   `json:"open_now"`
}
