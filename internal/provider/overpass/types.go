package overpass

// response is the Overpass interpreter JSON envelope.
type response struct {
	Elements []Element `json:"elements"`
}

// Element is one raw OSM map feature. Nodes carry lat/lon directly;
// ways and relations carry a precomputed center point instead, and the
// source feed routinely omits geometry for some relations. Coordinate
// fields are pointers so absence is distinguishable from zero.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *Center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

// Center is the computed center point of a way or relation.
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
