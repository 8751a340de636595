// Package geocode resolves free-text place names to coordinates and
// bounding boxes via the OSM Nominatim service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

// Geocoder resolves a free-text place name to its single best match.
type Geocoder interface {
	Search(ctx context.Context, query string) (Place, error)
}

// Nominatim is a Geocoder backed by the OSM Nominatim search endpoint.
// Single attempt per call; Nominatim's usage policy forbids retries and
// requires an identifying User-Agent.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
	log       *logger.Logger
}

// NewNominatim creates a Nominatim geocoder client.
func NewNominatim(cfg config.GeocoderConfig, log *logger.Logger) *Nominatim {
	return &Nominatim{
		baseURL:   cfg.GetNominatimBaseURL(),
		userAgent: cfg.GetUserAgent(),
		client:    &http.Client{Timeout: cfg.GetUpstreamTimeout()},
		log:       log,
	}
}

// Search returns the single best match for the query. A transport failure
// or malformed payload is reported as unavailable, an empty result set as
// not found; the two are never conflated.
func (n *Nominatim) Search(ctx context.Context, query string) (Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", n.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, apperr.Wrap(apperr.KindInternal, "failed to build geocoder request", err)
	}

	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept-Language", "en")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.UpstreamError("nominatim", err)
		return Place{}, apperr.Wrap(apperr.KindUnavailable, "geocoding service unavailable", err).WithOp("geocode.search")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		n.log.Error("nominatim upstream error", "status", resp.StatusCode)
		return Place{}, apperr.Unavailable(fmt.Sprintf("geocoding service returned status %d", resp.StatusCode)).WithOp("geocode.search")
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		n.log.UpstreamError("nominatim", err)
		return Place{}, apperr.Wrap(apperr.KindUnavailable, "geocoding service returned malformed payload", err).WithOp("geocode.search")
	}

	if len(results) == 0 {
		return Place{}, apperr.NotFound("no match for place").WithOp("geocode.search")
	}

	return buildPlace(results[0])
}

func buildPlace(raw nominatimResult) (Place, error) {
	lat, err := strconv.ParseFloat(raw.Lat, 64)
	if err != nil {
		return Place{}, apperr.Wrap(apperr.KindUnavailable, "geocoder returned invalid latitude", err)
	}
	lon, err := strconv.ParseFloat(raw.Lon, 64)
	if err != nil {
		return Place{}, apperr.Wrap(apperr.KindUnavailable, "geocoder returned invalid longitude", err)
	}

	place := Place{
		Name:   raw.DisplayName,
		Center: geo.Point{Lat: lat, Lon: lon},
	}
	if !place.Center.Valid() {
		return Place{}, apperr.Unavailable("geocoder returned out-of-range coordinates")
	}

	// The boundingbox field is [south, north, west, east]; reorder into the
	// canonical south/west/north/east form and validate rather than trusting
	// the provider's ordering. A bad box degrades to a center-only result.
	if box, ok := parseBoundingBox(raw.BoundingBox); ok {
		place.Box = box
	}

	return place, nil
}

func parseBoundingBox(values []string) (*geo.BoundingBox, bool) {
	if len(values) != 4 {
		return nil, false
	}

	parsed := make([]float64, 4)
	for i, value := range values {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false
		}
		parsed[i] = f
	}

	box := geo.BoundingBox{
		South: parsed[0],
		North: parsed[1],
		West:  parsed[2],
		East:  parsed[3],
	}
	if err := box.Validate(); err != nil {
		return nil, false
	}

	return &box, true
}
