package foursquare

import (
	"context"
	"strings"

	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

const attribution = "Powered by Foursquare. Geocoding © OpenStreetMap contributors (Nominatim)"

// Listing data is fresher than map features and the API is metered, so
// the edge window is shorter than the Overpass one.
const cacheControl = "s-maxage=120, stale-while-revalidate=300"

// categoryIDs maps the caller-facing default category tokens to v3
// category codes. Tokens that already look like numeric codes pass
// through untranslated; anything else unknown is dropped.
var categoryIDs = map[string]string{
	"restaurant": "13065",
	"cafe":       "13032",
	"fast_food":  "13145",
	"bar":        "13003",
	"pub":        "13018",
}

// Searcher adapts the Foursquare client to the provider interface.
type Searcher struct {
	client *Client
}

// NewSearcher creates the listing-based provider.
func NewSearcher(cfg config.ProviderConfig, log *logger.Logger) *Searcher {
	return &Searcher{client: NewClient(cfg, log)}
}

func (s *Searcher) Kind() provider.Kind { return provider.KindFoursquare }

// Search runs a center+radius listing search and normalizes the results.
func (s *Searcher) Search(ctx context.Context, q provider.Query) ([]poi.Record, error) {
	params := SearchParams{
		Center:       q.Center,
		RadiusMeters: q.RadiusMeters,
		CategoryIDs:  TranslateCategories(q.Categories),
		Limit:        q.Limit,
		OpenNow:      q.OpenNow,
	}

	places, err := s.client.Execute(ctx, params)
	if err != nil {
		return nil, err
	}
	return Normalize(places), nil
}

// TranslateCategories converts caller tokens to provider category codes.
// Unknown tokens never abort the pipeline: numeric tokens pass through
// unchanged and the rest are dropped, falling back to the full default
// table when nothing survives.
func TranslateCategories(tokens []string) []string {
	ids := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if id, ok := categoryIDs[token]; ok {
			ids = append(ids, id)
			continue
		}
		if isNumeric(token) {
			ids = append(ids, token)
		}
	}

	if len(ids) == 0 {
		for _, token := range []string{"restaurant", "cafe", "fast_food", "bar", "pub"} {
			ids = append(ids, categoryIDs[token])
		}
	}

	return ids
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) == -1
}

func (s *Searcher) Attribution() string { return attribution }

func (s *Searcher) CacheControl() string { return cacheControl }

// CredentialConfigured reports key presence without exposing any part of it.
func (s *Searcher) CredentialConfigured() bool { return s.client.HasCredential() }

var _ provider.Searcher = (*Searcher)(nil)
