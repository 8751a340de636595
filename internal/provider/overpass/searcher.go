package overpass

import (
	"context"

	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/config"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

const attribution = "Data © OpenStreetMap contributors (via Overpass & Nominatim)"

// OSM mirrors cache well and the data changes slowly; a generous edge
// window keeps load off the free interpreter.
const cacheControl = "s-maxage=300, stale-while-revalidate=600"

// Searcher adapts the Overpass client to the provider interface.
type Searcher struct {
	client *Client
}

// NewSearcher creates the tag-based provider.
func NewSearcher(cfg config.ProviderConfig, log *logger.Logger) *Searcher {
	return &Searcher{client: NewClient(cfg, log)}
}

func (s *Searcher) Kind() provider.Kind { return provider.KindOverpass }

// Search runs a bounding-box amenity query and normalizes the results.
// Caller categories are used directly as amenity values; the open-now
// flag has no Overpass equivalent and is ignored.
func (s *Searcher) Search(ctx context.Context, q provider.Query) ([]poi.Record, error) {
	query := BuildQuery(q.Box, q.Categories)
	elements, err := s.client.Execute(ctx, query)
	if err != nil {
		return nil, err
	}
	return Normalize(elements), nil
}

func (s *Searcher) Attribution() string { return attribution }

func (s *Searcher) CacheControl() string { return cacheControl }

// CredentialConfigured always reports true: Overpass needs no credential.
func (s *Searcher) CredentialConfigured() bool { return true }

var _ provider.Searcher = (*Searcher)(nil)
