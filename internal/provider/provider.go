// Package provider defines the interface between the places pipeline and
// the upstream POI data sources. Provider choice is fixed per deployment;
// there is no cross-provider fallback within one invocation.
package provider

import (
	"context"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
)

// Kind identifies an upstream POI data source.
type Kind string

const (
	// KindOverpass is the tag-based OSM map feature provider.
	KindOverpass Kind = "overpass"
	// KindFoursquare is the listing-based places provider.
	KindFoursquare Kind = "foursquare"
)

// Query is the provider-independent search specification. The resolver
// always populates both the box form and the center+radius form; each
// provider picks the shape its API takes.
type Query struct {
	Box          geo.BoundingBox
	Center       geo.Point
	RadiusMeters int
	// Categories are caller-facing tokens (restaurant, cafe, ...), already
	// defaulted to a non-empty list. Each provider translates them into
	// its native vocabulary.
	Categories []string
	// Limit caps the number of upstream results where the provider
	// supports it. Zero means provider default.
	Limit int
	// OpenNow restricts results to currently open venues on providers
	// that track opening state.
	OpenNow bool
}

// Searcher executes a spatial search against one upstream provider and
// returns canonical records. Implementations make exactly one attempt per
// call and surface non-success statuses as typed upstream errors.
type Searcher interface {
	Kind() Kind
	Search(ctx context.Context, q Query) ([]poi.Record, error)
	// Attribution names the data sources behind the records.
	Attribution() string
	// CacheControl is the response caching directive appropriate to the
	// provider's rate-limit sensitivity.
	CacheControl() string
	// CredentialConfigured reports whether any credential the provider
	// requires is present. Providers without credentials return true.
	CredentialConfigured() bool
}

// UpstreamDetail is the bounded diagnostic excerpt attached to upstream
// errors. Bodies are truncated before they reach this struct.
type UpstreamDetail struct {
	Status int    `json:"status"`
	Body   string `json:"body,omitempty"`
}

// TruncateBody bounds an upstream response body for diagnostics.
func TruncateBody(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen])
	}
	return string(body)
}
