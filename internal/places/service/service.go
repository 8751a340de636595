// Package service implements the location-resolution-and-normalization
// pipeline: resolve the search region, build the provider query, execute
// it, and assemble the randomized result set.
package service

import (
	"context"

	"github.com/rehabcade/spin-to-eat-v2/internal/geocode"
	"github.com/rehabcade/spin-to-eat-v2/internal/places/transport"
	"github.com/rehabcade/spin-to-eat-v2/internal/provider"
	"github.com/rehabcade/spin-to-eat-v2/platform/logger"
)

// SearchInput is the validated pipeline input, built by the handler from
// the transport request.
type SearchInput struct {
	Location   LocationQuery
	Categories []string
	Limit      int
	OpenNow    bool
}

// Service runs the search pipeline. Every invocation is a stateless,
// strictly sequential chain of at most two upstream calls (geocode, then
// search); concurrent invocations share nothing mutable.
type Service struct {
	geocoder geocode.Geocoder
	searcher provider.Searcher
	log      *logger.Logger
}

// New creates the places service. The provider is fixed per deployment.
func New(geocoder geocode.Geocoder, searcher provider.Searcher, log *logger.Logger) *Service {
	return &Service{geocoder: geocoder, searcher: searcher, log: log}
}

// Search resolves the region, queries the configured provider, and
// assembles the shuffled result set. Zero usable results is a valid
// outcome, distinct from an upstream fetch failure.
func (s *Service) Search(ctx context.Context, in SearchInput) (transport.SearchResponse, error) {
	region, err := s.resolve(ctx, in.Location)
	if err != nil {
		return transport.SearchResponse{}, err
	}

	records, err := s.searcher.Search(ctx, provider.Query{
		Box:          region.Box,
		Center:       region.Center,
		RadiusMeters: region.RadiusMeters,
		Categories:   in.Categories,
		Limit:        in.Limit,
		OpenNow:      in.OpenNow,
	})
	if err != nil {
		return transport.SearchResponse{}, err
	}

	items := assemble(records, in.Limit)
	center := region.Center

	return transport.SearchResponse{
		Count:        len(items),
		Center:       &center,
		Items:        items,
		Attribution:  s.searcher.Attribution(),
		CacheControl: s.searcher.CacheControl(),
	}, nil
}

// ProviderInfo reports the configured provider kind and whether its
// credential is present, without exposing any key material.
func (s *Service) ProviderInfo() transport.ProviderInfoResponse {
	return transport.ProviderInfoResponse{
		Provider:             string(s.searcher.Kind()),
		CredentialConfigured: s.searcher.CredentialConfigured(),
	}
}
