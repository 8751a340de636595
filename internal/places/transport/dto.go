// Package transport defines the request and response shapes for the
// places search endpoint.
package transport

import (
	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/internal/poi"
)

// SearchRequest holds the raw query parameters. The caller supplies either
// explicit coordinates or a place name; "city" and "types" are accepted as
// legacy aliases for "place" and "categories".
type SearchRequest struct {
	Place      string   `form:"place" validate:"max=200"`
	City       string   `form:"city" validate:"max=200"`
	Lat        *float64 `form:"lat" validate:"omitempty,min=-90,max=90"`
	Lon        *float64 `form:"lon" validate:"omitempty,min=-180,max=180"`
	Radius     int      `form:"radius" validate:"omitempty,min=1"`
	Categories string   `form:"categories" validate:"max=500"`
	Types      string   `form:"types" validate:"max=500"`
	Limit      int      `form:"limit" validate:"omitempty,min=1"`
	OpenNow    *bool    `form:"open_now"`
}

// PlaceName returns the place query, preferring the canonical parameter.
func (r SearchRequest) PlaceName() string {
	if r.Place != "" {
		return r.Place
	}
	return r.City
}

// CategoryList returns the raw category parameter, preferring the
// canonical name over the legacy alias.
func (r SearchRequest) CategoryList() string {
	if r.Categories != "" {
		return r.Categories
	}
	return r.Types
}

// SearchResponse is the assembled result set returned to the caller.
// It is constructed once per request and never mutated after return.
type SearchResponse struct {
	Count       int          `json:"count"`
	Center      *geo.Point   `json:"center,omitempty"`
	Items       []poi.Record `json:"items"`
	Attribution string       `json:"attribution"`
	// CacheControl is the recommended Cache-Control header value; the
	// HTTP layer attaches it verbatim rather than serializing it.
	CacheControl string `json:"-"`
}

// ProviderInfoResponse reports which provider this deployment is pinned to
// and whether its credential is present. It never carries key material.
type ProviderInfoResponse struct {
	Provider             string `json:"provider"`
	CredentialConfigured bool   `json:"credentialConfigured"`
}
