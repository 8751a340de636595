package service

import (
	"context"

	"github.com/rehabcade/spin-to-eat-v2/internal/geo"
	"github.com/rehabcade/spin-to-eat-v2/platform/apperr"
)

// DefaultRadiusMeters applies when the caller gives coordinates without a
// radius, and when a geocoded place comes back as a bare center point.
const DefaultRadiusMeters = 5000

// maxListingRadiusMeters caps the radius derived from a geocoder bounding
// box before it reaches the radius-based listing provider.
const maxListingRadiusMeters = 100000

// LocationQuery is the caller's location input: exactly one of Place or
// Coords must be populated.
type LocationQuery struct {
	Place        string
	Coords       *geo.Point
	RadiusMeters int
}

// resolvedRegion is the canonical search area in both shapes the
// providers need: a bounding box and an equivalent center+radius.
type resolvedRegion struct {
	Box          geo.BoundingBox
	Center       geo.Point
	RadiusMeters int
}

// resolve turns the location query into a canonical region. Coordinates
// get an equirectangular box around the point; place names go through the
// geocoder, adopting its bounding box when one is returned and
// synthesizing one from the center otherwise. The geocoder is only
// consulted on the place-name path.
func (s *Service) resolve(ctx context.Context, q LocationQuery) (resolvedRegion, error) {
	if q.Coords != nil {
		return s.resolveCoords(*q.Coords, q.RadiusMeters)
	}
	if q.Place != "" {
		return s.resolvePlace(ctx, q.Place, q.RadiusMeters)
	}
	return resolvedRegion{}, apperr.InvalidInput("provide either place=City,State or lat= and lon=")
}

func (s *Service) resolveCoords(center geo.Point, radius int) (resolvedRegion, error) {
	if !center.Valid() {
		return resolvedRegion{}, apperr.InvalidInput("lat/lon out of range")
	}
	if radius < 0 {
		return resolvedRegion{}, apperr.InvalidInput("radius must be positive")
	}
	if radius == 0 {
		radius = DefaultRadiusMeters
	}

	box := geo.BoxAround(center, float64(radius))
	if err := box.Validate(); err != nil {
		return resolvedRegion{}, apperr.Wrap(apperr.KindInternal, "degenerate search region", err)
	}

	return resolvedRegion{Box: box, Center: center, RadiusMeters: radius}, nil
}

func (s *Service) resolvePlace(ctx context.Context, place string, radius int) (resolvedRegion, error) {
	match, err := s.geocoder.Search(ctx, place)
	if err != nil {
		return resolvedRegion{}, err
	}

	if radius <= 0 {
		radius = DefaultRadiusMeters
	}

	if match.Box == nil {
		// Center-only match: synthesize a box the same way the
		// coordinate path does.
		return s.resolveCoords(match.Center, radius)
	}

	box := *match.Box
	if err := box.Validate(); err != nil {
		return resolvedRegion{}, apperr.Wrap(apperr.KindInternal, "degenerate search region", err)
	}

	derived := int(box.RadiusMeters())
	if derived <= 0 {
		derived = radius
	}
	if derived > maxListingRadiusMeters {
		derived = maxListingRadiusMeters
	}

	return resolvedRegion{Box: box, Center: match.Center, RadiusMeters: derived}, nil
}
