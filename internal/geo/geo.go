// Package geo provides the canonical geographic types shared by the
// resolver, query builders, and normalizers.
package geo

import (
	"fmt"
	"math"
)

// metersPerDegreeLat is the approximate meridian arc length of one degree
// of latitude. Longitude degrees shrink with cos(latitude).
const metersPerDegreeLat = 111000.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point is a finite, in-range coordinate pair.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// BoundingBox is the canonical search region: south/west/north/east bounds.
// Every resolved region is normalized to this form regardless of whether it
// originated from a radius-around-point or a geocoder-returned box.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// Validate rejects degenerate or inverted boxes.
func (b BoundingBox) Validate() error {
	if b.South >= b.North {
		return fmt.Errorf("bounding box south (%v) must be less than north (%v)", b.South, b.North)
	}
	if b.West >= b.East {
		return fmt.Errorf("bounding box west (%v) must be less than east (%v)", b.West, b.East)
	}
	return nil
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{
		Lat: (b.South + b.North) / 2,
		Lon: (b.West + b.East) / 2,
	}
}

// Contains reports whether the point lies strictly inside the box.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat > b.South && p.Lat < b.North && p.Lon > b.West && p.Lon < b.East
}

// RadiusMeters approximates the box by a radius around its center: the
// larger of the two half-dimensions, in meters. Used when an upstream
// provider takes center+radius instead of a box.
func (b BoundingBox) RadiusMeters() float64 {
	center := b.Center()
	latHalf := (b.North - b.South) / 2 * metersPerDegreeLat
	lonHalf := (b.East - b.West) / 2 * metersPerDegreeLat * math.Cos(center.Lat*math.Pi/180)
	return math.Max(latHalf, lonHalf)
}

// BoxAround builds a bounding box around a point using an equirectangular
// approximation: the longitude half-width is widened by 1/cos(lat) to
// correct for meridian convergence. Accurate enough for city-scale radii
// (below roughly 50 km); not suitable for continental regions or the poles.
func BoxAround(center Point, radiusMeters float64) BoundingBox {
	latDeg := radiusMeters / metersPerDegreeLat
	lonDeg := radiusMeters / (metersPerDegreeLat * math.Cos(center.Lat*math.Pi/180))
	return BoundingBox{
		South: center.Lat - latDeg,
		West:  center.Lon - lonDeg,
		North: center.Lat + latDeg,
		East:  center.Lon + lonDeg,
	}
}
