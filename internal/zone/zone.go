package zone

import (
	"strings"

	"github.com/velocart/delivery-coverage/internal/geometry"
)

// Kind selects the matching strategy of a zone or sub-area.
type Kind string

const (
	// KindCity matches on the canonical city name.
	KindCity Kind = "CITY"

	// KindRange matches on a circular geofence around the shop
	// location.
	KindRange Kind = "RANGE"
)

// Zone is a configured delivery capability. Zones are created and
// edited through the admin tool and only ever read here; a Zone value
// must be treated as immutable once handed to the matcher.
type Zone struct {
	ID           string
	Kind         Kind
	City         string
	ShopLocation geometry.Point
	RadiusKm     float64
	SubAreas     []SubArea
	IsActive     bool
	DisplayOrder int
}

// CityEquals compares the zone's canonical city against city
// case-insensitively, ignoring surrounding whitespace.
func (z *Zone) CityEquals(city string) bool {
	return strings.EqualFold(strings.TrimSpace(z.City), strings.TrimSpace(city))
}

// RangeEligible reports whether the zone's geofence may be matched
// against. A RANGE zone with an unset or non-finite shop location, or
// a non-positive radius, is skipped silently: bad admin data degrades
// coverage, it never fails a request.
func (z *Zone) RangeEligible() bool {
	return z.Kind == KindRange && rangeEligible(z.ShopLocation, z.RadiusKm)
}

// SubArea is a named refinement nested inside a zone. Its Kind
// discriminates the two shapes the admin tool can store: a CITY
// refinement carries Name and optional Bounds, a RANGE refinement
// carries its own center and radius.
type SubArea struct {
	Kind     Kind           `json:"kind"`
	Name     string         `json:"name,omitempty"`
	Bounds   *geometry.Rect `json:"bounds,omitempty"`
	Lat      float64        `json:"lat,omitempty"`
	Lon      float64        `json:"lon,omitempty"`
	RadiusKm float64        `json:"radius_km,omitempty"`
}

// Center returns the geofence center of a RANGE sub-area.
func (s *SubArea) Center() geometry.Point {
	return geometry.NewPoint(s.Lon, s.Lat)
}

// NameEquals compares the sub-area name against society
// case-insensitively, ignoring surrounding whitespace.
func (s *SubArea) NameEquals(society string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(society))
}

// RangeEligible reports whether the sub-area's geofence may be
// matched against. The eligibility rule is the same one applied to
// the parent zone.
func (s *SubArea) RangeEligible() bool {
	return s.Kind == KindRange && rangeEligible(s.Center(), s.RadiusKm)
}

func rangeEligible(center geometry.Point, radiusKm float64) bool {
	return center.IsFinite() && !center.IsZero() && radiusKm > 0
}
