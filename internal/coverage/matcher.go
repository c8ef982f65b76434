package coverage

import (
	"strings"

	"github.com/velocart/delivery-coverage/internal/geometry"
	"github.com/velocart/delivery-coverage/internal/zone"
)

// MatchResult is the outcome of evaluating one zone against one
// query. On a miss, Misses carries a diagnostic for every eligible
// geofence the point fell outside of.
type MatchResult struct {
	Hit    bool
	Via    Via
	Misses []NearestMiss
}

// MatchZone evaluates one zone against one query.
//
// A CITY zone matches on the canonical city name, optionally refined
// by a named society sub-area. A RANGE zone matches when the point
// lies within RadiusKm of the shop location; the boundary itself is
// inside. Eligible RANGE sub-areas are evaluated for both kinds and
// can rescue a parent miss.
func MatchZone(z zone.Zone, q Query) MatchResult {
	res := MatchResult{}

	switch z.Kind {
	case zone.KindCity:
		if hit, via := matchCity(z, q); hit {
			res.Hit = true
			res.Via = via
		}
	case zone.KindRange:
		if z.RangeEligible() {
			d := geometry.Distance(q.Point, z.ShopLocation)
			if d <= z.RadiusKm {
				res.Hit = true
				res.Via = ViaRange
			} else {
				res.Misses = append(res.Misses, NearestMiss{DistanceKm: d, RadiusKm: z.RadiusKm})
			}
		}
	}

	// RANGE sub-areas are evaluated regardless of the parent's kind
	// or result. A sub-area hit rescues a parent miss; a sub-area
	// miss only adds a diagnostic.
	for i := range z.SubAreas {
		sub := &z.SubAreas[i]
		if !sub.RangeEligible() {
			continue
		}

		d := geometry.Distance(q.Point, sub.Center())
		if d <= sub.RadiusKm {
			if !res.Hit {
				res.Hit = true
				res.Via = ViaSubAreaRange
			}
		} else {
			res.Misses = append(res.Misses, NearestMiss{DistanceKm: d, RadiusKm: sub.RadiusKm})
		}
	}

	if res.Hit {
		res.Misses = nil
	}

	return res
}

// matchCity applies the CITY strategy. A query naming a society that
// does not exist under the zone still matches at the city level: an
// unknown society filter means no extra constraint, not a rejection.
func matchCity(z zone.Zone, q Query) (bool, Via) {
	if !z.CityEquals(q.City) {
		return false, ""
	}

	if strings.TrimSpace(q.Society) == "" {
		return true, ViaCity
	}

	for i := range z.SubAreas {
		sub := &z.SubAreas[i]
		if sub.Kind != zone.KindCity || !sub.NameEquals(q.Society) {
			continue
		}

		if sub.Bounds == nil || !sub.Bounds.IsSet() {
			return true, ViaSubAreaCity
		}

		if sub.Bounds.Contains(q.Point) {
			return true, ViaSubAreaCity
		}

		return false, ""
	}

	return true, ViaCity
}
