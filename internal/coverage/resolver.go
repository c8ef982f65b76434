package coverage

import "github.com/velocart/delivery-coverage/internal/zone"

// Resolve evaluates the query against every zone in the snapshot and
// returns the first positive match in snapshot order.
//
// First hit wins. When two zones both cover a point, the one earlier
// in the snapshot is authoritative regardless of which center is
// nearer; the snapshot's ordering is the tie-break.
//
// Resolve is a pure function of (zones, q): it holds no state and
// mutates nothing, so the same snapshot and query always produce the
// same decision no matter which call site asks.
func Resolve(zones []zone.Zone, q Query) Decision {
	var (
		nearest    NearestMiss
		hasNearest bool
	)

	for i := range zones {
		z := zones[i]
		if !z.IsActive {
			continue
		}

		res := MatchZone(z, q)
		if res.Hit {
			return Decision{
				Matched:        true,
				ZoneID:         z.ID,
				Via:            res.Via,
				NormalizedCity: z.City,
			}
		}

		for _, miss := range res.Misses {
			if !hasNearest || miss.DistanceKm < nearest.DistanceKm {
				nearest = miss
				hasNearest = true
			}
		}
	}

	d := Decision{}
	if hasNearest {
		d.Nearest = &NearestMiss{DistanceKm: nearest.DistanceKm, RadiusKm: nearest.RadiusKm}
	}

	return d
}
