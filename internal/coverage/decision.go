package coverage

// Via identifies which matching strategy produced a positive
// decision.
type Via string

const (
	ViaCity         Via = "city"
	ViaRange        Via = "range"
	ViaSubAreaCity  Via = "subarea-city"
	ViaSubAreaRange Via = "subarea-range"
)

// NearestMiss is the best diagnostic available when no zone covers a
// point: how far the point was from the nearest geofence center, and
// how far that geofence reaches.
type NearestMiss struct {
	DistanceKm float64
	RadiusKm   float64
}

// Decision is the resolver's verdict for one query.
//
// When Matched is true, ZoneID and Via identify the winning zone and
// strategy, and NormalizedCity carries the zone's canonical city name
// for the caller to persist in place of whatever the user typed.
//
// When Matched is false, Nearest is set only if at least one eligible
// geofence existed to measure against; a pure city-name mismatch has
// nothing numeric to report.
type Decision struct {
	Matched        bool
	ZoneID         string
	Via            Via
	NormalizedCity string
	Nearest        *NearestMiss
}
