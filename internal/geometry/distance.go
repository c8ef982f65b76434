package geometry

import "math"

// earthRadiusKm is the mean radius of the Earth used by the
// haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in
// kilometers using the haversine formula.
//
// The result is kept at full double precision. Callers comparing the
// distance against a radius must not round first; rounding is a
// presentation concern only.
func Distance(a, b Point) float64 {
	latA := radians(a.Lat())
	latB := radians(b.Lat())
	dLat := radians(b.Lat() - a.Lat())
	dLon := radians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
