package geometry

import (
	"fmt"
	"math"
)

type Point []float64

func NewPoint(lon, lat float64) Point {
	return Point{lat, lon}
}

func (p Point) Lon() float64 {
	return p[1]
}

func (p Point) Lat() float64 {
	return p[0]
}

// IsFinite reports whether both coordinates are present and are real
// numbers. Queries built from unparsed or partial input fail this
// check and must be rejected before matching.
func (p Point) IsFinite() bool {
	if len(p) < 2 {
		return false
	}

	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// IsZero reports whether the point is the (0,0) null-island
// coordinate. Shop locations left unset by the admin tool are stored
// as zeros.
func (p Point) IsZero() bool {
	return len(p) < 2 || (p.Lat() == 0 && p.Lon() == 0)
}

// RoundedLon returns the longitude rounded to the 4th
// decimal place.
func (p Point) RoundedLon() float64 {
	return round(p.Lon(), 4)
}

// RoundedLat returns the latitude rounded to the 4th
// decimal place.
func (p Point) RoundedLat() float64 {
	return round(p.Lat(), 4)
}

func round(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func (p Point) String() string {
	if len(p) < 2 {
		return ""
	}

	return fmt.Sprintf("(%f,%f)", p.Lat(), p.Lon())
}
