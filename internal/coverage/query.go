package coverage

import "github.com/velocart/delivery-coverage/internal/geometry"

// Query is one candidate delivery location. Society optionally names
// a sub-area (a society or neighborhood) inside the declared city.
type Query struct {
	Point   geometry.Point
	City    string
	Society string
}
