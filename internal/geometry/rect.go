package geometry

import "encoding/json"

// Rect is an axis-aligned bounding rectangle described by its
// northeast and southwest corners.
type Rect struct {
	Northeast Point
	Southwest Point
}

// corner is the {"lat": ..., "lon": ...} wire form of a rectangle
// corner.
type corner struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Northeast corner `json:"northeast"`
		Southwest corner `json:"southwest"`
	}{
		Northeast: corner{Lat: r.Northeast.Lat(), Lon: r.Northeast.Lon()},
		Southwest: corner{Lat: r.Southwest.Lat(), Lon: r.Southwest.Lon()},
	})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var raw struct {
		Northeast corner `json:"northeast"`
		Southwest corner `json:"southwest"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Northeast = NewPoint(raw.Northeast.Lon, raw.Northeast.Lat)
	r.Southwest = NewPoint(raw.Southwest.Lon, raw.Southwest.Lat)

	return nil
}

// IsSet reports whether both corners hold coordinates.
func (r Rect) IsSet() bool {
	return len(r.Northeast) >= 2 && len(r.Southwest) >= 2
}

// Contains reports whether p lies inside the rectangle. Points on
// the boundary are inside.
func (r Rect) Contains(p Point) bool {
	return r.Southwest.Lat() <= p.Lat() && p.Lat() <= r.Northeast.Lat() &&
		r.Southwest.Lon() <= p.Lon() && p.Lon() <= r.Northeast.Lon()
}
