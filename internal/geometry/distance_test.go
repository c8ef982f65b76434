package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    Point
		b    Point
		want float64
	}{
		{
			name: "same point",
			a:    NewPoint(74.3587, 31.5204),
			b:    NewPoint(74.3587, 31.5204),
			want: 0,
		},
		{
			name: "one degree of latitude",
			a:    NewPoint(0, 0),
			b:    NewPoint(0, 1),
			want: 111.1949,
		},
		{
			name: "across a city",
			a:    NewPoint(74.3587, 31.5204),
			b:    NewPoint(74.40, 31.55),
			want: 5.1141,
		},
		{
			name: "between cities",
			a:    NewPoint(67.0011, 24.8607),
			b:    NewPoint(74.3587, 31.5204),
			want: 1032.9988,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 0.001)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]Point{
		{NewPoint(74.3587, 31.5204), NewPoint(74.40, 31.55)},
		{NewPoint(0, 0), NewPoint(-180, 90)},
		{NewPoint(-87.6298, 41.8781), NewPoint(2.3522, 48.8566)},
	}

	for _, pair := range pairs {
		assert.Equal(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]))
	}
}

func TestPointIsFinite(t *testing.T) {
	t.Parallel()

	nan := Point{0.0 / zero(), 74.0}
	assert.False(t, nan.IsFinite())
	assert.False(t, Point{}.IsFinite())
	assert.False(t, Point{31.5}.IsFinite())
	assert.True(t, NewPoint(74.3587, 31.5204).IsFinite())
}

// zero defeats constant folding so the NaN above is built at runtime.
func zero() float64 { return 0 }

func TestPointRounding(t *testing.T) {
	t.Parallel()

	p := NewPoint(74.35873, 31.52041)
	assert.Equal(t, 31.5204, p.RoundedLat())
	assert.Equal(t, 74.3587, p.RoundedLon())
}

func TestPointIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, NewPoint(0, 0).IsZero())
	assert.True(t, Point{}.IsZero())
	assert.False(t, NewPoint(74.3587, 31.5204).IsZero())
	assert.False(t, NewPoint(0, 31.5204).IsZero())
}
