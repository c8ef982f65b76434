package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velocart/delivery-coverage/internal/geometry"
	"github.com/velocart/delivery-coverage/internal/zone"
)

var (
	shopLahore = geometry.NewPoint(74.3587, 31.5204)

	// ~5.11 km from shopLahore, inside a 10 km geofence.
	pointNear = geometry.NewPoint(74.40, 31.55)

	// ~66.36 km from shopLahore.
	pointFar = geometry.NewPoint(74.9, 31.9)
)

func TestMatchZoneCity(t *testing.T) {
	t.Parallel()

	modelTownBounds := &geometry.Rect{
		Northeast: geometry.NewPoint(74.34, 31.49),
		Southwest: geometry.NewPoint(74.30, 31.46),
	}

	z := zone.Zone{
		ID:   "lahore",
		Kind: zone.KindCity,
		City: "Lahore",
		SubAreas: []zone.SubArea{
			{Kind: zone.KindCity, Name: "Model Town", Bounds: modelTownBounds},
			{Kind: zone.KindCity, Name: "Gulberg"},
		},
	}

	inModelTown := geometry.NewPoint(74.32, 31.47)

	tests := []struct {
		name    string
		query   Query
		wantHit bool
		wantVia Via
	}{
		{
			name:    "city match without society",
			query:   Query{Point: pointNear, City: "Lahore"},
			wantHit: true,
			wantVia: ViaCity,
		},
		{
			name:    "city match is case insensitive and trimmed",
			query:   Query{Point: pointNear, City: "  lahore "},
			wantHit: true,
			wantVia: ViaCity,
		},
		{
			name:  "city mismatch",
			query: Query{Point: pointNear, City: "Karachi"},
		},
		{
			name:    "society with bounds containing the point",
			query:   Query{Point: inModelTown, City: "Lahore", Society: "Model Town"},
			wantHit: true,
			wantVia: ViaSubAreaCity,
		},
		{
			name:  "society with bounds excluding the point",
			query: Query{Point: pointNear, City: "Lahore", Society: "Model Town"},
		},
		{
			name:    "society without bounds matches on name alone",
			query:   Query{Point: pointFar, City: "Lahore", Society: "gulberg"},
			wantHit: true,
			wantVia: ViaSubAreaCity,
		},
		{
			name:    "unknown society falls back to the city match",
			query:   Query{Point: pointNear, City: "Lahore", Society: "DHA Phase 6"},
			wantHit: true,
			wantVia: ViaCity,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := MatchZone(z, tt.query)
			assert.Equal(t, tt.wantHit, res.Hit)
			assert.Equal(t, tt.wantVia, res.Via)
		})
	}
}

func TestMatchZoneCityMissCarriesNoDistance(t *testing.T) {
	t.Parallel()

	z := zone.Zone{ID: "lahore", Kind: zone.KindCity, City: "Lahore"}

	res := MatchZone(z, Query{Point: pointNear, City: "Karachi"})
	assert.False(t, res.Hit)
	assert.Empty(t, res.Misses)
}

func TestMatchZoneRange(t *testing.T) {
	t.Parallel()

	z := zone.Zone{
		ID:           "lahore-10km",
		Kind:         zone.KindRange,
		ShopLocation: shopLahore,
		RadiusKm:     10,
	}

	t.Run("point inside the geofence", func(t *testing.T) {
		t.Parallel()

		res := MatchZone(z, Query{Point: pointNear, City: "Lahore"})
		assert.True(t, res.Hit)
		assert.Equal(t, ViaRange, res.Via)
	})

	t.Run("point outside the geofence reports its miss", func(t *testing.T) {
		t.Parallel()

		res := MatchZone(z, Query{Point: pointFar, City: "Lahore"})
		assert.False(t, res.Hit)
		require.Len(t, res.Misses, 1)
		assert.InDelta(t, geometry.Distance(pointFar, shopLahore), res.Misses[0].DistanceKm, 1e-9)
		assert.Equal(t, 10.0, res.Misses[0].RadiusKm)
	})
}

func TestMatchZoneRangeBoundary(t *testing.T) {
	t.Parallel()

	// The radius is the exact distance to the point, so the point
	// sits on the geofence boundary.
	boundary := geometry.Distance(pointNear, shopLahore)

	z := zone.Zone{
		ID:           "boundary",
		Kind:         zone.KindRange,
		ShopLocation: shopLahore,
		RadiusKm:     boundary,
	}

	res := MatchZone(z, Query{Point: pointNear})
	assert.True(t, res.Hit, "a point exactly radiusKm away must match")

	z.RadiusKm = boundary * 0.999999
	res = MatchZone(z, Query{Point: pointNear})
	assert.False(t, res.Hit, "a point just past radiusKm must not match")
}

func TestMatchZoneRangeIneligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		zone zone.Zone
	}{
		{
			name: "zero radius",
			zone: zone.Zone{Kind: zone.KindRange, ShopLocation: shopLahore},
		},
		{
			name: "negative radius",
			zone: zone.Zone{Kind: zone.KindRange, ShopLocation: shopLahore, RadiusKm: -1},
		},
		{
			name: "unset shop location",
			zone: zone.Zone{Kind: zone.KindRange, RadiusKm: 10},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := MatchZone(tt.zone, Query{Point: shopLahore})
			assert.False(t, res.Hit)
			assert.Empty(t, res.Misses, "ineligible geofences must not report diagnostics")
		})
	}
}

func TestMatchZoneSubAreaRangeRescuesParentMiss(t *testing.T) {
	t.Parallel()

	// pointFar is outside the parent geofence but inside the
	// sub-area's own, smaller one.
	z := zone.Zone{
		ID:           "lahore-10km",
		Kind:         zone.KindRange,
		ShopLocation: shopLahore,
		RadiusKm:     10,
		SubAreas: []zone.SubArea{
			{Kind: zone.KindRange, Lat: 31.9, Lon: 74.88, RadiusKm: 5},
		},
	}

	res := MatchZone(z, Query{Point: pointFar})
	assert.True(t, res.Hit)
	assert.Equal(t, ViaSubAreaRange, res.Via)
	assert.Empty(t, res.Misses)
}

func TestMatchZoneSubAreaRangeOnCityZone(t *testing.T) {
	t.Parallel()

	// A RANGE sub-area is evaluated even when the parent matches by
	// city name, and covers points whose declared city differs.
	z := zone.Zone{
		ID:   "lahore",
		Kind: zone.KindCity,
		City: "Lahore",
		SubAreas: []zone.SubArea{
			{Kind: zone.KindRange, Lat: 31.9, Lon: 74.88, RadiusKm: 5},
		},
	}

	res := MatchZone(z, Query{Point: pointFar, City: "Sheikhupura"})
	assert.True(t, res.Hit)
	assert.Equal(t, ViaSubAreaRange, res.Via)
}

func TestMatchZoneSubAreaMissesAggregate(t *testing.T) {
	t.Parallel()

	z := zone.Zone{
		ID:           "lahore-1km",
		Kind:         zone.KindRange,
		ShopLocation: shopLahore,
		RadiusKm:     1,
		SubAreas: []zone.SubArea{
			{Kind: zone.KindRange, Lat: 31.47, Lon: 74.26, RadiusKm: 2},
			{Kind: zone.KindRange, RadiusKm: 2}, // ineligible, skipped
		},
	}

	res := MatchZone(z, Query{Point: pointNear})
	assert.False(t, res.Hit)
	require.Len(t, res.Misses, 2)
	assert.Equal(t, 1.0, res.Misses[0].RadiusKm)
	assert.Equal(t, 2.0, res.Misses[1].RadiusKm)
}
