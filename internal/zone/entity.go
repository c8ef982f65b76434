package zone

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/velocart/delivery-coverage/internal/geometry"
)

// Entity is a zone database row. Sub-areas are stored as a JSONB
// document next to the flat zone columns; the admin tool owns the
// document's shape.
type Entity struct {
	ID           string
	Kind         string
	City         string
	ShopLat      float64
	ShopLon      float64
	RadiusKm     float64
	SubAreas     []byte
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e *Entity) Insert(ctx context.Context, db Execer) (sql.Result, error) {
	query := `
		INSERT INTO delivery_zones(id, kind, city, shop_lat, shop_lon, radius_km, sub_areas, is_active, display_order, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	e.CreatedAt = time.Now().UTC()
	e.UpdatedAt = time.Now().UTC()

	return db.ExecContext(ctx, query,
		e.ID,
		e.Kind,
		e.City,
		e.ShopLat,
		e.ShopLon,
		e.RadiusKm,
		e.SubAreas,
		e.IsActive,
		e.DisplayOrder,
		e.CreatedAt,
		e.UpdatedAt)
}

func (e *Entity) scan(scanFunc func(...any) error) error {
	return scanFunc(
		&e.ID,
		&e.Kind,
		&e.City,
		&e.ShopLat,
		&e.ShopLon,
		&e.RadiusKm,
		&e.SubAreas,
		&e.IsActive,
		&e.DisplayOrder,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// ToZone converts the row into the immutable Zone consumed by the
// matcher. The sub-area document is decoded here so a malformed
// document surfaces at read time, not mid-match.
func (e *Entity) ToZone() (Zone, error) {
	z := Zone{
		ID:           e.ID,
		Kind:         Kind(e.Kind),
		City:         e.City,
		ShopLocation: geometry.NewPoint(e.ShopLon, e.ShopLat),
		RadiusKm:     e.RadiusKm,
		IsActive:     e.IsActive,
		DisplayOrder: e.DisplayOrder,
	}

	if len(e.SubAreas) > 0 {
		if err := json.Unmarshal(e.SubAreas, &z.SubAreas); err != nil {
			return Zone{}, fmt.Errorf("decoding sub areas (zoneID=%s): %w", e.ID, err)
		}
	}

	return z, nil
}

type EntityCollection []Entity

// SelectActive reads every active zone ordered by display_order then
// id. The ordering is what makes one snapshot stable: two reads of an
// unchanged table produce the same slice in the same order.
func (c *EntityCollection) SelectActive(ctx context.Context, db *sql.DB) error {
	query := `
		SELECT id, kind, city, shop_lat, shop_lon, radius_km, sub_areas, is_active, display_order, created_at, updated_at
		FROM delivery_zones
		WHERE is_active = TRUE
		ORDER BY display_order, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e Entity
		if err := e.scan(rows.Scan); err != nil {
			return err
		}

		*c = append(*c, e)
	}

	return rows.Err()
}
