// zone-seed loads delivery zones from a JSON file into the database.
// It exists for local development and for standing up new
// environments; production zones are managed by the admin tool.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/velocart/delivery-coverage/internal/config"
	"github.com/velocart/delivery-coverage/internal/zone"
)

type seedZone struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	City         string          `json:"city"`
	ShopLat      float64         `json:"shop_lat"`
	ShopLon      float64         `json:"shop_lon"`
	RadiusKm     float64         `json:"radius_km"`
	SubAreas     json.RawMessage `json:"sub_areas"`
	IsActive     bool            `json:"is_active"`
	DisplayOrder int             `json:"display_order"`
}

func main() {
	var file string
	flag.StringVar(&file, "f", "zones.json", "the zone file to load")
	flag.Parse()

	cfg := config.Load()

	data, err := os.ReadFile(file)
	if err != nil {
		log.Fatalln(err)
	}

	var seeds []seedZone
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("parsing %s: %v", file, err)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalln(err)
	}
	defer db.Close()

	store := zone.NewStore(db)
	ctx := context.Background()

	for _, s := range seeds {
		e := zone.Entity{
			ID:           s.ID,
			Kind:         s.Kind,
			City:         s.City,
			ShopLat:      s.ShopLat,
			ShopLon:      s.ShopLon,
			RadiusKm:     s.RadiusKm,
			SubAreas:     s.SubAreas,
			IsActive:     s.IsActive,
			DisplayOrder: s.DisplayOrder,
		}

		if err := store.InsertZoneTx(ctx, e); err != nil {
			log.Fatalf("inserting zone (city=%q): %v", s.City, err)
		}
	}

	log.Printf("seeded %d zones", len(seeds))
}
