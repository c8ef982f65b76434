package zone

import (
	"context"
	"database/sql"
	"log"

	"github.com/velocart/delivery-coverage/internal/metrics"
)

// Service serves active-zone snapshots. A snapshot is the ordered
// list of active zones the coverage resolver matches against; every
// caller gets its own slice so no two resolutions can observe each
// other's data.
//
// The Cache is optional. When set, snapshots are read through redis
// and postgres is only consulted on a miss.
type Service struct {
	Store *Store
	Cache *Cache
}

func New(db *sql.DB, cache *Cache) *Service {
	return &Service{
		Store: NewStore(db),
		Cache: cache,
	}
}

// Active returns the current active-zone snapshot.
func (s *Service) Active(ctx context.Context) ([]Zone, error) {
	if s.Cache == nil {
		return s.Store.SelectActive(ctx)
	}

	zones, ok, err := s.Cache.Get(ctx)
	if err != nil {
		// A broken cache degrades to a database read.
		log.Printf("zone snapshot cache read failed: %v", err)
	}
	if ok {
		metrics.SnapshotHitsTotal.Inc()
		return zones, nil
	}
	metrics.SnapshotMissesTotal.Inc()

	return s.Refresh(ctx)
}

// Refresh reads the snapshot from postgres and re-warms the cache.
func (s *Service) Refresh(ctx context.Context) ([]Zone, error) {
	zones, err := s.Store.SelectActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, zones); err != nil {
			log.Printf("zone snapshot cache write failed: %v", err)
		}
	}

	return zones, nil
}
