package server

import (
	"context"
	"log"
	"time"

	"github.com/velocart/delivery-coverage/internal/zone"
)

// worker periodically re-warms the zone snapshot cache so request
// paths keep serving a recent, consistent snapshot instead of paying
// for a database read on a cold cache.
type worker struct {
	zones  *zone.Service
	d      time.Duration
	killCh <-chan struct{}
}

func (w *worker) start() {
	ticker := time.NewTicker(w.d)

	for {
		select {
		case <-ticker.C:
			w.refresh(context.Background())
		case <-w.killCh:
			ticker.Stop()
			return
		}
	}
}

func (w *worker) refresh(ctx context.Context) {
	zones, err := w.zones.Refresh(ctx)
	if err != nil {
		log.Printf("failed refreshing zone snapshot: %v\n", err)
		return
	}

	log.Printf("zone snapshot refreshed: %d active zones", len(zones))
}
