package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/velocart/delivery-coverage/internal/config"
	"github.com/velocart/delivery-coverage/internal/coverage"
	"github.com/velocart/delivery-coverage/internal/pricing"
	"github.com/velocart/delivery-coverage/internal/server"
	"github.com/velocart/delivery-coverage/internal/zone"
)

var port string

func main() {
	flag.StringVar(&port, "p", "", "the port the server should listen on")
	flag.Parse()

	cfg := config.Load()
	if port == "" {
		port = cfg.Port
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalln(err)
	}

	var cache *zone.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cache = zone.NewCache(client, cfg.SnapshotTTL)
	}

	srv := server.Server{
		Addr:     port,
		Router:   chi.NewRouter(),
		Interval: cfg.WorkerInterval,
		Logger:   log.Default(),
		Zones:    zone.New(db, cache),
		Coverage: coverage.New(),
		Pricing: pricing.New(pricing.CodSchedule{
			FirstOrderFee: cfg.CodFirstOrderFee,
			RepeatFee:     cfg.CodRepeatFee,
		}),
	}
	if err := srv.Start(); err != nil {
		log.Println(err)
	}
}
