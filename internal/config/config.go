package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with
// an optional .env file on top.
type Config struct {
	Port        string
	PostgresDSN string

	// RedisAddr enables the zone snapshot cache when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// SnapshotTTL is how long a cached zone snapshot stays valid.
	SnapshotTTL time.Duration

	// WorkerInterval is how often the background worker re-warms the
	// snapshot cache.
	WorkerInterval time.Duration

	// Cash-on-delivery fee schedule.
	CodFirstOrderFee int
	CodRepeatFee     int
}

// Load reads the configuration. A missing .env file is not an error;
// the environment alone is enough.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Port:             envOr("PORT", "8080"),
		PostgresDSN:      postgresDSN(),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          envIntOr("REDIS_DB", 0),
		SnapshotTTL:      envDurationOr("ZONE_SNAPSHOT_TTL", time.Minute),
		WorkerInterval:   envDurationOr("WORKER_INTERVAL", 30*time.Second),
		CodFirstOrderFee: envIntOr("COD_FIRST_ORDER_FEE", 0),
		CodRepeatFee:     envIntOr("COD_REPEAT_FEE", 100),
	}
}

func postgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("POSTGRES_USER", "delivery"),
		envOr("POSTGRES_PASSWORD", "password"),
		envOr("POSTGRES_HOST", "0.0.0.0"),
		envOr("POSTGRES_PORT", "5432"),
		envOr("POSTGRES_DB", "delivery_db"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}

	return d
}
