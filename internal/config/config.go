package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"codenames/logger"
)

type Config struct {
	Addr          string
	RoomRetention time.Duration
	SweepInterval time.Duration
	WordBank      string // empty means the embedded bank
}

// Load reads configuration from the environment, after loading .env if one
// is present. Every value has a default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getenv("ADDR", ":3000"),
		RoomRetention: getduration("ROOM_RETENTION", 2*time.Hour),
		SweepInterval: getduration("SWEEP_INTERVAL", time.Hour),
		WordBank:      os.Getenv("WORD_BANK"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Error("config: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
