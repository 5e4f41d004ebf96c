package config

import (
	"os"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port           string
	TripDataPath   string
	ZoneLookupPath string
	SessionSecret  string
	SessionTTL     time.Duration
	RateLimit      int // Requests per minute per client
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	tripPath := os.Getenv("TRIP_DATA_PATH")
	if tripPath == "" {
		tripPath = "./data/yellow_tripdata_2024-01.parquet"
	}

	zonePath := os.Getenv("ZONE_LOOKUP_PATH")
	if zonePath == "" {
		zonePath = "./data/taxi_zone_lookup.csv"
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:           port,
		TripDataPath:   tripPath,
		ZoneLookupPath: zonePath,
		SessionSecret:  secret,
		SessionTTL:     30 * time.Minute,
		RateLimit:      240,
	}
}
