package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	ServerPort string

	// DatabaseType selects the SQL engine: sqlite (default), postgres or
	// mysql. DatabaseURL is used for the latter two, DatabasePath for
	// sqlite.
	DatabaseType string
	DatabaseURL  string
	DatabasePath string

	MigrationsPath string

	// DatasetPath points at the directory of per-level JSON files produced
	// by the extraction pipeline; used to seed an empty database at startup.
	DatasetPath string

	// SequencingPolicy is "cycle" or "recency".
	SequencingPolicy string

	// SessionIdleTimeout controls when an abandoned quiz session is evicted.
	SessionIdleTimeout time.Duration
}

// Load reads configuration from the environment with sensible defaults. A
// .env file in the working directory is honoured when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabaseType:       getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:        getEnv("DB_URL", ""),
		DatabasePath:       getEnv("DB_PATH", "./pond.db"),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "./migrations"),
		DatasetPath:        getEnv("DATASET_PATH", "./data/german"),
		SequencingPolicy:   getEnv("SEQUENCING_POLICY", "cycle"),
		SessionIdleTimeout: getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
