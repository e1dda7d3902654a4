// Package config loads server configuration from the environment, with
// an optional .env file for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config carries everything the server needs at boot.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// MongoURI enables the snapshot archive when non-empty.
	MongoURI string
	// MongoDatabase names the archive database.
	MongoDatabase string
	// LogLevel is a logrus level name.
	LogLevel string
	// Seed loads the demo fixtures at boot.
	Seed bool
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not read .env file")
	}
	return Config{
		Addr:          getenv("FLEET_ADDR", ":8080"),
		MongoURI:      os.Getenv("FLEET_MONGO_URI"),
		MongoDatabase: getenv("FLEET_MONGO_DB", "fleet_ops"),
		LogLevel:      getenv("FLEET_LOG_LEVEL", "info"),
		Seed:          getbool("FLEET_SEED", false),
	}
}

// ConfigureLogging applies the configured level to the global logger.
func (c Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.WithField("key", key).Warn("invalid boolean in environment, using default")
		return fallback
	}
	return b
}
