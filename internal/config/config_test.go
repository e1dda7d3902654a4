package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FLEET_ADDR", "")
	t.Setenv("FLEET_MONGO_URI", "")
	t.Setenv("FLEET_MONGO_DB", "")
	t.Setenv("FLEET_LOG_LEVEL", "")
	t.Setenv("FLEET_SEED", "")

	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "fleet_ops", cfg.MongoDatabase)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FLEET_ADDR", ":9090")
	t.Setenv("FLEET_MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("FLEET_LOG_LEVEL", "debug")
	t.Setenv("FLEET_SEED", "true")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Seed)
}

func TestLoadInvalidSeedFallsBack(t *testing.T) {
	t.Setenv("FLEET_SEED", "definitely")
	cfg := Load()
	assert.False(t, cfg.Seed)
}
