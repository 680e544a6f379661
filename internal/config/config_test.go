package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SEED_VALUE", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StoreDriver)
	assert.Equal(t, "America/Bogota", cfg.Timezone)
	assert.Equal(t, int64(42), cfg.SeedValue)
	assert.True(t, cfg.SeedOnStart)
	assert.Equal(t, 100, cfg.AuditBuffer)
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.AuthEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SEED_VALUE", "7")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, ,https://admin.salon.co")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:5173", "https://admin.salon.co"}, cfg.CORSOrigins)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, int64(7), cfg.SeedValue)
	assert.False(t, cfg.SeedOnStart)
	assert.True(t, cfg.EventsEnabled())
}

func TestValidate(t *testing.T) {
	base := Config{StoreDriver: DriverMemory, Timezone: "America/Bogota", AuditBuffer: 10}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"memory ok", func(*Config) {}, false},
		{"sqlite without url", func(c *Config) { c.StoreDriver = DriverSQLite }, true},
		{"sqlite with url", func(c *Config) { c.StoreDriver = DriverSQLite; c.DBUrl = "salon.db" }, false},
		{"unknown driver", func(c *Config) { c.StoreDriver = "mongo" }, true},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, true},
		{"zero buffer", func(c *Config) { c.AuditBuffer = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
