package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "levelup", cfg.Database.DatabaseName)
	assert.Equal(t, "user_stats", cfg.Database.Collections.UserStats)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 5*time.Second, cfg.Redis.LockTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://levelup.example")
	t.Setenv("MONGO_DB", "levelup_test")
	t.Setenv("MONGO_MAX_CONN_IDLE_TIME", "30")
	t.Setenv("ACTIVITIES_COLLECTION", "logged_activities")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://levelup.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "levelup_test", cfg.Database.DatabaseName)
	assert.Equal(t, 30*time.Second, cfg.Database.MaxConnIdleTime)
	assert.Equal(t, "logged_activities", cfg.Database.Collections.Activities)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoadRejectsUnknownGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "GIN_MODE")
}
