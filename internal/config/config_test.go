package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "30")
	t.Setenv("RATE_LIMIT_WRITE", "1s")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, time.Second, cfg.RateLimitWrite)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "30")
	t.Setenv("RATE_LIMIT_WRITE", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "RATE_LIMIT_WRITE")

	t.Setenv("RATE_LIMIT_WRITE", "1s")
	t.Setenv("JWT_TTL_MINUTES", "-1")

	_, err = Load()
	assert.ErrorContains(t, err, "JWT_TTL_MINUTES")
}

func TestSQLiteDatabasesAreSeparateFiles(t *testing.T) {
	cfg := &Config{
		DBDriver:     "sqlite",
		DBName:       "catalog",
		AuthDBName:   "auth",
		DBSQLitePath: "/var/lib/space/",
	}

	assert.Equal(t, "/var/lib/space/catalog.db", cfg.CatalogDatabase().SQLitePath)
	assert.Equal(t, "/var/lib/space/auth.db", cfg.AuthDatabase().SQLitePath)
}
