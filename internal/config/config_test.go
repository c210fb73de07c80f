package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 0.6, cfg.Matching.FuzzyCutoff)
	assert.Equal(t, 3, cfg.Matching.ResultLimit)
	assert.Equal(t, 5, cfg.Matching.RecommendLimit)
	assert.False(t, cfg.PostgresEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("FUZZY_CUTOFF", "0.75")
	t.Setenv("RESULT_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 0.75, cfg.Matching.FuzzyCutoff)
	assert.Equal(t, 3, cfg.Matching.ResultLimit, "invalid values fall back to the default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"redis without url", map[string]string{"SESSION_BACKEND": "redis"}},
		{"unknown backend", map[string]string{"SESSION_BACKEND": "memcached"}},
		{"cutoff out of range", map[string]string{"FUZZY_CUTOFF": "1.5"}},
		{"zero result limit", map[string]string{"RESULT_LIMIT": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetPostgreSQLDSN(t *testing.T) {
	cfg := &Config{Catalog: CatalogConfig{
		Host:     "db",
		Port:     5432,
		User:     "shop",
		Password: "secret",
		Database: "catalog",
		SSLMode:  "disable",
	}}
	assert.True(t, cfg.PostgresEnabled())
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=catalog sslmode=disable", cfg.GetPostgreSQLDSN())

	cfg.Catalog.DSN = "postgres://u:p@h/d"
	assert.Equal(t, "postgres://u:p@h/d", cfg.GetPostgreSQLDSN())
}
