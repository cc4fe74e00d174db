package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellbook/internal/config"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Grid.Columns)
	assert.True(t, cfg.Views.Enabled)
	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, []string{"localhost:6379"}, cfg.Redis.Endpoints)
	assert.Equal(t, 15*time.Minute, cfg.Dice.SessionTTL)
	assert.Equal(t, config.CatalogEmbedded, cfg.Catalog.Source)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SPELLBOOK_SERVER_PORT", "6000")
	t.Setenv("SPELLBOOK_DICE_SESSION_TTL", "1h")
	t.Setenv("SPELLBOOK_REDIS_ENDPOINTS", "redis-a:6379,redis-b:6379")
	t.Setenv("SPELLBOOK_CATALOG_SOURCE", "dnd5eapi")
	t.Setenv("SPELLBOOK_LOG_LEVEL", "debug")
	t.Setenv("SPELLBOOK_GRID_COLUMNS", "name,level,school")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Dice.SessionTTL)
	assert.Equal(t, []string{"redis-a:6379", "redis-b:6379"}, cfg.Redis.Endpoints)
	assert.Equal(t, config.CatalogDND5eAPI, cfg.Catalog.Source)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"name", "level", "school"}, cfg.Grid.Columns)
}

func TestLoadBoundFlag(t *testing.T) {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags.Int("port", 50051, "")
	require.NoError(t, flags.Parse([]string{"--port", "9090"}))

	v := viper.New()
	require.NoError(t, v.BindPFlag("server.port", flags.Lookup("port")))
	t.Setenv("SPELLBOOK_SERVER_PORT", "6000")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spellbook.yaml")
	content := `
server:
  port: 7000
views:
  ttl: 720h
catalog:
  source: dnd5eapi
  dnd5eapi:
    base_url: http://localhost:3000/api/
    cache_ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 720*time.Hour, cfg.Views.TTL)
	assert.Equal(t, "http://localhost:3000/api/", cfg.Catalog.DND5eAPI.BaseURL)
	assert.Equal(t, time.Hour, cfg.Catalog.DND5eAPI.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.DND5eAPI.HTTPTimeout)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *config.Config)
		field  string
	}{
		{
			name:   "port out of range",
			modify: func(c *config.Config) { c.Server.Port = 70000 },
			field:  "server.port",
		},
		{
			name:   "unknown catalog",
			modify: func(c *config.Config) { c.Catalog.Source = "srd" },
			field:  "catalog.source",
		},
		{
			name: "remote catalog without url",
			modify: func(c *config.Config) {
				c.Catalog.Source = config.CatalogDND5eAPI
				c.Catalog.DND5eAPI.BaseURL = ""
			},
			field: "catalog.dnd5eapi.base_url",
		},
		{
			name:   "no redis",
			modify: func(c *config.Config) { c.Redis.Endpoints = nil },
			field:  "redis.endpoints",
		},
		{
			name:   "zero session ttl",
			modify: func(c *config.Config) { c.Dice.SessionTTL = 0 },
			field:  "dice.session_ttl",
		},
		{
			name:   "unknown grid column",
			modify: func(c *config.Config) { c.Grid.Columns = []string{"name", "components"} },
			field:  "grid.columns",
		},
		{
			name:   "bad log level",
			modify: func(c *config.Config) { c.Log.Level = "loud" },
			field:  "log.level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
