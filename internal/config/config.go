// Package config loads spellbook settings from defaults, an optional config
// file, and SPELLBOOK_* environment variables
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g.
// SPELLBOOK_REDIS_ENDPOINTS
const EnvPrefix = "SPELLBOOK"

// Catalog sources
const (
	CatalogEmbedded = "embedded"
	CatalogDND5eAPI = "dnd5eapi"
)

// Config is the full application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Views   ViewsConfig   `mapstructure:"views"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Grid    GridConfig    `mapstructure:"grid"`
}

// GridConfig controls the spell grid
type GridConfig struct {
	// Columns shown when a request names none; empty means the built-in set
	Columns []string `mapstructure:"columns"`
}

// LogConfig controls the default slog logger
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig controls the gRPC server
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// RedisConfig lists the Redis nodes; more than one endpoint selects a cluster
type RedisConfig struct {
	Endpoints []string `mapstructure:"endpoints"`
}

// DiceConfig controls roll sessions
type DiceConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// ViewsConfig controls saved filter views
type ViewsConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// CatalogConfig selects where spells come from
type CatalogConfig struct {
	Source string `mapstructure:"source"`

	// RedisCacheTTL keeps a remote catalog in Redis between runs; zero disables
	RedisCacheTTL time.Duration `mapstructure:"redis_cache_ttl"`

	DND5eAPI DND5eAPIConfig `mapstructure:"dnd5eapi"`
}

// DND5eAPIConfig configures the remote catalog
type DND5eAPIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Port: 50051},
		Redis:  RedisConfig{Endpoints: []string{"localhost:6379"}},
		Dice:   DiceConfig{SessionTTL: 15 * time.Minute},
		Views:  ViewsConfig{Enabled: true},
		Catalog: CatalogConfig{
			Source:        CatalogEmbedded,
			RedisCacheTTL: 24 * time.Hour,
			DND5eAPI: DND5eAPIConfig{
				BaseURL:     "https://www.dnd5eapi.co/api/",
				HTTPTimeout: 10 * time.Second,
				CacheTTL:    24 * time.Hour,
			},
		},
	}
}

// SetDefaults registers every key with its default so that environment
// variables are picked up by Unmarshal
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("redis.endpoints", defaults.Redis.Endpoints)
	v.SetDefault("dice.session_ttl", defaults.Dice.SessionTTL)
	v.SetDefault("views.enabled", defaults.Views.Enabled)
	v.SetDefault("views.ttl", defaults.Views.TTL)
	v.SetDefault("catalog.source", defaults.Catalog.Source)
	v.SetDefault("catalog.redis_cache_ttl", defaults.Catalog.RedisCacheTTL)
	v.SetDefault("catalog.dnd5eapi.base_url", defaults.Catalog.DND5eAPI.BaseURL)
	v.SetDefault("catalog.dnd5eapi.http_timeout", defaults.Catalog.DND5eAPI.HTTPTimeout)
	v.SetDefault("catalog.dnd5eapi.cache_ttl", defaults.Catalog.DND5eAPI.CacheTTL)
	v.SetDefault("grid.columns", defaults.Grid.Columns)
}

// Load reads configFile (if set) and the environment into a validated Config
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := c.Log.SlogLevel(); err != nil {
		vb.Fieldf("log.level", "unknown level %q", c.Log.Level)
	}
	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Dice.SessionTTL <= 0 {
		vb.Field("dice.session_ttl", "must be positive")
	}
	if c.Views.TTL < 0 {
		vb.Field("views.ttl", "must not be negative")
	}
	// dice sessions always live in Redis
	if len(c.Redis.Endpoints) == 0 {
		vb.RequiredField("redis.endpoints")
	}

	switch c.Catalog.Source {
	case CatalogEmbedded:
	case CatalogDND5eAPI:
		errors.ValidateRequired("catalog.dnd5eapi.base_url", c.Catalog.DND5eAPI.BaseURL, vb)
		if c.Catalog.RedisCacheTTL < 0 {
			vb.Field("catalog.redis_cache_ttl", "must not be negative")
		}
		if c.Catalog.DND5eAPI.CacheTTL < 0 {
			vb.Field("catalog.dnd5eapi.cache_ttl", "must not be negative")
		}
	default:
		vb.Fieldf("catalog.source", "must be %s or %s", CatalogEmbedded, CatalogDND5eAPI)
	}

	for _, col := range c.Grid.Columns {
		if !spell.Column(col).IsValid() {
			vb.Fieldf("grid.columns", "unknown column %q", col)
		}
	}

	return vb.Build()
}

// SlogLevel parses the configured level
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Level))
	return level, err
}
