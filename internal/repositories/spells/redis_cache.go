package spells

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-spellbook/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-spellbook/internal/redis"
)

const catalogKeyPrefix = "spell_catalog:"

// RedisCacheConfig contains configuration for the Redis catalog cache
type RedisCacheConfig struct {
	Client redisclient.Client
	Source Repository

	// Name keys the cached copy, so several sources can share one Redis
	Name string

	// TTL of the cached catalog; zero keeps it until Invalidate
	TTL time.Duration
}

// Validate validates the RedisCacheConfig
func (cfg *RedisCacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Source == nil {
		vb.RequiredField("Source")
	}
	errors.ValidateRequired("Name", cfg.Name, vb)
	if cfg.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

// RedisCache keeps a serialized copy of a slower catalog in Redis
type RedisCache struct {
	client redisclient.Client
	source Repository
	key    string
	ttl    time.Duration
}

var _ Repository = (*RedisCache)(nil)

// NewRedisCache wraps source with a Redis-backed cache
func NewRedisCache(cfg *RedisCacheConfig) (*RedisCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: cfg.Client,
		source: cfg.Source,
		key:    catalogKeyPrefix + cfg.Name,
		ttl:    cfg.TTL,
	}, nil
}

// ListSpells serves the cached catalog, loading it from the source on a miss.
// A Redis outage degrades to the source.
func (c *RedisCache) ListSpells(ctx context.Context) ([]*spell.Spell, error) {
	raw, err := c.client.Get(ctx, c.key).Result()
	switch {
	case err == nil:
		var spells []*spell.Spell
		if jsonErr := json.Unmarshal([]byte(raw), &spells); jsonErr == nil {
			return spells, nil
		}
		slog.Warn("Discarding unreadable spell catalog cache", "key", c.key)
	case err != redis.Nil:
		slog.Warn("Spell catalog cache unavailable", "key", c.key, "error", err)
	}

	spells, err := c.source.ListSpells(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(spells)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal spell catalog")
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		slog.Warn("Failed to cache spell catalog", "key", c.key, "error", err)
	}

	return spells, nil
}

// Invalidate drops the cached catalog
func (c *RedisCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to invalidate spell catalog cache")
	}
	return nil
}
