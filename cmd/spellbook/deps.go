package main

import (
	"github.com/KirkDiggler/rpg-spellbook/internal/config"
	"github.com/KirkDiggler/rpg-spellbook/internal/errors"
	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-spellbook/internal/orchestrators/spells"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-spellbook/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-spellbook/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-spellbook/internal/repositories/dice_session"
	filterview "github.com/KirkDiggler/rpg-spellbook/internal/repositories/filter_view"
	spellrepo "github.com/KirkDiggler/rpg-spellbook/internal/repositories/spells"
)

// newSpellRepository picks the catalog source. A remote catalog is cached in
// Redis when a client is available.
func newSpellRepository(c *config.Config, client redis.Client) (spellrepo.Repository, error) {
	if c.Catalog.Source != config.CatalogDND5eAPI {
		return spellrepo.NewEmbeddedRepository(), nil
	}

	remote, err := spellrepo.NewDND5eAPIRepository(&spellrepo.DND5eAPIConfig{
		BaseURL:     c.Catalog.DND5eAPI.BaseURL,
		HTTPTimeout: c.Catalog.DND5eAPI.HTTPTimeout,
		CacheTTL:    c.Catalog.DND5eAPI.CacheTTL,
	})
	if err != nil {
		return nil, err
	}
	if client == nil || c.Catalog.RedisCacheTTL == 0 {
		return remote, nil
	}

	return spellrepo.NewRedisCache(&spellrepo.RedisCacheConfig{
		Client: client,
		Source: remote,
		Name:   config.CatalogDND5eAPI,
		TTL:    c.Catalog.RedisCacheTTL,
	})
}

func usesRedis(c *config.Config) bool {
	return c.Views.Enabled || (c.Catalog.Source == config.CatalogDND5eAPI && c.Catalog.RedisCacheTTL > 0)
}

// newSpellsService wires the catalog and, when enabled, the Redis view store.
// The returned cleanup closes the Redis client.
func newSpellsService(c *config.Config) (spells.Service, func(), error) {
	var client redis.Client
	cleanup := func() {}

	if usesRedis(c) {
		var err error
		client, err = redis.Connect(c.Redis.Endpoints, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		cleanup = func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}
	}

	spellRepo, err := newSpellRepository(c, client)
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create spell repository")
	}

	svcCfg := &spells.Config{SpellRepo: spellRepo}

	if c.Views.Enabled {
		viewRepo, err := filterview.NewRedisRepository(&filterview.Config{
			Client: client,
			Clock:  clock.New(),
			TTL:    c.Views.TTL,
		})
		if err != nil {
			cleanup()
			return nil, nil, errors.Wrap(err, "failed to create view repository")
		}

		svcCfg.ViewRepo = viewRepo
		svcCfg.IDGenerator = idgen.NewUUID("view")
	}

	svc, err := spells.NewOrchestrator(svcCfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// newDiceService wires the dice orchestrator to Redis roll sessions
func newDiceService(c *config.Config) (dice.Service, func(), error) {
	client, err := redis.Connect(c.Redis.Endpoints, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	sessionRepo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client:     client,
		Clock:      clock.New(),
		DefaultTTL: c.Dice.SessionTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, errors.Wrap(err, "failed to create dice session repository")
	}

	svc, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: sessionRepo,
		IDGenerator:     idgen.NewUUID("roll"),
		SessionTTL:      c.Dice.SessionTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
