package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-spellbook/internal/redis"
)

func TestConnect(t *testing.T) {
	t.Run("requires an endpoint", func(t *testing.T) {
		client, err := redis.Connect(nil, nil)
		assert.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("single endpoint talks to the server", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := redis.Connect([]string{mr.Addr()}, &redis.Options{PoolSize: 2})
		require.NoError(t, err)
		defer func() { _ = client.Close() }()

		require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		got, err := mr.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("several endpoints build a cluster client", func(t *testing.T) {
		client, err := redis.Connect([]string{"a:6379", "b:6379"}, nil)
		require.NoError(t, err)
		assert.NotNil(t, client)
		_ = client.Close()
	})
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)

	_, err = redis.NewClusterClient(nil, nil)
	assert.Error(t, err)
}
