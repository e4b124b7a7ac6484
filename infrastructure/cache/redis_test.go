package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestFilterOptionsCache(t *testing.T) {
	ctx := context.Background()
	options := domain.FilterOptions{
		domain.FilterUTMSource: {"facebook", "google"},
		domain.FilterGCLID:     {},
	}

	t.Run("Miss retorna found=false sem erro", func(t *testing.T) {
		_, client := setupTestRedis(t)
		cache := NewFilterOptionsCache(client, time.Minute)

		got, found, err := cache.Get(ctx, "ACC001")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("Set seguido de Get devolve as opções", func(t *testing.T) {
		_, client := setupTestRedis(t)
		cache := NewFilterOptionsCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "ACC001", options))
		got, found, err := cache.Get(ctx, "ACC001")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []string{"facebook", "google"}, got[domain.FilterUTMSource])
	})

	t.Run("Entradas expiram após o TTL", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewFilterOptionsCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "ACC001", options))
		mr.FastForward(2 * time.Minute)

		_, found, err := cache.Get(ctx, "ACC001")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Contas não compartilham entradas", func(t *testing.T) {
		_, client := setupTestRedis(t)
		cache := NewFilterOptionsCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "ACC001", options))

		_, found, err := cache.Get(ctx, "ACC002")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Invalidate remove a entrada", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		cache := NewFilterOptionsCache(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "ACC001", options))
		require.NoError(t, cache.Invalidate(ctx, "ACC001"))

		assert.False(t, mr.Exists("filter_options:ACC001"))
	})
}

func TestNewRedisClient(t *testing.T) {
	t.Run("URL inválida", func(t *testing.T) {
		_, err := NewRedisClient(context.Background(), "http://not-redis")
		assert.Error(t, err)
	})

	t.Run("Conecta no servidor", func(t *testing.T) {
		mr, _ := setupTestRedis(t)

		client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())

		require.NoError(t, err)
		assert.NoError(t, client.Close())
	})
}
