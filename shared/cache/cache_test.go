package cache_test

import (
	"context"
	"testing"
	"time"

	"infopage/infras/otel/mocks"
	"infopage/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	redisCache, server := newCache(t)

	require.NoError(t, redisCache.Save(ctx, "slide:0:09:00", "<div>slide</div>", 60))

	var html string
	require.NoError(t, redisCache.Get(ctx, "slide:0:09:00", &html))
	assert.Equal(t, "<div>slide</div>", html)

	require.NoError(t, redisCache.Save(ctx, "limiter:1", 3, 60))

	var count int
	require.NoError(t, redisCache.Get(ctx, "limiter:1", &count))
	assert.Equal(t, 3, count)

	server.FastForward(61 * time.Second)
	assert.ErrorIs(t, redisCache.Get(ctx, "limiter:1", &count), cache.Nil)
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	redisCache, server := newCache(t)

	require.NoError(t, redisCache.Save(ctx, "slide:0:09:00", "a", 60))
	require.NoError(t, redisCache.Save(ctx, "slide:1:09:00", "b", 60))
	require.NoError(t, redisCache.Save(ctx, "limiter:x", 1, 60))

	require.NoError(t, redisCache.Delete(ctx, "slide:1:09:00"))
	assert.False(t, server.Exists("slide:1:09:00"))

	require.NoError(t, redisCache.Clear(ctx, "slide:*"))
	assert.False(t, server.Exists("slide:0:09:00"))
	assert.True(t, server.Exists("limiter:x"))
}

func TestNilClientNeverHits(t *testing.T) {
	ctx := context.Background()
	redisCache := cache.NewRedisCache(nil, mocks.NewOtel())

	assert.NoError(t, redisCache.Save(ctx, "k", "v", 60))

	var value string
	assert.ErrorIs(t, redisCache.Get(ctx, "k", &value), cache.Nil)
	assert.NoError(t, redisCache.Delete(ctx, "k"))
	assert.NoError(t, redisCache.Clear(ctx, "k*"))
}
