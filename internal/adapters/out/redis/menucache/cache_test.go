package menucache_test

import (
	"testing"
	"time"

	"restaurant/internal/adapters/out/redis/menucache"
	"restaurant/internal/core/domain/model/dish"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.MenuCache = (*menucache.RedisCache)(nil)
	_ ports.MenuCache = menucache.Noop{}
)

func newCache(t *testing.T, ttl time.Duration) (*menucache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return menucache.NewRedisCache(client, ttl), server
}

func sampleMenu(t *testing.T) []*dish.Dish {
	t.Helper()
	price, err := kernel.NewPrice(350.5)
	require.NoError(t, err)
	soup, err := dish.RestoreDish(kernel.MustNewID(1), "Борщ", "со сметаной", price, "супы")
	require.NoError(t, err)
	tea, err := dish.RestoreDish(kernel.MustNewID(2), "Чай", "", price, "напитки")
	require.NoError(t, err)
	return []*dish.Dish{soup, tea}
}

func TestRedisCache_MissOnEmpty(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	dishes, ok, err := cache.Get(t.Context())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, dishes)
}

func TestRedisCache_SetThenGet(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	menu := sampleMenu(t)

	stored, err := cache.Set(t.Context(), 0, menu)
	require.NoError(t, err)
	require.True(t, stored)
	dishes, ok, err := cache.Get(t.Context())

	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, dishes, 2)
	assert.True(t, dishes[0].IsEqual(menu[0]))
	assert.Equal(t, "со сметаной", dishes[0].Description())
	assert.InDelta(t, 350.5, dishes[1].Price().Amount(), 1e-9)
	assert.Equal(t, "напитки", dishes[1].Category())
}

func TestRedisCache_EmptyMenuIsAHit(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	_, err := cache.Set(t.Context(), 0, []*dish.Dish{})
	require.NoError(t, err)
	dishes, ok, err := cache.Get(t.Context())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, dishes)
}

func TestRedisCache_Expires(t *testing.T) {
	cache, server := newCache(t, time.Minute)
	_, err := cache.Set(t.Context(), 0, sampleMenu(t))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, server.TTL(menucache.Key))
	server.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(t.Context())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache, server := newCache(t, 0)
	_, err := cache.Set(t.Context(), 0, sampleMenu(t))
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(t.Context()))

	assert.False(t, server.Exists(menucache.Key))
	require.NoError(t, cache.Invalidate(t.Context()), "Invalidating an empty cache is not an error")
}

func TestRedisCache_CorruptEntry(t *testing.T) {
	cache, server := newCache(t, 0)
	require.NoError(t, server.Set(menucache.Key, "{not json"))

	_, ok, err := cache.Get(t.Context())

	require.Error(t, err)
	assert.False(t, ok)
}

func TestRedisCache_GenerationStartsAtZero(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	gen, err := cache.Generation(t.Context())

	require.NoError(t, err)
	assert.Zero(t, gen)
}

func TestRedisCache_InvalidateAdvancesGeneration(t *testing.T) {
	cache, _ := newCache(t, time.Minute)

	require.NoError(t, cache.Invalidate(t.Context()))
	require.NoError(t, cache.Invalidate(t.Context()))

	gen, err := cache.Generation(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
}

func TestRedisCache_SetWithStaleGenerationIsDropped(t *testing.T) {
	cache, server := newCache(t, time.Minute)
	gen, err := cache.Generation(t.Context())
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(t.Context()))
	stored, err := cache.Set(t.Context(), gen, sampleMenu(t))

	require.NoError(t, err)
	assert.False(t, stored)
	assert.False(t, server.Exists(menucache.Key))
}

func TestRedisCache_SetWithCurrentGenerationAfterInvalidate(t *testing.T) {
	cache, _ := newCache(t, time.Minute)
	require.NoError(t, cache.Invalidate(t.Context()))
	gen, err := cache.Generation(t.Context())
	require.NoError(t, err)

	stored, err := cache.Set(t.Context(), gen, sampleMenu(t))
	require.NoError(t, err)
	assert.True(t, stored)

	dishes, ok, err := cache.Get(t.Context())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, dishes, 2)
}

func TestNoop_NeverStores(t *testing.T) {
	var cache menucache.Noop

	stored, err := cache.Set(t.Context(), 0, sampleMenu(t))
	require.NoError(t, err)
	assert.False(t, stored)

	_, ok, err := cache.Get(t.Context())
	require.NoError(t, err)
	assert.False(t, ok)
}
