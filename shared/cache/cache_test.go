package cache_test

import (
	"context"
	"errors"
	"seatpos/infras/otel/mocks"
	"seatpos/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type room struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), srv
}

func TestSaveAndGet(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "seatpos:room:get:1", room{ID: "1", Price: 50000}, 60))

	var got room
	require.NoError(t, c.Get(ctx, "seatpos:room:get:1", &got))
	assert.Equal(t, room{ID: "1", Price: 50000}, got)

	require.NoError(t, c.Save(ctx, "seatpos:raw", "plain", 60))

	var raw string
	require.NoError(t, c.Get(ctx, "seatpos:raw", &raw))
	assert.Equal(t, "plain", raw)
}

func TestGet_Missing(t *testing.T) {
	c, _ := newCache(t)

	var got room
	err := c.Get(context.Background(), "seatpos:none", &got)

	assert.True(t, errors.Is(err, cache.Nil))
}

func TestSave_Expires(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "seatpos:short", 1, 10))
	srv.FastForward(11 * time.Second)

	var got int
	assert.ErrorIs(t, c.Get(ctx, "seatpos:short", &got), cache.Nil)
}

func TestDeleteAndClear(t *testing.T) {
	c, srv := newCache(t)
	ctx := context.Background()

	for _, key := range []string{"seatpos:booking:a", "seatpos:booking:b", "seatpos:room:a"} {
		require.NoError(t, c.Save(ctx, key, 1, 60))
	}

	require.NoError(t, c.Delete(ctx, "seatpos:room:a"))
	assert.False(t, srv.Exists("seatpos:room:a"))

	require.NoError(t, c.Clear(ctx, "seatpos:booking:*"))
	assert.False(t, srv.Exists("seatpos:booking:a"))
	assert.False(t, srv.Exists("seatpos:booking:b"))

	require.NoError(t, c.Clear(ctx, "seatpos:nothing:*"))
}
