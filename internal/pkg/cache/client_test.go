package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinventory/internal/pkg/cache"
)

func newClient(t *testing.T) (cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := cache.Dial(context.Background(), mr.Addr(), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })
	return cache.NewRedisClient(rdb, "test:"), mr
}

func TestRedisClient_MissAndCounters(t *testing.T) {
	client, mr := newClient(t)
	ctx := context.Background()

	_, err := client.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)

	n, err := client.Incr(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, client.Expire(ctx, "k", time.Minute))

	got, err := client.GetInt(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	require.NoError(t, client.Delete(ctx, "k"))
	assert.False(t, mr.Exists("test:k"))
}

func TestRedisClient_SetWithExpiration(t *testing.T) {
	client, mr := newClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "greeting", "hola", 10*time.Second))
	mr.FastForward(11 * time.Second)

	_, err := client.Get(ctx, "greeting")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestDial_Unreachable(t *testing.T) {
	_, err := cache.Dial(context.Background(), "127.0.0.1:1", 200*time.Millisecond)
	assert.Error(t, err)
}
