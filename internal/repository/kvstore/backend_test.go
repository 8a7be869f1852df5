package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goinventory/internal/repository/kvstore"
)

// backendFactory cria um backend novo e isolado para cada subteste.
type backendFactory func(t *testing.T) kvstore.Backend

func factories() map[string]backendFactory {
	return map[string]backendFactory{
		"memory": func(t *testing.T) kvstore.Backend {
			return kvstore.NewMemoryBackend()
		},
		"sqlite": func(t *testing.T) kvstore.Backend {
			b, err := kvstore.Open(context.Background(), kvstore.Options{
				Driver: kvstore.DriverSQLite,
				DSN:    filepath.Join(t.TempDir(), "inventory.db"),
			})
			require.NoError(t, err)
			t.Cleanup(func() { b.Close() })
			return b
		},
		"redis": func(t *testing.T) kvstore.Backend {
			mr := miniredis.RunT(t)
			rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			b, err := kvstore.Open(context.Background(), kvstore.Options{
				Driver:      kvstore.DriverRedis,
				RedisClient: rdb,
				RedisPrefix: "test:",
				Timeout:     time.Second,
			})
			require.NoError(t, err)
			t.Cleanup(func() { b.Close() })
			return b
		},
	}
}

func TestBackend_GetMissingKey(t *testing.T) {
	for name, newBackend := range factories() {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)

			value, found, err := b.Get(context.Background(), kvstore.KeyProducts)

			require.NoError(t, err)
			assert.False(t, found)
			assert.Empty(t, value)
		})
	}
}

func TestBackend_SetThenGetOverwrites(t *testing.T) {
	for name, newBackend := range factories() {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)
			ctx := context.Background()

			require.NoError(t, b.Set(ctx, kvstore.KeyCategories, `[{"id":"1"}]`))
			require.NoError(t, b.Set(ctx, kvstore.KeyCategories, `[{"id":"2"}]`))

			value, found, err := b.Get(ctx, kvstore.KeyCategories)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, `[{"id":"2"}]`, value)
		})
	}
}

func TestBackend_SetManyWritesEveryKey(t *testing.T) {
	for name, newBackend := range factories() {
		t.Run(name, func(t *testing.T) {
			b := newBackend(t)
			ctx := context.Background()

			err := b.SetMany(ctx, map[string]string{
				kvstore.KeyProducts:   `[]`,
				kvstore.KeyCategories: `[{"id":"c"}]`,
				kvstore.KeyMovements:  `[{"id":"m"}]`,
			})
			require.NoError(t, err)

			for key, want := range map[string]string{
				kvstore.KeyProducts:   `[]`,
				kvstore.KeyCategories: `[{"id":"c"}]`,
				kvstore.KeyMovements:  `[{"id":"m"}]`,
			} {
				got, found, err := b.Get(ctx, key)
				require.NoError(t, err)
				assert.True(t, found, key)
				assert.Equal(t, want, got, key)
			}
			assert.NoError(t, b.Ping(ctx))
		})
	}
}

func TestMemoryBackend_Unavailable(t *testing.T) {
	b := kvstore.NewMemoryBackend()
	b.SetUnavailable(true)
	ctx := context.Background()

	_, _, err := b.Get(ctx, kvstore.KeyProducts)
	assert.ErrorIs(t, err, kvstore.ErrUnavailable)
	assert.ErrorIs(t, b.Set(ctx, kvstore.KeyProducts, "[]"), kvstore.ErrUnavailable)
	assert.ErrorIs(t, b.SetMany(ctx, map[string]string{kvstore.KeyProducts: "[]"}), kvstore.ErrUnavailable)
	assert.ErrorIs(t, b.Ping(ctx), kvstore.ErrUnavailable)
}

func TestSQLBackend_ClosedDatabaseIsUnavailable(t *testing.T) {
	b, err := kvstore.Open(context.Background(), kvstore.Options{
		Driver: kvstore.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "closed.db"),
	})
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, _, err = b.Get(context.Background(), kvstore.KeyProducts)

	assert.ErrorIs(t, err, kvstore.ErrUnavailable)
}

func TestRedisBackend_ServerDownIsUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	b := kvstore.NewRedisBackend(rdb, "test:", time.Second)
	t.Cleanup(func() { b.Close() })
	mr.Close()

	err := b.Set(context.Background(), kvstore.KeyProducts, "[]")

	assert.ErrorIs(t, err, kvstore.ErrUnavailable)
}

func TestRedisBackend_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	b := kvstore.NewRedisBackend(rdb, "goinventory:", time.Second)

	require.NoError(t, b.Set(context.Background(), kvstore.KeyMovements, "[]"))

	got, err := mr.Get("goinventory:" + kvstore.KeyMovements)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := kvstore.Open(context.Background(), kvstore.Options{Driver: "mongo"})
	assert.Error(t, err)
}
