package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/school-admin/pkg/kv"
	"github.com/klwxsrx/school-admin/pkg/redis"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return mr, client
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := redis.NewStore(client, "school:", 0)

	_, err := store.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Set(ctx, "auth.token", "t1"))
	v, err := store.Get(ctx, "auth.token")
	require.NoError(t, err)
	assert.Equal(t, "t1", v)
	assert.True(t, mr.Exists("school:auth.token"))

	require.NoError(t, store.Delete(ctx, "auth.token", "auth.user"))
	_, err = store.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Delete(ctx))
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := redis.NewStore(client, "", time.Hour)

	require.NoError(t, store.Set(ctx, "auth.token", "t1"))
	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestStore_ReportsConnectionErrors(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	store := redis.NewStore(client, "", 0)
	mr.Close()

	err := store.Set(ctx, "auth.token", "t1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, kv.ErrNotFound)
}

func TestNewClient_ConnectsByURL(t *testing.T) {
	mr, _ := newTestRedis(t)

	client, err := redis.NewClient(context.Background(), &redis.Config{
		URL:               "redis://" + mr.Addr(),
		ConnectionTimeout: time.Second,
	})
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
