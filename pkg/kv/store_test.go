package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/school-admin/pkg/kv"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	_, err := store.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Set(ctx, "auth.token", "t1"))
	v, err := store.Get(ctx, "auth.token")
	require.NoError(t, err)
	assert.Equal(t, "t1", v)

	require.NoError(t, store.Delete(ctx, "auth.token", "missing"))
	_, err = store.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestWithNamespace_IsolatesClients(t *testing.T) {
	ctx := context.Background()
	shared := kv.NewMemoryStore()
	first := kv.WithNamespace(shared, "client:1:")
	second := kv.WithNamespace(shared, "client:2:")

	require.NoError(t, first.Set(ctx, "auth.token", "t1"))

	_, err := second.Get(ctx, "auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	v, err := shared.Get(ctx, "client:1:auth.token")
	require.NoError(t, err)
	assert.Equal(t, "t1", v)

	require.NoError(t, first.Delete(ctx, "auth.token"))
	_, err = shared.Get(ctx, "client:1:auth.token")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
