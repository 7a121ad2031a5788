// internal/scores/redis_test.go
package scores

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisStore{Client: client, Key: DefaultKey}
}

func TestRedisStoreLookupMissing(t *testing.T) {
	store := newTestStore(t)

	score, ok, err := store.Lookup(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, score)
}

func TestRedisStoreSnapshotAndLookup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Snapshot(ctx, map[string]int{"alice": 3, "bob": 1}))

	score, ok, err := store.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, score)

	// A later snapshot overwrites prior values.
	require.NoError(t, store.Snapshot(ctx, map[string]int{"alice": 4}))
	score, _, err = store.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, score)
}

func TestRedisStoreEmptySnapshotIsNoop(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Snapshot(context.Background(), nil))
}
