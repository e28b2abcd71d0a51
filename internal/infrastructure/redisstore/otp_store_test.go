package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*OTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewOTPStore(rdb), mr
}

func TestPutGetDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "123456", 15*time.Minute))

	code, ok, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123456", code)

	existed, err := store.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, existed)

	_, ok, err = store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	existed, err = store.Delete(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestPutOverwritesPendingCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "111111", 15*time.Minute))
	require.NoError(t, store.Put(ctx, "a@x.com", "222222", 15*time.Minute))

	code, ok, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "222222", code)
}

func TestGetAfterExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "123456", 15*time.Minute))
	mr.FastForward(15*time.Minute + time.Second)

	_, ok, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeysAreScopedPerEmail(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a@x.com", "111111", time.Minute))
	require.NoError(t, store.Put(ctx, "b@x.com", "222222", time.Minute))

	code, ok, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "111111", code)
}
