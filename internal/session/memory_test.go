package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateGetDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour, 0)
	defer store.Close()
	ctx := context.Background()

	token, err := store.Create(ctx, 7, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	sess, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), sess.UserID)
	assert.Equal(t, "alice", sess.Username)

	require.NoError(t, store.Delete(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_TokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour, 0)
	defer store.Close()

	a, _ := store.Create(context.Background(), 1, "alice")
	b, _ := store.Create(context.Background(), 1, "alice")
	assert.NotEqual(t, a, b)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute, 0)
	defer store.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	token, err := store.Create(ctx, 1, "bob")
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	_, err = store.Get(ctx, token)
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, store.Len())
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	store := NewMemoryStore(time.Minute, 0)
	defer store.Close()
	ctx := context.Background()

	now := time.Now()
	store.now = func() time.Time { return now }
	_, _ = store.Create(ctx, 1, "a")
	_, _ = store.Create(ctx, 2, "b")
	require.Equal(t, 2, store.Len())

	now = now.Add(2 * time.Minute)
	store.sweep()
	assert.Zero(t, store.Len())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Hour, time.Millisecond)
	defer store.Close()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			token, err := store.Create(ctx, id, "user")
			if !assert.NoError(t, err) {
				return
			}
			sess, err := store.Get(ctx, token)
			if assert.NoError(t, err) {
				assert.Equal(t, id, sess.UserID)
			}
			assert.NoError(t, store.Delete(ctx, token))
		}(uint(i))
	}
	wg.Wait()
	assert.Zero(t, store.Len())
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Hour, time.Millisecond)
	store.Close()
	assert.NotPanics(t, store.Close)
}
