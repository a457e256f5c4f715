package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionStore(t *testing.T) *SessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStoreWithClient(client, time.Hour)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionStore_CreateAndLookup(t *testing.T) {
	store := setupSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-123", "admin@example.com")
	require.NoError(t, err)
	assert.Len(t, token, 64)

	data, err := store.Lookup(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", data.UserID)
	assert.Equal(t, "admin@example.com", data.Email)
	assert.False(t, data.CreatedAt.IsZero())
}

func TestSessionStore_LookupUnknownToken(t *testing.T) {
	store := setupSessionStore(t)

	_, err := store.Lookup(context.Background(), "no-such-token")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Revoke(t *testing.T) {
	store := setupSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-123", "admin@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Revoking again is a no-op.
	assert.NoError(t, store.Revoke(ctx, token))
}

func TestSessionStore_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStoreWithClient(client, time.Minute)
	defer store.Close()

	ctx := context.Background()
	token, err := store.Create(ctx, "user-123", "admin@example.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Lookup(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_LookupRefreshesExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStoreWithClient(client, time.Minute)
	defer store.Close()

	ctx := context.Background()
	token, err := store.Create(ctx, "user-123", "admin@example.com")
	require.NoError(t, err)

	// Touch the session halfway through its window, then move past the
	// original deadline. The session must still resolve.
	mr.FastForward(30 * time.Second)
	_, err = store.Lookup(ctx, token)
	require.NoError(t, err)

	mr.FastForward(45 * time.Second)
	_, err = store.Lookup(ctx, token)
	assert.NoError(t, err)
}
