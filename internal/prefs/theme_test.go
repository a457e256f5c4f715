package prefs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupThemeStore(t *testing.T) (*ThemeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewThemeStore(client), mr
}

func TestThemeStore_DefaultsToLight(t *testing.T) {
	store, _ := setupThemeStore(t)

	theme, err := store.Get(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestThemeStore_SetAndGet(t *testing.T) {
	store, _ := setupThemeStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user-123", ThemeDark))

	theme, err := store.Get(ctx, "user-123")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	// Preferences are per user.
	other, err := store.Get(ctx, "user-456")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, other)
}

func TestThemeStore_RejectsUnknownTheme(t *testing.T) {
	store, _ := setupThemeStore(t)

	err := store.Set(context.Background(), "user-123", "solarized")

	assert.Error(t, err)
}

func TestThemeStore_CorruptValueFallsBack(t *testing.T) {
	store, mr := setupThemeStore(t)
	mr.Set("prefs:theme:user-123", "garbage")

	theme, err := store.Get(context.Background(), "user-123")

	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}
