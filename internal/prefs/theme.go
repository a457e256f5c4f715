// Package prefs stores small per-user preferences in Redis.
package prefs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Theme values accepted by the store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeStore persists each admin user's dashboard theme choice. A missing
// key resolves to the light theme.
type ThemeStore struct {
	client *redis.Client
	prefix string
}

// NewThemeStore creates a theme preference store on an existing Redis client.
func NewThemeStore(client *redis.Client) *ThemeStore {
	return &ThemeStore{
		client: client,
		prefix: "prefs:theme:",
	}
}

func (s *ThemeStore) key(userID string) string {
	return s.prefix + userID
}

// Get returns the stored theme for the user, defaulting to light.
func (s *ThemeStore) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme preference: %w", err)
	}
	if val != ThemeLight && val != ThemeDark {
		return ThemeLight, nil
	}
	return val, nil
}

// Set stores the theme for the user. Only light and dark are accepted.
func (s *ThemeStore) Set(ctx context.Context, userID, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.client.Set(ctx, s.key(userID), theme, 0).Err(); err != nil {
		return fmt.Errorf("set theme preference: %w", err)
	}
	return nil
}
