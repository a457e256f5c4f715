package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agencycms/internal/content"
	"agencycms/internal/storage"
	storagemocks "agencycms/internal/storage/mocks"
)

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		svc := NewMediaService(store)
		body := strings.NewReader("fake image bytes")

		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".webp")
		}), body, mock.Anything).Return(storage.ObjectInfo{
			Key:  "uploads/generated.webp",
			Size: 16,
		}, nil)
		store.On("PublicURL", "uploads/generated.webp").
			Return("https://cdn.example/site/uploads/generated.webp")

		up, err := svc.UploadImage(ctx, body, "hero.webp", "image/webp", 16, "hero.backgroundImageUrl")

		require.NoError(t, err)
		assert.Equal(t, "hero.backgroundImageUrl", up.FieldID)
		assert.Equal(t, "https://cdn.example/site/uploads/generated.webp", up.PublicURL)
		assert.Equal(t, int64(16), up.Size)
		store.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewMediaService(new(storagemocks.MockStorage))

		_, err := svc.UploadImage(ctx, nil, "x.png", "image/png", 1, "f")

		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		svc := NewMediaService(store)

		_, err := svc.UploadImage(ctx, strings.NewReader("x"), "x.exe", "application/octet-stream", 1, "f")

		assert.ErrorIs(t, err, ErrUnsupportedImage)
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMediaService_RemoveImage(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes keys under the uploads prefix", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		svc := NewMediaService(store)
		store.On("Delete", mock.Anything, "uploads/old.webp").Return(nil)

		require.NoError(t, svc.RemoveImage(ctx, "/uploads/old.webp"))
		store.AssertExpectations(t)
	})

	t.Run("rejects keys outside the namespace", func(t *testing.T) {
		store := new(storagemocks.MockStorage)
		svc := NewMediaService(store)

		for _, key := range []string{"secrets/db.dump", "uploads/../secrets/db.dump", ""} {
			err := svc.RemoveImage(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidMediaKey, key)
		}
		store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMediaService_UploadIcon(t *testing.T) {
	svc := NewMediaService(new(storagemocks.MockStorage))

	t.Run("clean svg passes verbatim", func(t *testing.T) {
		markup := `<svg viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`

		got, err := svc.UploadIcon(markup)

		require.NoError(t, err)
		assert.Equal(t, markup, got)
	})

	t.Run("script element rejected", func(t *testing.T) {
		_, err := svc.UploadIcon(`<svg><script>alert(1)</script></svg>`)

		assert.ErrorIs(t, err, content.ErrUnsafeSVG)
	})

	t.Run("event handler attribute rejected", func(t *testing.T) {
		_, err := svc.UploadIcon(`<svg onload="alert(1)"></svg>`)

		assert.ErrorIs(t, err, content.ErrUnsafeSVG)
	})
}
