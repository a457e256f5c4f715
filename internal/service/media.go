package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"agencycms/internal/content"
	"agencycms/internal/storage"
)

var (
	ErrReaderNil        = errors.New("reader is nil")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrInvalidMediaKey  = errors.New("key is outside the uploads prefix")
)

// uploadsPrefix namespaces every object this service writes; removal is
// restricted to the same namespace.
const uploadsPrefix = "uploads/"

// allowedImageTypes lists the content types accepted for site images.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/webp":    {},
	"image/gif":     {},
	"image/svg+xml": {},
	"image/x-icon":  {},
}

// Upload is the result of a stored media object. FieldID echoes the caller's
// field identifier so concurrent uploads for different fields do not collide.
type Upload struct {
	FieldID   string `json:"fieldId"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
	Size      int64  `json:"size"`
}

// MediaService stores admin-uploaded images and screened SVG icons in
// object storage and hands back stable public URLs for embedding in content.
type MediaService interface {
	// UploadImage stores an image under a generated key and returns its
	// public URL.
	UploadImage(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, fieldID string) (*Upload, error)

	// UploadIcon screens raw SVG markup for active content and, when it
	// passes, returns it unchanged for verbatim storage in the document.
	UploadIcon(markup string) (string, error)

	// RemoveImage deletes a previously uploaded object, typically after the
	// admin replaces an image and the old key is no longer referenced. Only
	// keys under the uploads namespace are accepted.
	RemoveImage(ctx context.Context, key string) error
}

type mediaService struct {
	store storage.Storage
}

// NewMediaService constructs a new MediaService.
func NewMediaService(store storage.Storage) MediaService {
	return &mediaService{store: store}
}

func (s *mediaService) UploadImage(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, fieldID string) (*Upload, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, ok := allowedImageTypes[strings.ToLower(contentType)]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	ext := filepath.Ext(originalFilename)
	key := uploadsPrefix + uuid.New().String() + ext

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &Upload{
		FieldID:   fieldID,
		PublicURL: s.store.PublicURL(info.Key),
		Key:       info.Key,
		Size:      info.Size,
	}, nil
}

// UploadIcon runs the SVG screen at the trust boundary. The markup itself
// stays a plain string field on the technology entry; nothing is rewritten.
func (s *mediaService) UploadIcon(markup string) (string, error) {
	if err := content.ScreenSVG(markup); err != nil {
		return "", err
	}
	return markup, nil
}

func (s *mediaService) RemoveImage(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, uploadsPrefix) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %s", ErrInvalidMediaKey, key)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete from storage: %w", err)
	}
	return nil
}
