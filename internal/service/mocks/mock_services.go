package mocks

import (
	"context"
	"io"

	"agencycms/internal/content"
	"agencycms/internal/model"
	"agencycms/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Load(ctx context.Context) (*model.ContentDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentDocument), args.Error(1)
}

func (m *MockContentService) Save(ctx context.Context, draft *content.Draft, userEmail string) (*service.SaveResult, error) {
	args := m.Called(ctx, draft, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}

func (m *MockContentService) RecentActivity(ctx context.Context, limit int) ([]model.AuditLogEntry, int, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.AuditLogEntry), args.Int(1), args.Error(2)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userEmail string, p *model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, userEmail, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64, fieldID string) (*service.Upload, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size, fieldID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Upload), args.Error(1)
}

func (m *MockMediaService) UploadIcon(markup string) (string, error) {
	args := m.Called(markup)
	return args.String(0), args.Error(1)
}

func (m *MockMediaService) RemoveImage(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
