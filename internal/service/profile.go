package service

import (
	"context"
	"errors"
	"fmt"

	"agencycms/internal/content"
	"agencycms/internal/model"
	"agencycms/internal/repository"
)

var ErrUserIDRequired = errors.New("user id is required")

// ProfileService manages the per-user profile aggregate. It follows the
// same pattern as the content document at a smaller scale: load, edit,
// save with diff-based audit entries.
type ProfileService interface {
	// Get returns the profile for the user, or an empty profile when none
	// has been saved yet.
	Get(ctx context.Context, userID string) (*model.Profile, error)

	// Update persists the profile and appends one audit entry per changed
	// field.
	Update(ctx context.Context, userEmail string, p *model.Profile) (*model.Profile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	audit    repository.AuditRepository
	now      nowFunc
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(profiles repository.ProfileRepository, audit repository.AuditRepository) ProfileService {
	return &profileService{
		profiles: profiles,
		audit:    audit,
		now:      utcNow,
	}
}

func (s *profileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	p, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if p == nil {
		return &model.Profile{ID: userID}, nil
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, userEmail string, p *model.Profile) (*model.Profile, error) {
	if p == nil || p.ID == "" {
		return nil, ErrUserIDRequired
	}

	original, err := s.Get(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	stored, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	entries := content.BuildProfileAuditEntries(original, stored, userEmail, s.now())
	if len(entries) > 0 {
		if err := s.audit.InsertAll(ctx, entries); err != nil {
			return nil, fmt.Errorf("audit profile update: %w", err)
		}
	}
	return stored, nil
}
