package postgres

import (
	"context"
	"database/sql"
	"errors"

	"agencycms/internal/model"
	"agencycms/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

// FindByID returns the profile for the given user id, or nil when none exists.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	const q = `
		SELECT id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(avatar_url, ''), updated_at
		FROM profiles
		WHERE id = $1
	`
	var p model.Profile
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.FullName, &p.Phone, &p.AvatarURL, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes the profile, creating the row on first save, and returns
// the stored record with its server-assigned updated_at.
func (r *ProfilePostgres) Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	const q = `
		INSERT INTO profiles (id, full_name, phone, avatar_url, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    phone = EXCLUDED.phone,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = now()
		RETURNING id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(avatar_url, ''), updated_at
	`
	var stored model.Profile
	err := r.db.QueryRowContext(ctx, q, p.ID, p.FullName, p.Phone, p.AvatarURL).
		Scan(&stored.ID, &stored.FullName, &stored.Phone, &stored.AvatarURL, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
