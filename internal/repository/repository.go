package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

import (
	"context"
	"encoding/json"
	"time"

	"agencycms/internal/model"
)

// SectionRecord is one row of the sections table: a string id keying one
// JSON blob.
type SectionRecord struct {
	ID      string          `json:"id"`
	Content json.RawMessage `json:"content"`
}

// SectionRepository defines data access for the sections key/value table.
// No business logic here — strictly persistence operations.
type SectionRepository interface {
	// ListAll returns every stored section row.
	ListAll(ctx context.Context) ([]SectionRecord, error)

	// Upsert writes one section blob under its id, replacing any prior value.
	Upsert(ctx context.Context, id string, content json.RawMessage) error
}

// PortfolioRepository defines data access for the ordered portfolio table.
type PortfolioRepository interface {
	// ListOrdered returns all items ordered by position ascending (nulls
	// first) then creation time ascending.
	ListOrdered(ctx context.Context) ([]model.PortfolioItem, error)

	// UpsertAll writes every item in one call. Items without an id are
	// inserted with a server-assigned id; items with an id are updated.
	UpsertAll(ctx context.Context, items []model.PortfolioItem) error

	// DeleteByIDs bulk-deletes items by id. Missing ids are not an error.
	DeleteByIDs(ctx context.Context, ids []string) error
}

// AuditRepository defines access to the append-only audit log. Rows are only
// ever inserted and read, never mutated or deleted.
type AuditRepository interface {
	// InsertAll appends every entry in one bulk call.
	InsertAll(ctx context.Context, entries []model.AuditLogEntry) error

	// ListRecent returns the newest entries first.
	ListRecent(ctx context.Context, limit int) ([]model.AuditLogEntry, error)

	// CountSince counts entries created at or after the given time.
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// ProfileRepository defines data access for per-user profiles.
type ProfileRepository interface {
	// FindByID returns the profile for a user id.
	FindByID(ctx context.Context, id string) (*model.Profile, error)

	// Upsert writes the profile, creating the row on first save, and
	// returns the stored record.
	Upsert(ctx context.Context, p *model.Profile) (*model.Profile, error)
}

// UserRepository defines data access for admin accounts.
type UserRepository interface {
	// FindByEmail returns the account with the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns the account with the given id.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// Create inserts a new account and returns the stored record.
	Create(ctx context.Context, u *model.User) (*model.User, error)
}
