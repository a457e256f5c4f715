package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"agencycms/internal/model"
	"agencycms/internal/repository"
)

// AuditPostgres is a PostgreSQL implementation of repository.AuditRepository.
// The audit_logs table is append-only: this type never issues UPDATE or
// DELETE statements against it.
type AuditPostgres struct {
	db *sql.DB
}

// NewAuditPostgres creates a new AuditPostgres repository.
func NewAuditPostgres(db *sql.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

var _ repository.AuditRepository = (*AuditPostgres)(nil)

// InsertAll appends every entry inside one transaction.
func (r *AuditPostgres) InsertAll(ctx context.Context, entries []model.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO audit_logs (created_at, user_email, action, description, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, q,
			e.CreatedAt, e.UserEmail, e.Action, e.Description,
			nullableJSON(e.OldValue), nullableJSON(e.NewValue),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecent returns the newest entries first.
func (r *AuditPostgres) ListRecent(ctx context.Context, limit int) ([]model.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
		SELECT id, created_at, user_email, action, description, old_value, new_value
		FROM audit_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.AuditLogEntry, 0)
	for rows.Next() {
		var (
			e        model.AuditLogEntry
			oldValue []byte
			newValue []byte
		)
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.UserEmail, &e.Action, &e.Description, &oldValue, &newValue); err != nil {
			return nil, err
		}
		e.OldValue = json.RawMessage(oldValue)
		e.NewValue = json.RawMessage(newValue)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountSince counts entries created at or after the given time.
func (r *AuditPostgres) CountSince(ctx context.Context, since time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM audit_logs WHERE created_at >= $1`
	var count int
	if err := r.db.QueryRowContext(ctx, q, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// nullableJSON maps an absent value to SQL NULL instead of an empty byte slice.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
