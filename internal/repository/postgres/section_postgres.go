package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"agencycms/internal/repository"
)

// SectionPostgres is a PostgreSQL implementation of repository.SectionRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SectionPostgres struct {
	db *sql.DB
}

// NewSectionPostgres creates a new SectionPostgres repository.
func NewSectionPostgres(db *sql.DB) *SectionPostgres {
	return &SectionPostgres{db: db}
}

var _ repository.SectionRepository = (*SectionPostgres)(nil)

// ListAll returns every stored section row.
func (r *SectionPostgres) ListAll(ctx context.Context) ([]repository.SectionRecord, error) {
	const q = `SELECT id, content FROM sections`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]repository.SectionRecord, 0)
	for rows.Next() {
		var rec repository.SectionRecord
		var content []byte
		if err := rows.Scan(&rec.ID, &content); err != nil {
			return nil, err
		}
		rec.Content = json.RawMessage(content)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Upsert writes one section blob under its id, replacing any prior value.
func (r *SectionPostgres) Upsert(ctx context.Context, id string, content json.RawMessage) error {
	const q = `
		INSERT INTO sections (id, content, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, q, id, []byte(content))
	return err
}
