package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"agencycms/internal/content"
	"agencycms/internal/model"
	"agencycms/internal/repository"
)

// PortfolioPostgres is a PostgreSQL implementation of repository.PortfolioRepository.
type PortfolioPostgres struct {
	db *sql.DB
}

// NewPortfolioPostgres creates a new PortfolioPostgres repository.
func NewPortfolioPostgres(db *sql.DB) *PortfolioPostgres {
	return &PortfolioPostgres{db: db}
}

var _ repository.PortfolioRepository = (*PortfolioPostgres)(nil)

// ListOrdered returns all items ordered by position ascending (nulls first)
// then creation time ascending. A row whose technologies column cannot be
// parsed degrades to an empty list with a warning; it never fails the read.
func (r *PortfolioPostgres) ListOrdered(ctx context.Context) ([]model.PortfolioItem, error) {
	const q = `
		SELECT id, imageurl, title, category, technologies,
		       COALESCE(desafio, ''), COALESCE(solucao, ''), COALESCE(resultados, ''),
		       position, created_at
		FROM portfolio
		ORDER BY position ASC NULLS FIRST, created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PortfolioItem, 0)
	for rows.Next() {
		var (
			item     model.PortfolioItem
			rawTechs []byte
			position sql.NullInt64
		)
		if err := rows.Scan(
			&item.ID,
			&item.ImageURL,
			&item.Title,
			&item.Category,
			&rawTechs,
			&item.Challenge,
			&item.Solution,
			&item.Results,
			&position,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if position.Valid {
			item.Position = int(position.Int64)
		}
		techs, err := content.ParseTechnologies(rawTechs)
		if err != nil {
			log.Printf("portfolio row %s: %v", item.ID, err)
		}
		item.Technologies = techs
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertAll writes every item inside one transaction. Items carrying an id
// are updated in place; items without one are inserted and receive a
// server-assigned UUID. The created_at column is never written here.
func (r *PortfolioPostgres) UpsertAll(ctx context.Context, items []model.PortfolioItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsertQ = `
		INSERT INTO portfolio (id, imageurl, title, category, technologies, desafio, solucao, resultados, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			imageurl = EXCLUDED.imageurl,
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			technologies = EXCLUDED.technologies,
			desafio = EXCLUDED.desafio,
			solucao = EXCLUDED.solucao,
			resultados = EXCLUDED.resultados,
			position = EXCLUDED.position
	`
	const insertQ = `
		INSERT INTO portfolio (imageurl, title, category, technologies, desafio, solucao, resultados, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range items {
		techs, err := json.Marshal(item.Technologies)
		if err != nil {
			return fmt.Errorf("marshal technologies: %w", err)
		}
		if item.ID != "" {
			_, err = tx.ExecContext(ctx, upsertQ,
				item.ID, item.ImageURL, item.Title, item.Category, techs,
				item.Challenge, item.Solution, item.Results, item.Position)
		} else {
			_, err = tx.ExecContext(ctx, insertQ,
				item.ImageURL, item.Title, item.Category, techs,
				item.Challenge, item.Solution, item.Results, item.Position)
		}
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteByIDs bulk-deletes items by id. Missing ids are not an error.
func (r *PortfolioPostgres) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf(`DELETE FROM portfolio WHERE id IN (%s)`, strings.Join(placeholders, ", "))
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}
