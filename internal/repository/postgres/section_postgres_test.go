package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSectionPostgres_ListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSectionPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "content"}).
			AddRow("header", []byte(`{"logoText":"Agency"}`)).
			AddRow("hero", []byte(`{"headline":"Olá"}`))

		mock.ExpectQuery("SELECT id, content FROM sections").
			WillReturnRows(rows)

		records, err := repo.ListAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, records, 2)
		assert.Equal(t, "header", records[0].ID)
		assert.JSONEq(t, `{"logoText":"Agency"}`, string(records[0].Content))
	})

	t.Run("empty table", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, content FROM sections").
			WillReturnRows(sqlmock.NewRows([]string{"id", "content"}))

		records, err := repo.ListAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestSectionPostgres_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSectionPostgres(db)
	ctx := context.Background()

	content := json.RawMessage(`{"headline":"Novo"}`)

	mock.ExpectExec("INSERT INTO sections").
		WithArgs("hero", []byte(content)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(ctx, "hero", content)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
