package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"clienthub/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func clientRows(c *model.Client) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "website", "x", "linkedin",
		"logo_id", "logo_url", "member_ids", "project_ids", "document_ids", "created_at",
	}).AddRow(
		c.ID, c.Name, c.Description, c.Website, c.X, c.LinkedIn,
		c.LogoID, c.LogoURL, []byte(`[]`), []byte(`[]`), []byte(`[]`), c.CreatedAt,
	)
}

func TestClientPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	c := &model.Client{
		ID:        "client-1",
		Name:      "Acme",
		LogoID:    "logo-1",
		LogoURL:   "https://assets.example.com/logo-1?width=2000&height=2000",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnRows(clientRows(c))

	result, err := repo.Create(ctx, c)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, c.ID, result.ID)
	assert.NotNil(t, result.MemberIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c := &model.Client{ID: "client-1", Name: "Acme", CreatedAt: time.Now()}
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("client-1").
			WillReturnRows(clientRows(c))

		got, err := repo.FindByID(ctx, "client-1")

		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Acme", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM clients WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestClientPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	c := &model.Client{ID: "client-1", Name: "Acme", CreatedAt: time.Now()}
	mock.ExpectQuery("SELECT (.+) FROM clients ORDER BY created_at DESC").
		WithArgs(100).
		WillReturnRows(clientRows(c))

	items, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_UpdateMemberIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	c := &model.Client{ID: "client-1", Name: "Acme", CreatedAt: time.Now()}
	mock.ExpectQuery("UPDATE clients").
		WithArgs("client-1", []byte(`["member-1","member-2"]`)).
		WillReturnRows(clientRows(c))

	got, err := repo.UpdateMemberIDs(ctx, "client-1", []string{"member-1", "member-2"})

	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewClientPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM clients WHERE id = ?").
		WithArgs("client-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "client-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
