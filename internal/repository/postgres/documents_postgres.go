package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const documentColumns = `id, client_id, title, link, status, stripe_id, eukapay_id, invoice, created_at`

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

func scanDocument(row rowScanner) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.ClientID,
		&d.Title,
		&d.Link,
		&d.Status,
		&d.StripeID,
		&d.EukapayID,
		&d.Invoice,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, d *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, client_id, title, link, status, stripe_id, eukapay_id, invoice, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID,
		d.ClientID,
		d.Title,
		d.Link,
		d.Status,
		d.StripeID,
		d.EukapayID,
		d.Invoice,
		d.CreatedAt,
	)
	return scanDocument(row)
}

// ListByClient returns the client's documents ordered by descending creation
// time, capped at the platform list bound.
func (r *DocumentPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, clientID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the document's status and returns the stored record.
func (r *DocumentPostgres) UpdateStatus(ctx context.Context, id, status string) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET status = $2
		WHERE id = $1
		RETURNING ` + documentColumns
	return scanDocument(r.db.QueryRowContext(ctx, q, id, status))
}

// Delete removes a document by ID. It returns nil if the row did not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
