package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const clientColumns = `id, name, description, website, x, linkedin, logo_id, logo_url, member_ids, project_ids, document_ids, created_at`

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*model.Client, error) {
	var (
		c           model.Client
		memberIDs   stringList
		projectIDs  stringList
		documentIDs stringList
	)
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Website,
		&c.X,
		&c.LinkedIn,
		&c.LogoID,
		&c.LogoURL,
		&memberIDs,
		&projectIDs,
		&documentIDs,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.MemberIDs = memberIDs
	c.ProjectIDs = projectIDs
	c.DocumentIDs = documentIDs
	return &c, nil
}

// Create inserts a new client row and returns the stored record.
func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		INSERT INTO clients (id, name, description, website, x, linkedin, logo_id, logo_url, member_ids, project_ids, document_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Description,
		c.Website,
		c.X,
		c.LinkedIn,
		c.LogoID,
		c.LogoURL,
		stringList(c.MemberIDs),
		stringList(c.ProjectIDs),
		stringList(c.DocumentIDs),
		c.CreatedAt,
	)
	return scanClient(row)
}

// FindByID fetches a single client by its ID.
func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRowContext(ctx, q, id))
}

// List returns clients ordered by descending creation time, capped at the
// platform list bound.
func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	const q = `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the client's editable field set and returns the stored record.
func (r *ClientPostgres) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET name = $2, description = $3, website = $4, x = $5, linkedin = $6,
		    document_ids = $7, project_ids = $8, logo_id = $9, logo_url = $10
		WHERE id = $1
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Description,
		c.Website,
		c.X,
		c.LinkedIn,
		stringList(c.DocumentIDs),
		stringList(c.ProjectIDs),
		c.LogoID,
		c.LogoURL,
	)
	return scanClient(row)
}

// UpdateMemberIDs replaces the client's assigned member list.
func (r *ClientPostgres) UpdateMemberIDs(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET member_ids = $2
		WHERE id = $1
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q, clientID, stringList(memberIDs))
	return scanClient(row)
}

// Delete removes a client by ID. It returns nil if the row did not exist.
func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM clients WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
