package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const stakeholderColumns = `id, client_id, email, first_name, last_name, status, created_at`

// StakeholderPostgres is a PostgreSQL implementation of repository.StakeholderRepository.
type StakeholderPostgres struct {
	db *sql.DB
}

// NewStakeholderPostgres creates a new StakeholderPostgres repository.
func NewStakeholderPostgres(db *sql.DB) *StakeholderPostgres {
	return &StakeholderPostgres{db: db}
}

var _ repository.StakeholderRepository = (*StakeholderPostgres)(nil)

func scanStakeholder(row rowScanner) (*model.Stakeholder, error) {
	var s model.Stakeholder
	if err := row.Scan(
		&s.ID,
		&s.ClientID,
		&s.Email,
		&s.FirstName,
		&s.LastName,
		&s.Status,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new stakeholder row and returns the stored record.
func (r *StakeholderPostgres) Create(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error) {
	const q = `
		INSERT INTO stakeholders (id, client_id, email, first_name, last_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + stakeholderColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.ClientID,
		s.Email,
		s.FirstName,
		s.LastName,
		s.Status,
		s.CreatedAt,
	)
	return scanStakeholder(row)
}

// List returns stakeholders ordered by descending creation time, capped at
// the platform list bound.
func (r *StakeholderPostgres) List(ctx context.Context) ([]model.Stakeholder, error) {
	const q = `
		SELECT ` + stakeholderColumns + `
		FROM stakeholders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Stakeholder, 0)
	for rows.Next() {
		s, err := scanStakeholder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the stakeholder's editable field set and returns the stored record.
func (r *StakeholderPostgres) Update(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error) {
	const q = `
		UPDATE stakeholders
		SET email = $2, first_name = $3, last_name = $4, client_id = $5
		WHERE id = $1
		RETURNING ` + stakeholderColumns
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Email,
		s.FirstName,
		s.LastName,
		s.ClientID,
	)
	return scanStakeholder(row)
}
