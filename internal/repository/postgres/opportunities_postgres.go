package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const opportunityColumns = `id, client_id, project_id, member_id, status, role, start_date, background, description, duration, type, estimated_earnings, responsibilities, created_at`

// OpportunityPostgres is a PostgreSQL implementation of repository.OpportunityRepository.
type OpportunityPostgres struct {
	db *sql.DB
}

// NewOpportunityPostgres creates a new OpportunityPostgres repository.
func NewOpportunityPostgres(db *sql.DB) *OpportunityPostgres {
	return &OpportunityPostgres{db: db}
}

var _ repository.OpportunityRepository = (*OpportunityPostgres)(nil)

func scanOpportunity(row rowScanner) (*model.Opportunity, error) {
	var o model.Opportunity
	if err := row.Scan(
		&o.ID,
		&o.ClientID,
		&o.ProjectID,
		&o.MemberID,
		&o.Status,
		&o.Role,
		&o.StartDate,
		&o.Background,
		&o.Description,
		&o.Duration,
		&o.Type,
		&o.EstimatedEarnings,
		&o.Responsibilities,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts a new opportunity row and returns the stored record.
func (r *OpportunityPostgres) Create(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	const q = `
		INSERT INTO opportunities (id, client_id, project_id, member_id, status, role, start_date, background, description, duration, type, estimated_earnings, responsibilities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + opportunityColumns
	row := r.db.QueryRowContext(ctx, q,
		o.ID,
		o.ClientID,
		o.ProjectID,
		o.MemberID,
		o.Status,
		o.Role,
		o.StartDate,
		o.Background,
		o.Description,
		o.Duration,
		o.Type,
		o.EstimatedEarnings,
		o.Responsibilities,
		o.CreatedAt,
	)
	return scanOpportunity(row)
}

// FindByID fetches a single opportunity by its ID.
func (r *OpportunityPostgres) FindByID(ctx context.Context, id string) (*model.Opportunity, error) {
	const q = `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`
	return scanOpportunity(r.db.QueryRowContext(ctx, q, id))
}

// ListByClient returns the client's opportunities ordered by descending
// creation time, capped at the platform list bound.
func (r *OpportunityPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Opportunity, error) {
	const q = `
		SELECT ` + opportunityColumns + `
		FROM opportunities
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.list(ctx, q, clientID)
}

// ListByProject returns the project's opportunities ordered by descending
// creation time, capped at the platform list bound.
func (r *OpportunityPostgres) ListByProject(ctx context.Context, projectID string) ([]model.Opportunity, error) {
	const q = `
		SELECT ` + opportunityColumns + `
		FROM opportunities
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	return r.list(ctx, q, projectID)
}

func (r *OpportunityPostgres) list(ctx context.Context, q, parentID string) ([]model.Opportunity, error) {
	rows, err := r.db.QueryContext(ctx, q, parentID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Opportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the opportunity's editable field set and returns the stored record.
func (r *OpportunityPostgres) Update(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error) {
	const q = `
		UPDATE opportunities
		SET status = $2, role = $3, start_date = $4, background = $5,
		    description = $6, duration = $7, type = $8,
		    estimated_earnings = $9, responsibilities = $10
		WHERE id = $1
		RETURNING ` + opportunityColumns
	row := r.db.QueryRowContext(ctx, q,
		o.ID,
		o.Status,
		o.Role,
		o.StartDate,
		o.Background,
		o.Description,
		o.Duration,
		o.Type,
		o.EstimatedEarnings,
		o.Responsibilities,
	)
	return scanOpportunity(row)
}

// Delete removes an opportunity by ID. It returns nil if the row did not exist.
func (r *OpportunityPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM opportunities WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
