package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const requestColumns = `id, member_id, subject, status, created_at`

// RequestPostgres is a PostgreSQL implementation of repository.RequestRepository.
type RequestPostgres struct {
	db *sql.DB
}

// NewRequestPostgres creates a new RequestPostgres repository.
func NewRequestPostgres(db *sql.DB) *RequestPostgres {
	return &RequestPostgres{db: db}
}

var _ repository.RequestRepository = (*RequestPostgres)(nil)

func scanRequest(row rowScanner) (*model.Request, error) {
	var req model.Request
	if err := row.Scan(&req.ID, &req.MemberID, &req.Subject, &req.Status, &req.CreatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

// Create inserts a new request row and returns the stored record.
func (r *RequestPostgres) Create(ctx context.Context, req *model.Request) (*model.Request, error) {
	const q = `
		INSERT INTO requests (id, member_id, subject, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + requestColumns
	row := r.db.QueryRowContext(ctx, q, req.ID, req.MemberID, req.Subject, req.Status, req.CreatedAt)
	return scanRequest(row)
}

// FindByID fetches a single request by its ID.
func (r *RequestPostgres) FindByID(ctx context.Context, id string) (*model.Request, error) {
	const q = `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	return scanRequest(r.db.QueryRowContext(ctx, q, id))
}

// List returns requests ordered by descending creation time, capped at the
// platform list bound.
func (r *RequestPostgres) List(ctx context.Context) ([]model.Request, error) {
	const q = `
		SELECT ` + requestColumns + `
		FROM requests
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus sets the request's status and returns the stored record.
func (r *RequestPostgres) UpdateStatus(ctx context.Context, id, status string) (*model.Request, error) {
	const q = `
		UPDATE requests
		SET status = $2
		WHERE id = $1
		RETURNING ` + requestColumns
	return scanRequest(r.db.QueryRowContext(ctx, q, id, status))
}

// FeedbackRequestPostgres is a PostgreSQL implementation of
// repository.FeedbackRequestRepository.
type FeedbackRequestPostgres struct {
	db *sql.DB
}

// NewFeedbackRequestPostgres creates a new FeedbackRequestPostgres repository.
func NewFeedbackRequestPostgres(db *sql.DB) *FeedbackRequestPostgres {
	return &FeedbackRequestPostgres{db: db}
}

var _ repository.FeedbackRequestRepository = (*FeedbackRequestPostgres)(nil)

func scanFeedbackRequest(row rowScanner) (*model.FeedbackRequest, error) {
	var req model.FeedbackRequest
	if err := row.Scan(&req.ID, &req.MemberID, &req.Subject, &req.Status, &req.CreatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}

// Create inserts a new feedback request row and returns the stored record.
func (r *FeedbackRequestPostgres) Create(ctx context.Context, req *model.FeedbackRequest) (*model.FeedbackRequest, error) {
	const q = `
		INSERT INTO feedback_requests (id, member_id, subject, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + requestColumns
	row := r.db.QueryRowContext(ctx, q, req.ID, req.MemberID, req.Subject, req.Status, req.CreatedAt)
	return scanFeedbackRequest(row)
}

// List returns feedback requests ordered by descending creation time, capped
// at the platform list bound.
func (r *FeedbackRequestPostgres) List(ctx context.Context) ([]model.FeedbackRequest, error) {
	const q = `
		SELECT ` + requestColumns + `
		FROM feedback_requests
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FeedbackRequest, 0)
	for rows.Next() {
		req, err := scanFeedbackRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
