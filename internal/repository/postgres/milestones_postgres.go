package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const milestoneColumns = `id, project_id, title, status, created_at`

// MilestonePostgres is a PostgreSQL implementation of repository.MilestoneRepository.
type MilestonePostgres struct {
	db *sql.DB
}

// NewMilestonePostgres creates a new MilestonePostgres repository.
func NewMilestonePostgres(db *sql.DB) *MilestonePostgres {
	return &MilestonePostgres{db: db}
}

var _ repository.MilestoneRepository = (*MilestonePostgres)(nil)

func scanMilestone(row rowScanner) (*model.Milestone, error) {
	var m model.Milestone
	if err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Status, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new milestone row and returns the stored record.
func (r *MilestonePostgres) Create(ctx context.Context, m *model.Milestone) (*model.Milestone, error) {
	const q = `
		INSERT INTO milestones (id, project_id, title, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + milestoneColumns
	row := r.db.QueryRowContext(ctx, q, m.ID, m.ProjectID, m.Title, m.Status, m.CreatedAt)
	return scanMilestone(row)
}

// ListByProject returns the project's milestones ordered by descending
// creation time, capped at the platform list bound.
func (r *MilestonePostgres) ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error) {
	const q = `
		SELECT ` + milestoneColumns + `
		FROM milestones
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, projectID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the milestone's editable field set and returns the stored record.
func (r *MilestonePostgres) Update(ctx context.Context, m *model.Milestone) (*model.Milestone, error) {
	const q = `
		UPDATE milestones
		SET title = $2, status = $3
		WHERE id = $1
		RETURNING ` + milestoneColumns
	row := r.db.QueryRowContext(ctx, q, m.ID, m.Title, m.Status)
	return scanMilestone(row)
}

// Delete removes a milestone by ID. It returns nil if the row did not exist.
func (r *MilestonePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM milestones WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// MilestoneUpdatePostgres is a PostgreSQL implementation of
// repository.MilestoneUpdateRepository.
type MilestoneUpdatePostgres struct {
	db *sql.DB
}

// NewMilestoneUpdatePostgres creates a new MilestoneUpdatePostgres repository.
func NewMilestoneUpdatePostgres(db *sql.DB) *MilestoneUpdatePostgres {
	return &MilestoneUpdatePostgres{db: db}
}

var _ repository.MilestoneUpdateRepository = (*MilestoneUpdatePostgres)(nil)

const milestoneUpdateColumns = `id, milestone_id, title, status, created_at`

func scanMilestoneUpdate(row rowScanner) (*model.MilestoneUpdate, error) {
	var u model.MilestoneUpdate
	if err := row.Scan(&u.ID, &u.MilestoneID, &u.Title, &u.Status, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new milestone update row and returns the stored record.
func (r *MilestoneUpdatePostgres) Create(ctx context.Context, u *model.MilestoneUpdate) (*model.MilestoneUpdate, error) {
	const q = `
		INSERT INTO milestone_updates (id, milestone_id, title, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + milestoneUpdateColumns
	row := r.db.QueryRowContext(ctx, q, u.ID, u.MilestoneID, u.Title, u.Status, u.CreatedAt)
	return scanMilestoneUpdate(row)
}

// ListByMilestone returns the milestone's updates ordered by descending
// creation time, capped at the platform list bound.
func (r *MilestoneUpdatePostgres) ListByMilestone(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error) {
	const q = `
		SELECT ` + milestoneUpdateColumns + `
		FROM milestone_updates
		WHERE milestone_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, milestoneID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MilestoneUpdate, 0)
	for rows.Next() {
		u, err := scanMilestoneUpdate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FeedbackPostgres is a PostgreSQL implementation of repository.FeedbackRepository.
type FeedbackPostgres struct {
	db *sql.DB
}

// NewFeedbackPostgres creates a new FeedbackPostgres repository.
func NewFeedbackPostgres(db *sql.DB) *FeedbackPostgres {
	return &FeedbackPostgres{db: db}
}

var _ repository.FeedbackRepository = (*FeedbackPostgres)(nil)

const feedbackColumns = `id, update_id, text, created_at`

func scanFeedback(row rowScanner) (*model.Feedback, error) {
	var f model.Feedback
	if err := row.Scan(&f.ID, &f.UpdateID, &f.Text, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a new feedback row and returns the stored record.
func (r *FeedbackPostgres) Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	const q = `
		INSERT INTO feedback (id, update_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + feedbackColumns
	row := r.db.QueryRowContext(ctx, q, f.ID, f.UpdateID, f.Text, f.CreatedAt)
	return scanFeedback(row)
}

// ListByUpdate returns feedback left on the given milestone update, ordered
// by descending creation time, capped at the platform list bound.
func (r *FeedbackPostgres) ListByUpdate(ctx context.Context, updateID string) ([]model.Feedback, error) {
	const q = `
		SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE update_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, updateID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
