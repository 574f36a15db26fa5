package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

const projectColumns = `id, client_id, title, spark_rep, brief_link, roadmap_link, status, created_at`

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

func scanProject(row rowScanner) (*model.Project, error) {
	var p model.Project
	if err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.Title,
		&p.SparkRep,
		&p.BriefLink,
		&p.RoadmapLink,
		&p.Status,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project row and returns the stored record.
func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		INSERT INTO projects (id, client_id, title, spark_rep, brief_link, roadmap_link, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.ClientID,
		p.Title,
		p.SparkRep,
		p.BriefLink,
		p.RoadmapLink,
		p.Status,
		p.CreatedAt,
	)
	return scanProject(row)
}

// FindByID fetches a single project by its ID.
func (r *ProjectPostgres) FindByID(ctx context.Context, id string) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, q, id))
}

// ListByClient returns the client's projects ordered by descending creation
// time, capped at the platform list bound.
func (r *ProjectPostgres) ListByClient(ctx context.Context, clientID string) ([]model.Project, error) {
	const q = `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE client_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, clientID, repository.ListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the project's editable field set and returns the stored record.
func (r *ProjectPostgres) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		UPDATE projects
		SET title = $2, spark_rep = $3, brief_link = $4, roadmap_link = $5, status = $6
		WHERE id = $1
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Title,
		p.SparkRep,
		p.BriefLink,
		p.RoadmapLink,
		p.Status,
	)
	return scanProject(row)
}
