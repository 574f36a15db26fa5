package repository

import (
	"context"

	"clienthub/internal/model"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	FindByID(ctx context.Context, id string) (*model.Project, error)

	// ListByClient returns the client's projects ordered by descending
	// creation time, capped at ListLimit rows.
	ListByClient(ctx context.Context, clientID string) ([]model.Project, error)

	Update(ctx context.Context, p *model.Project) (*model.Project, error)
}
