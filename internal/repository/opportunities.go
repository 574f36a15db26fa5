package repository

import (
	"context"

	"clienthub/internal/model"
)

// OpportunityRepository defines data access for opportunities.
type OpportunityRepository interface {
	Create(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error)

	FindByID(ctx context.Context, id string) (*model.Opportunity, error)

	ListByClient(ctx context.Context, clientID string) ([]model.Opportunity, error)

	ListByProject(ctx context.Context, projectID string) ([]model.Opportunity, error)

	Update(ctx context.Context, o *model.Opportunity) (*model.Opportunity, error)

	// Delete removes an opportunity by ID. It returns nil if the row did not
	// exist.
	Delete(ctx context.Context, id string) error
}
