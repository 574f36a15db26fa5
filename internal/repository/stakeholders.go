package repository

import (
	"context"

	"clienthub/internal/model"
)

// StakeholderRepository defines data access for client stakeholders.
type StakeholderRepository interface {
	Create(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error)

	List(ctx context.Context) ([]model.Stakeholder, error)

	// Update writes the stakeholder's editable field set and returns the
	// stored record.
	Update(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error)
}
