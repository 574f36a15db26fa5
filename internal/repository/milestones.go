package repository

import (
	"context"

	"clienthub/internal/model"
)

// MilestoneRepository defines data access for project milestones.
type MilestoneRepository interface {
	Create(ctx context.Context, m *model.Milestone) (*model.Milestone, error)

	ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error)

	Update(ctx context.Context, m *model.Milestone) (*model.Milestone, error)

	Delete(ctx context.Context, id string) error
}

// MilestoneUpdateRepository defines data access for progress notes under a
// milestone.
type MilestoneUpdateRepository interface {
	Create(ctx context.Context, u *model.MilestoneUpdate) (*model.MilestoneUpdate, error)

	ListByMilestone(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error)
}

// FeedbackRepository defines data access for feedback left on milestone
// updates.
type FeedbackRepository interface {
	Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error)

	ListByUpdate(ctx context.Context, updateID string) ([]model.Feedback, error)
}
