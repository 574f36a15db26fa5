package repository

import (
	"context"

	"clienthub/internal/model"
)

// RequestRepository defines data access for member requests.
type RequestRepository interface {
	Create(ctx context.Context, r *model.Request) (*model.Request, error)

	FindByID(ctx context.Context, id string) (*model.Request, error)

	List(ctx context.Context) ([]model.Request, error)

	UpdateStatus(ctx context.Context, id, status string) (*model.Request, error)
}

// FeedbackRequestRepository defines data access for feedback requests.
type FeedbackRequestRepository interface {
	Create(ctx context.Context, r *model.FeedbackRequest) (*model.FeedbackRequest, error)

	List(ctx context.Context) ([]model.FeedbackRequest, error)
}
