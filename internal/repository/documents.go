package repository

import (
	"context"

	"clienthub/internal/model"
)

// DocumentRepository defines data access for client documents.
type DocumentRepository interface {
	Create(ctx context.Context, d *model.Document) (*model.Document, error)

	ListByClient(ctx context.Context, clientID string) ([]model.Document, error)

	// UpdateStatus sets the document's status and returns the stored record.
	UpdateStatus(ctx context.Context, id, status string) (*model.Document, error)

	Delete(ctx context.Context, id string) error
}
