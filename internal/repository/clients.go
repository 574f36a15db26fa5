package repository

import (
	"context"

	"clienthub/internal/model"
)

// ClientRepository defines data access for clients using SQL queries only.
// No business logic here — strictly persistence operations.
type ClientRepository interface {
	// Create inserts a new client row and returns the stored record.
	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// FindByID returns a client by its ID.
	FindByID(ctx context.Context, id string) (*model.Client, error)

	// List returns clients ordered by descending creation time, capped at
	// ListLimit rows.
	List(ctx context.Context) ([]model.Client, error)

	// Update writes the client's editable field set and returns the stored
	// record.
	Update(ctx context.Context, c *model.Client) (*model.Client, error)

	// UpdateMemberIDs replaces the client's assigned member list.
	UpdateMemberIDs(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error)

	// Delete removes a client by ID.
	Delete(ctx context.Context, id string) error
}
