package repository

import (
	"context"

	"clienthub/internal/model"
)

// MemberRepository defines data access for members.
type MemberRepository interface {
	Create(ctx context.Context, m *model.Member) (*model.Member, error)

	FindByID(ctx context.Context, id string) (*model.Member, error)

	// FindByAccountID resolves the member owning the given auth account.
	FindByAccountID(ctx context.Context, accountID string) (*model.Member, error)

	List(ctx context.Context) ([]model.Member, error)

	// Update writes the member's editable field set and returns the stored
	// record.
	Update(ctx context.Context, m *model.Member) (*model.Member, error)
}

// ProfileRepository defines data access for member profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) (*model.Profile, error)

	FindByID(ctx context.Context, id string) (*model.Profile, error)

	List(ctx context.Context) ([]model.Profile, error)
}
