package mocks

import (
	"context"

	"clienthub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockStakeholderRepository struct {
	mock.Mock
}

func (m *MockStakeholderRepository) Create(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stakeholder), args.Error(1)
}

func (m *MockStakeholderRepository) List(ctx context.Context) ([]model.Stakeholder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Stakeholder), args.Error(1)
}

func (m *MockStakeholderRepository) Update(ctx context.Context, s *model.Stakeholder) (*model.Stakeholder, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stakeholder), args.Error(1)
}
