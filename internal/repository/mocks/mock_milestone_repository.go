package mocks

import (
	"context"

	"clienthub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) Create(ctx context.Context, ms *model.Milestone) (*model.Milestone, error) {
	args := m.Called(ctx, ms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Update(ctx context.Context, ms *model.Milestone) (*model.Milestone, error) {
	args := m.Called(ctx, ms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMilestoneUpdateRepository struct {
	mock.Mock
}

func (m *MockMilestoneUpdateRepository) Create(ctx context.Context, u *model.MilestoneUpdate) (*model.MilestoneUpdate, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MilestoneUpdate), args.Error(1)
}

func (m *MockMilestoneUpdateRepository) ListByMilestone(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error) {
	args := m.Called(ctx, milestoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MilestoneUpdate), args.Error(1)
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ListByUpdate(ctx context.Context, updateID string) ([]model.Feedback, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}
