package mocks

import (
	"context"

	"clienthub/internal/platform"

	"github.com/stretchr/testify/mock"
)

type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) CreateEmailSession(ctx context.Context, email, password string) (*platform.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Session), args.Error(1)
}

func (m *MockSessions) GetSession(ctx context.Context, sessionID string) (*platform.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Session), args.Error(1)
}

func (m *MockSessions) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessions) GetAccount(ctx context.Context) (*platform.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Account), args.Error(1)
}

type MockFunctions struct {
	mock.Mock
}

func (m *MockFunctions) Execute(ctx context.Context, functionID, payload string) (*platform.Execution, error) {
	args := m.Called(ctx, functionID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*platform.Execution), args.Error(1)
}
