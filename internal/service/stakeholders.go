package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// StakeholderService defines the use cases for client stakeholders.
type StakeholderService interface {
	List(ctx context.Context) ([]model.Stakeholder, error)

	Create(ctx context.Context, clientID, email, firstName, lastName string) (*model.Stakeholder, error)

	Update(ctx context.Context, in model.UpdateStakeholder) (*model.Stakeholder, error)
}

type stakeholderService struct {
	stakeholders repository.StakeholderRepository
	log          *zap.Logger
}

// NewStakeholderService constructs a new StakeholderService.
func NewStakeholderService(stakeholders repository.StakeholderRepository, log *zap.Logger) StakeholderService {
	return &stakeholderService{stakeholders: stakeholders, log: log}
}

func (s *stakeholderService) List(ctx context.Context) ([]model.Stakeholder, error) {
	list, err := s.stakeholders.List(ctx)
	if err != nil {
		s.log.Error("failed to list stakeholders", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *stakeholderService) Create(ctx context.Context, clientID, email, firstName, lastName string) (*model.Stakeholder, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	st := &model.Stakeholder{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.stakeholders.Create(ctx, st)
	if err != nil {
		s.log.Error("failed to create stakeholder", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *stakeholderService) Update(ctx context.Context, in model.UpdateStakeholder) (*model.Stakeholder, error) {
	if in.StakeholderID == "" {
		return nil, ErrIDRequired
	}
	st := &model.Stakeholder{
		ID:        in.StakeholderID,
		ClientID:  in.ClientID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	stored, err := s.stakeholders.Update(ctx, st)
	if err != nil {
		s.log.Error("failed to update stakeholder", zap.String("stakeholderId", in.StakeholderID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}
