package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// OpportunityService defines the use cases for handling opportunities.
type OpportunityService interface {
	Create(ctx context.Context, in model.NewOpportunity) (*model.Opportunity, error)

	Get(ctx context.Context, id string) (*model.Opportunity, error)

	ListByClient(ctx context.Context, clientID string) ([]model.Opportunity, error)

	Update(ctx context.Context, in model.UpdateOpportunity) (*model.Opportunity, error)

	// Delete removes the opportunity and reports the client it belonged to,
	// so callers can refresh client-scoped views.
	Delete(ctx context.Context, id string) (clientID string, err error)
}

type opportunityService struct {
	opportunities repository.OpportunityRepository
	log           *zap.Logger
}

// NewOpportunityService constructs a new OpportunityService.
func NewOpportunityService(opportunities repository.OpportunityRepository, log *zap.Logger) OpportunityService {
	return &opportunityService{opportunities: opportunities, log: log}
}

func (s *opportunityService) Create(ctx context.Context, in model.NewOpportunity) (*model.Opportunity, error) {
	if in.ClientID == "" || in.MemberID == "" {
		return nil, ErrIDRequired
	}
	o := &model.Opportunity{
		ID:                uuid.New().String(),
		ClientID:          in.ClientID,
		ProjectID:         in.ProjectID,
		MemberID:          in.MemberID,
		Status:            in.Status,
		Role:              in.Role,
		StartDate:         in.StartDate,
		Background:        in.Background,
		Description:       in.Description,
		Duration:          in.Duration,
		Type:              in.Type,
		EstimatedEarnings: in.EstimatedEarnings,
		Responsibilities:  in.Responsibilities,
		CreatedAt:         time.Now().UTC(),
	}
	stored, err := s.opportunities.Create(ctx, o)
	if err != nil {
		s.log.Error("failed to create opportunity", zap.String("clientId", in.ClientID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *opportunityService) Get(ctx context.Context, id string) (*model.Opportunity, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get opportunity", zap.String("opportunityId", id), zap.Error(err))
		return nil, nil
	}
	return o, nil
}

func (s *opportunityService) ListByClient(ctx context.Context, clientID string) ([]model.Opportunity, error) {
	if clientID == "" {
		return nil, nil
	}
	list, err := s.opportunities.ListByClient(ctx, clientID)
	if err != nil {
		s.log.Error("failed to list opportunities", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *opportunityService) Update(ctx context.Context, in model.UpdateOpportunity) (*model.Opportunity, error) {
	if in.OpportunityID == "" {
		return nil, ErrIDRequired
	}
	o := &model.Opportunity{
		ID:                in.OpportunityID,
		Status:            in.Status,
		Role:              in.Role,
		StartDate:         in.StartDate,
		Background:        in.Background,
		Description:       in.Description,
		Duration:          in.Duration,
		Type:              in.Type,
		EstimatedEarnings: in.EstimatedEarnings,
		Responsibilities:  in.Responsibilities,
	}
	stored, err := s.opportunities.Update(ctx, o)
	if err != nil {
		s.log.Error("failed to update opportunity", zap.String("opportunityId", in.OpportunityID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *opportunityService) Delete(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", nil
	}
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load opportunity for delete", zap.String("opportunityId", id), zap.Error(err))
		return "", nil
	}
	if err := s.opportunities.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete opportunity", zap.String("opportunityId", id), zap.Error(err))
		return "", nil
	}
	return o.ClientID, nil
}
