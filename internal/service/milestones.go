package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// MilestoneService defines the use cases for milestones, their progress
// updates and the feedback left on those updates.
type MilestoneService interface {
	ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error)

	Create(ctx context.Context, in model.NewMilestone) (*model.Milestone, error)

	Update(ctx context.Context, in model.UpdateMilestone) (*model.Milestone, error)

	Delete(ctx context.Context, id string) error

	Updates(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error)

	CreateUpdate(ctx context.Context, milestoneID, title, status string) (*model.MilestoneUpdate, error)

	Feedback(ctx context.Context, updateID string) ([]model.Feedback, error)

	CreateFeedback(ctx context.Context, updateID, text string) (*model.Feedback, error)
}

type milestoneService struct {
	milestones repository.MilestoneRepository
	updates    repository.MilestoneUpdateRepository
	feedback   repository.FeedbackRepository
	log        *zap.Logger
}

// NewMilestoneService constructs a new MilestoneService.
func NewMilestoneService(milestones repository.MilestoneRepository, updates repository.MilestoneUpdateRepository, feedback repository.FeedbackRepository, log *zap.Logger) MilestoneService {
	return &milestoneService{milestones: milestones, updates: updates, feedback: feedback, log: log}
}

func (s *milestoneService) ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error) {
	if projectID == "" {
		return nil, nil
	}
	list, err := s.milestones.ListByProject(ctx, projectID)
	if err != nil {
		s.log.Error("failed to list milestones", zap.String("projectId", projectID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *milestoneService) Create(ctx context.Context, in model.NewMilestone) (*model.Milestone, error) {
	if in.ProjectID == "" {
		return nil, ErrIDRequired
	}
	m := &model.Milestone{
		ID:        uuid.New().String(),
		ProjectID: in.ProjectID,
		Title:     in.Title,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.milestones.Create(ctx, m)
	if err != nil {
		s.log.Error("failed to create milestone", zap.String("projectId", in.ProjectID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *milestoneService) Update(ctx context.Context, in model.UpdateMilestone) (*model.Milestone, error) {
	if in.MilestoneID == "" {
		return nil, ErrIDRequired
	}
	m := &model.Milestone{
		ID:     in.MilestoneID,
		Title:  in.Title,
		Status: in.Status,
	}
	stored, err := s.milestones.Update(ctx, m)
	if err != nil {
		s.log.Error("failed to update milestone", zap.String("milestoneId", in.MilestoneID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *milestoneService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.milestones.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete milestone", zap.String("milestoneId", id), zap.Error(err))
	}
	return nil
}

func (s *milestoneService) Updates(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error) {
	if milestoneID == "" {
		return nil, nil
	}
	list, err := s.updates.ListByMilestone(ctx, milestoneID)
	if err != nil {
		s.log.Error("failed to list milestone updates", zap.String("milestoneId", milestoneID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *milestoneService) CreateUpdate(ctx context.Context, milestoneID, title, status string) (*model.MilestoneUpdate, error) {
	if milestoneID == "" {
		return nil, ErrIDRequired
	}
	u := &model.MilestoneUpdate{
		ID:          uuid.New().String(),
		MilestoneID: milestoneID,
		Title:       title,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.updates.Create(ctx, u)
	if err != nil {
		s.log.Error("failed to create milestone update", zap.String("milestoneId", milestoneID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *milestoneService) Feedback(ctx context.Context, updateID string) ([]model.Feedback, error) {
	if updateID == "" {
		return nil, nil
	}
	list, err := s.feedback.ListByUpdate(ctx, updateID)
	if err != nil {
		s.log.Error("failed to list feedback", zap.String("updateId", updateID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *milestoneService) CreateFeedback(ctx context.Context, updateID, text string) (*model.Feedback, error) {
	if updateID == "" {
		return nil, ErrIDRequired
	}
	f := &model.Feedback{
		ID:        uuid.New().String(),
		UpdateID:  updateID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.feedback.Create(ctx, f)
	if err != nil {
		s.log.Error("failed to create feedback", zap.String("updateId", updateID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}
