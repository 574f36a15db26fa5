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

// RequestService defines the use cases for member requests and client
// feedback requests.
type RequestService interface {
	List(ctx context.Context) ([]model.Request, error)

	Get(ctx context.Context, id string) (*model.Request, error)

	Create(ctx context.Context, memberID, subject, status string) (*model.Request, error)

	UpdateStatus(ctx context.Context, in model.UpdateRequest) (*model.Request, error)

	FeedbackRequests(ctx context.Context) ([]model.FeedbackRequest, error)

	CreateFeedbackRequest(ctx context.Context, memberID, subject, status string) (*model.FeedbackRequest, error)
}

type requestService struct {
	requests         repository.RequestRepository
	feedbackRequests repository.FeedbackRequestRepository
	log              *zap.Logger
}

// NewRequestService constructs a new RequestService.
func NewRequestService(requests repository.RequestRepository, feedbackRequests repository.FeedbackRequestRepository, log *zap.Logger) RequestService {
	return &requestService{requests: requests, feedbackRequests: feedbackRequests, log: log}
}

func (s *requestService) List(ctx context.Context) ([]model.Request, error) {
	list, err := s.requests.List(ctx)
	if err != nil {
		s.log.Error("failed to list requests", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *requestService) Get(ctx context.Context, id string) (*model.Request, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	r, err := s.requests.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get request", zap.String("requestId", id), zap.Error(err))
		return nil, nil
	}
	return r, nil
}

func (s *requestService) Create(ctx context.Context, memberID, subject, status string) (*model.Request, error) {
	if memberID == "" {
		return nil, ErrIDRequired
	}
	r := &model.Request{
		ID:        uuid.New().String(),
		MemberID:  memberID,
		Subject:   subject,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.requests.Create(ctx, r)
	if err != nil {
		s.log.Error("failed to create request", zap.String("memberId", memberID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *requestService) UpdateStatus(ctx context.Context, in model.UpdateRequest) (*model.Request, error) {
	if in.RequestID == "" {
		return nil, ErrIDRequired
	}
	stored, err := s.requests.UpdateStatus(ctx, in.RequestID, in.Status)
	if err != nil {
		s.log.Error("failed to update request status", zap.String("requestId", in.RequestID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *requestService) FeedbackRequests(ctx context.Context) ([]model.FeedbackRequest, error) {
	list, err := s.feedbackRequests.List(ctx)
	if err != nil {
		s.log.Error("failed to list feedback requests", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *requestService) CreateFeedbackRequest(ctx context.Context, memberID, subject, status string) (*model.FeedbackRequest, error) {
	if memberID == "" {
		return nil, ErrIDRequired
	}
	r := &model.FeedbackRequest{
		ID:        uuid.New().String(),
		MemberID:  memberID,
		Subject:   subject,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.feedbackRequests.Create(ctx, r)
	if err != nil {
		s.log.Error("failed to create feedback request", zap.String("memberId", memberID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}
