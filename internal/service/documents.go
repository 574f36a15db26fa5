package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// DocumentService defines the use cases for client documents.
type DocumentService interface {
	ListByClient(ctx context.Context, clientID string) ([]model.Document, error)

	Create(ctx context.Context, in model.NewDocument) (*model.Document, error)

	UpdateStatus(ctx context.Context, in model.UpdateDocument) (*model.Document, error)

	Delete(ctx context.Context, id string) error
}

type documentService struct {
	documents repository.DocumentRepository
	log       *zap.Logger
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(documents repository.DocumentRepository, log *zap.Logger) DocumentService {
	return &documentService{documents: documents, log: log}
}

func (s *documentService) ListByClient(ctx context.Context, clientID string) ([]model.Document, error) {
	if clientID == "" {
		return nil, nil
	}
	list, err := s.documents.ListByClient(ctx, clientID)
	if err != nil {
		s.log.Error("failed to list documents", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *documentService) Create(ctx context.Context, in model.NewDocument) (*model.Document, error) {
	if in.ClientID == "" {
		return nil, ErrIDRequired
	}
	d := &model.Document{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Title:     in.Title,
		Link:      in.Link,
		Status:    in.Status,
		StripeID:  in.StripeID,
		EukapayID: in.EukapayID,
		Invoice:   in.Invoice,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.documents.Create(ctx, d)
	if err != nil {
		s.log.Error("failed to create document", zap.String("clientId", in.ClientID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, in model.UpdateDocument) (*model.Document, error) {
	if in.DocumentID == "" {
		return nil, ErrIDRequired
	}
	stored, err := s.documents.UpdateStatus(ctx, in.DocumentID, in.Status)
	if err != nil {
		s.log.Error("failed to update document status", zap.String("documentId", in.DocumentID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete document", zap.String("documentId", id), zap.Error(err))
	}
	return nil
}
