package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/config"
	"clienthub/internal/model"
	"clienthub/internal/repository"
	"clienthub/internal/storage"
)

// ClientService defines the use cases for handling clients.
//
// Failure semantics follow the platform seam this layer mirrors: a missing
// required id is raised before any remote call; a remote failure is logged
// and yields an absent result rather than an error. Callers must treat a
// (nil, nil) return as "not available right now".
type ClientService interface {
	List(ctx context.Context) ([]model.Client, error)

	Get(ctx context.Context, id string) (*model.Client, error)

	// Create stores the optional logo first, derives its preview URL, then
	// writes the record. If the record write fails the uploaded logo is
	// deleted so no orphaned asset remains. Without a file the logo falls
	// back to a generated initials avatar.
	Create(ctx context.Context, in model.NewClient) (*model.Client, error)

	// Update replaces the client's editable fields. When a new logo file is
	// supplied the new asset is uploaded and its URL derived before the
	// record is written; the previous asset is deleted only after the record
	// write succeeds.
	Update(ctx context.Context, in model.UpdateClient) (*model.Client, error)

	// AssignMembers replaces the client's member list.
	AssignMembers(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error)

	// Delete removes the client record, then its logo asset. The logo is
	// only touched once the record delete has succeeded.
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clients  repository.ClientRepository
	store    storage.Store
	previews config.PreviewConfig
	log      *zap.Logger
}

// NewClientService constructs a new ClientService.
func NewClientService(clients repository.ClientRepository, store storage.Store, previews config.PreviewConfig, log *zap.Logger) ClientService {
	return &clientService{clients: clients, store: store, previews: previews, log: log}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	list, err := s.clients.List(ctx)
	if err != nil {
		s.log.Error("failed to list clients", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*model.Client, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get client", zap.String("clientId", id), zap.Error(err))
		return nil, nil
	}
	return c, nil
}

func (s *clientService) Create(ctx context.Context, in model.NewClient) (*model.Client, error) {
	var logoID, logoURL string
	if in.File.HasFile() {
		key := logoKey(in.File.Filename)
		if _, err := s.store.Put(ctx, key, in.File.Reader, storage.PutObjectOptions{
			Size:        in.File.Size,
			ContentType: in.File.ContentType,
		}); err != nil {
			s.log.Error("failed to upload client logo", zap.Error(err))
			return nil, nil
		}
		logoID = key
		logoURL = s.store.PreviewURL(key, s.previews.LogoSize)
	} else {
		logoURL = s.store.InitialsURL(in.Name)
	}

	c := &model.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		LogoID:    logoID,
		LogoURL:   logoURL,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.clients.Create(ctx, c)
	if err != nil {
		// The record write failed after the asset upload succeeded: delete
		// the upload so it does not leak.
		if logoID != "" {
			if delErr := s.store.Delete(ctx, logoID); delErr != nil {
				s.log.Error("failed to delete orphaned logo", zap.String("logoId", logoID), zap.Error(delErr))
			}
		}
		s.log.Error("failed to create client", zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *clientService) Update(ctx context.Context, in model.UpdateClient) (*model.Client, error) {
	if in.ID == "" {
		return nil, ErrIDRequired
	}

	logoID, logoURL := in.LogoID, in.LogoURL
	uploaded := ""
	if in.File.HasFile() {
		key := logoKey(in.File.Filename)
		if _, err := s.store.Put(ctx, key, in.File.Reader, storage.PutObjectOptions{
			Size:        in.File.Size,
			ContentType: in.File.ContentType,
		}); err != nil {
			s.log.Error("failed to upload client logo", zap.String("clientId", in.ID), zap.Error(err))
			return nil, nil
		}
		uploaded = key
		logoID = key
		logoURL = s.store.PreviewURL(key, s.previews.LogoSize)
	}

	c := &model.Client{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Website:     in.Website,
		X:           in.X,
		LinkedIn:    in.LinkedIn,
		DocumentIDs: in.DocumentIDs,
		ProjectIDs:  in.ProjectIDs,
		LogoID:      logoID,
		LogoURL:     logoURL,
	}
	stored, err := s.clients.Update(ctx, c)
	if err != nil {
		if uploaded != "" {
			if delErr := s.store.Delete(ctx, uploaded); delErr != nil {
				s.log.Error("failed to delete orphaned logo", zap.String("logoId", uploaded), zap.Error(delErr))
			}
		}
		s.log.Error("failed to update client", zap.String("clientId", in.ID), zap.Error(err))
		return nil, nil
	}

	// The previous asset is removed only once the record points at the new
	// one; a failure here leaves a stray object but never a broken record.
	if uploaded != "" && in.LogoID != "" {
		if err := s.store.Delete(ctx, in.LogoID); err != nil {
			s.log.Error("failed to delete previous logo", zap.String("logoId", in.LogoID), zap.Error(err))
		}
	}
	return stored, nil
}

func (s *clientService) AssignMembers(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error) {
	if clientID == "" {
		return nil, ErrIDRequired
	}
	stored, err := s.clients.UpdateMemberIDs(ctx, clientID, memberIDs)
	if err != nil {
		s.log.Error("failed to assign members", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		s.log.Error("failed to load client for delete", zap.String("clientId", id), zap.Error(err))
		return nil
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete client", zap.String("clientId", id), zap.Error(err))
		return nil
	}
	if c.LogoID != "" {
		if err := s.store.Delete(ctx, c.LogoID); err != nil {
			s.log.Error("failed to delete client logo", zap.String("logoId", c.LogoID), zap.Error(err))
		}
	}
	return nil
}

// logoKey builds the storage key for a logo upload: UUID plus the original
// extension, under the logos/ prefix.
func logoKey(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return filepath.ToSlash(filepath.Join("logos", uuid.New().String()+ext))
}
