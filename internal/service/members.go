package service

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/config"
	"clienthub/internal/model"
	"clienthub/internal/repository"
	"clienthub/internal/storage"
)

// MemberService defines the use cases for handling members and their
// profiles.
type MemberService interface {
	List(ctx context.Context) ([]model.Member, error)

	Get(ctx context.Context, id string) (*model.Member, error)

	// Status returns the member's lifecycle status only.
	Status(ctx context.Context, id string) (string, error)

	// Update replaces the member's editable fields. When a new avatar file is
	// supplied the new asset is uploaded and its URL derived before the
	// record is written; the previous asset is deleted only after the record
	// write succeeds.
	Update(ctx context.Context, in model.UpdateMember) (*model.Member, error)

	Profiles(ctx context.Context) ([]model.Profile, error)

	Profile(ctx context.Context, id string) (*model.Profile, error)
}

type memberService struct {
	members  repository.MemberRepository
	profiles repository.ProfileRepository
	store    storage.Store
	previews config.PreviewConfig
	log      *zap.Logger
}

// NewMemberService constructs a new MemberService.
func NewMemberService(members repository.MemberRepository, profiles repository.ProfileRepository, store storage.Store, previews config.PreviewConfig, log *zap.Logger) MemberService {
	return &memberService{members: members, profiles: profiles, store: store, previews: previews, log: log}
}

func (s *memberService) List(ctx context.Context) ([]model.Member, error) {
	list, err := s.members.List(ctx)
	if err != nil {
		s.log.Error("failed to list members", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *memberService) Get(ctx context.Context, id string) (*model.Member, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get member", zap.String("memberId", id), zap.Error(err))
		return nil, nil
	}
	return m, nil
}

func (s *memberService) Status(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		s.log.Error("failed to get member status", zap.String("memberId", id), zap.Error(err))
		return "", nil
	}
	return m.Status, nil
}

func (s *memberService) Update(ctx context.Context, in model.UpdateMember) (*model.Member, error) {
	if in.MemberID == "" {
		return nil, ErrIDRequired
	}

	avatarID, avatarURL := in.AvatarID, in.AvatarURL
	uploaded := ""
	if in.File.HasFile() {
		key := avatarKey(in.File.Filename)
		if _, err := s.store.Put(ctx, key, in.File.Reader, storage.PutObjectOptions{
			Size:        in.File.Size,
			ContentType: in.File.ContentType,
		}); err != nil {
			s.log.Error("failed to upload member avatar", zap.String("memberId", in.MemberID), zap.Error(err))
			return nil, nil
		}
		uploaded = key
		avatarID = key
		avatarURL = s.store.PreviewURL(key, s.previews.AvatarSize)
	}

	m := &model.Member{
		ID:                in.MemberID,
		Email:             in.Email,
		EmailVerification: in.EmailVerification,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Status:            in.Status,
		ContractSigned:    in.ContractSigned,
		ImportedAnswers:   in.ImportedAnswers,
		Timezone:          in.Timezone,
		AvatarID:          avatarID,
		AvatarURL:         avatarURL,
	}
	stored, err := s.members.Update(ctx, m)
	if err != nil {
		if uploaded != "" {
			if delErr := s.store.Delete(ctx, uploaded); delErr != nil {
				s.log.Error("failed to delete orphaned avatar", zap.String("avatarId", uploaded), zap.Error(delErr))
			}
		}
		s.log.Error("failed to update member", zap.String("memberId", in.MemberID), zap.Error(err))
		return nil, nil
	}

	if uploaded != "" && in.AvatarID != "" {
		if err := s.store.Delete(ctx, in.AvatarID); err != nil {
			s.log.Error("failed to delete previous avatar", zap.String("avatarId", in.AvatarID), zap.Error(err))
		}
	}
	return stored, nil
}

func (s *memberService) Profiles(ctx context.Context) ([]model.Profile, error) {
	list, err := s.profiles.List(ctx)
	if err != nil {
		s.log.Error("failed to list profiles", zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *memberService) Profile(ctx context.Context, id string) (*model.Profile, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get profile", zap.String("profileId", id), zap.Error(err))
		return nil, nil
	}
	return p, nil
}

func avatarKey(originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return filepath.ToSlash(filepath.Join("avatars", uuid.New().String()+ext))
}
