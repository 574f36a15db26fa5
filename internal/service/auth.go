package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"clienthub/internal/model"
	"clienthub/internal/platform"
	"clienthub/internal/repository"
)

// AdminRole is the member role required to operate the management surface.
const AdminRole = "admin"

// AuthService wraps the hosted session service and binds accounts to member
// records. Unlike the record services, sign-in failures are raised to the
// caller: a failed sign-in must surface, not vanish.
type AuthService interface {
	// SignIn creates an email/password session and verifies the account is
	// backed by an admin member. A non-admin session is deleted again and
	// ErrNotAdmin is returned.
	SignIn(ctx context.Context, email, password string) (*platform.Session, error)

	// SignOut deletes the caller's active session.
	SignOut(ctx context.Context) error

	// Account returns the identity behind the active session.
	Account(ctx context.Context) (*platform.Account, error)

	// Current resolves the signed-in member joined with their profile.
	Current(ctx context.Context) (*model.CurrentMember, error)
}

type authService struct {
	sessions platform.Sessions
	members  repository.MemberRepository
	profiles repository.ProfileRepository
	log      *zap.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(sessions platform.Sessions, members repository.MemberRepository, profiles repository.ProfileRepository, log *zap.Logger) AuthService {
	return &authService{sessions: sessions, members: members, profiles: profiles, log: log}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*platform.Session, error) {
	sess, err := s.sessions.CreateEmailSession(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	member, err := s.members.FindByAccountID(ctx, sess.UserID)
	if err != nil || member.Role != AdminRole {
		// Roll the session back; the account must not stay signed in.
		if delErr := s.sessions.DeleteSession(ctx, platform.SessionCurrent); delErr != nil {
			s.log.Error("failed to delete non-admin session", zap.Error(delErr))
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("resolve member: %w", err)
		}
		return nil, ErrNotAdmin
	}
	return sess, nil
}

func (s *authService) SignOut(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx, platform.SessionCurrent); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) Account(ctx context.Context) (*platform.Account, error) {
	acc, err := s.sessions.GetAccount(ctx)
	if err != nil {
		s.log.Error("failed to get account", zap.Error(err))
		return nil, ErrNoSession
	}
	return acc, nil
}

func (s *authService) Current(ctx context.Context) (*model.CurrentMember, error) {
	acc, err := s.sessions.GetAccount(ctx)
	if err != nil {
		s.log.Error("failed to get account", zap.Error(err))
		return nil, ErrNoSession
	}

	member, err := s.members.FindByAccountID(ctx, acc.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to resolve member", zap.String("accountId", acc.ID), zap.Error(err))
		return nil, nil
	}

	current := &model.CurrentMember{Member: *member}
	if member.ProfileID != "" {
		profile, err := s.profiles.FindByID(ctx, member.ProfileID)
		if err != nil {
			s.log.Error("failed to load profile", zap.String("profileId", member.ProfileID), zap.Error(err))
		} else {
			current.Profile = *profile
		}
	}
	return current, nil
}
