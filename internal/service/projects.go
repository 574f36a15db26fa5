package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// ProjectService defines the use cases for handling projects, including the
// derived project team view.
type ProjectService interface {
	// Create stores a new project in the "in progress" status.
	Create(ctx context.Context, in model.NewProject) (*model.Project, error)

	Get(ctx context.Context, id string) (*model.Project, error)

	ListByClient(ctx context.Context, clientID string) ([]model.Project, error)

	Update(ctx context.Context, in model.UpdateProject) (*model.Project, error)

	// Team joins the project's accepted opportunities with the member records
	// they reference. The member lookups run concurrently and the join is
	// all-or-nothing: unlike the record reads, a failed fetch raises here,
	// and a missing project id is rejected before any remote call.
	Team(ctx context.Context, projectID string) ([]model.TeamMember, error)
}

type projectService struct {
	projects      repository.ProjectRepository
	opportunities repository.OpportunityRepository
	members       repository.MemberRepository
	log           *zap.Logger
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(projects repository.ProjectRepository, opportunities repository.OpportunityRepository, members repository.MemberRepository, log *zap.Logger) ProjectService {
	return &projectService{projects: projects, opportunities: opportunities, members: members, log: log}
}

func (s *projectService) Create(ctx context.Context, in model.NewProject) (*model.Project, error) {
	if in.ClientID == "" {
		return nil, ErrIDRequired
	}
	p := &model.Project{
		ID:        uuid.New().String(),
		ClientID:  in.ClientID,
		Title:     in.Title,
		Status:    model.ProjectStatusInProgress,
		CreatedAt: time.Now().UTC(),
	}
	stored, err := s.projects.Create(ctx, p)
	if err != nil {
		s.log.Error("failed to create project", zap.String("clientId", in.ClientID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get project", zap.String("projectId", id), zap.Error(err))
		return nil, nil
	}
	return p, nil
}

func (s *projectService) ListByClient(ctx context.Context, clientID string) ([]model.Project, error) {
	if clientID == "" {
		return nil, nil
	}
	list, err := s.projects.ListByClient(ctx, clientID)
	if err != nil {
		s.log.Error("failed to list projects", zap.String("clientId", clientID), zap.Error(err))
		return nil, nil
	}
	return list, nil
}

func (s *projectService) Update(ctx context.Context, in model.UpdateProject) (*model.Project, error) {
	if in.ProjectID == "" {
		return nil, ErrIDRequired
	}
	p := &model.Project{
		ID:          in.ProjectID,
		Title:       in.Title,
		SparkRep:    in.SparkRep,
		BriefLink:   in.BriefLink,
		RoadmapLink: in.RoadmapLink,
		Status:      in.Status,
	}
	stored, err := s.projects.Update(ctx, p)
	if err != nil {
		s.log.Error("failed to update project", zap.String("projectId", in.ProjectID), zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

func (s *projectService) Team(ctx context.Context, projectID string) ([]model.TeamMember, error) {
	if projectID == "" {
		return nil, ErrIDRequired
	}
	opportunities, err := s.opportunities.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch project team: %w", err)
	}

	var accepted []model.Opportunity
	for _, o := range opportunities {
		if o.Status == model.OpportunityStatusAccepted {
			accepted = append(accepted, o)
		}
	}
	if len(accepted) == 0 {
		return []model.TeamMember{}, nil
	}

	team := make([]model.TeamMember, len(accepted))
	g, gctx := errgroup.WithContext(ctx)
	for i, o := range accepted {
		g.Go(func() error {
			m, err := s.members.FindByID(gctx, o.MemberID)
			if err != nil {
				return err
			}
			role := o.Role
			if role == "" {
				role = model.DefaultTeamRole
			}
			team[i] = model.TeamMember{
				MemberID:  m.ID,
				FirstName: m.FirstName,
				LastName:  m.LastName,
				AvatarURL: m.AvatarURL,
				Role:      role,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch project team: %w", err)
	}
	return team, nil
}
