package service

import (
	"context"
	"errors"
	"testing"

	"clienthub/internal/model"
	repoMocks "clienthub/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new projects start in progress", func(t *testing.T) {
		mProjects := new(repoMocks.MockProjectRepository)
		mProjects.On("Create", ctx, mock.MatchedBy(func(p *model.Project) bool {
			return p.ClientID == "client-1" && p.Title == "Website" &&
				p.Status == model.ProjectStatusInProgress && p.ID != ""
		})).Return(&model.Project{ID: "project-1"}, nil)

		svc := NewProjectService(mProjects, new(repoMocks.MockOpportunityRepository), new(repoMocks.MockMemberRepository), zap.NewNop())
		p, err := svc.Create(ctx, model.NewProject{ClientID: "client-1", Title: "Website"})

		assert.NoError(t, err)
		assert.Equal(t, "project-1", p.ID)
		mProjects.AssertExpectations(t)
	})

	t.Run("missing client id is raised before any remote call", func(t *testing.T) {
		mProjects := new(repoMocks.MockProjectRepository)

		svc := NewProjectService(mProjects, new(repoMocks.MockOpportunityRepository), new(repoMocks.MockMemberRepository), zap.NewNop())
		p, err := svc.Create(ctx, model.NewProject{Title: "Website"})

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, p)
		mProjects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProjectService_Team(t *testing.T) {
	ctx := context.Background()

	t.Run("joins accepted opportunities with their members", func(t *testing.T) {
		mOpps := new(repoMocks.MockOpportunityRepository)
		mMembers := new(repoMocks.MockMemberRepository)

		mOpps.On("ListByProject", ctx, "project-1").Return([]model.Opportunity{
			{ID: "o1", MemberID: "m1", Status: model.OpportunityStatusAccepted, Role: "Designer"},
			{ID: "o2", MemberID: "m2", Status: "pending"},
			{ID: "o3", MemberID: "m3", Status: model.OpportunityStatusAccepted},
		}, nil)
		mMembers.On("FindByID", mock.Anything, "m1").
			Return(&model.Member{ID: "m1", FirstName: "Ada", LastName: "Lovelace", AvatarURL: "a1"}, nil)
		mMembers.On("FindByID", mock.Anything, "m3").
			Return(&model.Member{ID: "m3", FirstName: "Grace", LastName: "Hopper", AvatarURL: "a3"}, nil)

		svc := NewProjectService(new(repoMocks.MockProjectRepository), mOpps, mMembers, zap.NewNop())
		team, err := svc.Team(ctx, "project-1")

		assert.NoError(t, err)
		assert.Len(t, team, 2)
		assert.Equal(t, model.TeamMember{
			MemberID: "m1", FirstName: "Ada", LastName: "Lovelace", AvatarURL: "a1", Role: "Designer",
		}, team[0])
		assert.Equal(t, model.DefaultTeamRole, team[1].Role)
		mMembers.AssertNotCalled(t, "FindByID", mock.Anything, "m2")
	})

	t.Run("one failed member lookup fails the whole view", func(t *testing.T) {
		mOpps := new(repoMocks.MockOpportunityRepository)
		mMembers := new(repoMocks.MockMemberRepository)

		mOpps.On("ListByProject", ctx, "project-1").Return([]model.Opportunity{
			{ID: "o1", MemberID: "m1", Status: model.OpportunityStatusAccepted},
			{ID: "o2", MemberID: "m2", Status: model.OpportunityStatusAccepted},
		}, nil)
		mMembers.On("FindByID", mock.Anything, "m1").
			Return(&model.Member{ID: "m1"}, nil).Maybe()
		mMembers.On("FindByID", mock.Anything, "m2").
			Return(nil, errors.New("db down"))

		svc := NewProjectService(new(repoMocks.MockProjectRepository), mOpps, mMembers, zap.NewNop())
		team, err := svc.Team(ctx, "project-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fetch project team")
		assert.Nil(t, team)
	})

	t.Run("failed opportunity fetch fails the whole view", func(t *testing.T) {
		mOpps := new(repoMocks.MockOpportunityRepository)
		mMembers := new(repoMocks.MockMemberRepository)

		mOpps.On("ListByProject", ctx, "project-1").Return(nil, errors.New("db down"))

		svc := NewProjectService(new(repoMocks.MockProjectRepository), mOpps, mMembers, zap.NewNop())
		team, err := svc.Team(ctx, "project-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fetch project team")
		assert.Nil(t, team)
		mMembers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("no accepted opportunities yields an empty team", func(t *testing.T) {
		mOpps := new(repoMocks.MockOpportunityRepository)

		mOpps.On("ListByProject", ctx, "project-1").Return([]model.Opportunity{
			{ID: "o1", MemberID: "m1", Status: "pending"},
		}, nil)

		svc := NewProjectService(new(repoMocks.MockProjectRepository), mOpps, new(repoMocks.MockMemberRepository), zap.NewNop())
		team, err := svc.Team(ctx, "project-1")

		assert.NoError(t, err)
		assert.Empty(t, team)
		assert.NotNil(t, team)
	})

	t.Run("missing project id is raised before any remote call", func(t *testing.T) {
		mOpps := new(repoMocks.MockOpportunityRepository)

		svc := NewProjectService(new(repoMocks.MockProjectRepository), mOpps, new(repoMocks.MockMemberRepository), zap.NewNop())
		team, err := svc.Team(ctx, "")

		assert.ErrorIs(t, err, ErrIDRequired)
		assert.Nil(t, team)
		mOpps.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
	})
}

func TestProjectService_ListByClient(t *testing.T) {
	ctx := context.Background()

	t.Run("remote failure is absorbed", func(t *testing.T) {
		mProjects := new(repoMocks.MockProjectRepository)
		mProjects.On("ListByClient", ctx, "client-1").Return(nil, errors.New("db down"))

		svc := NewProjectService(mProjects, new(repoMocks.MockOpportunityRepository), new(repoMocks.MockMemberRepository), zap.NewNop())
		list, err := svc.ListByClient(ctx, "client-1")

		assert.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("missing client id short-circuits", func(t *testing.T) {
		mProjects := new(repoMocks.MockProjectRepository)

		svc := NewProjectService(mProjects, new(repoMocks.MockOpportunityRepository), new(repoMocks.MockMemberRepository), zap.NewNop())
		list, err := svc.ListByClient(ctx, "")

		assert.NoError(t, err)
		assert.Nil(t, list)
		mProjects.AssertNotCalled(t, "ListByClient", mock.Anything, mock.Anything)
	})
}
