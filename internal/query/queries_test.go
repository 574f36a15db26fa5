package query

import (
	"context"
	"testing"

	"clienthub/internal/model"

	"github.com/stretchr/testify/assert"
)

// stubClientService counts reads so tests can observe which mutations force
// a refetch.
type stubClientService struct {
	listCalls    int
	getCalls     int
	createResult *model.Client
	assignResult *model.Client
}

func (s *stubClientService) List(ctx context.Context) ([]model.Client, error) {
	s.listCalls++
	return []model.Client{{ID: "client-1"}}, nil
}

func (s *stubClientService) Get(ctx context.Context, id string) (*model.Client, error) {
	s.getCalls++
	return &model.Client{ID: id}, nil
}

func (s *stubClientService) Create(ctx context.Context, in model.NewClient) (*model.Client, error) {
	return s.createResult, nil
}

func (s *stubClientService) Update(ctx context.Context, in model.UpdateClient) (*model.Client, error) {
	return &model.Client{ID: in.ID}, nil
}

func (s *stubClientService) AssignMembers(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error) {
	return s.assignResult, nil
}

func (s *stubClientService) Delete(ctx context.Context, id string) error {
	return nil
}

type stubMemberService struct {
	listCalls int
}

func (s *stubMemberService) List(ctx context.Context) ([]model.Member, error) {
	s.listCalls++
	return []model.Member{{ID: "m1"}}, nil
}

func (s *stubMemberService) Get(ctx context.Context, id string) (*model.Member, error) {
	return &model.Member{ID: id}, nil
}

func (s *stubMemberService) Status(ctx context.Context, id string) (string, error) {
	return "active", nil
}

func (s *stubMemberService) Update(ctx context.Context, in model.UpdateMember) (*model.Member, error) {
	return &model.Member{ID: in.MemberID}, nil
}

func (s *stubMemberService) Profiles(ctx context.Context) ([]model.Profile, error) {
	return []model.Profile{}, nil
}

func (s *stubMemberService) Profile(ctx context.Context, id string) (*model.Profile, error) {
	return &model.Profile{ID: id}, nil
}

type stubOpportunityService struct {
	listCalls      int
	deleteClientID string
}

func (s *stubOpportunityService) Create(ctx context.Context, in model.NewOpportunity) (*model.Opportunity, error) {
	return &model.Opportunity{ID: "o1", ClientID: in.ClientID}, nil
}

func (s *stubOpportunityService) Get(ctx context.Context, id string) (*model.Opportunity, error) {
	return &model.Opportunity{ID: id}, nil
}

func (s *stubOpportunityService) ListByClient(ctx context.Context, clientID string) ([]model.Opportunity, error) {
	s.listCalls++
	return []model.Opportunity{}, nil
}

func (s *stubOpportunityService) Update(ctx context.Context, in model.UpdateOpportunity) (*model.Opportunity, error) {
	return &model.Opportunity{ID: in.OpportunityID}, nil
}

func (s *stubOpportunityService) Delete(ctx context.Context, id string) (string, error) {
	return s.deleteClientID, nil
}

func TestQueries_ClientInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("create refetches the client list", func(t *testing.T) {
		clients := &stubClientService{createResult: &model.Client{ID: "client-2"}}
		q := New(NewCache(nil), Services{Clients: clients})

		_, _ = q.Clients(ctx)
		_, _ = q.Clients(ctx)
		assert.Equal(t, 1, clients.listCalls)

		_, err := q.CreateClient(ctx, model.NewClient{Name: "Acme"})
		assert.NoError(t, err)

		_, _ = q.Clients(ctx)
		assert.Equal(t, 2, clients.listCalls)
	})

	t.Run("absorbed create failure keeps the cache fresh", func(t *testing.T) {
		clients := &stubClientService{createResult: nil}
		q := New(NewCache(nil), Services{Clients: clients})

		_, _ = q.Clients(ctx)

		stored, err := q.CreateClient(ctx, model.NewClient{Name: "Acme"})
		assert.NoError(t, err)
		assert.Nil(t, stored)

		_, _ = q.Clients(ctx)
		assert.Equal(t, 1, clients.listCalls)
	})

	t.Run("assign members invalidates on settlement even when absorbed", func(t *testing.T) {
		clients := &stubClientService{assignResult: nil}
		members := &stubMemberService{}
		q := New(NewCache(nil), Services{Clients: clients, Members: members})

		_, _ = q.Client(ctx, "client-1")
		_, _ = q.Clients(ctx)
		_, _ = q.Members(ctx)

		stored, err := q.AssignMembers(ctx, "client-1", []string{"m1"})
		assert.NoError(t, err)
		assert.Nil(t, stored)

		_, _ = q.Client(ctx, "client-1")
		_, _ = q.Clients(ctx)
		_, _ = q.Members(ctx)
		assert.Equal(t, 2, clients.getCalls)
		assert.Equal(t, 2, clients.listCalls)
		assert.Equal(t, 2, members.listCalls)
	})
}

func TestQueries_OpportunityInvalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("delete refetches the owning client's list", func(t *testing.T) {
		opps := &stubOpportunityService{deleteClientID: "client-1"}
		q := New(NewCache(nil), Services{Opportunities: opps})

		_, _ = q.ClientOpportunities(ctx, "client-1")
		_, _ = q.ClientOpportunities(ctx, "client-2")

		err := q.DeleteOpportunity(ctx, "o1")
		assert.NoError(t, err)

		_, _ = q.ClientOpportunities(ctx, "client-1")
		_, _ = q.ClientOpportunities(ctx, "client-2")
		assert.Equal(t, 3, opps.listCalls)
	})
}
