package query

import (
	"context"

	"clienthub/internal/model"
	"clienthub/internal/platform"
	"clienthub/internal/service"
)

// Operation names. Reads are cached under these; mutations name them to say
// which cached reads they make stale.
const (
	opClients             = "getClients"
	opClient              = "getClientById"
	opMembers             = "getMembers"
	opMember              = "getMemberById"
	opMemberStatus        = "getMemberStatus"
	opProfiles            = "getProfiles"
	opCurrentMember       = "getCurrentMember"
	opClientProjects      = "getClientProjects"
	opProject             = "getProjectById"
	opProjectTeam         = "getProjectTeam"
	opClientOpportunities = "getClientOpportunities"
	opProjectMilestones   = "getProjectMilestones"
	opMilestoneUpdates    = "getMilestoneUpdates"
	opUpdateFeedback      = "getUpdateFeedback"
	opClientDocuments     = "getClientDocuments"
	opInvoiceData         = "getInvoiceData"
	opRequests            = "getRequests"
	opFeedbackRequests    = "getFeedbackRequests"
	opStakeholders        = "getStakeholders"
)

// Queries is the cached read surface plus the mutations that invalidate it.
// Each read is keyed by its operation name and arguments; each mutation
// names the reads it makes stale, and the next access refetches them.
type Queries struct {
	cache *Cache

	auth          service.AuthService
	clients       service.ClientService
	members       service.MemberService
	projects      service.ProjectService
	opportunities service.OpportunityService
	milestones    service.MilestoneService
	documents     service.DocumentService
	invoices      service.InvoiceService
	requests      service.RequestService
	stakeholders  service.StakeholderService
}

// Services bundles the service dependencies of Queries.
type Services struct {
	Auth          service.AuthService
	Clients       service.ClientService
	Members       service.MemberService
	Projects      service.ProjectService
	Opportunities service.OpportunityService
	Milestones    service.MilestoneService
	Documents     service.DocumentService
	Invoices      service.InvoiceService
	Requests      service.RequestService
	Stakeholders  service.StakeholderService
}

// New constructs the query surface over the given services and cache.
func New(cache *Cache, svcs Services) *Queries {
	return &Queries{
		cache:         cache,
		auth:          svcs.Auth,
		clients:       svcs.Clients,
		members:       svcs.Members,
		projects:      svcs.Projects,
		opportunities: svcs.Opportunities,
		milestones:    svcs.Milestones,
		documents:     svcs.Documents,
		invoices:      svcs.Invoices,
		requests:      svcs.Requests,
		stakeholders:  svcs.Stakeholders,
	}
}

// lookup adapts a typed fetch onto the untyped cache slot.
func lookup[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil || data == nil {
		var zero T
		return zero, err
	}
	return data.(T), nil
}

// Clients

func (q *Queries) Clients(ctx context.Context) ([]model.Client, error) {
	return lookup(ctx, q.cache, Key{Op: opClients}, q.clients.List)
}

func (q *Queries) Client(ctx context.Context, id string) (*model.Client, error) {
	return lookup(ctx, q.cache, Key{Op: opClient, Args: []string{id}},
		func(ctx context.Context) (*model.Client, error) { return q.clients.Get(ctx, id) })
}

func (q *Queries) CreateClient(ctx context.Context, in model.NewClient) (*model.Client, error) {
	stored, err := q.clients.Create(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opClients})
	}
	return stored, err
}

func (q *Queries) UpdateClient(ctx context.Context, in model.UpdateClient) (*model.Client, error) {
	stored, err := q.clients.Update(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opClients})
		q.cache.Invalidate(Key{Op: opClient, Args: []string{in.ID}})
	}
	return stored, err
}

// AssignMembers invalidates on settlement: the member list may have been
// partially applied, so the cached clients and members are refetched whether
// the call succeeded or not.
func (q *Queries) AssignMembers(ctx context.Context, clientID string, memberIDs []string) (*model.Client, error) {
	stored, err := q.clients.AssignMembers(ctx, clientID, memberIDs)
	q.cache.Invalidate(Key{Op: opClients})
	q.cache.Invalidate(Key{Op: opClient, Args: []string{clientID}})
	q.cache.Invalidate(Key{Op: opMembers})
	return stored, err
}

func (q *Queries) DeleteClient(ctx context.Context, id string) error {
	err := q.clients.Delete(ctx, id)
	q.cache.Invalidate(Key{Op: opClients})
	q.cache.Invalidate(Key{Op: opClient, Args: []string{id}})
	return err
}

// Members

func (q *Queries) Members(ctx context.Context) ([]model.Member, error) {
	return lookup(ctx, q.cache, Key{Op: opMembers}, q.members.List)
}

func (q *Queries) Member(ctx context.Context, id string) (*model.Member, error) {
	return lookup(ctx, q.cache, Key{Op: opMember, Args: []string{id}},
		func(ctx context.Context) (*model.Member, error) { return q.members.Get(ctx, id) })
}

func (q *Queries) MemberStatus(ctx context.Context, id string) (string, error) {
	return lookup(ctx, q.cache, Key{Op: opMemberStatus, Args: []string{id}},
		func(ctx context.Context) (string, error) { return q.members.Status(ctx, id) })
}

func (q *Queries) Profiles(ctx context.Context) ([]model.Profile, error) {
	return lookup(ctx, q.cache, Key{Op: opProfiles}, q.members.Profiles)
}

func (q *Queries) UpdateMember(ctx context.Context, in model.UpdateMember) (*model.Member, error) {
	stored, err := q.members.Update(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opMembers})
		q.cache.Invalidate(Key{Op: opMember, Args: []string{in.MemberID}})
		q.cache.Invalidate(Key{Op: opMemberStatus, Args: []string{in.MemberID}})
		q.cache.Invalidate(Key{Op: opCurrentMember})
	}
	return stored, err
}

// Auth

func (q *Queries) CurrentMember(ctx context.Context) (*model.CurrentMember, error) {
	return lookup(ctx, q.cache, Key{Op: opCurrentMember}, q.auth.Current)
}

func (q *Queries) SignIn(ctx context.Context, email, password string) (*platform.Session, error) {
	sess, err := q.auth.SignIn(ctx, email, password)
	q.cache.Invalidate(Key{Op: opCurrentMember})
	return sess, err
}

func (q *Queries) SignOut(ctx context.Context) error {
	err := q.auth.SignOut(ctx)
	q.cache.Invalidate(Key{Op: opCurrentMember})
	return err
}

// Projects

func (q *Queries) ClientProjects(ctx context.Context, clientID string) ([]model.Project, error) {
	return lookup(ctx, q.cache, Key{Op: opClientProjects, Args: []string{clientID}},
		func(ctx context.Context) ([]model.Project, error) { return q.projects.ListByClient(ctx, clientID) })
}

func (q *Queries) Project(ctx context.Context, id string) (*model.Project, error) {
	return lookup(ctx, q.cache, Key{Op: opProject, Args: []string{id}},
		func(ctx context.Context) (*model.Project, error) { return q.projects.Get(ctx, id) })
}

func (q *Queries) ProjectTeam(ctx context.Context, projectID string) ([]model.TeamMember, error) {
	return lookup(ctx, q.cache, Key{Op: opProjectTeam, Args: []string{projectID}},
		func(ctx context.Context) ([]model.TeamMember, error) { return q.projects.Team(ctx, projectID) })
}

func (q *Queries) CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error) {
	stored, err := q.projects.Create(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opClientProjects, Args: []string{in.ClientID}})
	}
	return stored, err
}

func (q *Queries) UpdateProject(ctx context.Context, in model.UpdateProject) (*model.Project, error) {
	stored, err := q.projects.Update(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opProject, Args: []string{in.ProjectID}})
		if stored.ClientID != "" {
			q.cache.Invalidate(Key{Op: opClientProjects, Args: []string{stored.ClientID}})
		} else {
			q.cache.InvalidateOp(opClientProjects)
		}
	}
	return stored, err
}

// Opportunities

func (q *Queries) ClientOpportunities(ctx context.Context, clientID string) ([]model.Opportunity, error) {
	return lookup(ctx, q.cache, Key{Op: opClientOpportunities, Args: []string{clientID}},
		func(ctx context.Context) ([]model.Opportunity, error) { return q.opportunities.ListByClient(ctx, clientID) })
}

func (q *Queries) CreateOpportunity(ctx context.Context, in model.NewOpportunity) (*model.Opportunity, error) {
	stored, err := q.opportunities.Create(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opClientOpportunities, Args: []string{in.ClientID}})
	}
	return stored, err
}

func (q *Queries) UpdateOpportunity(ctx context.Context, in model.UpdateOpportunity) (*model.Opportunity, error) {
	stored, err := q.opportunities.Update(ctx, in)
	if stored != nil {
		if stored.ClientID != "" {
			q.cache.Invalidate(Key{Op: opClientOpportunities, Args: []string{stored.ClientID}})
		} else {
			q.cache.InvalidateOp(opClientOpportunities)
		}
		if stored.ProjectID != "" {
			q.cache.Invalidate(Key{Op: opProjectTeam, Args: []string{stored.ProjectID}})
		}
	}
	return stored, err
}

func (q *Queries) DeleteOpportunity(ctx context.Context, id string) error {
	clientID, err := q.opportunities.Delete(ctx, id)
	if clientID != "" {
		q.cache.Invalidate(Key{Op: opClientOpportunities, Args: []string{clientID}})
	}
	return err
}

// Milestones

func (q *Queries) ProjectMilestones(ctx context.Context, projectID string) ([]model.Milestone, error) {
	return lookup(ctx, q.cache, Key{Op: opProjectMilestones, Args: []string{projectID}},
		func(ctx context.Context) ([]model.Milestone, error) { return q.milestones.ListByProject(ctx, projectID) })
}

func (q *Queries) CreateMilestone(ctx context.Context, in model.NewMilestone) (*model.Milestone, error) {
	stored, err := q.milestones.Create(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opProjectMilestones, Args: []string{in.ProjectID}})
	}
	return stored, err
}

func (q *Queries) UpdateMilestone(ctx context.Context, in model.UpdateMilestone) (*model.Milestone, error) {
	stored, err := q.milestones.Update(ctx, in)
	if stored != nil {
		if stored.ProjectID != "" {
			q.cache.Invalidate(Key{Op: opProjectMilestones, Args: []string{stored.ProjectID}})
		} else {
			q.cache.InvalidateOp(opProjectMilestones)
		}
	}
	return stored, err
}

func (q *Queries) DeleteMilestone(ctx context.Context, id, projectID string) error {
	err := q.milestones.Delete(ctx, id)
	q.cache.Invalidate(Key{Op: opProjectMilestones, Args: []string{projectID}})
	return err
}

func (q *Queries) MilestoneUpdates(ctx context.Context, milestoneID string) ([]model.MilestoneUpdate, error) {
	return lookup(ctx, q.cache, Key{Op: opMilestoneUpdates, Args: []string{milestoneID}},
		func(ctx context.Context) ([]model.MilestoneUpdate, error) { return q.milestones.Updates(ctx, milestoneID) })
}

func (q *Queries) CreateMilestoneUpdate(ctx context.Context, milestoneID, title, status string) (*model.MilestoneUpdate, error) {
	stored, err := q.milestones.CreateUpdate(ctx, milestoneID, title, status)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opMilestoneUpdates, Args: []string{milestoneID}})
	}
	return stored, err
}

func (q *Queries) UpdateFeedback(ctx context.Context, updateID string) ([]model.Feedback, error) {
	return lookup(ctx, q.cache, Key{Op: opUpdateFeedback, Args: []string{updateID}},
		func(ctx context.Context) ([]model.Feedback, error) { return q.milestones.Feedback(ctx, updateID) })
}

func (q *Queries) CreateFeedback(ctx context.Context, updateID, text string) (*model.Feedback, error) {
	stored, err := q.milestones.CreateFeedback(ctx, updateID, text)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opUpdateFeedback, Args: []string{updateID}})
	}
	return stored, err
}

// Documents

func (q *Queries) ClientDocuments(ctx context.Context, clientID string) ([]model.Document, error) {
	return lookup(ctx, q.cache, Key{Op: opClientDocuments, Args: []string{clientID}},
		func(ctx context.Context) ([]model.Document, error) { return q.documents.ListByClient(ctx, clientID) })
}

func (q *Queries) InvoiceData(ctx context.Context, clientID string) ([]model.InvoiceRow, error) {
	return lookup(ctx, q.cache, Key{Op: opInvoiceData, Args: []string{clientID}},
		func(ctx context.Context) ([]model.InvoiceRow, error) { return q.invoices.Data(ctx, clientID) })
}

func (q *Queries) CreateDocument(ctx context.Context, in model.NewDocument) (*model.Document, error) {
	stored, err := q.documents.Create(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opClientDocuments, Args: []string{in.ClientID}})
		q.cache.Invalidate(Key{Op: opInvoiceData, Args: []string{in.ClientID}})
	}
	return stored, err
}

func (q *Queries) UpdateDocumentStatus(ctx context.Context, in model.UpdateDocument) (*model.Document, error) {
	stored, err := q.documents.UpdateStatus(ctx, in)
	if stored != nil {
		if stored.ClientID != "" {
			q.cache.Invalidate(Key{Op: opClientDocuments, Args: []string{stored.ClientID}})
			q.cache.Invalidate(Key{Op: opInvoiceData, Args: []string{stored.ClientID}})
		} else {
			q.cache.InvalidateOp(opClientDocuments)
			q.cache.InvalidateOp(opInvoiceData)
		}
	}
	return stored, err
}

func (q *Queries) DeleteDocument(ctx context.Context, id, clientID string) error {
	err := q.documents.Delete(ctx, id)
	q.cache.Invalidate(Key{Op: opClientDocuments, Args: []string{clientID}})
	q.cache.Invalidate(Key{Op: opInvoiceData, Args: []string{clientID}})
	return err
}

// Requests

func (q *Queries) Requests(ctx context.Context) ([]model.Request, error) {
	return lookup(ctx, q.cache, Key{Op: opRequests}, q.requests.List)
}

func (q *Queries) CreateRequest(ctx context.Context, memberID, subject, status string) (*model.Request, error) {
	stored, err := q.requests.Create(ctx, memberID, subject, status)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opRequests})
	}
	return stored, err
}

func (q *Queries) UpdateRequestStatus(ctx context.Context, in model.UpdateRequest) (*model.Request, error) {
	stored, err := q.requests.UpdateStatus(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opRequests})
	}
	return stored, err
}

func (q *Queries) FeedbackRequests(ctx context.Context) ([]model.FeedbackRequest, error) {
	return lookup(ctx, q.cache, Key{Op: opFeedbackRequests}, q.requests.FeedbackRequests)
}

func (q *Queries) CreateFeedbackRequest(ctx context.Context, memberID, subject, status string) (*model.FeedbackRequest, error) {
	stored, err := q.requests.CreateFeedbackRequest(ctx, memberID, subject, status)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opFeedbackRequests})
	}
	return stored, err
}

// Stakeholders

func (q *Queries) Stakeholders(ctx context.Context) ([]model.Stakeholder, error) {
	return lookup(ctx, q.cache, Key{Op: opStakeholders}, q.stakeholders.List)
}

func (q *Queries) CreateStakeholder(ctx context.Context, clientID, email, firstName, lastName string) (*model.Stakeholder, error) {
	stored, err := q.stakeholders.Create(ctx, clientID, email, firstName, lastName)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opStakeholders})
	}
	return stored, err
}

func (q *Queries) UpdateStakeholder(ctx context.Context, in model.UpdateStakeholder) (*model.Stakeholder, error) {
	stored, err := q.stakeholders.Update(ctx, in)
	if stored != nil {
		q.cache.Invalidate(Key{Op: opStakeholders})
	}
	return stored, err
}
