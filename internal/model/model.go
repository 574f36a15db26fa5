package model

import "time"

// Project lifecycle statuses.
const (
	ProjectStatusKickoff    = "kickoff"
	ProjectStatusInProgress = "in progress"
	ProjectStatusCompleted  = "completed"
)

// OpportunityStatusAccepted marks an opportunity whose member is part of the
// project team.
const OpportunityStatusAccepted = "accepted"

// DefaultTeamRole is used when an accepted opportunity carries no role.
const DefaultTeamRole = "Team member"

// Member is a team member with a login account and an optional avatar asset.
// AvatarID and AvatarURL always change together; a record never points at an
// asset whose preview URL is stale.
type Member struct {
	ID                string    `json:"id"`
	AccountID         string    `json:"accountId"`
	ProfileID         string    `json:"profileId"`
	Email             string    `json:"email"`
	EmailVerification bool      `json:"emailVerification"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Role              string    `json:"role"`
	Status            string    `json:"status"`
	ContractSigned    bool      `json:"contractSigned"`
	ImportedAnswers   bool      `json:"importedAnswers"`
	Timezone          string    `json:"timezone"`
	AvatarID          string    `json:"avatarId"`
	AvatarURL         string    `json:"avatarUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Profile holds the extended, member-editable profile record.
type Profile struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"memberId"`
	PrimaryRole   string    `json:"primaryRole"`
	Bio           string    `json:"bio"`
	PortfolioLink string    `json:"portfolioLink"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Client is the root entity; every other record hangs off a client, a project
// or a member. The id lists mirror the platform's relationship fields.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	X           string    `json:"x"`
	LinkedIn    string    `json:"linkedin"`
	LogoID      string    `json:"logoId"`
	LogoURL     string    `json:"logoUrl"`
	MemberIDs   []string  `json:"memberIds"`
	ProjectIDs  []string  `json:"projectIds"`
	DocumentIDs []string  `json:"documentIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Project belongs to exactly one client.
type Project struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Title       string    `json:"title"`
	SparkRep    string    `json:"sparkRep"`
	BriefLink   string    `json:"briefLink"`
	RoadmapLink string    `json:"roadmapLink"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Opportunity is an offer to staff a member on a project.
type Opportunity struct {
	ID                string     `json:"id"`
	ClientID          string     `json:"clientId"`
	ProjectID         string     `json:"projectId"`
	MemberID          string     `json:"memberId"`
	Status            string     `json:"status"`
	Role              string     `json:"role"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	Background        string     `json:"background"`
	Description       string     `json:"description"`
	Duration          string     `json:"duration"`
	Type              string     `json:"type"`
	EstimatedEarnings string     `json:"estimatedEarnings"`
	Responsibilities  string     `json:"responsibilities"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Milestone belongs to exactly one project.
type Milestone struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// MilestoneUpdate is a progress note under a milestone.
type MilestoneUpdate struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestoneId"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Feedback is client feedback attached to a milestone update.
type Feedback struct {
	ID        string    `json:"id"`
	UpdateID  string    `json:"updateId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Document is a client-scoped document or invoice. StripeID and EukapayID are
// opaque identifiers into the two external payment systems; either may be
// empty.
type Document struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Status    string    `json:"status"`
	StripeID  string    `json:"stripeId"`
	EukapayID string    `json:"eukapayId"`
	Invoice   bool      `json:"invoice"`
	CreatedAt time.Time `json:"createdAt"`
}

// Request is a member-raised request tracked by status.
type Request struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackRequest asks a client for feedback on delivered work.
type FeedbackRequest struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"memberId"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stakeholder is a client-side contact.
type Stakeholder struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamMember is the derived view produced by joining a project's accepted
// opportunities with the member records they reference.
type TeamMember struct {
	MemberID  string `json:"memberId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role"`
}

// InvoiceRow is a document enriched with the matching records from the two
// payment providers. Either provider field may be nil when the document has
// no id for that provider or the provider lookup failed.
type InvoiceRow struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"createdAt"`
	Title          string         `json:"title"`
	EukapayInvoice map[string]any `json:"eukapayInvoice"`
	StripePayment  map[string]any `json:"stripePayment"`
}

// CurrentMember is the signed-in member joined with their profile.
type CurrentMember struct {
	Member  Member  `json:"member"`
	Profile Profile `json:"profile"`
}
