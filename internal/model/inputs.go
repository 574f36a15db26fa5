package model

import (
	"io"
	"time"
)

// FileInput describes a binary asset supplied alongside a create or update
// call. A nil Reader means no file was supplied.
type FileInput struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// HasFile reports whether a file was actually supplied.
func (f *FileInput) HasFile() bool {
	return f != nil && f.Reader != nil
}

// NewClient is the payload for creating a client. File is the optional logo;
// when absent the logo falls back to a generated initials avatar.
type NewClient struct {
	Name string
	File *FileInput
}

// UpdateClient is the full update payload for a client. LogoID/LogoURL carry
// the current asset pair; File, when present, replaces it.
type UpdateClient struct {
	ID          string
	Name        string
	Description string
	Website     string
	X           string
	LinkedIn    string
	DocumentIDs []string
	ProjectIDs  []string
	LogoID      string
	LogoURL     string
	File        *FileInput
}

// UpdateMember is the full update payload for a member. AvatarID/AvatarURL
// carry the current asset pair; File, when present, replaces it.
type UpdateMember struct {
	MemberID          string
	Email             string
	EmailVerification bool
	FirstName         string
	LastName          string
	Status            string
	ContractSigned    bool
	ImportedAnswers   bool
	Timezone          string
	AvatarID          string
	AvatarURL         string
	File              *FileInput
}

// NewProject is the payload for creating a project. Status is assigned by the
// service, not the caller.
type NewProject struct {
	ClientID string
	Title    string
}

// UpdateProject is the full update payload for a project.
type UpdateProject struct {
	ProjectID   string
	Title       string
	SparkRep    string
	BriefLink   string
	RoadmapLink string
	Status      string
}

// NewOpportunity is the payload for creating an opportunity.
type NewOpportunity struct {
	ClientID          string
	ProjectID         string
	MemberID          string
	Status            string
	Role              string
	StartDate         *time.Time
	Background        string
	Description       string
	Duration          string
	Type              string
	EstimatedEarnings string
	Responsibilities  string
}

// UpdateOpportunity is the full update payload for an opportunity.
type UpdateOpportunity struct {
	OpportunityID     string
	Status            string
	Role              string
	StartDate         *time.Time
	Background        string
	Description       string
	Duration          string
	Type              string
	EstimatedEarnings string
	Responsibilities  string
}

// NewMilestone is the payload for creating a milestone.
type NewMilestone struct {
	ProjectID string
	Title     string
}

// UpdateMilestone is the full update payload for a milestone.
type UpdateMilestone struct {
	MilestoneID string
	Title       string
	Status      string
}

// NewDocument is the payload for creating a client document.
type NewDocument struct {
	ClientID  string
	Title     string
	Link      string
	Status    string
	StripeID  string
	EukapayID string
	Invoice   bool
}

// UpdateDocument updates a document's status only.
type UpdateDocument struct {
	DocumentID string
	Status     string
}

// UpdateRequest updates a request's status only.
type UpdateRequest struct {
	RequestID string
	Status    string
}

// UpdateStakeholder is the full update payload for a stakeholder.
type UpdateStakeholder struct {
	StakeholderID string
	Email         string
	FirstName     string
	LastName      string
	ClientID      string
}
