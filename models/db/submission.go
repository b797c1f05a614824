package dbmodels

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	"time"
)

type Submission struct {
	BaseModel
	SubmissionNo         string                  `gorm:"type:varchar(64);uniqueIndex"`
	FormID               models.FormID           `gorm:"index"`
	FormName             string                  `gorm:"type:varchar(100)"`
	Status               models.SubmissionStatus `gorm:"type:varchar(40);index"`
	LoStage              models.LOStage          `gorm:"type:varchar(40)"`
	ResumeStage          models.LOStage          `gorm:"type:varchar(40)"` // restored after handover acknowledgement
	Title                string                  `gorm:"type:varchar(255)"`
	CompanyCode          string                  `gorm:"type:varchar(50)"`
	Value                string                  `gorm:"type:varchar(100)"`
	Content              Content                 `gorm:"type:jsonb"`
	OfficialUse          StringMap               `gorm:"type:jsonb"`
	InitiatorName        string                  `gorm:"type:varchar(255)"`
	InitiatorEmail       string                  `gorm:"type:varchar(255);index"`
	AssignedOfficerID    string                  `gorm:"type:varchar(36)"`
	AssignedOfficerName  string                  `gorm:"type:varchar(255)"`
	AssignedOfficerEmail string                  `gorm:"type:varchar(255)"`
	CourtOfficerID       string                  `gorm:"type:varchar(36)"`
	CourtOfficerName     string                  `gorm:"type:varchar(255)"`
	CourtOfficerEmail    string                  `gorm:"type:varchar(255)"`
	ParentID             *string                 `gorm:"type:varchar(36);index"`
	IsResubmission       bool
	ResubmissionCount    int
	Version              int
	Parties              []Party           `gorm:"foreignKey:SubmissionID"`
	Approvals            []Approval        `gorm:"foreignKey:SubmissionID"`
	Documents            []Document        `gorm:"foreignKey:SubmissionID"`
	Comments             []Comment         `gorm:"foreignKey:SubmissionID"`
	SpecialApprovers     []SpecialApprover `gorm:"foreignKey:SubmissionID"`
}

type Party struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID string `gorm:"type:varchar(36);index"`
	Position     int
	Type         string `gorm:"type:varchar(100)"`
	Name         string `gorm:"type:varchar(255)"`
}

type Approval struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID  string `gorm:"type:varchar(36);index"`
	Position      int
	Role          models.WorkflowRole   `gorm:"type:varchar(40)"`
	Step          models.ApprovalStep   `gorm:"type:varchar(40)"`
	ApproverName  string                `gorm:"type:varchar(255)"`
	ApproverEmail string                `gorm:"type:varchar(255)"`
	Status        models.ApprovalStatus `gorm:"type:varchar(20)"`
	Comment       string
	ActionDate    *time.Time
}

type SpecialApprover struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID  string `gorm:"type:varchar(36);index"`
	Position      int
	ApproverName  string                `gorm:"type:varchar(255)"`
	ApproverEmail string                `gorm:"type:varchar(255)"`
	Department    string                `gorm:"type:varchar(255)"`
	AssignedBy    string                `gorm:"type:varchar(255)"`
	AssignedAt    time.Time
	Status        models.ApprovalStatus `gorm:"type:varchar(20)"`
	Comment       string
	ActionDate    *time.Time
}

type Document struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID string `gorm:"type:varchar(36);index"`
	Position     int
	Label        string                `gorm:"type:varchar(255)"`
	Type         models.DocumentType   `gorm:"type:varchar(100)"`
	Status       models.DocumentStatus `gorm:"type:varchar(20)"`
	Mandatory    bool
	FileURL      string
	Comment      string
	RequestedBy  string `gorm:"type:varchar(255)"`
}

type Comment struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID string `gorm:"type:varchar(36);index"`
	Position     int
	AuthorName   string              `gorm:"type:varchar(255)"`
	AuthorRole   models.WorkflowRole `gorm:"type:varchar(40)"`
	Text         string
	CreatedAt    time.Time
}

// FindApproval returns the ledger row for role at step.
func (s *Submission) FindApproval(role models.WorkflowRole, step models.ApprovalStep) *Approval {
	for idx := range s.Approvals {
		if s.Approvals[idx].Role == role && s.Approvals[idx].Step == step {
			return &s.Approvals[idx]
		}
	}
	return nil
}

func (s *Submission) FindDocument(id string) *Document {
	for idx := range s.Documents {
		if s.Documents[idx].ID == id {
			return &s.Documents[idx]
		}
	}
	return nil
}

func (s *Submission) HasPendingSpecialApprovers() bool {
	for _, rec := range s.SpecialApprovers {
		if rec.Status == models.ApprovalPending {
			return true
		}
	}
	return false
}

func (s *Submission) PartyTypes() []string {
	result := make([]string, 0, len(s.Parties))
	seen := map[string]bool{}
	for _, party := range s.Parties {
		if party.Type == "" || seen[party.Type] {
			continue
		}
		seen[party.Type] = true
		result = append(result, party.Type)
	}
	return result
}
