package legalapimodels

import (
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
)

type PartyData struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type ApproverData struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SubmissionCreate struct {
	FormID      models.FormID    `json:"formId"`
	Title       string           `json:"title"`
	CompanyCode string           `json:"companyCode"`
	Value       string           `json:"value"`
	Content     dbmodels.Content `json:"content" swaggertype:"object"`
	Parties     []PartyData      `json:"parties"`
	Approvers   []ApproverData   `json:"approvers"`
	Submit      bool             `json:"submit"` // submit right away instead of saving a draft
}

// Validate checks the request shape only; required fields per form are
// checked by the workflow when the submission is built.
func (r SubmissionCreate) Validate() error {
	if err := r.FormID.Validate(); err != nil {
		return err
	}
	for _, approver := range r.Approvers {
		if _, err := models.ParseWorkflowRole(approver.Role); err != nil {
			return err
		}
		if strings.TrimSpace(approver.Email) == "" {
			return errors.Errorf("approver email is required for role %v", approver.Role)
		}
	}
	return nil
}

type SubmissionFilter struct {
	apimodels.Pagination
	Status   models.SubmissionStatus `json:"status"`
	FormID   models.FormID           `json:"formId"`
	Search   string                  `json:"search"`   // submission number or title
	Mine     bool                    `json:"mine"`     // only submissions initiated by the caller
	Assigned bool                    `json:"assigned"` // only submissions where the caller is on the ledger
	// set by the controller from the token
	UserEmail string `json:"-"`
}

func (r SubmissionFilter) Validate() error {
	if err := r.Pagination.Validate(); err != nil {
		return err
	}
	if r.Status != "" {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.FormID != 0 {
		return r.FormID.Validate()
	}
	return nil
}

type PartyView struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

type ApprovalView struct {
	ID            string                `json:"id"`
	Role          models.WorkflowRole   `json:"role"`
	Step          models.ApprovalStep   `json:"step"`
	ApproverName  string                `json:"approverName"`
	ApproverEmail string                `json:"approverEmail"`
	Status        models.ApprovalStatus `json:"status"`
	Comment       string                `json:"comment"`
	ActionDate    *time.Time            `json:"actionDate"`
}

type SpecialApproverView struct {
	ID            string                `json:"id"`
	ApproverName  string                `json:"approverName"`
	ApproverEmail string                `json:"approverEmail"`
	Department    string                `json:"department"`
	AssignedBy    string                `json:"assignedBy"`
	AssignedAt    time.Time             `json:"assignedAt"`
	Status        models.ApprovalStatus `json:"status"`
	Comment       string                `json:"comment"`
	ActionDate    *time.Time            `json:"actionDate"`
}

type DocumentView struct {
	ID          string                `json:"id"`
	Label       string                `json:"label"`
	Type        models.DocumentType   `json:"type"`
	Status      models.DocumentStatus `json:"status"`
	Mandatory   bool                  `json:"mandatory"`
	FileURL     string                `json:"fileUrl"`
	Comment     string                `json:"comment"`
	RequestedBy string                `json:"requestedBy,omitempty"`
}

type CommentView struct {
	AuthorName string              `json:"authorName"`
	AuthorRole models.WorkflowRole `json:"authorRole"`
	Text       string              `json:"text"`
	CreatedAt  time.Time           `json:"createdAt"`
}

type ActorView struct {
	Role  models.WorkflowRole `json:"role"`
	Name  string              `json:"name"`
	Email string              `json:"email"`
}

type SubmissionView struct {
	ID                   string                  `json:"id"`
	SubmissionNo         string                  `json:"submissionNo"`
	FormID               models.FormID           `json:"formId"`
	FormName             string                  `json:"formName"`
	Status               models.SubmissionStatus `json:"status"`
	LoStage              models.LOStage          `json:"loStage"`
	Title                string                  `json:"title"`
	CompanyCode          string                  `json:"companyCode"`
	Value                string                  `json:"value"`
	Content              dbmodels.Content        `json:"content" swaggertype:"object"`
	OfficialUse          map[string]string       `json:"officialUse"`
	InitiatorName        string                  `json:"initiatorName"`
	InitiatorEmail       string                  `json:"initiatorEmail"`
	AssignedOfficerID    string                  `json:"assignedOfficerId,omitempty"`
	AssignedOfficerName  string                  `json:"assignedOfficerName,omitempty"`
	AssignedOfficerEmail string                  `json:"assignedOfficerEmail,omitempty"`
	CourtOfficerID       string                  `json:"courtOfficerId,omitempty"`
	CourtOfficerName     string                  `json:"courtOfficerName,omitempty"`
	CourtOfficerEmail    string                  `json:"courtOfficerEmail,omitempty"`
	ParentID             *string                 `json:"parentId"`
	IsResubmission       bool                    `json:"isResubmission"`
	ResubmissionCount    int                     `json:"resubmissionCount"`
	CreatedAt            time.Time               `json:"createdAt"`
	UpdatedAt            time.Time               `json:"updatedAt"`
	Parties              []PartyView             `json:"parties"`
	Approvals            []ApprovalView          `json:"approvals"`
	SpecialApprovers     []SpecialApproverView   `json:"specialApprovers"`
	Documents            []DocumentView          `json:"documents"`
	Comments             []CommentView           `json:"comments"`
	NextActors           []ActorView             `json:"nextActors"`
}

func SubmissionConvert(rec dbmodels.Submission) SubmissionView {
	result := SubmissionView{
		ID:                   rec.ID,
		SubmissionNo:         rec.SubmissionNo,
		FormID:               rec.FormID,
		FormName:             rec.FormName,
		Status:               rec.Status,
		LoStage:              rec.LoStage,
		Title:                rec.Title,
		CompanyCode:          rec.CompanyCode,
		Value:                rec.Value,
		Content:              rec.Content,
		OfficialUse:          map[string]string(rec.OfficialUse.Clone()),
		InitiatorName:        rec.InitiatorName,
		InitiatorEmail:       rec.InitiatorEmail,
		AssignedOfficerID:    rec.AssignedOfficerID,
		AssignedOfficerName:  rec.AssignedOfficerName,
		AssignedOfficerEmail: rec.AssignedOfficerEmail,
		CourtOfficerID:       rec.CourtOfficerID,
		CourtOfficerName:     rec.CourtOfficerName,
		CourtOfficerEmail:    rec.CourtOfficerEmail,
		ParentID:             rec.ParentID,
		IsResubmission:       rec.IsResubmission,
		ResubmissionCount:    rec.ResubmissionCount,
		CreatedAt:            rec.CreatedAt,
		UpdatedAt:            rec.UpdatedAt,
		Parties:              make([]PartyView, 0, len(rec.Parties)),
		Approvals:            make([]ApprovalView, 0, len(rec.Approvals)),
		SpecialApprovers:     make([]SpecialApproverView, 0, len(rec.SpecialApprovers)),
		Documents:            make([]DocumentView, 0, len(rec.Documents)),
		Comments:             make([]CommentView, 0, len(rec.Comments)),
		NextActors:           []ActorView{},
	}
	if result.OfficialUse == nil {
		result.OfficialUse = map[string]string{}
	}
	for _, party := range rec.Parties {
		result.Parties = append(result.Parties, PartyView{ID: party.ID, Type: party.Type, Name: party.Name})
	}
	for _, approval := range rec.Approvals {
		result.Approvals = append(result.Approvals, ApprovalView{
			ID:            approval.ID,
			Role:          approval.Role,
			Step:          approval.Step,
			ApproverName:  approval.ApproverName,
			ApproverEmail: approval.ApproverEmail,
			Status:        approval.Status,
			Comment:       approval.Comment,
			ActionDate:    approval.ActionDate,
		})
	}
	for _, special := range rec.SpecialApprovers {
		result.SpecialApprovers = append(result.SpecialApprovers, SpecialApproverView{
			ID:            special.ID,
			ApproverName:  special.ApproverName,
			ApproverEmail: special.ApproverEmail,
			Department:    special.Department,
			AssignedBy:    special.AssignedBy,
			AssignedAt:    special.AssignedAt,
			Status:        special.Status,
			Comment:       special.Comment,
			ActionDate:    special.ActionDate,
		})
	}
	for _, doc := range rec.Documents {
		result.Documents = append(result.Documents, DocumentView{
			ID:          doc.ID,
			Label:       doc.Label,
			Type:        doc.Type,
			Status:      doc.Status,
			Mandatory:   doc.Mandatory,
			FileURL:     doc.FileURL,
			Comment:     doc.Comment,
			RequestedBy: doc.RequestedBy,
		})
	}
	for _, comment := range rec.Comments {
		result.Comments = append(result.Comments, CommentView{
			AuthorName: comment.AuthorName,
			AuthorRole: comment.AuthorRole,
			Text:       comment.Text,
			CreatedAt:  comment.CreatedAt,
		})
	}
	return result
}

type SubmissionListItem struct {
	ID                  string                  `json:"id"`
	SubmissionNo        string                  `json:"submissionNo"`
	FormID              models.FormID           `json:"formId"`
	FormName            string                  `json:"formName"`
	Title               string                  `json:"title"`
	Status              models.SubmissionStatus `json:"status"`
	StatusName          string                  `json:"statusName"`
	LoStage             models.LOStage          `json:"loStage"`
	InitiatorName       string                  `json:"initiatorName"`
	AssignedOfficerName string                  `json:"assignedOfficerName,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func SubmissionListItemConvert(rec dbmodels.Submission) SubmissionListItem {
	return SubmissionListItem{
		ID:                  rec.ID,
		SubmissionNo:        rec.SubmissionNo,
		FormID:              rec.FormID,
		FormName:            rec.FormName,
		Title:               rec.Title,
		Status:              rec.Status,
		StatusName:          rec.Status.ToHuman(),
		LoStage:             rec.LoStage,
		InitiatorName:       rec.InitiatorName,
		AssignedOfficerName: rec.AssignedOfficerName,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
}
