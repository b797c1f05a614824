package legalapimodels

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
)

// ActionRequest is the body of the single action endpoint. Which of the
// optional fields are read depends on the action.
type ActionRequest struct {
	Role    string `json:"role"`
	Action  string `json:"action"`
	Comment string `json:"comment"`

	// directory user the action hands the submission to: the legal officer on
	// Legal GM approval or reassignment, the court officer, a special approver
	AssigneeID           string `json:"assigneeId"`
	AssigneeEmail        string `json:"assigneeEmail"`
	LegalOfficerID       string `json:"legalOfficerId"`
	CourtOfficerID       string `json:"courtOfficerId"`
	SpecialApproverEmail string `json:"specialApproverEmail"`

	DocumentID     string                `json:"documentId"`
	DocumentStatus models.DocumentStatus `json:"documentStatus"`
	DocumentLabel  string                `json:"documentLabel"`
	FileURL        string                `json:"fileUrl"`

	OfficialUse map[string]string `json:"officialUse"`

	// resubmission edits
	Title   string           `json:"title"`
	Content dbmodels.Content `json:"content" swaggertype:"object"`
}

func (r ActionRequest) Validate() error {
	if _, err := models.ParseWorkflowRole(r.Role); err != nil {
		return err
	}
	if _, err := models.ParseWorkflowAction(r.Action); err != nil {
		return err
	}
	if r.DocumentStatus != "" {
		if err := r.DocumentStatus.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r ActionRequest) GetRole() models.WorkflowRole {
	role, _ := models.ParseWorkflowRole(r.Role)
	return role
}

func (r ActionRequest) GetAction() models.WorkflowAction {
	action, _ := models.ParseWorkflowAction(r.Action)
	return action
}

// AssigneeKey returns the directory id or email of the assignee, whichever
// field the caller used.
func (r ActionRequest) AssigneeKey() (id, email string) {
	for _, value := range []string{r.AssigneeID, r.LegalOfficerID, r.CourtOfficerID} {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), ""
		}
	}
	for _, value := range []string{r.AssigneeEmail, r.SpecialApproverEmail} {
		if strings.TrimSpace(value) != "" {
			return "", strings.TrimSpace(value)
		}
	}
	return "", ""
}

type ActionResult struct {
	Submission   SubmissionView  `json:"submission"`
	Resubmission *SubmissionView `json:"resubmission,omitempty"`
}

type DocumentUpload struct {
	Role string `json:"role" form:"role"`
}

func (r DocumentUpload) Validate() error {
	if r.Role == "" {
		return errors.New("role is required")
	}
	_, err := models.ParseWorkflowRole(r.Role)
	return err
}

func (r DocumentUpload) GetRole() models.WorkflowRole {
	role, _ := models.ParseWorkflowRole(r.Role)
	return role
}
