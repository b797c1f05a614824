package workflow

import (
	"strconv"
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/google/uuid"
)

// Flow is the shape of the approval chain of one form.
type Flow struct {
	FirstLevel      []models.WorkflowRole
	CEOReview       bool
	CourtOfficerHop bool
}

var flows = map[models.FormID]Flow{
	models.FormContractReview:        {FirstLevel: firstLevel},
	models.FormLeaseAgreement:        {FirstLevel: firstLevel, CEOReview: true},
	models.FormLitigationInstruction: {FirstLevel: firstLevel, CourtOfficerHop: true},
}

func FlowFor(formID models.FormID) (Flow, error) {
	flow, ok := flows[formID]
	if !ok {
		return Flow{}, ValidationFailed("unknown form", "formId")
	}
	return flow, nil
}

// approverRoles are the roles whose approvers the initiator names up front.
func (f Flow) approverRoles() []models.WorkflowRole {
	roles := append([]models.WorkflowRole{}, f.FirstLevel...)
	if f.CEOReview {
		roles = append(roles, models.RoleCEO)
	}
	return append(roles, models.RoleLegalGM)
}

func (f Flow) requiresApprover(role models.WorkflowRole) bool {
	return role != models.RoleLegalGM
}

type PartyInput struct {
	Type string
	Name string
}

type ApproverInput struct {
	Role  models.WorkflowRole
	Name  string
	Email string
}

// RequiredDocument is one entry of the form configuration for the submission's party types.
type RequiredDocument struct {
	Label     string
	Type      string
	Mandatory bool
}

type Draft struct {
	FormID         models.FormID
	Title          string
	CompanyCode    string
	Value          string
	Content        dbmodels.Content
	InitiatorName  string
	InitiatorEmail string
	Parties        []PartyInput
	Approvers      []ApproverInput
	Documents      []RequiredDocument
	Submit         bool
}

// NewSubmission builds a submission with its fixed approval ledger.
// The ledger gets one row per hop of the form's flow and never gains or
// loses rows afterwards; special approvers live in their own list.
func NewSubmission(d Draft, seq int, now time.Time) (dbmodels.Submission, error) {
	flow, err := FlowFor(d.FormID)
	if err != nil {
		return dbmodels.Submission{}, err
	}
	missing := []string{}
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.InitiatorEmail) == "" {
		missing = append(missing, "initiatorEmail")
	}
	if len(d.Parties) == 0 {
		missing = append(missing, "parties")
	}
	for idx, party := range d.Parties {
		if strings.TrimSpace(party.Type) == "" || strings.TrimSpace(party.Name) == "" {
			missing = append(missing, "parties["+strconv.Itoa(idx)+"]")
		}
	}

	approvers := map[models.WorkflowRole]ApproverInput{}
	allowed := map[models.WorkflowRole]bool{}
	for _, role := range flow.approverRoles() {
		allowed[role] = true
	}
	for _, approver := range d.Approvers {
		if !allowed[approver.Role] {
			return dbmodels.Submission{}, ValidationFailed("approver role is not part of this form's flow", "approvers."+string(approver.Role))
		}
		if _, dup := approvers[approver.Role]; dup {
			return dbmodels.Submission{}, ValidationFailed("approver role given twice", "approvers."+string(approver.Role))
		}
		approvers[approver.Role] = approver
	}
	for _, role := range flow.approverRoles() {
		if flow.requiresApprover(role) && strings.TrimSpace(approvers[role].Email) == "" {
			missing = append(missing, "approvers."+string(role))
		}
	}
	if len(missing) > 0 {
		return dbmodels.Submission{}, ValidationFailed("submission is incomplete", missing...)
	}

	rec := dbmodels.Submission{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SubmissionNo:   NewSubmissionNo(now, seq),
		FormID:         d.FormID,
		FormName:       d.FormID.ToHuman(),
		Status:         models.StatusDraft,
		Title:          strings.TrimSpace(d.Title),
		CompanyCode:    d.CompanyCode,
		Value:          d.Value,
		Content:        d.Content.Clone(),
		OfficialUse:    dbmodels.StringMap{},
		InitiatorName:  d.InitiatorName,
		InitiatorEmail: strings.TrimSpace(d.InitiatorEmail),
	}
	for idx, party := range d.Parties {
		rec.Parties = append(rec.Parties, dbmodels.Party{
			ID:           uuid.NewString(),
			SubmissionID: rec.ID,
			Position:     idx,
			Type:         strings.TrimSpace(party.Type),
			Name:         strings.TrimSpace(party.Name),
		})
	}
	rec.Approvals = buildLedger(rec.ID, flow, approvers)
	for idx, doc := range d.Documents {
		rec.Documents = append(rec.Documents, dbmodels.Document{
			ID:           uuid.NewString(),
			SubmissionID: rec.ID,
			Position:     idx,
			Label:        doc.Label,
			Type:         models.DocumentType(doc.Type),
			Status:       models.DocumentNone,
			Mandatory:    doc.Mandatory,
		})
	}

	if d.Submit {
		if err = requireMandatoryDocuments(&rec); err != nil {
			return dbmodels.Submission{}, err
		}
		rec.Status = models.StatusPendingApproval
	}
	return rec, nil
}

func buildLedger(submissionID string, flow Flow, approvers map[models.WorkflowRole]ApproverInput) []dbmodels.Approval {
	type slot struct {
		role models.WorkflowRole
		step models.ApprovalStep
	}
	slots := []slot{}
	for _, role := range flow.FirstLevel {
		slots = append(slots, slot{role, models.StepFirstLevel})
	}
	if flow.CEOReview {
		slots = append(slots, slot{models.RoleCEO, models.StepCEOReview})
	}
	slots = append(slots,
		slot{models.RoleLegalGM, models.StepLegalGMReview},
		slot{models.RoleLegalOfficer, models.StepLegalOfficerReview},
	)
	if flow.CourtOfficerHop {
		slots = append(slots, slot{models.RoleCourtOfficer, models.StepCourtOfficerReview})
	}
	slots = append(slots, slot{models.RoleLegalGM, models.StepLegalGMFinal})

	ledger := make([]dbmodels.Approval, 0, len(slots))
	for idx, s := range slots {
		approver := approvers[s.role]
		ledger = append(ledger, dbmodels.Approval{
			ID:            uuid.NewString(),
			SubmissionID:  submissionID,
			Position:      idx,
			Role:          s.role,
			Step:          s.step,
			ApproverName:  strings.TrimSpace(approver.Name),
			ApproverEmail: strings.TrimSpace(approver.Email),
			Status:        models.ApprovalPending,
		})
	}
	return ledger
}

func requireMandatoryDocuments(rec *dbmodels.Submission) error {
	missing := []string{}
	for _, doc := range rec.Documents {
		if doc.Mandatory && doc.FileURL == "" {
			missing = append(missing, doc.Label)
		}
	}
	if len(missing) > 0 {
		return ValidationFailed("mandatory documents are not uploaded", missing...)
	}
	return nil
}
