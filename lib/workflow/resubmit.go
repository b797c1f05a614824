package workflow

import (
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/google/uuid"
)

// Resubmit creates the follow-up of a sent back submission and closes the original.
func Resubmit(original dbmodels.Submission, actor Actor, content dbmodels.Content, title, comment string, now time.Time) (Result, error) {
	return Apply(original, Request{
		Actor:   actor,
		Action:  models.ActionResubmit,
		Content: content,
		Title:   title,
		Comment: comment,
	}, now)
}

// newResubmission copies the original with a fresh ledger. The same approvers
// are asked again; legal and court officers are assigned anew by the chain.
func newResubmission(original *dbmodels.Submission, req Request, now time.Time) dbmodels.Submission {
	parentID := original.ID
	rec := dbmodels.Submission{
		BaseModel: dbmodels.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SubmissionNo:      ResubmissionNo(original.SubmissionNo),
		FormID:            original.FormID,
		FormName:          original.FormName,
		Status:            models.StatusPendingApproval,
		Title:             original.Title,
		CompanyCode:       original.CompanyCode,
		Value:             original.Value,
		Content:           original.Content.Clone(),
		OfficialUse:       dbmodels.StringMap{},
		InitiatorName:     original.InitiatorName,
		InitiatorEmail:    original.InitiatorEmail,
		ParentID:          &parentID,
		IsResubmission:    true,
		ResubmissionCount: original.ResubmissionCount + 1,
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		rec.Title = title
	}
	if len(req.Content) > 0 {
		rec.Content = req.Content.Clone()
	}

	for _, party := range original.Parties {
		party.ID = uuid.NewString()
		party.SubmissionID = rec.ID
		rec.Parties = append(rec.Parties, party)
	}
	for _, approval := range original.Approvals {
		approval.ID = uuid.NewString()
		approval.SubmissionID = rec.ID
		approval.Status = models.ApprovalPending
		approval.Comment = ""
		approval.ActionDate = nil
		if approval.Role == models.RoleLegalOfficer || approval.Role == models.RoleCourtOfficer {
			approval.ApproverName = ""
			approval.ApproverEmail = ""
		}
		rec.Approvals = append(rec.Approvals, approval)
	}
	for _, doc := range original.Documents {
		if !doc.Type.IsInitiatorProvided() {
			continue
		}
		doc.ID = uuid.NewString()
		doc.SubmissionID = rec.ID
		doc.Position = len(rec.Documents)
		doc.Comment = ""
		doc.Status = models.DocumentNone
		if doc.FileURL != "" {
			doc.Status = models.DocumentUploaded
		}
		rec.Documents = append(rec.Documents, doc)
	}
	return rec
}
