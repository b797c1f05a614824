package workflow

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"
)

// Recipient is someone the chain is waiting on. An empty Email means anyone
// holding Role; the caller expands it through the directory.
type Recipient struct {
	Role  models.WorkflowRole
	Name  string
	Email string
}

// NextActors lists who has to act on the submission in its current state.
// Closed and sent back submissions report the initiator so they learn the outcome.
func NextActors(sub dbmodels.Submission) []Recipient {
	result := []Recipient{}
	add := func(role models.WorkflowRole, name, email string) {
		for _, r := range result {
			if r.Role == role && r.Email == email {
				return
			}
		}
		result = append(result, Recipient{Role: role, Name: name, Email: email})
	}
	addPending := func(step models.ApprovalStep) {
		for _, rec := range sub.Approvals {
			if rec.Step == step && rec.Status == models.ApprovalPending {
				add(rec.Role, rec.ApproverName, rec.ApproverEmail)
			}
		}
	}

	switch sub.Status {
	case models.StatusDraft, models.StatusResubmitted:
		return result
	case models.StatusSentBack, models.StatusCancelled, models.StatusCompleted:
		add(models.RoleInitiator, sub.InitiatorName, sub.InitiatorEmail)
		return result
	case models.StatusPendingApproval:
		addPending(models.StepFirstLevel)
	case models.StatusPendingCEO:
		addPending(models.StepCEOReview)
	case models.StatusPendingLegalGM:
		addPending(models.StepLegalGMReview)
	case models.StatusPendingLegalOfficer:
		add(models.RoleLegalOfficer, sub.AssignedOfficerName, sub.AssignedOfficerEmail)
	case models.StatusPendingCourtOfficer:
		add(models.RoleCourtOfficer, sub.CourtOfficerName, sub.CourtOfficerEmail)
	case models.StatusPendingLegalGMFinal:
		addPending(models.StepLegalGMFinal)
		if sub.LoStage == models.StageReassigned {
			add(models.RoleLegalOfficer, sub.AssignedOfficerName, sub.AssignedOfficerEmail)
		}
	}
	for _, rec := range sub.SpecialApprovers {
		if rec.Status == models.ApprovalPending {
			add(models.RoleSpecialApprover, rec.ApproverName, rec.ApproverEmail)
		}
	}
	return result
}
