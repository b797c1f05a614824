package workflow

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/google/uuid"
)

func (t *txn) resolve(status models.ApprovalStatus) {
	now := t.now
	t.rec.Status = status
	t.rec.Comment = strings.TrimSpace(t.req.Comment)
	t.rec.ActionDate = &now
}

func (t *txn) toLegalGM() {
	t.sub.Status = models.StatusPendingLegalGM
	t.sub.LoStage = models.StagePendingGM
}

func guardMandatoryDocuments(t *txn) error {
	return requireMandatoryDocuments(t.sub)
}

func guardNoPendingSpecialApprovers(t *txn) error {
	if t.sub.HasPendingSpecialApprovers() {
		return InvalidState("submission %s is waiting for special approvers", t.sub.SubmissionNo)
	}
	return nil
}

func guardAssignee(what string) func(t *txn) error {
	return func(t *txn) error {
		if t.req.Assignee == nil || strings.TrimSpace(t.req.Assignee.Email) == "" {
			return ValidationFailed(what+" is required", "assignee")
		}
		return nil
	}
}

func guardNewOfficer(t *txn) error {
	if strings.EqualFold(strings.TrimSpace(t.req.Assignee.Email), t.sub.AssignedOfficerEmail) {
		return ValidationFailed("submission is already assigned to this legal officer", "assignee")
	}
	return nil
}

func guardSpecialApprover(t *txn) error {
	if err := guardAssignee("special approver")(t); err != nil {
		return err
	}
	for _, row := range t.sub.SpecialApprovers {
		if row.Status == models.ApprovalPending && strings.EqualFold(row.ApproverEmail, strings.TrimSpace(t.req.Assignee.Email)) {
			return ValidationFailed("special approver is already waiting on this submission", "assignee")
		}
	}
	return nil
}

func guardOfficialUsePayload(t *txn) error {
	if len(t.req.OfficialUse) == 0 {
		return ValidationFailed("official use fields are required", "officialUse")
	}
	return nil
}

func guardOfficialUseComplete(t *txn) error {
	merged := mergeOfficialUse(t.sub.OfficialUse, t.req.OfficialUse)
	missing := []string{}
	for _, field := range t.req.RequiredOfficialFields {
		if strings.TrimSpace(merged[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return ValidationFailed("official use fields are missing", missing...)
	}
	return nil
}

func guardResubmission(t *txn) error {
	spawn := newResubmission(t.sub, t.req, t.now)
	if err := requireMandatoryDocuments(&spawn); err != nil {
		return err
	}
	t.spawn = &spawn
	return nil
}

func mergeOfficialUse(current dbmodels.StringMap, update map[string]string) dbmodels.StringMap {
	merged := current.Clone()
	if merged == nil {
		merged = dbmodels.StringMap{}
	}
	for key, value := range update {
		merged[key] = strings.TrimSpace(value)
	}
	return merged
}

func submitDraft(t *txn) {
	t.sub.Status = models.StatusPendingApproval
	t.describe("Submitted for approval")
}

func approveFirstLevel(t *txn) {
	t.resolve(models.ApprovalApproved)
	for _, rec := range t.sub.Approvals {
		if rec.Step == models.StepFirstLevel && rec.Status != models.ApprovalApproved {
			return
		}
	}
	if t.flow.CEOReview {
		t.sub.Status = models.StatusPendingCEO
		return
	}
	t.toLegalGM()
}

func approveCEO(t *txn) {
	t.resolve(models.ApprovalApproved)
	t.toLegalGM()
}

// sendBack resolves the record and sends the whole submission back to the
// initiator. Other pending records of the same hop stay pending.
func sendBack(t *txn) {
	t.resolve(models.ApprovalSentBack)
	t.sub.Status = models.StatusSentBack
}

func cancel(t *txn) {
	t.resolve(models.ApprovalCancelled)
	t.sub.Status = models.StatusCancelled
}

func approveLegalGMReview(t *txn) {
	t.resolve(models.ApprovalApproved)
	t.assignOfficer(*t.req.Assignee)
	t.sub.Status = models.StatusPendingLegalOfficer
	if t.flow.CourtOfficerHop {
		t.sub.LoStage = models.StageAssignCourtOfficer
		return
	}
	t.sub.LoStage = models.StageActive
}

func (t *txn) assignOfficer(officer Assignee) {
	t.sub.AssignedOfficerID = officer.ID
	t.sub.AssignedOfficerName = officer.Name
	t.sub.AssignedOfficerEmail = strings.TrimSpace(officer.Email)
	if rec := t.sub.FindApproval(models.RoleLegalOfficer, models.StepLegalOfficerReview); rec != nil && !rec.Status.IsResolved() {
		rec.ApproverName = officer.Name
		rec.ApproverEmail = t.sub.AssignedOfficerEmail
	}
}

func assignSpecialApprover(t *txn) {
	assignee := t.req.Assignee
	assignedBy := t.req.Actor.Name
	if assignedBy == "" {
		assignedBy = t.req.Actor.Email
	}
	t.sub.SpecialApprovers = append(t.sub.SpecialApprovers, dbmodels.SpecialApprover{
		ID:            uuid.NewString(),
		SubmissionID:  t.sub.ID,
		Position:      len(t.sub.SpecialApprovers),
		ApproverName:  assignee.Name,
		ApproverEmail: strings.TrimSpace(assignee.Email),
		Department:    assignee.Department,
		AssignedBy:    assignedBy,
		AssignedAt:    t.now,
		Status:        models.ApprovalPending,
	})
	t.describe("Special approval requested from " + displayName(assignee.Name, assignee.Email))
}

func submitToLegalGM(t *txn) {
	t.resolve(models.ApprovalApproved)
	t.sub.Status = models.StatusPendingLegalGMFinal
	t.sub.LoStage = models.StagePendingGM
}

func assignCourtOfficer(t *txn) {
	officer := t.req.Assignee
	t.sub.CourtOfficerID = officer.ID
	t.sub.CourtOfficerName = officer.Name
	t.sub.CourtOfficerEmail = strings.TrimSpace(officer.Email)
	if rec := t.sub.FindApproval(models.RoleCourtOfficer, models.StepCourtOfficerReview); rec != nil {
		rec.ApproverName = officer.Name
		rec.ApproverEmail = t.sub.CourtOfficerEmail
	}
	t.sub.Status = models.StatusPendingCourtOfficer
	t.sub.LoStage = models.StagePendingCourtOfficer
	t.describe("Court officer assigned: " + displayName(officer.Name, officer.Email))
}

func courtOfficerSubmit(t *txn) {
	t.resolve(models.ApprovalApproved)
	t.sub.Status = models.StatusPendingLegalOfficer
	t.sub.LoStage = models.StageReviewForGM
}

func approveLegalGMFinal(t *txn) {
	t.resolve(models.ApprovalApproved)
	t.sub.Status = models.StatusPendingLegalOfficer
	if t.sub.LoStage == models.StageReassigned {
		t.sub.ResumeStage = models.StagePostGMApproval
		return
	}
	t.sub.LoStage = models.StagePostGMApproval
}

// reassignOfficer hands the submission to another legal officer. Resolved
// records stay as they are; the new officer must acknowledge the handover
// before the previous stage is restored.
func reassignOfficer(t *txn) {
	officer := *t.req.Assignee
	if t.sub.LoStage != models.StageReassigned {
		t.sub.ResumeStage = t.sub.LoStage
	}
	t.sub.LoStage = models.StageReassigned
	t.assignOfficer(officer)
	t.describe("Legal officer reassigned to " + displayName(officer.Name, officer.Email))
}

func acknowledgeHandover(t *txn) {
	t.sub.LoStage = t.sub.ResumeStage
	t.sub.ResumeStage = models.StageNone
	t.describe("Handover acknowledged")
}

func updateOfficialUse(t *txn) {
	t.sub.OfficialUse = mergeOfficialUse(t.sub.OfficialUse, t.req.OfficialUse)
	t.describe("Official use details updated")
}

func complete(t *txn) {
	t.sub.OfficialUse = mergeOfficialUse(t.sub.OfficialUse, t.req.OfficialUse)
	t.sub.Status = models.StatusCompleted
	t.describe("Completed")
}

func resubmit(t *txn) {
	t.sub.Status = models.StatusResubmitted
	t.describe("Resubmitted as " + t.spawn.SubmissionNo)
}

func approveSpecial(t *txn) {
	t.resolveSpecial(models.ApprovalApproved)
}

func sendBackSpecial(t *txn) {
	t.resolveSpecial(models.ApprovalSentBack)
}

// cancelSpecial declines the special approval; the submission stays where it is.
func cancelSpecial(t *txn) {
	t.resolveSpecial(models.ApprovalCancelled)
}

// resolveSpecial records the special approver's verdict without moving the submission.
func (t *txn) resolveSpecial(status models.ApprovalStatus) {
	now := t.now
	t.special.Status = status
	t.special.Comment = strings.TrimSpace(t.req.Comment)
	t.special.ActionDate = &now
}

func addComment(t *txn) {
	t.note = strings.TrimSpace(t.req.Comment)
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
