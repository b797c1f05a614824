package workflow

import (
	"slices"
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/google/uuid"
)

// txn is the working state of one action.
type txn struct {
	sub     *dbmodels.Submission
	req     Request
	now     time.Time
	flow    Flow
	rec     *dbmodels.Approval
	special *dbmodels.SpecialApprover
	spawn   *dbmodels.Submission
	note    string
}

// Apply validates req against the current state of a submission and returns
// the state after the action. The input value is never modified; on error
// nothing has changed.
func Apply(current dbmodels.Submission, req Request, now time.Time) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}
	if !current.Status.IsInFlight() && !current.Status.IsClosed() && current.Status != models.StatusSentBack {
		return Result{}, InvalidState("submission %s has unknown status %q", current.SubmissionNo, current.Status)
	}
	flow, err := FlowFor(current.FormID)
	if err != nil {
		return Result{}, err
	}
	r, ok := lookupRule(current.Status, current.LoStage, req.Actor.Role, req.Action)
	if !ok {
		return Result{}, reject(&current, req)
	}

	sub := cloneSubmission(current)
	t := &txn{
		sub:  &sub,
		req:  req,
		now:  now,
		flow: flow,
	}
	if err = t.bind(r); err != nil {
		return Result{}, err
	}
	if err = t.checkIdentity(r); err != nil {
		return Result{}, err
	}
	if r.guard != nil {
		if err = r.guard(t); err != nil {
			return Result{}, err
		}
	}
	r.effect(t)
	if t.note != "" {
		t.addComment(t.note)
	}
	sub.UpdatedAt = now
	return Result{Submission: sub, Resubmission: t.spawn}, nil
}

// ApplyApproval resolves the actor's approval record with APPROVE, SEND_BACK or CANCEL.
func ApplyApproval(current dbmodels.Submission, actor Actor, action models.WorkflowAction, comment string, now time.Time) (Result, error) {
	return Apply(current, Request{Actor: actor, Action: action, Comment: comment}, now)
}

// bind finds the ledger record the rule resolves.
func (t *txn) bind(r rule) error {
	role := t.req.Actor.Role
	if r.special {
		resolved := false
		for idx := range t.sub.SpecialApprovers {
			row := &t.sub.SpecialApprovers[idx]
			if !t.req.Actor.Is(row.ApproverEmail) {
				continue
			}
			if row.Status == models.ApprovalPending {
				t.special = row
				return nil
			}
			resolved = true
		}
		if resolved {
			return AlreadyActioned("special approval by %s is already recorded", t.req.Actor.Email)
		}
		return InvalidActor("%s is not a special approver of submission %s", t.req.Actor.Email, t.sub.SubmissionNo)
	}
	if r.step == "" {
		return nil
	}
	rec := t.sub.FindApproval(role, r.step)
	if rec == nil {
		return NotFound("submission %s has no %s approval record", t.sub.SubmissionNo, role.ToHuman())
	}
	if rec.Status.IsResolved() {
		return AlreadyActioned("%s approval of submission %s is already %s", role.ToHuman(), t.sub.SubmissionNo, rec.Status)
	}
	t.rec = rec
	return nil
}

func (t *txn) checkIdentity(r rule) error {
	if r.special {
		return nil
	}
	if r.anyone {
		return t.checkParticipant()
	}
	role := t.req.Actor.Role
	expected := expectedEmail(t.sub, role, t.rec)
	if expected == "" && (role == models.RoleLegalOfficer || role == models.RoleCourtOfficer) {
		return InvalidActor("no %s is assigned to submission %s", role.ToHuman(), t.sub.SubmissionNo)
	}
	if expected == "" || t.req.Actor.Is(expected) {
		return nil
	}
	return InvalidActor("%s is not the %s of submission %s", t.req.Actor.Email, role.ToHuman(), t.sub.SubmissionNo)
}

// checkParticipant admits a commenter only under a role they hold on the
// submission. Roles nobody is pinned to are left to the directory check.
func (t *txn) checkParticipant() error {
	actor := t.req.Actor
	if actor.Role == models.RoleSpecialApprover {
		for _, row := range t.sub.SpecialApprovers {
			if actor.Is(row.ApproverEmail) {
				return nil
			}
		}
		return InvalidActor("%s is not a special approver of submission %s", actor.Email, t.sub.SubmissionNo)
	}
	expected := expectedEmail(t.sub, actor.Role, nil)
	if expected == "" || actor.Is(expected) {
		return nil
	}
	return InvalidActor("%s is not the %s of submission %s", actor.Email, actor.Role.ToHuman(), t.sub.SubmissionNo)
}

// PinnedEmail returns the person a submission names for role, or "" when
// anyone holding the role may act.
func PinnedEmail(sub dbmodels.Submission, role models.WorkflowRole) string {
	return expectedEmail(&sub, role, nil)
}

// expectedEmail returns who may act under role, or "" when anyone holding the role may.
func expectedEmail(sub *dbmodels.Submission, role models.WorkflowRole, rec *dbmodels.Approval) string {
	switch role {
	case models.RoleInitiator:
		return sub.InitiatorEmail
	case models.RoleLegalOfficer:
		return sub.AssignedOfficerEmail
	case models.RoleCourtOfficer:
		return sub.CourtOfficerEmail
	}
	if rec != nil {
		return rec.ApproverEmail
	}
	for _, row := range sub.Approvals {
		if row.Role == role && row.ApproverEmail != "" {
			return row.ApproverEmail
		}
	}
	return ""
}

// reject explains why no transition accepts the request.
func reject(sub *dbmodels.Submission, req Request) error {
	role := req.Actor.Role
	if req.Action.IsLedgerVerb() && (stepResolved(sub, req) || roleFullyResolved(sub, req.Actor)) {
		return AlreadyActioned("%s has already acted on submission %s", role.ToHuman(), sub.SubmissionNo)
	}
	if sub.Status.IsClosed() || sub.Status == models.StatusSentBack {
		return InvalidState("submission %s is %s", sub.SubmissionNo, sub.Status.ToHuman())
	}
	expected := expectedRoles(sub.Status, sub.LoStage)
	if sub.HasPendingSpecialApprovers() {
		expected = append(expected, models.RoleSpecialApprover)
	}
	waiting := false
	for _, r := range expected {
		if r == role {
			waiting = true
			break
		}
	}
	if !waiting {
		return InvalidActor("%s cannot act while submission %s is %s", role.ToHuman(), sub.SubmissionNo, sub.Status.ToHuman())
	}
	return InvalidState("%s is not allowed while submission %s is %s", req.Action, sub.SubmissionNo, describeState(sub))
}

// stepResolved reports whether the actor's record at a step the action
// resolves is already closed. Legal GM keeps two rows, so a replay of the
// first review must not fall through to the state checks.
func stepResolved(sub *dbmodels.Submission, req Request) bool {
	role := req.Actor.Role
	for _, r := range transitions {
		if r.step == "" || r.action != req.Action || !slices.Contains(r.roles, role) {
			continue
		}
		rec := sub.FindApproval(role, r.step)
		if rec == nil || !rec.Status.IsResolved() {
			continue
		}
		if rec.ApproverEmail == "" || req.Actor.Is(rec.ApproverEmail) {
			return true
		}
	}
	return false
}

func roleFullyResolved(sub *dbmodels.Submission, actor Actor) bool {
	count := 0
	if actor.Role == models.RoleSpecialApprover {
		for _, row := range sub.SpecialApprovers {
			if !actor.Is(row.ApproverEmail) {
				continue
			}
			if !row.Status.IsResolved() {
				return false
			}
			count++
		}
		return count > 0
	}
	for _, row := range sub.Approvals {
		if row.Role != actor.Role {
			continue
		}
		if !row.Status.IsResolved() {
			return false
		}
		count++
	}
	return count > 0
}

func describeState(sub *dbmodels.Submission) string {
	if sub.LoStage == models.StageNone {
		return sub.Status.ToHuman()
	}
	return sub.Status.ToHuman() + " (" + string(sub.LoStage) + ")"
}

func (t *txn) addComment(text string) {
	author := t.req.Actor.Name
	if author == "" {
		author = t.req.Actor.Email
	}
	t.sub.Comments = append(t.sub.Comments, dbmodels.Comment{
		ID:           uuid.NewString(),
		SubmissionID: t.sub.ID,
		Position:     len(t.sub.Comments),
		AuthorName:   author,
		AuthorRole:   t.req.Actor.Role,
		Text:         text,
		CreatedAt:    t.now,
	})
}

// describe builds the automatic comment of an action, followed by the actor's own words.
func (t *txn) describe(summary string) {
	comment := strings.TrimSpace(t.req.Comment)
	if comment == "" {
		t.note = summary
		return
	}
	t.note = summary + ": " + comment
}
