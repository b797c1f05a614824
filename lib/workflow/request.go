package workflow

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"
)

// Actor is the person behind an action and the role they claim.
type Actor struct {
	Role  models.WorkflowRole
	Name  string
	Email string
}

func (a Actor) Is(email string) bool {
	return email != "" && strings.EqualFold(strings.TrimSpace(a.Email), strings.TrimSpace(email))
}

// Assignee is a directory user resolved by the caller before the action runs:
// the legal officer on Legal GM approval or reassignment, the court officer,
// or a special approver.
type Assignee struct {
	ID         string
	Name       string
	Email      string
	Department string
}

type Request struct {
	Actor   Actor
	Action  models.WorkflowAction
	Comment string

	Assignee *Assignee

	DocumentID     string
	DocumentStatus models.DocumentStatus
	DocumentLabel  string
	FileURL        string

	OfficialUse            map[string]string
	RequiredOfficialFields []string

	// Content replaces the form payload of a resubmission when set.
	Content dbmodels.Content
	Title   string
}

func (r Request) validate() error {
	if r.Actor.Role == "" {
		return ValidationFailed("actor role is required", "role")
	}
	if r.Action == "" {
		return ValidationFailed("action is required", "action")
	}
	if r.Action.RequiresComment() && strings.TrimSpace(r.Comment) == "" {
		return ValidationFailed("comment is required for "+string(r.Action), "comment")
	}
	return nil
}

// Result is the state produced by one accepted action.
type Result struct {
	Submission dbmodels.Submission
	// Resubmission is the new submission spawned by RESUBMIT.
	Resubmission *dbmodels.Submission
}

// Moved reports whether the action changed who has to act next.
func (r Result) Moved(before dbmodels.Submission) bool {
	after := r.Submission
	return before.Status != after.Status ||
		before.LoStage != after.LoStage ||
		before.AssignedOfficerEmail != after.AssignedOfficerEmail ||
		len(before.SpecialApprovers) != len(after.SpecialApprovers)
}
