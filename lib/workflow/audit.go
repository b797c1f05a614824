package workflow

import (
	"slices"
	"sort"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"
)

type LogEntry struct {
	At        time.Time           `json:"at"`
	Kind      models.LogKind      `json:"kind"`
	ActorName string              `json:"actorName"`
	ActorRole models.WorkflowRole `json:"actorRole"`
	Action    string              `json:"action"`
	Text      string              `json:"text"`
}

// ProjectLog derives the audit log of a submission from its ledgers and comments.
// The creation entry is always first; everything else is in time order, ties
// keep ledger order, then special approvers, then comments.
func ProjectLog(sub dbmodels.Submission) []LogEntry {
	entries := []LogEntry{}

	approvals := slices.Clone(sub.Approvals)
	sort.SliceStable(approvals, func(i, j int) bool {
		return approvals[i].Position < approvals[j].Position
	})
	for _, rec := range approvals {
		if rec.ActionDate == nil {
			continue
		}
		entries = append(entries, LogEntry{
			At:        *rec.ActionDate,
			Kind:      models.LogApproval,
			ActorName: displayName(rec.ApproverName, rec.ApproverEmail),
			ActorRole: rec.Role,
			Action:    string(rec.Status),
			Text:      rec.Comment,
		})
	}

	specials := slices.Clone(sub.SpecialApprovers)
	sort.SliceStable(specials, func(i, j int) bool {
		return specials[i].Position < specials[j].Position
	})
	for _, rec := range specials {
		if rec.ActionDate == nil {
			continue
		}
		entries = append(entries, LogEntry{
			At:        *rec.ActionDate,
			Kind:      models.LogSpecialApproval,
			ActorName: displayName(rec.ApproverName, rec.ApproverEmail),
			ActorRole: models.RoleSpecialApprover,
			Action:    string(rec.Status),
			Text:      rec.Comment,
		})
	}

	comments := slices.Clone(sub.Comments)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Position < comments[j].Position
	})
	for _, rec := range comments {
		entries = append(entries, LogEntry{
			At:        rec.CreatedAt,
			Kind:      models.LogComment,
			ActorName: rec.AuthorName,
			ActorRole: rec.AuthorRole,
			Action:    "COMMENT",
			Text:      rec.Text,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].At.Before(entries[j].At)
	})
	created := LogEntry{
		At:        sub.CreatedAt,
		Kind:      models.LogCreated,
		ActorName: displayName(sub.InitiatorName, sub.InitiatorEmail),
		ActorRole: models.RoleInitiator,
		Action:    "CREATED",
		Text:      sub.SubmissionNo,
	}
	return append([]LogEntry{created}, entries...)
}
