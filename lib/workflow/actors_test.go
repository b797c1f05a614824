package workflow

import (
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/stretchr/testify/require"
)

func recipientEmails(list []Recipient) []string {
	result := []string{}
	for _, r := range list {
		result = append(result, r.Email)
	}
	return result
}

func TestNextActors(t *testing.T) {
	t.Run("draft has nobody to notify", func(t *testing.T) {
		s := newDraft(t, models.FormContractReview)
		require.Empty(t, NextActors(s.sub))
	})

	t.Run("pending first-level approvers", func(t *testing.T) {
		s := newSubmitted(t, models.FormContractReview)
		require.Equal(t, []string{bum.Email, fbp.Email, cluster.Email}, recipientEmails(NextActors(s.sub)))
		s.do(Request{Actor: fbp, Action: models.ActionApprove})
		require.Equal(t, []string{bum.Email, cluster.Email}, recipientEmails(NextActors(s.sub)))
	})

	t.Run("officer and special approvers", func(t *testing.T) {
		s := newWithOfficer(t, models.FormContractReview)
		s.do(Request{Actor: officer, Action: models.ActionAssignSpecialApprover, Assignee: assigneeOf(special)})
		next := NextActors(s.sub)
		require.Equal(t, []string{officer.Email, special.Email}, recipientEmails(next))
		require.Equal(t, models.RoleSpecialApprover, next[1].Role)
	})

	t.Run("outcome goes to the initiator", func(t *testing.T) {
		s := newSubmitted(t, models.FormContractReview)
		s.do(Request{Actor: bum, Action: models.ActionSendBack, Comment: "no"})
		next := NextActors(s.sub)
		require.Len(t, next, 1)
		require.Equal(t, models.RoleInitiator, next[0].Role)
		require.Equal(t, initiator.Email, next[0].Email)
	})

	t.Run("reassigned officer is told during final approval", func(t *testing.T) {
		s := newAtFinal(t)
		newOfficer := Actor{Role: models.RoleLegalOfficer, Name: "Ravi", Email: "ravi@corp.lk"}
		s.do(Request{Actor: legalGM, Action: models.ActionReassignOfficer, Assignee: assigneeOf(newOfficer)})
		require.Equal(t, []string{legalGM.Email, newOfficer.Email}, recipientEmails(NextActors(s.sub)))
	})
}
