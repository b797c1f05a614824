package workflow

import (
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/stretchr/testify/require"
)

func ledgerSteps(sub dbmodels.Submission) []string {
	result := []string{}
	for _, rec := range sub.Approvals {
		result = append(result, string(rec.Role)+"/"+string(rec.Step))
	}
	return result
}

func TestNewSubmission(t *testing.T) {
	t.Run("ledger per form", func(t *testing.T) {
		s := newDraft(t, models.FormContractReview)
		require.Equal(t, []string{
			"BUM/FIRST_LEVEL",
			"FBP/FIRST_LEVEL",
			"CLUSTER_HEAD/FIRST_LEVEL",
			"LEGAL_GM/LEGAL_GM_REVIEW",
			"LEGAL_OFFICER/LEGAL_OFFICER_REVIEW",
			"LEGAL_GM/LEGAL_GM_FINAL",
		}, ledgerSteps(s.sub))

		s = newDraft(t, models.FormLeaseAgreement)
		require.Equal(t, "CEO/CEO_REVIEW", ledgerSteps(s.sub)[3])

		s = newDraft(t, models.FormLitigationInstruction)
		require.Contains(t, ledgerSteps(s.sub), "COURT_OFFICER/COURT_OFFICER_REVIEW")
		require.Len(t, s.sub.Approvals, 7)
	})

	t.Run("draft defaults", func(t *testing.T) {
		s := newDraft(t, models.FormContractReview)
		require.Equal(t, models.StatusDraft, s.sub.Status)
		require.Equal(t, "LHD_20250101120000_001", s.sub.SubmissionNo)
		require.Equal(t, "Contract Review", s.sub.FormName)
		require.NotEmpty(t, s.sub.ID)
		for idx, rec := range s.sub.Approvals {
			require.Equal(t, idx, rec.Position)
			require.Equal(t, s.sub.ID, rec.SubmissionID)
			require.Equal(t, models.ApprovalPending, rec.Status)
		}
		require.Empty(t, s.sub.AssignedOfficerEmail)
		require.Equal(t, models.DocumentNone, s.sub.Documents[0].Status)
	})

	t.Run("incomplete input names the missing fields", func(t *testing.T) {
		_, err := NewSubmission(Draft{
			FormID:    models.FormContractReview,
			Approvers: []ApproverInput{{Role: models.RoleBUM, Email: bum.Email}},
		}, 1, startTime)
		require.Equal(t, KindValidation, KindOf(err))
		require.Equal(t, []string{
			"title",
			"initiatorEmail",
			"parties",
			"approvers.FBP",
			"approvers.CLUSTER_HEAD",
		}, FieldsOf(err))
	})

	t.Run("approvers outside the flow are rejected", func(t *testing.T) {
		_, err := NewSubmission(Draft{
			FormID:         models.FormContractReview,
			Title:          "NDA",
			InitiatorEmail: initiator.Email,
			Parties:        []PartyInput{{Type: "Individual", Name: "John"}},
			Approvers: []ApproverInput{
				{Role: models.RoleBUM, Email: bum.Email},
				{Role: models.RoleFBP, Email: fbp.Email},
				{Role: models.RoleClusterHead, Email: cluster.Email},
				{Role: models.RoleCEO, Email: ceo.Email},
			},
		}, 1, startTime)
		require.Equal(t, KindValidation, KindOf(err))
		require.Equal(t, []string{"approvers.CEO"}, FieldsOf(err))
	})

	t.Run("unknown form", func(t *testing.T) {
		_, err := NewSubmission(Draft{FormID: 9}, 1, startTime)
		require.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("submitting on create needs the mandatory files", func(t *testing.T) {
		draft := Draft{
			FormID:         models.FormContractReview,
			Title:          "NDA",
			InitiatorEmail: initiator.Email,
			Parties:        []PartyInput{{Type: "Individual", Name: "John"}},
			Approvers: []ApproverInput{
				{Role: models.RoleBUM, Email: bum.Email},
				{Role: models.RoleFBP, Email: fbp.Email},
				{Role: models.RoleClusterHead, Email: cluster.Email},
			},
			Documents: []RequiredDocument{{Label: "NIC copy", Type: "Individual", Mandatory: true}},
			Submit:    true,
		}
		_, err := NewSubmission(draft, 1, startTime)
		require.Equal(t, KindValidation, KindOf(err))

		draft.Documents[0].Mandatory = false
		sub, err := NewSubmission(draft, 1, startTime)
		require.NoError(t, err)
		require.Equal(t, models.StatusPendingApproval, sub.Status)
	})
}
