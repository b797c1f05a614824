package legalapimodels

import (
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/stretchr/testify/require"
)

func TestSubmissionCreateValidate(t *testing.T) {
	valid := SubmissionCreate{
		FormID: models.FormContractReview,
		Title:  "Supply agreement",
		Approvers: []ApproverData{
			{Role: "BUM", Email: "bum@corp.lk"},
			{Role: "Cluster Head", Email: "cluster@corp.lk"},
		},
	}
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})
	t.Run("unknown form", func(t *testing.T) {
		req := valid
		req.FormID = 9
		require.Error(t, req.Validate())
	})
	t.Run("unknown approver role", func(t *testing.T) {
		req := valid
		req.Approvers = []ApproverData{{Role: "Janitor", Email: "x@corp.lk"}}
		require.Error(t, req.Validate())
	})
	t.Run("approver without email", func(t *testing.T) {
		req := valid
		req.Approvers = []ApproverData{{Role: "FBP", Name: "Fernando", Email: "  "}}
		err := req.Validate()
		require.Error(t, err)
		require.Contains(t, err.Error(), "FBP")
	})
}

func TestSubmissionFilterValidate(t *testing.T) {
	require.NoError(t, SubmissionFilter{}.Validate())
	require.NoError(t, SubmissionFilter{FormID: models.FormLeaseAgreement}.Validate())
	require.Error(t, SubmissionFilter{FormID: 42}.Validate())
	require.Error(t, SubmissionFilter{Status: "ARCHIVED"}.Validate())
	require.Error(t, SubmissionFilter{Pagination: apimodels.Pagination{Limit: -1}}.Validate())
}

func TestActionRequest(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		require.NoError(t, ActionRequest{Role: "legal gm", Action: "approve"}.Validate())
		require.NoError(t, ActionRequest{Role: "BUM", Action: "APPROVED"}.Validate())
		require.Error(t, ActionRequest{Role: "BUM", Action: "ESCALATE"}.Validate())
		require.Error(t, ActionRequest{Role: "OWNER", Action: "APPROVE"}.Validate())
	})
	t.Run("parsed role and action", func(t *testing.T) {
		req := ActionRequest{Role: "legal-officer", Action: "sent_back"}
		require.Equal(t, models.RoleLegalOfficer, req.GetRole())
		require.Equal(t, models.ActionSendBack, req.GetAction())
	})
	t.Run("assignee id wins over email", func(t *testing.T) {
		id, email := ActionRequest{LegalOfficerID: " u-1 ", AssigneeEmail: "leo@corp.lk"}.AssigneeKey()
		require.Equal(t, "u-1", id)
		require.Empty(t, email)
	})
	t.Run("assignee email", func(t *testing.T) {
		id, email := ActionRequest{SpecialApproverEmail: "finance@corp.lk"}.AssigneeKey()
		require.Empty(t, id)
		require.Equal(t, "finance@corp.lk", email)
	})
	t.Run("no assignee", func(t *testing.T) {
		id, email := ActionRequest{}.AssigneeKey()
		require.Empty(t, id)
		require.Empty(t, email)
	})
}

func TestDocumentUploadValidate(t *testing.T) {
	require.Error(t, DocumentUpload{}.Validate())
	require.Error(t, DocumentUpload{Role: "guest"}.Validate())
	upload := DocumentUpload{Role: "initiator"}
	require.NoError(t, upload.Validate())
	require.Equal(t, models.RoleInitiator, upload.GetRole())
}

func TestDirectoryUserData(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		require.NoError(t, DirectoryUserData{Name: "Leo Dias", Email: "leo@corp.lk", Role: "Legal Officer"}.Validate())
		require.Error(t, DirectoryUserData{Email: "leo@corp.lk", Role: "Legal Officer"}.Validate())
		require.Error(t, DirectoryUserData{Name: "Leo Dias", Email: "not-an-email", Role: "Legal Officer"}.Validate())
		require.Error(t, DirectoryUserData{Name: "Leo Dias", Email: "leo@corp.lk", Role: "Paralegal"}.Validate())
	})
	t.Run("to model", func(t *testing.T) {
		rec := DirectoryUserData{
			Name:       " Leo Dias ",
			Email:      " Leo@Corp.LK ",
			Role:       "legal officer",
			Department: "Legal",
		}.ToModel()
		require.Equal(t, "Leo Dias", rec.Name)
		require.Equal(t, "leo@corp.lk", rec.Email)
		require.Equal(t, models.RoleLegalOfficer, rec.Role)
		require.True(t, rec.IsActive)
	})
	t.Run("inactive user", func(t *testing.T) {
		inactive := false
		rec := DirectoryUserData{Name: "Old", Email: "old@corp.lk", Role: "BUM", IsActive: &inactive}.ToModel()
		require.False(t, rec.IsActive)
	})
}

func TestFormConfigData(t *testing.T) {
	t.Run("validate", func(t *testing.T) {
		ok := FormConfigData{
			OfficialUseFields: []string{"referenceNo"},
			Documents: []FormDocumentData{
				{Label: "Form 20", PartyType: "Company"},
				{Label: "Form 20", PartyType: "Partnership"},
			},
		}
		require.NoError(t, ok.Validate())

		duplicate := ok
		duplicate.Documents = append(duplicate.Documents, FormDocumentData{Label: "Form 20", PartyType: "Company"})
		require.Error(t, duplicate.Validate())

		require.Error(t, FormConfigData{Documents: []FormDocumentData{{Label: " ", PartyType: "Common"}}}.Validate())
		require.Error(t, FormConfigData{Documents: []FormDocumentData{{Label: "NIC copy"}}}.Validate())
		require.Error(t, FormConfigData{OfficialUseFields: []string{""}}.Validate())
	})
	t.Run("to model", func(t *testing.T) {
		rec := FormConfigData{
			OfficialUseFields: []string{" referenceNo "},
			Documents: []FormDocumentData{
				{Label: " Board resolution ", PartyType: "Common", Mandatory: true},
				{Label: "NIC copy", PartyType: "Individual"},
			},
		}.ToModel(models.FormLeaseAgreement)
		require.Equal(t, "Lease Agreement", rec.FormName)
		require.Equal(t, []string{"referenceNo"}, rec.OfficialUseFields)
		require.Len(t, rec.Documents, 2)
		require.Equal(t, "Board resolution", rec.Documents[0].Label)
		require.Equal(t, 1, rec.Documents[1].Position)
		require.Equal(t, models.FormLeaseAgreement, rec.Documents[1].FormID)

		view := FormConfigConvert(rec)
		require.Equal(t, models.FormLeaseAgreement, view.FormID)
		require.Equal(t, FormDocumentData{Label: "NIC copy", PartyType: "Individual"}, view.Documents[1])
	})
}

func TestSubmissionConvert(t *testing.T) {
	rec := dbmodels.Submission{
		SubmissionNo: "LHD_20250101120000_001",
		FormID:       models.FormContractReview,
		Status:       models.StatusPendingApproval,
		Parties:      []dbmodels.Party{{Type: "Company", Name: "Acme Pvt Ltd"}},
		Approvals: []dbmodels.Approval{
			{Role: models.RoleBUM, ApproverEmail: "bum@corp.lk", Status: models.ApprovalPending},
		},
	}
	view := SubmissionConvert(rec)
	require.Equal(t, rec.SubmissionNo, view.SubmissionNo)
	require.NotNil(t, view.OfficialUse)
	require.Empty(t, view.OfficialUse)
	require.NotNil(t, view.NextActors)
	require.Len(t, view.Parties, 1)
	require.Equal(t, "bum@corp.lk", view.Approvals[0].ApproverEmail)

	item := SubmissionListItemConvert(rec)
	require.Equal(t, models.StatusPendingApproval.ToHuman(), item.StatusName)
}
