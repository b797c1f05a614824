package formconfighandler

import (
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	configs map[models.FormID]dbmodels.FormConfig
}

func (m *memoryStore) GetByFormID(formID models.FormID) (*dbmodels.FormConfig, error) {
	rec, ok := m.configs[formID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memoryStore) Save(rec dbmodels.FormConfig) error {
	m.configs[rec.FormID] = rec
	return nil
}

func (m *memoryStore) Exists(formID models.FormID) (bool, error) {
	_, ok := m.configs[formID]
	return ok, nil
}

func TestRequiredDocuments(t *testing.T) {
	h := impl{store: &memoryStore{configs: map[models.FormID]dbmodels.FormConfig{}}}

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		docs, err := h.RequiredDocuments(models.FormContractReview, []string{"Company"})
		require.NoError(t, err)
		require.Equal(t, []workflow.RequiredDocument{
			{Label: "Draft agreement", Type: "Common", Mandatory: true},
			{Label: "Certificate of incorporation", Type: "Company", Mandatory: true},
			{Label: "Form 20", Type: "Company", Mandatory: false},
		}, docs)
	})

	t.Run("only common documents without parties", func(t *testing.T) {
		docs, err := h.RequiredDocuments(models.FormLitigationInstruction, nil)
		require.NoError(t, err)
		require.Len(t, docs, 2)
	})

	t.Run("stored configuration wins", func(t *testing.T) {
		_, err := h.Update(models.FormLeaseAgreement, legalapimodels.FormConfigData{
			OfficialUseFields: []string{" leaseNo "},
			Documents: []legalapimodels.FormDocumentData{
				{Label: "Deed", PartyType: "Common", Mandatory: true},
				{Label: "Passport", PartyType: "Individual", Mandatory: true},
			},
		})
		require.NoError(t, err)
		docs, err := h.RequiredDocuments(models.FormLeaseAgreement, []string{"Individual", "Company"})
		require.NoError(t, err)
		require.Equal(t, []workflow.RequiredDocument{
			{Label: "Deed", Type: "Common", Mandatory: true},
			{Label: "Passport", Type: "Individual", Mandatory: true},
		}, docs)
		fields, err := h.OfficialUseFields(models.FormLeaseAgreement)
		require.NoError(t, err)
		require.Equal(t, []string{"leaseNo"}, fields)
		view, err := h.Get(models.FormLeaseAgreement)
		require.NoError(t, err)
		require.Equal(t, "Lease Agreement", view.FormName)
	})

	t.Run("unknown form", func(t *testing.T) {
		_, err := h.RequiredDocuments(models.FormID(9), nil)
		require.Equal(t, workflow.KindValidation, workflow.KindOf(err))
	})
}

func TestSeedDefaults(t *testing.T) {
	store := &memoryStore{configs: map[models.FormID]dbmodels.FormConfig{
		models.FormContractReview: {FormID: models.FormContractReview, FormName: "Custom"},
	}}
	h := impl{store: store}
	require.NoError(t, h.SeedDefaults())
	require.Len(t, store.configs, 3)
	require.Equal(t, "Custom", store.configs[models.FormContractReview].FormName)
	require.Equal(t, []string{"caseNo", "courtName"}, []string(store.configs[models.FormLitigationInstruction].OfficialUseFields))
}
