package formconfighandler

import (
	"slices"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
	formconfigstore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/form-config/store"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Get(formID models.FormID) (*legalapimodels.FormConfigView, error)
	Update(formID models.FormID, data legalapimodels.FormConfigData) (*legalapimodels.FormConfigView, error)
	// RequiredDocuments lists the Common documents of the form and those of the given party types.
	RequiredDocuments(formID models.FormID, partyTypes []string) ([]workflow.RequiredDocument, error)
	OfficialUseFields(formID models.FormID) ([]string, error)
	// SeedDefaults stores DefaultConfigs for forms that have no configuration yet.
	SeedDefaults() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: formconfigstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: formconfigstore.NewInstance(tx),
	}
}

type impl struct {
	store formconfigstore.Provider
}

func (i impl) getLogger(formID models.FormID) *log.Entry {
	return log.WithField("form_id", formID)
}

func (i impl) Get(formID models.FormID) (*legalapimodels.FormConfigView, error) {
	rec, err := i.load(formID)
	if err != nil {
		return nil, err
	}
	result := legalapimodels.FormConfigConvert(rec)
	return &result, nil
}

func (i impl) Update(formID models.FormID, data legalapimodels.FormConfigData) (*legalapimodels.FormConfigView, error) {
	if err := formID.Validate(); err != nil {
		return nil, workflow.ValidationFailed(err.Error(), "formId")
	}
	rec := data.ToModel(formID)
	if err := i.store.Save(rec); err != nil {
		return nil, workflow.StoreFailure(err, "error saving form configuration")
	}
	i.getLogger(formID).
		WithField("documents", len(rec.Documents)).
		Info("form configuration updated")
	result := legalapimodels.FormConfigConvert(rec)
	return &result, nil
}

func (i impl) RequiredDocuments(formID models.FormID, partyTypes []string) ([]workflow.RequiredDocument, error) {
	rec, err := i.load(formID)
	if err != nil {
		return nil, err
	}
	return requiredDocuments(rec, partyTypes), nil
}

func (i impl) OfficialUseFields(formID models.FormID) ([]string, error) {
	rec, err := i.load(formID)
	if err != nil {
		return nil, err
	}
	return slices.Clone([]string(rec.OfficialUseFields)), nil
}

func (i impl) SeedDefaults() error {
	for _, formID := range []models.FormID{models.FormContractReview, models.FormLeaseAgreement, models.FormLitigationInstruction} {
		exists, err := i.store.Exists(formID)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err = i.store.Save(DefaultConfigs[formID].ToModel(formID)); err != nil {
			return err
		}
		i.getLogger(formID).Info("default form configuration stored")
	}
	return nil
}

// load falls back to the built-in defaults when nothing is stored.
func (i impl) load(formID models.FormID) (dbmodels.FormConfig, error) {
	if err := formID.Validate(); err != nil {
		return dbmodels.FormConfig{}, workflow.ValidationFailed(err.Error(), "formId")
	}
	rec, err := i.store.GetByFormID(formID)
	if err != nil {
		return dbmodels.FormConfig{}, workflow.StoreFailure(err, "error reading form configuration")
	}
	if rec == nil {
		return DefaultConfigs[formID].ToModel(formID), nil
	}
	return *rec, nil
}

func requiredDocuments(rec dbmodels.FormConfig, partyTypes []string) []workflow.RequiredDocument {
	result := []workflow.RequiredDocument{}
	for _, doc := range rec.Documents {
		if doc.PartyType != string(models.DocumentCommon) && !slices.Contains(partyTypes, doc.PartyType) {
			continue
		}
		result = append(result, workflow.RequiredDocument{
			Label:     doc.Label,
			Type:      doc.PartyType,
			Mandatory: doc.Mandatory,
		})
	}
	return result
}
