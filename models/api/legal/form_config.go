package legalapimodels

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
)

type FormDocumentData struct {
	Label     string `json:"label"`
	PartyType string `json:"partyType"` // party type or Common
	Mandatory bool   `json:"mandatory"`
}

type FormConfigData struct {
	FormName          string             `json:"formName"`
	OfficialUseFields []string           `json:"officialUseFields"`
	Documents         []FormDocumentData `json:"documents"`
}

func (r FormConfigData) Validate() error {
	labels := map[string]bool{}
	for _, doc := range r.Documents {
		label := strings.TrimSpace(doc.Label)
		if label == "" {
			return errors.New("document label is required")
		}
		if strings.TrimSpace(doc.PartyType) == "" {
			return errors.Errorf("party type is required for document %q", label)
		}
		key := doc.PartyType + "/" + label
		if labels[key] {
			return errors.Errorf("document %q is listed twice for %v", label, doc.PartyType)
		}
		labels[key] = true
	}
	for _, field := range r.OfficialUseFields {
		if strings.TrimSpace(field) == "" {
			return errors.New("official use field name is empty")
		}
	}
	return nil
}

func (r FormConfigData) ToModel(formID models.FormID) dbmodels.FormConfig {
	name := strings.TrimSpace(r.FormName)
	if name == "" {
		name = formID.ToHuman()
	}
	rec := dbmodels.FormConfig{
		FormID:            formID,
		FormName:          name,
		OfficialUseFields: make([]string, 0, len(r.OfficialUseFields)),
		Documents:         make([]dbmodels.FormDocument, 0, len(r.Documents)),
	}
	for _, field := range r.OfficialUseFields {
		rec.OfficialUseFields = append(rec.OfficialUseFields, strings.TrimSpace(field))
	}
	for idx, doc := range r.Documents {
		rec.Documents = append(rec.Documents, dbmodels.FormDocument{
			FormID:    formID,
			Position:  idx,
			Label:     strings.TrimSpace(doc.Label),
			PartyType: strings.TrimSpace(doc.PartyType),
			Mandatory: doc.Mandatory,
		})
	}
	return rec
}

type FormConfigView struct {
	FormID            models.FormID      `json:"formId"`
	FormName          string             `json:"formName"`
	OfficialUseFields []string           `json:"officialUseFields"`
	Documents         []FormDocumentData `json:"documents"`
}

func FormConfigConvert(rec dbmodels.FormConfig) FormConfigView {
	result := FormConfigView{
		FormID:            rec.FormID,
		FormName:          rec.FormName,
		OfficialUseFields: append([]string{}, rec.OfficialUseFields...),
		Documents:         make([]FormDocumentData, 0, len(rec.Documents)),
	}
	for _, doc := range rec.Documents {
		result.Documents = append(result.Documents, FormDocumentData{
			Label:     doc.Label,
			PartyType: doc.PartyType,
			Mandatory: doc.Mandatory,
		})
	}
	return result
}
