package formconfighandler

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
)

// DefaultConfigs seed the form configuration on first start.
var DefaultConfigs = map[models.FormID]legalapimodels.FormConfigData{
	models.FormContractReview: {
		FormName:          models.FormContractReview.ToHuman(),
		OfficialUseFields: []string{"referenceNo", "executionDate"},
		Documents: []legalapimodels.FormDocumentData{
			{Label: "Draft agreement", PartyType: string(models.DocumentCommon), Mandatory: true},
			{Label: "Certificate of incorporation", PartyType: "Company", Mandatory: true},
			{Label: "Form 20", PartyType: "Company", Mandatory: false},
			{Label: "NIC copy", PartyType: "Individual", Mandatory: true},
			{Label: "Business registration", PartyType: "Partnership", Mandatory: true},
		},
	},
	models.FormLeaseAgreement: {
		FormName:          models.FormLeaseAgreement.ToHuman(),
		OfficialUseFields: []string{"referenceNo", "leaseCommencementDate"},
		Documents: []legalapimodels.FormDocumentData{
			{Label: "Title deed", PartyType: string(models.DocumentCommon), Mandatory: true},
			{Label: "Survey plan", PartyType: string(models.DocumentCommon), Mandatory: false},
			{Label: "Certificate of incorporation", PartyType: "Company", Mandatory: true},
			{Label: "NIC copy", PartyType: "Individual", Mandatory: true},
		},
	},
	models.FormLitigationInstruction: {
		FormName:          models.FormLitigationInstruction.ToHuman(),
		OfficialUseFields: []string{"caseNo", "courtName"},
		Documents: []legalapimodels.FormDocumentData{
			{Label: "Plaint or summons", PartyType: string(models.DocumentCommon), Mandatory: true},
			{Label: "Supporting evidence", PartyType: string(models.DocumentCommon), Mandatory: false},
		},
	},
}
