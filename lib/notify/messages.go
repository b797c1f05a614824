package notifyhandler

import (
	"fmt"
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"
)

func composeMessage(sub dbmodels.Submission, recipient workflow.Recipient, publicURL string) (subject, body string) {
	link := strings.TrimSuffix(publicURL, "/") + "/submissions/" + sub.ID
	greeting := "Hello"
	if recipient.Name != "" {
		greeting = "Hello " + recipient.Name
	}
	var text string
	switch {
	case recipient.Role == models.RoleInitiator && sub.Status == models.StatusSentBack:
		subject = fmt.Sprintf("%s was sent back", sub.SubmissionNo)
		text = "Your request was sent back for changes. Please review the comments and resubmit."
	case recipient.Role == models.RoleInitiator && sub.Status == models.StatusCancelled:
		subject = fmt.Sprintf("%s was cancelled", sub.SubmissionNo)
		text = "Your request was cancelled. The reason is recorded in the request log."
	case recipient.Role == models.RoleInitiator && sub.Status == models.StatusCompleted:
		subject = fmt.Sprintf("%s is completed", sub.SubmissionNo)
		text = "Your request has been completed by the legal team."
	case recipient.Role == models.RoleSpecialApprover:
		subject = fmt.Sprintf("Special approval requested for %s", sub.SubmissionNo)
		text = "Your approval has been requested on a legal request."
	case recipient.Role == models.RoleLegalOfficer && sub.LoStage == models.StageReassigned:
		subject = fmt.Sprintf("%s was handed over to you", sub.SubmissionNo)
		text = "A legal request was reassigned to you. Please acknowledge the handover."
	default:
		subject = fmt.Sprintf("Action required on %s", sub.SubmissionNo)
		text = fmt.Sprintf("A legal request is waiting for you as %s. Current status: %s.",
			recipient.Role.ToHuman(), sub.Status.ToHuman())
	}
	body = fmt.Sprintf("%s,\r\n\r\n%s\r\n\r\n%s: %s\r\nTitle: %s\r\nInitiator: %s\r\n\r\n%s\r\n",
		greeting, text, sub.FormName, sub.SubmissionNo, sub.Title, sub.InitiatorName, link)
	return subject, body
}
