package workflow

import (
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/google/uuid"
)

// SetDocumentStatus records the legal officer's verdict on a document.
// Setting the status a document already has is a successful no-op.
func SetDocumentStatus(current dbmodels.Submission, actor Actor, documentID string, status models.DocumentStatus, comment string, now time.Time) (Result, error) {
	return Apply(current, Request{
		Actor:          actor,
		Action:         models.ActionSetDocumentStatus,
		DocumentID:     documentID,
		DocumentStatus: status,
		Comment:        comment,
	}, now)
}

// RequestAdditionalDocument appends an LO_REQUESTED document; the workflow status is untouched.
func RequestAdditionalDocument(current dbmodels.Submission, actor Actor, label string, now time.Time) (Result, error) {
	return Apply(current, Request{
		Actor:         actor,
		Action:        models.ActionRequestDocument,
		DocumentLabel: label,
	}, now)
}

// AttachFile stores the URL returned by file storage on a document.
func AttachFile(current dbmodels.Submission, actor Actor, documentID, fileURL string, now time.Time) (Result, error) {
	return Apply(current, Request{
		Actor:      actor,
		Action:     models.ActionAttachFile,
		DocumentID: documentID,
		FileURL:    fileURL,
	}, now)
}

func (t *txn) document() (*dbmodels.Document, error) {
	if t.req.DocumentID == "" {
		return nil, ValidationFailed("document is required", "documentId")
	}
	doc := t.sub.FindDocument(t.req.DocumentID)
	if doc == nil {
		return nil, NotFound("document %s not found in submission %s", t.req.DocumentID, t.sub.SubmissionNo)
	}
	return doc, nil
}

func guardDocumentStatus(t *txn) error {
	if _, err := t.document(); err != nil {
		return err
	}
	if err := t.req.DocumentStatus.Validate(); err != nil || !t.req.DocumentStatus.IsReviewVerdict() {
		return ValidationFailed("document status must be OK, ATTENTION or RESUBMIT", "documentStatus")
	}
	return nil
}

func setDocumentStatus(t *txn) {
	doc, _ := t.document()
	comment := strings.TrimSpace(t.req.Comment)
	if doc.Status == t.req.DocumentStatus && (comment == "" || comment == doc.Comment) {
		return
	}
	doc.Status = t.req.DocumentStatus
	if comment != "" {
		doc.Comment = comment
	}
	t.describe("Document " + doc.Label + " marked " + string(doc.Status))
}

func guardDocumentLabel(t *txn) error {
	if strings.TrimSpace(t.req.DocumentLabel) == "" {
		return ValidationFailed("document label is required", "documentLabel")
	}
	return nil
}

func requestDocument(t *txn) {
	label := strings.TrimSpace(t.req.DocumentLabel)
	requestedBy := t.req.Actor.Name
	if requestedBy == "" {
		requestedBy = t.req.Actor.Email
	}
	t.sub.Documents = append(t.sub.Documents, dbmodels.Document{
		ID:           uuid.NewString(),
		SubmissionID: t.sub.ID,
		Position:     len(t.sub.Documents),
		Label:        label,
		Type:         models.DocumentLORequested,
		Status:       models.DocumentNone,
		RequestedBy:  requestedBy,
	})
	t.describe("Additional document requested: " + label)
}

func guardAttachFile(t *txn) error {
	doc, err := t.document()
	if err != nil {
		return err
	}
	if strings.TrimSpace(t.req.FileURL) == "" {
		return ValidationFailed("file url is required", "fileUrl")
	}
	preparedByOfficer := doc.Type == models.DocumentLOPreparedInitial || doc.Type == models.DocumentLOPreparedFinal
	if preparedByOfficer != (t.req.Actor.Role == models.RoleLegalOfficer) && doc.Type != models.DocumentLORequested {
		return InvalidActor("%s cannot upload %s", t.req.Actor.Role.ToHuman(), doc.Label)
	}
	return nil
}

// attachFile moves a document that was waiting for a file to UPLOADED.
// Reviewed documents keep their verdict until the reviewer changes it.
func attachFile(t *txn) {
	doc, _ := t.document()
	doc.FileURL = strings.TrimSpace(t.req.FileURL)
	if doc.Status == models.DocumentNone || doc.Status == models.DocumentResubmit || doc.Status == "" {
		doc.Status = models.DocumentUploaded
	}
	t.describe("File uploaded for " + doc.Label)
}
