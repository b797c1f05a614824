package submissionhandler

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
	directoryhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory"
	pdfexport "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/export/pdf"
	xlsexport "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/export/xls"
	filestorage "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/file-storage"
	formconfighandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/form-config"
	notifyhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify"
	submissionstore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/submission/store"
	initchecker "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/init-checker"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(initiator workflow.Actor, data legalapimodels.SubmissionCreate) (*legalapimodels.SubmissionView, error)
	GetByID(id string) (*legalapimodels.SubmissionView, error)
	List(filter legalapimodels.SubmissionFilter) (list []legalapimodels.SubmissionListItem, rowCount int64, err error)
	// Act runs one workflow action and commits the new state together with
	// the notifications it causes.
	Act(id string, actor workflow.Actor, data legalapimodels.ActionRequest) (*legalapimodels.ActionResult, error)
	Log(id string) ([]workflow.LogEntry, error)
	ExportLogXls(id string) (body *bytes.Buffer, fileName string, err error)
	ExportLogPdf(id string) (body []byte, fileName string, err error)
	// UploadDocument puts the file into object storage and attaches its URL to the document.
	UploadDocument(ctx context.Context, id, documentID string, actor workflow.Actor, upload FileUpload) (*legalapimodels.ActionResult, error)
}

type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

var Instance Provider

// deps are the stores and handlers one transaction works with.
type deps struct {
	store     submissionstore.Provider
	directory directoryhandler.Provider
	forms     formconfighandler.Provider
	notifier  notifyhandler.Provider
}

func NewHandler() {
	instance := impl{
		store:       submissionstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
		xlsExport:   xlsexport.Instance,
		withTx: func(fn func(d deps) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(deps{
					store:     submissionstore.NewInstance(tx),
					directory: directoryhandler.NewHandlerWithTx(tx),
					forms:     formconfighandler.NewHandlerWithTx(tx),
					notifier:  notifyhandler.NewHandlerWithTx(tx),
				})
			})
		},
		now: time.Now,
	}
	initchecker.CheckInit(
		"fileStorage", instance.fileStorage,
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	store       submissionstore.Provider
	fileStorage filestorage.Provider
	xlsExport   xlsexport.Provider
	withTx      func(fn func(d deps) error) error
	now         func() time.Time
}

func (i impl) getLogger(id string) *log.Entry {
	return log.WithField("submission_id", id)
}

func (i impl) Create(initiator workflow.Actor, data legalapimodels.SubmissionCreate) (*legalapimodels.SubmissionView, error) {
	var rec dbmodels.Submission
	err := i.withTx(func(d deps) error {
		counter, err := d.store.NextSequence()
		if err != nil {
			return workflow.StoreFailure(err, "error reading submission sequence")
		}
		draft := newDraft(initiator, data)
		draft.Documents, err = d.forms.RequiredDocuments(data.FormID, partyTypes(data.Parties))
		if err != nil {
			return err
		}
		rec, err = workflow.NewSubmission(draft, workflow.SequenceFromCounter(counter), i.now())
		if err != nil {
			return err
		}
		rec.Version = 1
		if err = d.store.Create(&rec); err != nil {
			return workflow.StoreFailure(err, "error saving submission")
		}
		if rec.Status == models.StatusDraft {
			return nil
		}
		if err = d.notifier.Enqueue(rec); err != nil {
			return workflow.StoreFailure(err, "error queueing notifications")
		}
		return nil
	})
	if err != nil {
		log.
			WithError(err).
			WithField("form_id", data.FormID).
			WithField("initiator", initiator.Email).
			Warn("submission not created")
		return nil, err
	}
	i.getLogger(rec.ID).
		WithField("submission_no", rec.SubmissionNo).
		WithField("status", rec.Status).
		Info("submission created")
	return i.view(rec), nil
}

func newDraft(initiator workflow.Actor, data legalapimodels.SubmissionCreate) workflow.Draft {
	draft := workflow.Draft{
		FormID:         data.FormID,
		Title:          data.Title,
		CompanyCode:    data.CompanyCode,
		Value:          data.Value,
		Content:        data.Content,
		InitiatorName:  initiator.Name,
		InitiatorEmail: initiator.Email,
		Submit:         data.Submit,
	}
	for _, party := range data.Parties {
		draft.Parties = append(draft.Parties, workflow.PartyInput{Type: party.Type, Name: party.Name})
	}
	for _, approver := range data.Approvers {
		role, _ := models.ParseWorkflowRole(approver.Role)
		draft.Approvers = append(draft.Approvers, workflow.ApproverInput{
			Role:  role,
			Name:  approver.Name,
			Email: approver.Email,
		})
	}
	return draft
}

func partyTypes(parties []legalapimodels.PartyData) []string {
	result := []string{}
	seen := map[string]bool{}
	for _, party := range parties {
		if party.Type == "" || seen[party.Type] {
			continue
		}
		seen[party.Type] = true
		result = append(result, party.Type)
	}
	return result
}

func (i impl) get(id string) (*dbmodels.Submission, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, workflow.StoreFailure(err, "error reading submission")
	}
	if rec == nil {
		return nil, workflow.NotFound("submission %s not found", id)
	}
	return rec, nil
}

func (i impl) GetByID(id string) (*legalapimodels.SubmissionView, error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, err
	}
	return i.view(*rec), nil
}

func (i impl) view(rec dbmodels.Submission) *legalapimodels.SubmissionView {
	result := legalapimodels.SubmissionConvert(rec)
	for _, actor := range workflow.NextActors(rec) {
		result.NextActors = append(result.NextActors, legalapimodels.ActorView{
			Role:  actor.Role,
			Name:  actor.Name,
			Email: actor.Email,
		})
	}
	return &result
}

func (i impl) List(filter legalapimodels.SubmissionFilter) (list []legalapimodels.SubmissionListItem, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, workflow.StoreFailure(err, "error counting submissions")
	}
	recList, err := i.store.List(filter)
	if err != nil {
		return nil, 0, workflow.StoreFailure(err, "error reading submissions")
	}
	list = make([]legalapimodels.SubmissionListItem, 0, len(recList))
	for _, rec := range recList {
		list = append(list, legalapimodels.SubmissionListItemConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Act(id string, actor workflow.Actor, data legalapimodels.ActionRequest) (*legalapimodels.ActionResult, error) {
	actor.Role = data.GetRole()
	logger := i.getLogger(id).
		WithField("action", data.GetAction()).
		WithField("role", actor.Role).
		WithField("actor", actor.Email)
	var res workflow.Result
	err := i.withTx(func(d deps) error {
		current, err := d.store.GetForUpdate(id)
		if err != nil {
			return workflow.StoreFailure(err, "error reading submission")
		}
		if current == nil {
			return workflow.NotFound("submission %s not found", id)
		}
		req, err := buildRequest(d, *current, actor, data)
		if err != nil {
			return err
		}
		res, err = workflow.Apply(*current, req, i.now())
		if err != nil {
			return err
		}
		return commit(d, *current, res)
	})
	if err != nil {
		logger.WithError(err).Warn("action rejected")
		return nil, err
	}
	logger.
		WithField("status", res.Submission.Status).
		WithField("lo_stage", res.Submission.LoStage).
		Info("action applied")
	result := &legalapimodels.ActionResult{
		Submission: *i.view(res.Submission),
	}
	if res.Resubmission != nil {
		result.Resubmission = i.view(*res.Resubmission)
	}
	return result, nil
}

// buildRequest turns the API payload into an engine request. Directory
// lookups happen here so the engine only sees resolved people.
func buildRequest(d deps, current dbmodels.Submission, actor workflow.Actor, data legalapimodels.ActionRequest) (workflow.Request, error) {
	req := workflow.Request{
		Actor:          actor,
		Action:         data.GetAction(),
		Comment:        data.Comment,
		DocumentID:     data.DocumentID,
		DocumentStatus: data.DocumentStatus,
		DocumentLabel:  data.DocumentLabel,
		FileURL:        data.FileURL,
		OfficialUse:    data.OfficialUse,
		Content:        data.Content,
		Title:          data.Title,
	}
	if needsDirectoryRole(current, actor.Role) {
		holds, err := d.directory.HoldsRole(actor.Email, actor.Role)
		if err != nil {
			return req, err
		}
		if !holds {
			return req, workflow.InvalidActor("%s is not a %s", actor.Email, actor.Role.ToHuman())
		}
	}
	if role := expectedAssigneeRole(current, req); role != "" {
		assigneeID, assigneeEmail := data.AssigneeKey()
		assignee, err := d.directory.ResolveAssignee(assigneeID, assigneeEmail, role)
		if err != nil {
			return req, err
		}
		req.Assignee = assignee
	}
	if req.Action == models.ActionComplete {
		fields, err := d.forms.OfficialUseFields(current.FormID)
		if err != nil {
			return req, err
		}
		req.RequiredOfficialFields = fields
	}
	return req, nil
}

// needsDirectoryRole reports whether the actor's role can only be proven by
// the directory: the submission names nobody for it. Special approvers are
// matched against their own rows by the engine.
func needsDirectoryRole(sub dbmodels.Submission, role models.WorkflowRole) bool {
	switch role {
	case models.RoleInitiator, models.RoleSpecialApprover:
		return false
	}
	return workflow.PinnedEmail(sub, role) == ""
}

// expectedAssigneeRole is the directory role the person an action hands the
// submission to must hold, or "" when the action has no assignee.
func expectedAssigneeRole(sub dbmodels.Submission, req workflow.Request) models.WorkflowRole {
	switch req.Action {
	case models.ActionApprove:
		if req.Actor.Role == models.RoleLegalGM && sub.Status == models.StatusPendingLegalGM {
			return models.RoleLegalOfficer
		}
	case models.ActionReassignOfficer:
		return models.RoleLegalOfficer
	case models.ActionAssignCourtOfficer:
		return models.RoleCourtOfficer
	case models.ActionAssignSpecialApprover:
		return models.RoleSpecialApprover
	}
	return ""
}

func commit(d deps, before dbmodels.Submission, res workflow.Result) error {
	next := res.Submission
	next.Version = before.Version + 1
	if err := d.store.Save(next, before.Version); err != nil {
		return workflow.StoreFailure(err, "error saving submission")
	}
	if res.Resubmission != nil {
		spawn := *res.Resubmission
		spawn.Version = 1
		if err := d.store.Create(&spawn); err != nil {
			return workflow.StoreFailure(err, "error saving resubmission")
		}
		if err := d.notifier.Enqueue(spawn); err != nil {
			return workflow.StoreFailure(err, "error queueing notifications")
		}
	}
	if !res.Moved(before) {
		return nil
	}
	if err := d.notifier.Enqueue(next); err != nil {
		return workflow.StoreFailure(err, "error queueing notifications")
	}
	return nil
}

func (i impl) Log(id string) ([]workflow.LogEntry, error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, err
	}
	return workflow.ProjectLog(*rec), nil
}

func (i impl) ExportLogXls(id string) (body *bytes.Buffer, fileName string, err error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, "", err
	}
	body, err = i.xlsExport.ExportAuditLog(*rec, workflow.ProjectLog(*rec))
	if err != nil {
		return nil, "", errors.Wrap(err, "error building xlsx")
	}
	return body, rec.SubmissionNo + "_log.xlsx", nil
}

func (i impl) ExportLogPdf(id string) (body []byte, fileName string, err error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, "", err
	}
	body, err = pdfexport.ExportAuditLog(*rec, workflow.ProjectLog(*rec))
	if err != nil {
		return nil, "", errors.Wrap(err, "error building pdf")
	}
	return body, rec.SubmissionNo + "_log.pdf", nil
}

func (i impl) UploadDocument(ctx context.Context, id, documentID string, actor workflow.Actor, upload FileUpload) (*legalapimodels.ActionResult, error) {
	rec, err := i.get(id)
	if err != nil {
		return nil, err
	}
	if rec.FindDocument(documentID) == nil {
		return nil, workflow.NotFound("document %s not found in submission %s", documentID, rec.SubmissionNo)
	}
	// Reject before storing anything; the attach is applied again under the row lock.
	if _, err = workflow.AttachFile(*rec, actor, documentID, upload.FileName, i.now()); err != nil {
		i.getLogger(id).
			WithError(err).
			WithField("document_id", documentID).
			Warn("upload rejected")
		return nil, err
	}
	fileURL, err := i.fileStorage.UploadFile(ctx, id, upload.FileName, upload.Body, upload.Size, upload.ContentType)
	if err != nil {
		return nil, workflow.StoreFailure(err, "error uploading file")
	}
	i.getLogger(id).
		WithField("document_id", documentID).
		WithField("file_url", fileURL).
		Info("file uploaded")
	return i.Act(id, actor, legalapimodels.ActionRequest{
		Role:       string(actor.Role),
		Action:     string(models.ActionAttachFile),
		DocumentID: documentID,
		FileURL:    fileURL,
	})
}
