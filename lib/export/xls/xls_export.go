package xlsexport

import (
	"bytes"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportAuditLog(sub dbmodels.Submission, entries []workflow.LogEntry) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const (
	logSheet       = "Audit log"
	dateTimeLayout = "02.01.2006 15:04"
)

var (
	auditLogHeaders = []string{"Date", "Event", "Actor", "Role", "Action", "Details"}
	auditLogWidths  = []float64{18, 14, 25, 18, 24, 60}
)

func (i impl) ExportAuditLog(sub dbmodels.Submission, entries []workflow.LogEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	w := &sheetWriter{f: f, sheet: "Sheet1"}
	if err := writeTitle(w, sub); err != nil {
		return nil, errors.Wrap(err, "error writing xlsx title")
	}
	if err := writeHeader(w); err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if err := writeAuditLogData(w, entries); err != nil {
		return nil, errors.Wrap(err, "error writing xlsx data")
	}
	if err := f.SetSheetName(w.sheet, logSheet); err != nil {
		return nil, errors.Wrap(err, "error naming xlsx sheet")
	}
	return f.WriteToBuffer()
}

// writeTitle puts the submission number and title above the table, followed
// by a blank line.
func writeTitle(w *sheetWriter, sub dbmodels.Submission) error {
	if err := w.writeRow(sub.SubmissionNo, sub.FormName, sub.Title, sub.Status.ToHuman()); err != nil {
		return err
	}
	if err := w.styleRows(w.row, w.row, 4, titleStyle()); err != nil {
		return err
	}
	w.skipRow()
	return nil
}

func writeHeader(w *sheetWriter) error {
	values := make([]interface{}, 0, len(auditLogHeaders))
	for _, header := range auditLogHeaders {
		values = append(values, header)
	}
	if err := w.writeRow(values...); err != nil {
		return err
	}
	if err := w.styleRows(w.row, w.row, len(auditLogHeaders), headerStyle()); err != nil {
		return err
	}
	return w.setWidths(auditLogWidths)
}

func writeAuditLogData(w *sheetWriter, entries []workflow.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	first := w.row + 1
	for _, entry := range entries {
		err := w.writeRow(
			entry.At.Format(dateTimeLayout),
			string(entry.Kind),
			entry.ActorName,
			entry.ActorRole.ToHuman(),
			entry.Action,
			entry.Text,
		)
		if err != nil {
			return err
		}
	}
	return w.styleRows(first, w.row, len(auditLogHeaders), dataStyle())
}
