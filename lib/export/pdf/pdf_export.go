package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

var columnWidths = []float64{30, 28, 35, 27, 25, 132}

var auditLogHeaders = []string{"Date", "Event", "Actor", "Role", "Action", "Details"}

const dateTimeLayout = "02.01.2006 15:04"

// ExportAuditLog renders the audit log as a landscape A4 table using the
// core Helvetica font, so no font files are needed at runtime.
func ExportAuditLog(sub dbmodels.Submission, entries []workflow.LogEntry) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("ExportAuditLog panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(sub.SubmissionNo, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("%s - %s", sub.SubmissionNo, sub.FormName)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(sub.Title), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Status: "+sub.Status.ToHuman()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for idx, header := range auditLogHeaders {
			pdf.CellFormat(columnWidths[idx], 7, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	_, pageHeight := pdf.GetPageSize()
	leftMargin, _, _, bottomMargin := pdf.GetMargins()
	for _, entry := range entries {
		values := []string{
			entry.At.Format(dateTimeLayout),
			string(entry.Kind),
			tr(entry.ActorName),
			entry.ActorRole.ToHuman(),
			entry.Action,
			tr(entry.Text),
		}
		// the details column wraps, the others are cut to one line
		lines := pdf.SplitLines([]byte(values[5]), columnWidths[5]-2)
		height := 6 * float64(max(len(lines), 1))
		if pdf.GetY()+height > pageHeight-bottomMargin-10 {
			pdf.AddPage()
			writeHeader()
		}
		x, y := pdf.GetXY()
		for idx := 0; idx < 5; idx++ {
			pdf.Rect(x, y, columnWidths[idx], height, "D")
			pdf.SetXY(x+1, y)
			pdf.CellFormat(columnWidths[idx]-2, 6, values[idx], "", 0, "L", false, 0, "")
			x += columnWidths[idx]
		}
		pdf.Rect(x, y, columnWidths[5], height, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(columnWidths[5]-2, 6, values[5], "", "L", false)
		pdf.SetXY(leftMargin, y+height)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
