package xlsexport

import (
	"testing"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportAuditLog(t *testing.T) {
	NewHandler()
	at := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	sub := dbmodels.Submission{
		SubmissionNo: "LHD_20250101120000_001",
		FormName:     "Contract Review",
		Title:        "Supply agreement",
		Status:       models.StatusPendingLegalGM,
	}
	entries := []workflow.LogEntry{
		{At: at, Kind: models.LogCreated, ActorName: "Ina Perera", ActorRole: models.RoleInitiator, Action: "CREATED", Text: sub.SubmissionNo},
		{At: at.Add(time.Hour), Kind: models.LogApproval, ActorName: "Bandara", ActorRole: models.RoleBUM, Action: "APPROVED", Text: "fine"},
	}
	buf, err := Instance.ExportAuditLog(sub, entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(logSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	require.Equal(t, []string{"LHD_20250101120000_001", "Contract Review", "Supply agreement", "Pending Legal GM review"}, rows[0])
	require.Empty(t, rows[1])
	require.Equal(t, auditLogHeaders, rows[2])
	require.Equal(t, []string{"02.01.2025 09:30", "CREATED", "Ina Perera", "Initiator", "CREATED", "LHD_20250101120000_001"}, rows[3])
	require.Equal(t, []string{"02.01.2025 10:30", "APPROVAL", "Bandara", "BUM", "APPROVED", "fine"}, rows[4])
}
