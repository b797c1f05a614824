package notifyhandler

import (
	"context"
	"testing"
	"time"

	notifystore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify/store"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type outbox struct {
	rows []dbmodels.Notification
}

func (o *outbox) Create(list []dbmodels.Notification) error {
	for _, rec := range list {
		rec.ID = rec.RecipientEmail
		o.rows = append(o.rows, rec)
	}
	return nil
}

func (o *outbox) ListPending(limit int) ([]dbmodels.Notification, error) {
	result := []dbmodels.Notification{}
	for _, rec := range o.rows {
		if rec.State == models.NotificationPending && len(result) < limit {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (o *outbox) find(id string) *dbmodels.Notification {
	for idx := range o.rows {
		if o.rows[idx].ID == id {
			return &o.rows[idx]
		}
	}
	return nil
}

func (o *outbox) MarkSent(id string, at time.Time) error {
	rec := o.find(id)
	rec.State = models.NotificationSent
	rec.SentAt = &at
	return nil
}

func (o *outbox) MarkFailed(id string, attempts int, lastError string, state models.NotificationState) error {
	rec := o.find(id)
	rec.State = state
	rec.Attempts = attempts
	rec.LastError = lastError
	return nil
}

func (o *outbox) ListBySubmission(submissionID string) ([]dbmodels.Notification, error) {
	return o.rows, nil
}

type directory struct {
	users []dbmodels.DirectoryUser
}

func (d directory) Upsert(rec *dbmodels.DirectoryUser) error { return nil }

func (d directory) GetByID(id string) (*dbmodels.DirectoryUser, error) { return nil, nil }

func (d directory) GetByEmail(email string) (*dbmodels.DirectoryUser, error) { return nil, nil }

func (d directory) ListByRole(role models.WorkflowRole, activeOnly bool) ([]dbmodels.DirectoryUser, error) {
	result := []dbmodels.DirectoryUser{}
	for _, rec := range d.users {
		if rec.Role == role && rec.IsActive {
			result = append(result, rec)
		}
	}
	return result, nil
}

type mailer struct {
	sent    []string
	failFor map[string]bool
}

func (m *mailer) SendEMail(to, subject, message string) error {
	if m.failFor[to] {
		return errors.New("relay refused")
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *mailer) IsConfigured() bool { return true }

func newTestHandler(store *outbox, mail *mailer) impl {
	return impl{
		settings: Settings{Enabled: true, BatchSize: 10, MaxAttempts: 2, PublicURL: "https://legal.corp.lk/"},
		store:    store,
		directoryStore: directory{users: []dbmodels.DirectoryUser{
			{Name: "Gunawardena", Email: "gm@corp.lk", Role: models.RoleLegalGM, IsActive: true},
			{Name: "Deputy", Email: "deputy@corp.lk", Role: models.RoleLegalGM, IsActive: true},
			{Name: "Retired", Email: "old@corp.lk", Role: models.RoleLegalGM, IsActive: false},
		}},
		mailer: mail,
		withTx: func(fn func(store notifystore.Provider) error) error {
			return fn(store)
		},
		now: func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func pendingFirstLevel() dbmodels.Submission {
	sub := dbmodels.Submission{
		SubmissionNo:  "LHD_20250101120000_001",
		FormName:      "Contract Review",
		Title:         "Supply agreement",
		Status:        models.StatusPendingApproval,
		InitiatorName: "Ina Perera",
		Approvals: []dbmodels.Approval{
			{Role: models.RoleBUM, Step: models.StepFirstLevel, ApproverName: "Bandara", ApproverEmail: "bum@corp.lk", Status: models.ApprovalPending},
			{Role: models.RoleFBP, Step: models.StepFirstLevel, ApproverName: "Fernando", ApproverEmail: "fbp@corp.lk", Status: models.ApprovalApproved},
			{Role: models.RoleClusterHead, Step: models.StepFirstLevel, ApproverName: "Silva", ApproverEmail: "BUM@corp.lk", Status: models.ApprovalPending},
		},
	}
	sub.ID = "s1"
	return sub
}

func TestEnqueue(t *testing.T) {
	t.Run("pending approvers get one message per address", func(t *testing.T) {
		store := &outbox{}
		h := newTestHandler(store, &mailer{})
		require.NoError(t, h.Enqueue(pendingFirstLevel()))
		require.Len(t, store.rows, 1)
		rec := store.rows[0]
		require.Equal(t, "bum@corp.lk", rec.RecipientEmail)
		require.Equal(t, models.RoleBUM, rec.RecipientRole)
		require.Equal(t, "Action required on LHD_20250101120000_001", rec.Subject)
		require.Contains(t, rec.Body, "Hello Bandara")
		require.Contains(t, rec.Body, "https://legal.corp.lk/submissions/s1")
		require.Equal(t, models.NotificationPending, rec.State)
	})

	t.Run("role without address goes to active directory users", func(t *testing.T) {
		store := &outbox{}
		h := newTestHandler(store, &mailer{})
		sub := pendingFirstLevel()
		sub.Status = models.StatusPendingLegalGM
		sub.LoStage = models.StagePendingGM
		sub.Approvals = []dbmodels.Approval{
			{Role: models.RoleLegalGM, Step: models.StepLegalGMReview, Status: models.ApprovalPending},
		}
		require.NoError(t, h.Enqueue(sub))
		emails := []string{}
		for _, rec := range store.rows {
			emails = append(emails, rec.RecipientEmail)
		}
		require.Equal(t, []string{"gm@corp.lk", "deputy@corp.lk"}, emails)
	})

	t.Run("sent back notifies the initiator", func(t *testing.T) {
		store := &outbox{}
		h := newTestHandler(store, &mailer{})
		sub := pendingFirstLevel()
		sub.Status = models.StatusSentBack
		sub.InitiatorEmail = "ina@corp.lk"
		require.NoError(t, h.Enqueue(sub))
		require.Len(t, store.rows, 1)
		require.Equal(t, "LHD_20250101120000_001 was sent back", store.rows[0].Subject)
	})

	t.Run("disabled", func(t *testing.T) {
		store := &outbox{}
		h := newTestHandler(store, &mailer{})
		h.settings.Enabled = false
		require.NoError(t, h.Enqueue(pendingFirstLevel()))
		require.Empty(t, store.rows)
	})
}

func TestDispatch(t *testing.T) {
	store := &outbox{}
	mail := &mailer{failFor: map[string]bool{"bad@corp.lk": true}}
	h := newTestHandler(store, mail)
	require.NoError(t, store.Create([]dbmodels.Notification{
		{RecipientEmail: "gm@corp.lk", Subject: "s", Body: "b", State: models.NotificationPending},
		{RecipientEmail: "bad@corp.lk", Subject: "s", Body: "b", State: models.NotificationPending},
	}))

	sent, err := h.Dispatch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, sent)
	require.Equal(t, []string{"gm@corp.lk"}, mail.sent)
	require.Equal(t, models.NotificationSent, store.find("gm@corp.lk").State)
	failed := store.find("bad@corp.lk")
	require.Equal(t, models.NotificationPending, failed.State)
	require.Equal(t, 1, failed.Attempts)
	require.Equal(t, "relay refused", failed.LastError)

	// the second failure reaches MaxAttempts
	sent, err = h.Dispatch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, sent)
	require.Equal(t, models.NotificationFailed, failed.State)
	require.Equal(t, 2, failed.Attempts)

	sent, err = h.Dispatch(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, sent)
	require.Len(t, mail.sent, 1)
}
