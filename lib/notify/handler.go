package notifyhandler

import (
	"context"
	"strings"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
	directorystore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory/store"
	notifystore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify/store"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/smtp"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/helpers"
	initchecker "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/init-checker"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/lock"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Enqueue writes outbox rows for everyone the submission now waits on.
	Enqueue(sub dbmodels.Submission) error
	// Dispatch sends one batch of pending outbox rows.
	Dispatch(ctx context.Context) (sent int, err error)
}

var Instance Provider

type Settings struct {
	Enabled     bool
	BatchSize   int
	MaxAttempts int
	PublicURL   string
}

func settingsFromConfig() Settings {
	return Settings{
		Enabled:     config.Conf.Notify.Enabled == nil || *config.Conf.Notify.Enabled,
		BatchSize:   config.Conf.Notify.BatchSize,
		MaxAttempts: config.Conf.Notify.MaxAttempts,
		PublicURL:   config.Conf.App.PublicURL,
	}
}

func NewHandler() {
	instance := impl{
		settings:       settingsFromConfig(),
		store:          notifystore.NewInstance(db.DB),
		directoryStore: directorystore.NewInstance(db.DB),
		mailer:         smtp.Instance,
		withTx: func(fn func(store notifystore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(notifystore.NewInstance(tx))
			})
		},
		now: time.Now,
	}
	initchecker.CheckInit(
		"mailer", instance.mailer,
	)
	Instance = instance
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		settings:       settingsFromConfig(),
		store:          notifystore.NewInstance(tx),
		directoryStore: directorystore.NewInstance(tx),
		mailer:         smtp.Instance,
		withTx: func(fn func(store notifystore.Provider) error) error {
			return fn(notifystore.NewInstance(tx))
		},
		now: time.Now,
	}
}

type impl struct {
	settings       Settings
	store          notifystore.Provider
	directoryStore directorystore.Provider
	mailer         smtp.Provider
	withTx         func(fn func(store notifystore.Provider) error) error
	now            func() time.Time
}

func (i impl) Enqueue(sub dbmodels.Submission) error {
	if !i.settings.Enabled {
		return nil
	}
	recipients, err := i.expand(workflow.NextActors(sub))
	if err != nil {
		return err
	}
	list := make([]dbmodels.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		subject, body := composeMessage(sub, recipient, i.settings.PublicURL)
		list = append(list, dbmodels.Notification{
			SubmissionID:   sub.ID,
			RecipientRole:  recipient.Role,
			RecipientName:  recipient.Name,
			RecipientEmail: recipient.Email,
			Subject:        subject,
			Body:           body,
			State:          models.NotificationPending,
		})
	}
	if err = i.store.Create(list); err != nil {
		return errors.Wrap(err, "error saving notifications")
	}
	log.
		WithField("submission_id", sub.ID).
		WithField("recipients", len(list)).
		Debug("notifications queued")
	return nil
}

// expand replaces role-only recipients with the active directory users
// holding the role and drops duplicate addresses.
func (i impl) expand(recipients []workflow.Recipient) ([]workflow.Recipient, error) {
	result := []workflow.Recipient{}
	seen := map[string]bool{}
	add := func(r workflow.Recipient) {
		key := strings.ToLower(strings.TrimSpace(r.Email))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		result = append(result, r)
	}
	for _, recipient := range recipients {
		if recipient.Email != "" {
			add(recipient)
			continue
		}
		users, err := i.directoryStore.ListByRole(recipient.Role, true)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %v users", recipient.Role)
		}
		for _, user := range users {
			add(workflow.Recipient{Role: recipient.Role, Name: user.Name, Email: user.Email})
		}
	}
	return result, nil
}

// Dispatch leaves the outbox untouched while no mail server is configured.
func (i impl) Dispatch(ctx context.Context) (sent int, err error) {
	if !i.mailer.IsConfigured() {
		return 0, nil
	}
	_, err = lock.WithDelay(ctx, "notify-dispatch", 10*time.Second, func() error {
		return i.withTx(func(store notifystore.Provider) error {
			sent, err = i.dispatchBatch(ctx, store)
			return err
		})
	})
	return sent, err
}

func (i impl) dispatchBatch(ctx context.Context, store notifystore.Provider) (sent int, err error) {
	batchSize := i.settings.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	list, err := store.ListPending(batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "error reading notification outbox")
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		logger := log.
			WithField("notification_id", rec.ID).
			WithField("submission_id", rec.SubmissionID)
		sendErr := i.mailer.SendEMail(rec.RecipientEmail, rec.Subject, rec.Body)
		if sendErr == nil {
			if err = store.MarkSent(rec.ID, i.now()); err != nil {
				return sent, errors.Wrap(err, "error updating notification")
			}
			sent++
			continue
		}
		attempts := rec.Attempts + 1
		state := models.NotificationPending
		if attempts >= i.settings.MaxAttempts {
			state = models.NotificationFailed
		}
		logger.
			WithError(sendErr).
			WithField("attempts", attempts).
			Warn("notification not sent")
		if err = store.MarkFailed(rec.ID, attempts, sendErr.Error(), state); err != nil {
			return sent, errors.Wrap(err, "error updating notification")
		}
	}
	return sent, nil
}
