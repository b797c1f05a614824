package notifystore

import (
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(list []dbmodels.Notification) error
	// ListPending returns up to limit outbox rows and locks them for the
	// surrounding transaction; rows locked by another sender are skipped.
	ListPending(limit int) ([]dbmodels.Notification, error)
	MarkSent(id string, at time.Time) error
	MarkFailed(id string, attempts int, lastError string, state models.NotificationState) error
	ListBySubmission(submissionID string) ([]dbmodels.Notification, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(list []dbmodels.Notification) error {
	if len(list) == 0 {
		return nil
	}
	return i.db.Create(&list).Error
}

func (i impl) ListPending(limit int) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("state = ?", models.NotificationPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkSent(id string, at time.Time) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":      models.NotificationSent,
			"sent_at":    at,
			"last_error": "",
		}).
		Error
}

func (i impl) MarkFailed(id string, attempts int, lastError string, state models.NotificationState) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":      state,
			"attempts":   attempts,
			"last_error": lastError,
		}).
		Error
}

func (i impl) ListBySubmission(submissionID string) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("submission_id = ?", submissionID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
