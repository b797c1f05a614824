package directorystore

import (
	"strings"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec *dbmodels.DirectoryUser) error
	GetByID(id string) (*dbmodels.DirectoryUser, error)
	GetByEmail(email string) (*dbmodels.DirectoryUser, error)
	ListByRole(role models.WorkflowRole, activeOnly bool) ([]dbmodels.DirectoryUser, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert creates the user or refreshes the record with the same email.
func (i impl) Upsert(rec *dbmodels.DirectoryUser) error {
	rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role", "department", "is_active", "updated_at"}),
		}).
		Create(rec).
		Error
	if err != nil {
		return err
	}
	if rec.ID == "" {
		saved, err := i.GetByEmail(rec.Email)
		if err != nil {
			return err
		}
		if saved != nil {
			rec.ID = saved.ID
		}
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.DirectoryUser, error) {
	rec := dbmodels.DirectoryUser{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.DirectoryUser, error) {
	rec := dbmodels.DirectoryUser{}
	err := i.db.
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByRole(role models.WorkflowRole, activeOnly bool) (list []dbmodels.DirectoryUser, err error) {
	list = []dbmodels.DirectoryUser{}
	tx := i.db.Model(&dbmodels.DirectoryUser{})
	if role != "" {
		tx = tx.Where("role = ?", role)
	}
	if activeOnly {
		tx = tx.Where("is_active = ?", true)
	}
	err = tx.Order("name ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
