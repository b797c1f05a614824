package formconfigstore

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByFormID(formID models.FormID) (*dbmodels.FormConfig, error)
	// Save replaces the configuration and its document list.
	Save(rec dbmodels.FormConfig) error
	Exists(formID models.FormID) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByFormID(formID models.FormID) (*dbmodels.FormConfig, error) {
	rec := dbmodels.FormConfig{}
	err := i.db.
		Where("form_id = ?", formID).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
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

func (i impl) Save(rec dbmodels.FormConfig) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Omit("Documents").
			Save(&rec).
			Error
		if err != nil {
			return err
		}
		err = tx.
			Where("form_id = ?", rec.FormID).
			Delete(&dbmodels.FormDocument{}).
			Error
		if err != nil {
			return err
		}
		if len(rec.Documents) == 0 {
			return nil
		}
		return tx.Create(&rec.Documents).Error
	})
}

func (i impl) Exists(formID models.FormID) (bool, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.FormConfig{}).
		Where("form_id = ?", formID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
