package dbmodels

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/lib/pq"
)

// FormConfig is the admin-maintained configuration of a form.
type FormConfig struct {
	FormID            models.FormID  `gorm:"primaryKey;autoIncrement:false"`
	FormName          string         `gorm:"type:varchar(100)"`
	OfficialUseFields pq.StringArray `gorm:"type:text[]"`
	Documents         []FormDocument `gorm:"foreignKey:FormID;references:FormID"`
}

type FormDocument struct {
	BaseModel
	FormID    models.FormID `gorm:"index"`
	Position  int
	Label     string `gorm:"type:varchar(255)"`
	PartyType string `gorm:"type:varchar(100)"` // party type or Common
	Mandatory bool
}
