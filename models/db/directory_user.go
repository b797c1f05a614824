package dbmodels

import "github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

type DirectoryUser struct {
	BaseModel
	Name       string              `gorm:"type:varchar(255)"`
	Email      string              `gorm:"type:varchar(255);uniqueIndex"`
	Role       models.WorkflowRole `gorm:"type:varchar(40);index"`
	Department string              `gorm:"type:varchar(255)"`
	IsActive   bool
}
