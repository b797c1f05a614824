package dbmodels

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	"time"
)

type Notification struct {
	BaseModel
	SubmissionID   string                   `gorm:"type:varchar(36);index"`
	RecipientRole  models.WorkflowRole      `gorm:"type:varchar(40)"`
	RecipientName  string                   `gorm:"type:varchar(255)"`
	RecipientEmail string                   `gorm:"type:varchar(255)"`
	Subject        string                   `gorm:"type:varchar(255)"`
	Body           string
	State          models.NotificationState `gorm:"type:varchar(20);index"`
	Attempts       int
	LastError      string
	SentAt         *time.Time
}
