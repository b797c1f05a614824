package db

import (
	submissionstore "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/submission/store"
	dbmodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.Exec("CREATE SEQUENCE IF NOT EXISTS " + submissionstore.SequenceName).Error; err != nil {
		return errors.Wrap(err, "error creating submission number sequence")
	}
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"DirectoryUser", &dbmodels.DirectoryUser{}},
		{"FormConfig", &dbmodels.FormConfig{}},
		{"FormDocument", &dbmodels.FormDocument{}},
		{"Submission", &dbmodels.Submission{}},
		{"Party", &dbmodels.Party{}},
		{"Approval", &dbmodels.Approval{}},
		{"SpecialApprover", &dbmodels.SpecialApprover{}},
		{"Document", &dbmodels.Document{}},
		{"Comment", &dbmodels.Comment{}},
		{"Notification", &dbmodels.Notification{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "error migrating %s", m.name)
		}
	}
	log.Info("migrations done")
	return nil
}
