package initializers

import (
	"context"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/fiberlog"
	directoryhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory"
	xlsexport "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/export/xls"
	formconfighandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/form-config"
	notifyhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify"
	notifyworker "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify/worker"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/rbac"
	submissionhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/submission"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	rbac.NewHandler()
	directoryhandler.NewHandler()
	formconfighandler.NewHandler()
	if err := formconfighandler.Instance.SeedDefaults(); err != nil {
		log.WithError(err).Error("error seeding form configurations")
	}
	xlsexport.NewHandler()
	notifyhandler.NewHandler()
	submissionhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// sends the notification outbox
	notifyworker.StartWorker(ctx)
}
