package notifyworker

import (
	"context"
	"time"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	notifyhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify"
	baseworker "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	interval := time.Duration(config.Conf.Notify.IntervalSec) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	i := &impl{
		BaseImpl: *baseworker.NewInstance("NotifyWorker", 10*time.Second, interval),
		notifier: notifyhandler.Instance,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	notifier notifyhandler.Provider
}

func (i impl) handle(ctx context.Context) {
	sent, err := i.notifier.Dispatch(ctx)
	if err != nil {
		i.GetLogger().WithError(err).Error("error sending notifications")
		return
	}
	if sent > 0 {
		i.GetLogger().WithField("sent", sent).Info("notifications sent")
	}
}
