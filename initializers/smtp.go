package initializers

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
}
