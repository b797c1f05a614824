package initializers

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/db"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(db.Options{
		Host:         conf.Host,
		Port:         conf.Port,
		Name:         conf.Name,
		User:         conf.User,
		Password:     conf.Password,
		DebugMode:    *conf.DebugMode,
		Migrate:      *conf.MigrateOnStart,
		MaxOpenConns: conf.MaxOpenConns,
	})
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
