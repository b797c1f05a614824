package db

import (
	"context"
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Options struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	DebugMode    bool
	Migrate      bool
	MaxOpenConns int
}

func (o Options) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", o.Host, o.Port, o.User, o.Name, o.Password)
}

func Connect(opts Options) error {
	if DB != nil {
		return nil
	}
	db, err := gorm.Open(postgres.Open(opts.dsn()), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "error connecting to the database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "error getting the connection pool")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxOpenConns / 2)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	if opts.DebugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	DB = db
	if opts.Migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.
		WithField("host", opts.Host).
		WithField("database", opts.Name).
		Info("database connected")
	return nil
}

func PingDB(ctx context.Context) error {
	if DB == nil {
		return errors.New("database is not connected")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
