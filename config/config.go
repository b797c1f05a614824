package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"8080"  env:"APP_PORT"`
		PublicURL      string `default:"http://localhost:3000" env:"APP_PUBLIC_URL"`
		MaxUploadBytes int64  `default:"26214400" env:"APP_MAX_UPLOAD_BYTES"`
		SwaggerFile    string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Database struct {
		Host              string `default:"127.0.0.1" env:"DB_HOST"`
		Port              string `default:"5432" env:"DB_PORT"`
		Name              string `default:"legal-hub" env:"DB_NAME"`
		User              string `default:"postgres" env:"DB_USER"`
		Password          string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart    *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode         *bool  `default:"false" env:"DB_DEBUG_MODE"`
		MaxOpenConns      int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		DirectorySeedFile string `default:"./static_preload/directory.csv" env:"DB_DIRECTORY_SEED_FILE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"28800" env:"JWT_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"legal-hub" env:"S3_BUCKET_NAME"`
		PublicBaseURL   string `default:"" env:"S3_PUBLIC_BASE_URL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"legal-hub@localhost" env:"SMTP_FROM"`
	}
	Notify struct {
		Enabled     *bool `default:"true" env:"NOTIFY_ENABLED"`
		IntervalSec int   `default:"30" env:"NOTIFY_INTERVAL_SEC"`
		BatchSize   int   `default:"50" env:"NOTIFY_BATCH_SIZE"`
		MaxAttempts int   `default:"5" env:"NOTIFY_MAX_ATTEMPTS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
