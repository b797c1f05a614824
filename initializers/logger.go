package initializers

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/fiberlog"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func jsonFormatter() *log.JSONFormatter {
	return &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
}

// InitLogger sets up the global logger and returns the request logger
// configuration. Bodies are cut at 8 KiB.
func InitLogger() *fiberlog.Config {
	log.SetFormatter(jsonFormatter())
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(jsonFormatter())
	logger.SetLevel(log.DebugLevel)
	return &fiberlog.Config{
		Logger:      logger,
		MaxBodySize: 8192,
		Tags: []string{
			fiberlog.TagBody,
			fiberlog.TagResBody,
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.RequestID,
		},
		Skip: func(c *fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}
}
