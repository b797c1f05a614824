package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) != 0 {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	tags := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions || (cfg.Skip != nil && cfg.Skip(c)) {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		entry := logger.WithFields(getLogrusFields(tags, c, latency))
		message := getMessage(c)
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			entry.Error(message)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(message)
		default:
			entry.Info(message)
		}
		return err
	}
}

// getLogrusFields drops empty string values.
func getLogrusFields(tags map[string]FuncTag, c *fiber.Ctx, latency time.Duration) log.Fields {
	fields := make(log.Fields, len(tags))
	for key, tag := range tags {
		value := tag(c, latency)
		if str, ok := value.(string); ok && str == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}

func getMessage(c *fiber.Ctx) string {
	if route := c.Route(); route != nil && route.Path != "" {
		return "api request " + route.Path
	}
	return "api request"
}
