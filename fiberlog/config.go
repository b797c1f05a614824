package fiberlog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Config is config for middleware
type Config struct {
	// Logger falls back to the logrus standard logger when nil.
	Logger *logrus.Logger
	Tags   []string
	// Skip drops the request from the log. Preflight requests are always skipped.
	Skip func(c *fiber.Ctx) bool
	// MaxBodySize truncates logged bodies; zero keeps them whole.
	MaxBodySize int
}

// ConfigDefault is the default config
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
	MaxBodySize: 4096,
}
