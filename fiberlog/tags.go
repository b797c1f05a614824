package fiberlog

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagURL       = "url"
	TagIP        = "ip"
	TagUserAgent = "ua"
	TagBody      = "body"
	TagResBody   = "resBody"
	RequestID    = "requestId"
)

// FuncTag extracts the value logged under a tag.
type FuncTag func(c *fiber.Ctx, latency time.Duration) interface{}

// getFuncTagMap keeps the extractors of the configured tags. Unknown tags are ignored.
func getFuncTagMap(cfg Config) map[string]FuncTag {
	pid := os.Getpid()
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return pid
		},
		TagLatency: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return latency.String()
		},
		TagStatus: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.IP()
		},
		TagUserAgent: func(c *fiber.Ctx, latency time.Duration) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, latency time.Duration) interface{} {
			// uploads are not logged
			if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
				return ""
			}
			return truncate(string(c.Body()), cfg.MaxBodySize)
		},
		TagResBody: func(c *fiber.Ctx, latency time.Duration) interface{} {
			// exports are binary
			if !strings.HasPrefix(string(c.Response().Header.ContentType()), fiber.MIMEApplicationJSON) {
				return ""
			}
			return truncate(string(c.Response().Body()), cfg.MaxBodySize)
		},
		RequestID: func(c *fiber.Ctx, latency time.Duration) interface{} {
			if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
				return id
			}
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func truncate(value string, limit int) string {
	if limit <= 0 || len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
