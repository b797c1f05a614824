package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestApp(buf *bytes.Buffer) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagMethod, TagPath, TagStatus, TagBody, TagResBody, "unknown"},
	}))
	app.Post("/submissions", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	return app
}

func TestLogger(t *testing.T) {
	t.Run("success request is logged at info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf)
		req := httptest.NewRequest("POST", "/submissions", strings.NewReader(`{"formId":1}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "POST", entry[TagMethod])
		require.Equal(t, "/submissions", entry[TagPath])
		require.Equal(t, float64(200), entry[TagStatus])
		require.Equal(t, `{"formId":1}`, entry[TagBody])
		require.Equal(t, `{"status":"success"}`, entry[TagResBody])
		require.Equal(t, "api request /submissions", entry["msg"])
		require.NotContains(t, entry, "unknown")
	})

	t.Run("error status is logged at warning", func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf)
		resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.NotContains(t, entry, TagBody)
		require.NotContains(t, entry, TagResBody)
	})

	t.Run("server error is logged at error", func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := newTestApp(buf)
		app.Get("/broken", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		})
		_, err := app.Test(httptest.NewRequest("GET", "/broken", nil))
		require.NoError(t, err)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "error", entry["level"])
	})

	t.Run("preflight and skipped requests are not logged", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := logrus.New()
		logger.SetOutput(buf)
		app := fiber.New()
		app.Use(New(Config{
			Logger: logger,
			Tags:   []string{TagPath},
			Skip: func(c *fiber.Ctx) bool {
				return c.Path() == "/health"
			},
		}))
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		_, err = app.Test(httptest.NewRequest("OPTIONS", "/health", nil))
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 0))
	require.Equal(t, "abc", truncate("abc", 3))
	require.Equal(t, "ab...", truncate("abc", 2))
}
