package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/rbac"
	authutils "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/auth-utils"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	config.Conf = conf
	rbac.NewHandler()

	app := fiber.New()
	app.Use(AuthorizationRequired(), RbacMiddleware())
	handler := func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserEmail(ctx) + " " + string(GetSystemRole(ctx)))
	}
	app.Post("/api/v1/legal/admin/directory", handler)
	app.Post("/api/v1/legal/submissions/list", handler)
	return app
}

func call(t *testing.T, app *fiber.App, path, token string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}"))
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthAndRbac(t *testing.T) {
	app := newTestApp(t)
	userToken, err := authutils.GetToken("u1", "Ina Perera", "Ina@Corp.lk", models.LegalUserRole)
	require.NoError(t, err)
	adminToken, err := authutils.GetToken("u2", "Admin", "admin@corp.lk", models.LegalAdminRole)
	require.NoError(t, err)
	noEmailToken, err := authutils.GetToken("u3", "Nobody", "", models.LegalUserRole)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, call(t, app, "/api/v1/legal/submissions/list", "").StatusCode)
	})
	t.Run("user reaches user routes", func(t *testing.T) {
		require.Equal(t, http.StatusOK, call(t, app, "/api/v1/legal/submissions/list", userToken).StatusCode)
	})
	t.Run("user is kept out of admin routes", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, call(t, app, "/api/v1/legal/admin/directory", userToken).StatusCode)
	})
	t.Run("admin reaches admin routes", func(t *testing.T) {
		require.Equal(t, http.StatusOK, call(t, app, "/api/v1/legal/admin/directory", adminToken).StatusCode)
	})
	t.Run("token without email", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, call(t, app, "/api/v1/legal/submissions/list", noEmailToken).StatusCode)
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("/", func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short")))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a body that is too long")))
	require.NoError(t, err)
	require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}
