package rbac

import (
	"testing"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	t.Run(`templates match one segment per parameter`, func(t *testing.T) {
		i := &impl{
			tables:      map[HTTPMethod]*routeTable{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		err := i.Register(Rule{
			Module:     models.SubmissionModule,
			Permission: models.FilesPermission,
			Roles:      AllRoles,
			Route:      "/api/v1/legal/submissions/{id}/documents/{docId}/file [post]",
		})
		require.NoError(t, err)

		_, found := i.GetRuleFunc("POST", "/api/v1/legal/submissions/123-321/documents/qwe-ewr123/file")
		require.True(t, found)
		_, found = i.GetRuleFunc("POST", "/api/v1/legal/submissions/we-ewr123-wr-12/file")
		require.False(t, found)
		_, found = i.GetRuleFunc("GET", "/api/v1/legal/submissions/123-321/documents/qwe-ewr123/file")
		require.False(t, found)
	})

	t.Run(`route without method`, func(t *testing.T) {
		_, _, err := parseRoute("/api/v1/legal/submissions")
		require.Error(t, err)
		_, _, err = parseRoute("/api/v1/legal/submissions []")
		require.Error(t, err)
	})

	t.Run(`route with method`, func(t *testing.T) {
		path, method, err := parseRoute(" /api/v1/legal/submissions/{id}/actions/ [post]")
		require.NoError(t, err)
		require.Equal(t, POST, method)
		require.Equal(t, "/api/v1/legal/submissions/{id}/actions", path)
	})

	t.Run(`rule without roles`, func(t *testing.T) {
		i := &impl{tables: map[HTTPMethod]*routeTable{}}
		require.Error(t, i.Register(Rule{Route: "/api/v1/legal/x [get]"}))
	})

	t.Run(`normalize path`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/legal", normalizePath("api//v1/legal/"))
	})
}

func TestRules(t *testing.T) {
	NewHandler()

	t.Run(`admin section is closed to users`, func(t *testing.T) {
		handler, found := Instance.GetRuleFunc("PUT", "/api/v1/legal/admin/forms/3")
		require.True(t, found)
		require.True(t, handler("u1", models.LegalAdminRole, "/api/v1/legal/admin/forms/3"))
		require.False(t, handler("u2", models.LegalUserRole, "/api/v1/legal/admin/forms/3"))
	})

	t.Run(`submission actions are open to users`, func(t *testing.T) {
		handler, found := Instance.GetRuleFunc("post", "/api/v1/legal/submissions/abc/actions/")
		require.True(t, found)
		require.True(t, handler("u2", models.LegalUserRole, "/api/v1/legal/submissions/abc/actions"))
	})

	t.Run(`unknown route has no rule`, func(t *testing.T) {
		_, found := Instance.GetRuleFunc("GET", "/api/v1/legal/unknown")
		require.False(t, found)
	})

	t.Run(`permissions for the UI`, func(t *testing.T) {
		permissions := Instance.GetPermissions(models.LegalUserRole)
		require.ElementsMatch(t,
			[]models.Permission{models.ViewPermission, models.CreatePermission, models.FlowPermission, models.FilesPermission},
			permissions[models.SubmissionModule])
		require.Equal(t, []models.Permission{models.ViewPermission}, permissions[models.FormConfigModule])
		require.Equal(t, []models.Permission{models.ViewPermission}, permissions[models.DirectoryModule])
		admin := Instance.GetPermissions(models.LegalAdminRole)
		require.Contains(t, admin[models.FormConfigModule], models.ManagePermission)
	})
}
