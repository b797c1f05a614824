package rbac

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
)

var (
	AdminRoleSet = []models.UserRole{models.LegalAdminRole}
	AllRoles     = []models.UserRole{models.LegalAdminRole, models.LegalUserRole}
)

// legalRules gates API sections only. Who may act inside a submission is
// decided by the workflow engine against the caller's email.
func legalRules() []Rule {
	return []Rule{
		// submissions
		{Module: models.SubmissionModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/list [post]"},
		{Module: models.SubmissionModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id} [get]"},
		{Module: models.SubmissionModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id}/log [get]"},
		{Module: models.SubmissionModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id}/log/xlsx [get]"},
		{Module: models.SubmissionModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id}/log/pdf [get]"},
		{Module: models.SubmissionModule, Permission: models.CreatePermission, Roles: AllRoles, Route: "/api/v1/legal/submissions [post]"},
		{Module: models.SubmissionModule, Permission: models.FlowPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id}/actions [post]"},
		{Module: models.SubmissionModule, Permission: models.FilesPermission, Roles: AllRoles, Route: "/api/v1/legal/submissions/{id}/documents/{docId}/file [post]"},
		{Module: models.SubmissionModule, Permission: models.ManagePermission, Roles: AdminRoleSet, Route: "/api/v1/legal/admin/notifications/dispatch [post]"},
		// directory
		{Module: models.DirectoryModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/directory [get]"},
		{Module: models.DirectoryModule, Permission: models.ManagePermission, Roles: AdminRoleSet, Route: "/api/v1/legal/admin/directory [post]"},
		// form configuration
		{Module: models.FormConfigModule, Permission: models.ViewPermission, Roles: AllRoles, Route: "/api/v1/legal/forms/{formId} [get]"},
		{Module: models.FormConfigModule, Permission: models.ManagePermission, Roles: AdminRoleSet, Route: "/api/v1/legal/admin/forms/{formId} [get]"},
		{Module: models.FormConfigModule, Permission: models.ManagePermission, Roles: AdminRoleSet, Route: "/api/v1/legal/admin/forms/{formId} [put]"},
	}
}
