package middleware

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/rbac"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/fiber/v2"
)

const rbacForbidden = "RBAC_FORBIDDEN"

func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetSystemRole(ctx)
		if userID == "" || userRole == "" || GetUserEmail(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}

		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(userID, userRole, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbidden))
		}
		return ctx.Next()
	}
}
