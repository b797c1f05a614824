package middleware

import (
	authutils "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/auth-utils"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/utils/helpers"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(ctx, "name")
}

// GetUserEmail is the address the workflow identifies the caller by.
func GetUserEmail(ctx *fiber.Ctx) string {
	return helpers.NormalizeEmail(authutils.GetStringClaim(ctx, "email"))
}

func GetSystemRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(ctx, "role"))
}
