package apiv1

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/rbac"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/middleware"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/fiber/v2"
)

type profileApiController struct {
	controllers.BaseAPIController
}

type ProfileView struct {
	ID          string                                `json:"id"`
	Name        string                                `json:"name"`
	Email       string                                `json:"email"`
	Role        models.UserRole                       `json:"role"`
	RoleName    string                                `json:"roleName"`
	Permissions map[models.Module][]models.Permission `json:"permissions"`
}

func InitProfileApiRouters(app *fiber.App) {
	controller := profileApiController{}
	app.Get("me", controller.me)
}

// @Summary Current user
// @Tags Profile
// @Description Identity from the access token and the API permissions of its role
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=apiv1.ProfileView}
// @Failure 403
// @router /api/v1/legal/me [get]
func (c *profileApiController) me(ctx *fiber.Ctx) error {
	role := middleware.GetSystemRole(ctx)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(ProfileView{
		ID:          middleware.GetUserID(ctx),
		Name:        middleware.GetUserName(ctx),
		Email:       middleware.GetUserEmail(ctx),
		Role:        role,
		RoleName:    role.ToHuman(),
		Permissions: rbac.Instance.GetPermissions(role),
	}))
}
