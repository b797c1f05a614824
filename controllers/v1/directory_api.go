package apiv1

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers"
	directoryhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/fiber/v2"
)

type directoryApiController struct {
	controllers.BaseAPIController
}

func InitDirectoryApiRouters(app *fiber.App) {
	controller := directoryApiController{}
	app.Route("directory", func(router fiber.Router) {
		router.Get("", controller.listByRole)
	})
}

// @Summary Directory users by role
// @Tags Directory
// @Description Active directory users holding a workflow role, for assignee pickers
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   role          		query    string  				    	true         "workflow role"
// @Success 200 {object} apimodels.Response{data=[]legalapimodels.DirectoryUserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/directory [get]
func (c *directoryApiController) listByRole(ctx *fiber.Ctx) error {
	role, err := models.ParseWorkflowRole(ctx.Query("role"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := directoryhandler.Instance.ListByRole(role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error reading directory")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
