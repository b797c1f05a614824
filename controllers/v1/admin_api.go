package apiv1

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers"
	directoryhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/directory"
	formconfighandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/form-config"
	notifyhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/notify"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"

	"github.com/gofiber/fiber/v2"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Post("directory", controller.upsertUser)
		router.Get("forms/:formId", controller.getForm)
		router.Put("forms/:formId", controller.updateForm)
		router.Post("notifications/dispatch", controller.dispatch)
	})
}

// @Summary Add or update a directory user
// @Tags Admin
// @Description Users are matched by email
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 legalapimodels.DirectoryUserData	true	"request body"
// @Success 200 {object} apimodels.Response{data=legalapimodels.DirectoryUserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/admin/directory [post]
func (c *adminApiController) upsertUser(ctx *fiber.Ctx) error {
	var payload legalapimodels.DirectoryUserData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := directoryhandler.Instance.Upsert(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error saving directory user")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Form configuration
// @Tags Admin
// @Description Form configuration
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   formId          		path    int  				    	true         "form ID"
// @Success 200 {object} apimodels.Response{data=legalapimodels.FormConfigView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/admin/forms/{formId} [get]
func (c *adminApiController) getForm(ctx *fiber.Ctx) error {
	formID, err := getFormID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := formconfighandler.Instance.Get(formID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error reading form configuration")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update form configuration
// @Tags Admin
// @Description Replaces the required documents and official use fields of a form.
// @Description Submissions already created keep their documents.
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   formId          		path    int  				    	true         "form ID"
// @Param	body body	 legalapimodels.FormConfigData	true	"request body"
// @Success 200 {object} apimodels.Response{data=legalapimodels.FormConfigView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/admin/forms/{formId} [put]
func (c *adminApiController) updateForm(ctx *fiber.Ctx) error {
	formID, err := getFormID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload legalapimodels.FormConfigData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := formconfighandler.Instance.Update(formID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error saving form configuration")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Send pending notifications now
// @Tags Admin
// @Description Runs one dispatch batch of the notification outbox
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/legal/admin/notifications/dispatch [post]
func (c *adminApiController) dispatch(ctx *fiber.Ctx) error {
	sent, err := notifyhandler.Instance.Dispatch(ctx.UserContext())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error sending notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(sent))
}
