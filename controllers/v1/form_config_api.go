package apiv1

import (
	"strconv"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers"
	formconfighandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/form-config"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/models"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type formConfigApiController struct {
	controllers.BaseAPIController
}

func InitFormConfigApiRouters(app *fiber.App) {
	controller := formConfigApiController{}
	app.Route("forms", func(router fiber.Router) {
		router.Get(":formId", controller.get)
	})
}

func getFormID(ctx *fiber.Ctx) (models.FormID, error) {
	value, err := strconv.Atoi(ctx.Params("formId"))
	if err != nil {
		return 0, errors.New("form id must be a number")
	}
	formID := models.FormID(value)
	if err = formID.Validate(); err != nil {
		return 0, err
	}
	return formID, nil
}

// @Summary Form configuration
// @Tags Form
// @Description Required documents and official use fields of a form
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   formId          		path    int  				    	true         "form ID"
// @Success 200 {object} apimodels.Response{data=legalapimodels.FormConfigView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/forms/{formId} [get]
func (c *formConfigApiController) get(ctx *fiber.Ctx) error {
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
