package apiv1

import (
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/controllers"
	submissionhandler "github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/submission"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/middleware"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"
	legalapimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api/legal"

	"github.com/gofiber/fiber/v2"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submissions", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Post("actions", controller.act)
			idRoute.Get("log", controller.log)
			idRoute.Get("log/xlsx", controller.logXlsx)
			idRoute.Get("log/pdf", controller.logPdf)
			idRoute.Post("documents/:docId/file", controller.uploadFile)
		})
	})
}

// caller is the token holder acting under role.
func caller(ctx *fiber.Ctx) workflow.Actor {
	return workflow.Actor{
		Name:  middleware.GetUserName(ctx),
		Email: middleware.GetUserEmail(ctx),
	}
}

// @Summary Create a submission
// @Tags Submission
// @Description Saves a draft, or submits it right away when submit is set
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 legalapimodels.SubmissionCreate	true	"request body"
// @Success 200 {object} apimodels.Response{data=legalapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/submissions [post]
func (c *submissionApiController) create(ctx *fiber.Ctx) error {
	var payload legalapimodels.SubmissionCreate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := submissionhandler.Instance.Create(caller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error creating submission")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List submissions
// @Tags Submission
// @Description List submissions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 legalapimodels.SubmissionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]legalapimodels.SubmissionListItem}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/submissions/list [post]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	var payload legalapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.UserEmail = middleware.GetUserEmail(ctx)

	list, rowCount, err := submissionhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error reading submissions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get a submission
// @Tags Submission
// @Description Submission with its ledgers, documents, comments and who has to act next
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200 {object} apimodels.Response{data=legalapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id} [get]
func (c *submissionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := submissionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error reading submission")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Run a workflow action
// @Tags Submission
// @Description Approve, send back, cancel, assign, complete, resubmit and the other workflow actions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Param	body body	 legalapimodels.ActionRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=legalapimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id}/actions [post]
func (c *submissionApiController) act(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload legalapimodels.ActionRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := submissionhandler.Instance.Act(id, caller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error applying action")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Audit log
// @Tags Submission
// @Description Audit log projected from the approval ledgers and comments
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200 {object} apimodels.Response{data=[]workflow.LogEntry}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id}/log [get]
func (c *submissionApiController) log(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := submissionhandler.Instance.Log(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error reading audit log")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Audit log as xlsx
// @Tags Submission
// @Description Audit log as xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id}/log/xlsx [get]
func (c *submissionApiController) logXlsx(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, fileName, err := submissionhandler.Instance.ExportLogXls(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error exporting audit log")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Audit log as pdf
// @Tags Submission
// @Description Audit log as pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id}/log/pdf [get]
func (c *submissionApiController) logPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	data, fileName, err := submissionhandler.Instance.ExportLogPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error exporting audit log")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// @Summary Upload a document file
// @Tags Submission
// @Description Stores the file and attaches it to the document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "submission ID"
// @Param   docId          		path    string  				    	true         "document ID"
// @Param   role				formData	string	true	"workflow role of the uploader"
// @Param   file				formData	file 	true 	"file to upload"
// @Success 200 {object} apimodels.Response{data=legalapimodels.ActionResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/legal/submissions/{id}/documents/{docId}/file [post]
func (c *submissionApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	documentID, err := c.GetIDByKey(ctx, "docId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload legalapimodels.DocumentUpload
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("error opening uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()

	actor := caller(ctx)
	actor.Role = payload.GetRole()
	resp, err := submissionhandler.Instance.UploadDocument(ctx.UserContext(), id, documentID, actor, submissionhandler.FileUpload{
		FileName:    file.Filename,
		ContentType: file.Header.Get(fiber.HeaderContentType),
		Size:        file.Size,
		Body:        buffer,
	})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "error uploading document")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
