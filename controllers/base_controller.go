package controllers

import (
	"net/http"

	"github.com/gkithmal/dimo-legal-helpdesk-sub000/fiberlog"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/lib/workflow"
	"github.com/gkithmal/dimo-legal-helpdesk-sub000/middleware"
	apimodels "github.com/gkithmal/dimo-legal-helpdesk-sub000/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("error parsing request body")
		return errors.New("unable to read data from the request")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

// GetIDByKey reads a uuid path parameter.
func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.Errorf("%s is required", key)
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.Errorf("%s is not a valid id", key)
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("user_id", middleware.GetUserID(ctx)).
		WithField("user_email", middleware.GetUserEmail(ctx)).
		WithField(fiberlog.RequestID, ctx.GetRespHeader(fiber.HeaderXRequestID))
}

// SendError writes err as a failed response. Workflow errors keep their
// message; anything else is logged and answered with msg.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	status := StatusOf(err)
	message := msg
	if workflow.KindOf(err) != "" && status != http.StatusServiceUnavailable {
		message = err.Error()
	}
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Warn(msg)
	}
	return ctx.Status(status).JSON(apimodels.NewError(message))
}

// StatusOf maps a workflow error kind to its HTTP status.
func StatusOf(err error) int {
	switch workflow.KindOf(err) {
	case workflow.KindNotFound:
		return http.StatusNotFound
	case workflow.KindInvalidActor:
		return http.StatusForbidden
	case workflow.KindAlreadyActioned, workflow.KindInvalidState:
		return http.StatusConflict
	case workflow.KindValidation:
		return http.StatusBadRequest
	case workflow.KindStore:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
