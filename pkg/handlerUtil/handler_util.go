package handlerUtil

import (
	"errors"

	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/response"
	"ProjectBlog/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const (
	Layout    = "layouts/main"
	ErrorPage = "pages/error"
)

type ErrorHandler struct {
	logger   *logrus.Logger
	sessions session.ISession
}

func New(logger *logrus.Logger, sessions session.ISession) *ErrorHandler {
	return &ErrorHandler{
		logger:   logger,
		sessions: sessions,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	if errors.Is(err, session.ErrSessionRequired) {
		h.logger.WithFields(fields).Warn("Session required")
		return h.HandleUnauthorized(c, requestID, err.Error())
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return h.renderError(c, respErr.Code, err.Error(), "")
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")

	return h.renderError(c, fiber.StatusInternalServerError, "An unexpected error occurred", traceID)
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, page string, data fiber.Map, fieldErrors map[string]string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"fields":     fieldErrors,
	}).Warn("Validation failed")

	if data == nil {
		data = fiber.Map{}
	}
	data["Errors"] = fieldErrors

	return h.HandlePage(c, fiber.StatusOK, page, data)
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return h.renderError(c, fiber.StatusRequestTimeout, utils.StatusMessage(fiber.StatusRequestTimeout), "")
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return h.renderError(c, fiber.StatusUnauthorized, message, "")
}

// HandlePage renders page inside the main layout together with the pending
// flash messages and the logged in user, if any.
func (h *ErrorHandler) HandlePage(c *fiber.Ctx, statusCode int, page string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}

	flashes, err := h.sessions.Flashes(c)
	if err != nil {
		h.logger.WithFields(log.Fields{
			"error": err.Error(),
			"path":  c.Path(),
		}).Warn("Failed to read flash messages")
	}
	data["Flashes"] = flashes

	if user, ok := contextPkg.UserFromFiber(c); ok {
		data["User"] = user
	}

	return c.Status(statusCode).Render(page, data, Layout)
}

func (h *ErrorHandler) HandleRedirect(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusFound)
}

// HandleRedirectWithFlash queues a flash message for the next page and redirects.
func (h *ErrorHandler) HandleRedirectWithFlash(c *fiber.Ctx, location string, category string, message string) error {
	if err := h.sessions.AddFlash(c, category, message); err != nil {
		h.logger.WithFields(log.Fields{
			"error":    err.Error(),
			"path":     c.Path(),
			"category": category,
		}).Warn("Failed to store flash message")
	}
	return h.HandleRedirect(c, location)
}

func (h *ErrorHandler) renderError(c *fiber.Ctx, statusCode int, message string, traceID string) error {
	return h.HandlePage(c, statusCode, ErrorPage, fiber.Map{
		"Title":   utils.StatusMessage(statusCode),
		"Status":  statusCode,
		"Message": message,
		"TraceID": traceID,
	})
}
