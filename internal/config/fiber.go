package config

import (
	"errors"

	"ProjectBlog/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger, views fiber.Views) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Blog",
			BodyLimit:         50 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: false,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			Views:             views,
			ErrorHandler:      newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders errors that escape the handlers, such as unknown
// routes or recovered panics, with the shared error page.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An unexpected error occurred"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		logger.WithFields(logrus.Fields{
			"path":   c.Path(),
			"status": code,
			"error":  err.Error(),
		}).Warn("Request failed")

		return c.Status(code).Render(handlerUtil.ErrorPage, fiber.Map{
			"Title":   utils.StatusMessage(code),
			"Status":  code,
			"Message": message,
		}, handlerUtil.Layout)
	}
}
