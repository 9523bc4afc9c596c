package middleware

import (
	contextPkg "ProjectBlog/pkg/context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewSessionMiddleware resolves the logged in user from the session cookie.
// Anonymous requests pass through untouched; handlers decide what needs a user.
func (m *middleware) NewSessionMiddleware(ctx *fiber.Ctx) error {
	user, ok, err := m.sessions.Identity(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
			"error":      err.Error(),
		}).Warn("Failed to load session")
		return ctx.Next()
	}

	if ok {
		ctx.Locals(contextPkg.UserLocalsKey, user)
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"user_id":    user.ID,
		}).Debug("Session user resolved")
	}

	return ctx.Next()
}
