package context

import (
	"context"

	"ProjectBlog/internal/entity"

	"github.com/gofiber/fiber/v2"
)

type contextKey string

const (
	RequestIDKey = "request_id"

	// RequestIDHeader is both the header and the fiber Locals key that carry
	// the request id.
	RequestIDHeader = "X-Request-ID"

	// UserLocalsKey is where the session middleware leaves the logged in user.
	UserLocalsKey = "session_user"

	userKey contextKey = "user"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func WithUser(ctx context.Context, user entity.UserLoginData) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func GetUser(ctx context.Context) (entity.UserLoginData, bool) {
	user, ok := ctx.Value(userKey).(entity.UserLoginData)
	return user, ok
}

// UserFromFiber returns the identity resolved by the session middleware.
func UserFromFiber(c *fiber.Ctx) (entity.UserLoginData, bool) {
	user, ok := c.Locals(UserLocalsKey).(entity.UserLoginData)
	return user, ok
}

func FromFiberCtx(c *fiber.Ctx) context.Context {
	ctx := context.Background()

	requestID, ok := c.Locals(RequestIDHeader).(string)
	if !ok || requestID == "" {
		requestID = c.Get(RequestIDHeader)

		if requestID == "" {
			requestID = "unknown"
		}
	}

	ctx = WithRequestID(ctx, requestID)
	if user, ok := UserFromFiber(c); ok {
		ctx = WithUser(ctx, user)
	}

	return ctx
}
