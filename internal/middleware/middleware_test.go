package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/session"
	"ProjectBlog/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newApp(t *testing.T, mw Middleware, sessions session.ISession) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{Views: web.NewEngine("/static/image/uploaded/")})
	app.Use(mw.NewRequestIDMiddleware(), mw.NewSessionMiddleware)

	app.Post("/login", func(c *fiber.Ctx) error {
		return sessions.Login(c, entity.UserLoginData{ID: 3, Username: "carol"})
	})
	app.Get("/me", func(c *fiber.Ctx) error {
		user, ok := contextPkg.UserFromFiber(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Username)
	})
	app.Post("/limited", mw.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	return app
}

func TestSessionMiddlewareResolvesUser(t *testing.T) {
	sessions := session.New(nil, time.Hour)
	app := newApp(t, New(log.NewLogger(), sessions), sessions)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "anonymous", string(body))

	resp, err = app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	for _, cookie := range resp.Cookies() {
		req.AddCookie(cookie)
	}
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "carol", string(body))
}

func TestRequestIDIsGeneratedAndEchoed(t *testing.T) {
	sessions := session.New(nil, time.Hour)
	app := newApp(t, New(log.NewLogger(), sessions), sessions)

	resp, err := app.Test(httptest.NewRequest("POST", "/limited", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Len(t, string(body), 26)
	assert.Equal(t, string(body), resp.Header.Get(RequestIDKey))

	req := httptest.NewRequest("POST", "/limited", nil)
	req.Header.Set(RequestIDKey, "client-supplied")
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "client-supplied", string(body))
}

func TestRateLimiterRejectsBurst(t *testing.T) {
	sessions := session.New(nil, time.Hour)
	app := newApp(t, NewWithRateLimit(log.NewLogger(), sessions, 0.001, 2), sessions)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/limited", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/limited", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "too many requests")
}

func TestRequestIDReachesRequestContext(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(contextPkg.GetRequestID(contextPkg.FromFiberCtx(c)))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.NotEqual(t, "unknown", string(body))
	assert.Equal(t, resp.Header.Get(RequestIDKey), string(body))
}
