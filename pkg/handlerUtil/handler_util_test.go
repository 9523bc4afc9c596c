package handlerUtil

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/response"
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

func render(t *testing.T, err error) (int, string) {
	t.Helper()

	h := New(log.NewLogger(), session.New(nil, time.Hour))
	app := fiber.New(fiber.Config{Views: web.NewEngine("/static/")})
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, testErr)
	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(body)
}

func TestHandleResponseError(t *testing.T) {
	status, body := render(t, response.NewError(http.StatusConflict, "blog title already exists"))
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, "blog title already exists")
}

func TestHandleSessionRequired(t *testing.T) {
	status, body := render(t, session.ErrSessionRequired)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "you must be logged in")
}

func TestHandleUnexpectedErrorHidesDetail(t *testing.T) {
	status, body := render(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, body, "connection refused")
	assert.Contains(t, body, "Reference: req-1")
}
