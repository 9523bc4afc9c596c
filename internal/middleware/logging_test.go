package middleware

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody(fiber.MIMEApplicationForm, []byte("username=alice&password=hunter2&confirm=hunter2"))
	values, err := url.ParseQuery(got)
	require.NoError(t, err)
	assert.Equal(t, "alice", values.Get("username"))
	assert.Equal(t, "[SECRET]", values.Get("password"))
	assert.Equal(t, "[SECRET]", values.Get("confirm"))

	assert.Equal(t, "[multipart body]", sanitizeRequestBody(fiber.MIMEMultipartForm+"; boundary=x", []byte("--x")))
	assert.Equal(t, "[non-form body]", sanitizeRequestBody(fiber.MIMEApplicationJSON, []byte(`{}`)))
}
