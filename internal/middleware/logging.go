package middleware

import (
	"bytes"
	"net/url"
	"strings"
	"time"

	"ProjectBlog/pkg/log"

	"github.com/gofiber/fiber/v2"
)

var sensitiveFields = []string{
	"password", "confirm", "token", "secret", "csrf_token",
}

// LoggerConfig writes one access log line per request.
func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals(RequestIDKey).(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get("User-Agent"),
			"referer":       c.Get("Referer"),
			"response_size": len(c.Response().Body()),
		}

		if location := c.GetRespHeader(fiber.HeaderLocation); location != "" {
			logFields["location"] = location
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(string(c.Request().Header.ContentType()), body)
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

// sanitizeRequestBody masks credential fields of urlencoded forms. Multipart
// bodies carry image bytes and are never logged.
func sanitizeRequestBody(contentType string, body []byte) string {
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return "[multipart body]"
	}
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationForm) {
		return "[non-form body]"
	}

	values, err := url.ParseQuery(string(bytes.TrimSpace(body)))
	if err != nil {
		return "[sanitization-failed]"
	}

	for _, field := range sensitiveFields {
		if _, exists := values[field]; exists {
			values.Set(field, "[SECRET]")
		}
	}

	return values.Encode()
}
