package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ProjectBlog/internal/entity"
	blogRedis "ProjectBlog/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type whoami struct {
	Found    bool   `json:"found"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func setupApp(t *testing.T, storage fiber.Storage) *fiber.App {
	t.Helper()

	sessions := New(storage, time.Hour)
	app := fiber.New()

	app.Post("/login", func(c *fiber.Ctx) error {
		if err := sessions.Login(c, entity.UserLoginData{ID: 42, Username: "alice"}); err != nil {
			return err
		}
		return sessions.AddFlash(c, FlashSuccess, "successfully login")
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		if err := sessions.Logout(c); err != nil {
			return err
		}
		return sessions.AddFlash(c, FlashInfo, "Successfully logout")
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, ok, err := sessions.Identity(c)
		if err != nil {
			return err
		}
		return c.JSON(whoami{Found: ok, ID: user.ID, Username: user.Username})
	})
	app.Get("/flashes", func(c *fiber.Ctx) error {
		flashes, err := sessions.Flashes(c)
		if err != nil {
			return err
		}
		return c.JSON(flashes)
	})

	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}
	t.Fatalf("response has no %s cookie", CookieName)
	return nil
}

func do(t *testing.T, app *fiber.App, method, target string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeWhoami(t *testing.T, resp *http.Response) whoami {
	t.Helper()
	var out whoami
	require.NoError(t, jsonDecode(resp, &out))
	return out
}

func decodeFlashList(t *testing.T, resp *http.Response) []Flash {
	t.Helper()
	var out []Flash
	require.NoError(t, jsonDecode(resp, &out))
	return out
}

func runSessionLifecycle(t *testing.T, storage fiber.Storage) {
	app := setupApp(t, storage)

	anonymous := decodeWhoami(t, do(t, app, "GET", "/whoami", nil))
	assert.False(t, anonymous.Found)

	resp := do(t, app, "POST", "/login", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookie(t, resp)

	me := decodeWhoami(t, do(t, app, "GET", "/whoami", cookie))
	assert.Equal(t, whoami{Found: true, ID: 42, Username: "alice"}, me)

	flashes := decodeFlashList(t, do(t, app, "GET", "/flashes", cookie))
	assert.Equal(t, []Flash{{Category: FlashSuccess, Message: "successfully login"}}, flashes)

	// consumed on first read
	assert.Empty(t, decodeFlashList(t, do(t, app, "GET", "/flashes", cookie)))

	do(t, app, "POST", "/logout", cookie)

	after := decodeWhoami(t, do(t, app, "GET", "/whoami", cookie))
	assert.False(t, after.Found)

	flashes = decodeFlashList(t, do(t, app, "GET", "/flashes", cookie))
	assert.Equal(t, []Flash{{Category: FlashInfo, Message: "Successfully logout"}}, flashes)
}

func TestSessionLifecycleMemory(t *testing.T) {
	runSessionLifecycle(t, nil)
}

func TestSessionLifecycleRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	storage := blogRedis.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	runSessionLifecycle(t, storage)

	assert.NotEmpty(t, mr.Keys())
}

func TestDecodeFlashesIgnoresGarbage(t *testing.T) {
	assert.Nil(t, decodeFlashes(nil))
	assert.Nil(t, decodeFlashes(12))
	assert.Nil(t, decodeFlashes("not json"))
	assert.Len(t, decodeFlashes(`[{"category":"info","message":"hi"}]`), 1)
}
