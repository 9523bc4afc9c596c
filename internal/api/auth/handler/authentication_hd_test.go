package authHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	"ProjectBlog/internal/middleware"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/log"
	blogRedis "ProjectBlog/pkg/redis"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/validation"
	"ProjectBlog/web"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(c context.Context, req auth.RegisterRequest) (int64, error) {
	args := m.Called(c, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAuthService) Login(c context.Context, req auth.LoginRequest) (entity.UserLoginData, error) {
	args := m.Called(c, req)
	return args.Get(0).(entity.UserLoginData), args.Error(1)
}

type testClient struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func setupHandler(t *testing.T) (*testClient, *mockAuthService) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	logger := log.NewLogger()
	storage := blogRedis.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	sessions := session.New(storage, time.Hour)
	mw := middleware.New(logger, sessions)

	app := fiber.New(fiber.Config{
		Views:         web.NewEngine("/static/image/uploaded/"),
		StrictRouting: true,
		CaseSensitive: true,
	})
	app.Use(mw.NewRequestIDMiddleware(), mw.NewSessionMiddleware)

	svc := &mockAuthService{}
	New(logger, svc, validation.New(), mw, sessions).Start(app)

	app.Get("/whoami/", func(c *fiber.Ctx) error {
		user, ok := contextPkg.UserFromFiber(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Username)
	})

	return &testClient{t: t, app: app, cookies: map[string]*http.Cookie{}}, svc
}

func (tc *testClient) do(req *http.Request) (*http.Response, string) {
	tc.t.Helper()
	for _, cookie := range tc.cookies {
		req.AddCookie(cookie)
	}
	resp, err := tc.app.Test(req, -1)
	require.NoError(tc.t, err)
	for _, cookie := range resp.Cookies() {
		tc.cookies[cookie.Name] = cookie
	}
	body, err := io.ReadAll(resp.Body)
	require.NoError(tc.t, err)
	return resp, string(body)
}

func (tc *testClient) get(target string) (*http.Response, string) {
	return tc.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (tc *testClient) postForm(target string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return tc.do(req)
}

func registrationForm(username string) url.Values {
	return url.Values{
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {"secret"},
		"confirm":  {"secret"},
	}
}

func TestRegistrationFormRenders(t *testing.T) {
	tc, _ := setupHandler(t)

	resp, body := tc.get("/Registration/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="confirm"`)
}

func TestRegisterShortUsernameIsRejected(t *testing.T) {
	tc, svc := setupHandler(t)

	resp, body := tc.postForm("/Registration/", registrationForm("ab"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "User Name Must between 3 to 20")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	tc, svc := setupHandler(t)

	form := registrationForm("alice")
	form.Set("confirm", "other")

	resp, body := tc.postForm("/Registration/", form)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Password Not match")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterSuccessFlashesOnLoginPage(t *testing.T) {
	tc, svc := setupHandler(t)

	svc.On("Register", mock.Anything, auth.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
		Confirm:  "secret",
	}).Return(int64(1), nil).Once()

	resp, _ := tc.postForm("/Registration/", registrationForm("alice"))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/Login/", resp.Header.Get("Location"))

	_, body := tc.get("/Login/")
	assert.Contains(t, body, "Successfully Registered..")

	_, body = tc.get("/Login/")
	assert.NotContains(t, body, "Successfully Registered..")
	svc.AssertExpectations(t)
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	tc, svc := setupHandler(t)

	svc.On("Register", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	svc.On("Register", mock.Anything, mock.Anything).Return(int64(0), auth.ErrUsernameAlreadyExists).Once()

	resp, _ := tc.postForm("/Registration/", registrationForm("alice"))
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, body := tc.postForm("/Registration/", registrationForm("alice"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "user name already exists")
}

func TestLoginWrongPasswordFlashesAndStaysAnonymous(t *testing.T) {
	tc, svc := setupHandler(t)

	svc.On("Login", mock.Anything, auth.LoginRequest{Username: "alice", Password: "wrong"}).
		Return(entity.UserLoginData{}, auth.ErrInvalidCredentials)

	resp, _ := tc.postForm("/Login/", url.Values{"username": {"alice"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/Login/", resp.Header.Get("Location"))

	_, body := tc.get("/whoami/")
	assert.Equal(t, "anonymous", body)

	_, body = tc.get("/Login/")
	assert.Contains(t, body, "please check User name or password")
	assert.Contains(t, body, "flash-danger")
}

func TestLoginValidation(t *testing.T) {
	tc, svc := setupHandler(t)

	resp, body := tc.postForm("/Login/", url.Values{"username": {""}, "password": {""}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Please Fill the Field.")
	assert.Contains(t, body, "This field is required.")
	svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLoginThenLogout(t *testing.T) {
	tc, svc := setupHandler(t)

	svc.On("Login", mock.Anything, auth.LoginRequest{Username: "alice", Password: "secret"}).
		Return(entity.UserLoginData{ID: 1, Username: "alice"}, nil)

	resp, _ := tc.postForm("/Login/", url.Values{"username": {"alice"}, "password": {"secret"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, body := tc.get("/whoami/")
	assert.Equal(t, "alice", body)

	resp, _ = tc.get("/Logout/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	_, body = tc.get("/whoami/")
	assert.Equal(t, "anonymous", body)

	_, body = tc.get("/Login/")
	assert.Contains(t, body, "Successfully logout")
}

func TestRegisterLongEmailReachesStorage(t *testing.T) {
	tc, svc := setupHandler(t)

	form := registrationForm("alice")
	form.Set("email", strings.Repeat("a", 40)+"@example.com")

	svc.On("Register", mock.Anything, mock.Anything).Return(int64(0), auth.ErrValueTooLong).Once()

	resp, body := tc.postForm("/Registration/", form)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "value too long")
	svc.AssertExpectations(t)
}
