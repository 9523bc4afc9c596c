package session

import (
	"net/http"
	"time"

	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/response"

	"github.com/gofiber/fiber/v2"
	fiberSession "github.com/gofiber/fiber/v2/middleware/session"
	jsoniter "github.com/json-iterator/go"
)

const (
	KeyUsername = "username"
	KeyUserID   = "userid"

	keyFlashes = "_flashes"

	CookieName = "session_id"
)

const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

var ErrSessionRequired = response.NewError(http.StatusUnauthorized, "you must be logged in to do that")

type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type ISession interface {
	Login(c *fiber.Ctx, user entity.UserLoginData) error
	Logout(c *fiber.Ctx) error
	Identity(c *fiber.Ctx) (entity.UserLoginData, bool, error)
	AddFlash(c *fiber.Ctx, category, message string) error
	Flashes(c *fiber.Ctx) ([]Flash, error)
}

type sessions struct {
	store *fiberSession.Store
}

// New builds a cookie keyed session store. A nil storage keeps sessions in
// process memory.
func New(storage fiber.Storage, expiration time.Duration) ISession {
	if expiration <= 0 {
		expiration = 31 * 24 * time.Hour
	}

	store := fiberSession.New(fiberSession.Config{
		Storage:        storage,
		Expiration:     expiration,
		KeyLookup:      "cookie:" + CookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})

	return &sessions{store: store}
}

func (s *sessions) Login(c *fiber.Ctx, user entity.UserLoginData) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}

	sess.Set(KeyUsername, user.Username)
	sess.Set(KeyUserID, user.ID)

	return sess.Save()
}

// Logout drops every key of the session, pending flashes included.
func (s *sessions) Logout(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}

	for _, key := range sess.Keys() {
		sess.Delete(key)
	}

	return sess.Save()
}

func (s *sessions) Identity(c *fiber.Ctx) (entity.UserLoginData, bool, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return entity.UserLoginData{}, false, err
	}

	username, ok := sess.Get(KeyUsername).(string)
	if !ok || username == "" {
		return entity.UserLoginData{}, false, nil
	}

	id, ok := sess.Get(KeyUserID).(int64)
	if !ok {
		return entity.UserLoginData{}, false, nil
	}

	return entity.UserLoginData{ID: id, Username: username}, true, nil
}

func (s *sessions) AddFlash(c *fiber.Ctx, category, message string) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}

	flashes := decodeFlashes(sess.Get(keyFlashes))
	flashes = append(flashes, Flash{Category: category, Message: message})

	raw, err := jsoniter.MarshalToString(flashes)
	if err != nil {
		return err
	}
	sess.Set(keyFlashes, raw)

	return sess.Save()
}

// Flashes returns the pending messages and removes them from the session.
func (s *sessions) Flashes(c *fiber.Ctx) ([]Flash, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, err
	}

	flashes := decodeFlashes(sess.Get(keyFlashes))
	if len(flashes) == 0 {
		return nil, nil
	}

	sess.Delete(keyFlashes)
	if err := sess.Save(); err != nil {
		return nil, err
	}

	return flashes, nil
}

func decodeFlashes(value interface{}) []Flash {
	raw, ok := value.(string)
	if !ok || raw == "" {
		return nil
	}

	var flashes []Flash
	if err := jsoniter.UnmarshalFromString(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
