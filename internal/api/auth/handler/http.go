package authHandler

import (
	authService "ProjectBlog/internal/api/auth/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	validator   *validator.Validate
	middleware  middleware.Middleware
	sessions    session.ISession
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	sessions session.ISession) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		validator:   validate,
		middleware:  middleware,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	srv.Get("/Registration/", h.HandleRegisterForm)
	srv.Post("/Registration/", h.middleware.NewRateLimiter, h.HandleRegister)

	srv.Get("/Login/", h.HandleLoginForm)
	srv.Post("/Login/", h.middleware.NewRateLimiter, h.HandleLogin)

	srv.Get("/Logout/", h.HandleLogout)
}
