package authHandler

import (
	"errors"
	"time"

	"ProjectBlog/internal/api/auth"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	pageRegistration = "pages/registration"
	pageLogin        = "pages/login"
)

func (h *AuthHandler) HandleRegisterForm(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log, h.sessions)
	return errHandler.HandlePage(ctx, fiber.StatusOK, pageRegistration, fiber.Map{
		"Title": "Registration",
		"Form":  auth.RegisterRequest{},
	})
}

func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	var req auth.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	log.Debug(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"username":   req.Username,
	}, "[AuthHandler][HandleRegister] Registration submitted")

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, pageRegistration, fiber.Map{
			"Title": "Registration",
			"Form":  req,
		}, validation.FieldErrors(err, req))
	}

	if _, err := h.authService.Register(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "register")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirectWithFlash(ctx, "/Login/", session.FlashInfo, "Successfully Registered..")
	}
}

func (h *AuthHandler) HandleLoginForm(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log, h.sessions)
	return errHandler.HandlePage(ctx, fiber.StatusOK, pageLogin, fiber.Map{
		"Title": "Login",
		"Form":  auth.LoginRequest{},
	})
}

func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	var req auth.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, pageLogin, fiber.Map{
			"Title": "Login",
			"Form":  req,
		}, validation.FieldErrors(err, req))
	}

	user, err := h.authService.Login(c, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errHandler.HandleRedirectWithFlash(ctx, "/Login/", session.FlashDanger, "please check User name or password")
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login")
	}

	if err := h.sessions.Login(ctx, user); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "session_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirectWithFlash(ctx, "/", session.FlashInfo, "successfully login")
	}
}

func (h *AuthHandler) HandleLogout(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log, h.sessions)

	if err := h.sessions.Logout(ctx); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "logout")
	}

	return errHandler.HandleRedirectWithFlash(ctx, "/", session.FlashInfo, "Successfully logout")
}
