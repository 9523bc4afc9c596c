package blogsHandler

import (
	"time"

	"ProjectBlog/internal/api/blog"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	pageAddCategory     = "pages/addcategory"
	pageDisplayCategory = "pages/displaycategory"
)

func (h *BlogsHandler) HandleAddCategoryForm(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log, h.sessions)
	return errHandler.HandlePage(ctx, fiber.StatusOK, pageAddCategory, fiber.Map{
		"Title": "Add Category",
		"Form":  blogs.CreateCategoryRequest{},
	})
}

func (h *BlogsHandler) HandleAddCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	var req blogs.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, pageAddCategory, fiber.Map{
			"Title": "Add Category",
			"Form":  req,
		}, validation.FieldErrors(err, req))
	}

	user, ok := contextPkg.GetUser(c)
	if !ok {
		return errHandler.Handle(ctx, requestID, session.ErrSessionRequired, ctx.Path(), "create_category")
	}

	categoryID, err := h.blogsService.CreateCategory(c, req, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_category")
	}

	log.Info(log.Fields{
		"request_id":  requestID,
		"category_id": categoryID,
		"user_id":     user.ID,
	}, "[BlogsHandler][HandleAddCategory] Category created")

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, "/category/")
	}
}

func (h *BlogsHandler) HandleListCategories(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	categories, err := h.blogsService.GetAllCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_categories")
	}

	if len(categories) == 0 {
		return errHandler.HandleRedirect(ctx, "/add_category/")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageDisplayCategory, fiber.Map{
			"Title":      "Categories",
			"Categories": categories,
		})
	}
}

func (h *BlogsHandler) HandleDeleteCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_category_id")
	}

	if err := h.blogsService.DeleteCategory(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirectWithFlash(ctx, "/category/", session.FlashInfo, "Category Deleted..")
	}
}
