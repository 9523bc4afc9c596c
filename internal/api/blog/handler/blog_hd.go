package blogsHandler

import (
	"fmt"
	"mime/multipart"
	"time"

	"ProjectBlog/internal/api/blog"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/session"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	pageDisplayBlog    = "pages/displayblog"
	pageAddBlog        = "pages/addblog"
	pageDetailBlog     = "pages/detailblog"
	pageEditBlog       = "pages/editform"
	pageBlogByCategory = "pages/blogbycategory"
)

func detailPath(id int64) string {
	return fmt.Sprintf("/detail_blog/%d/", id)
}

func (h *BlogsHandler) HandleHome(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	blogList, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs")
	}

	if len(blogList) == 0 {
		if _, ok := contextPkg.GetUser(c); ok {
			return errHandler.HandleRedirect(ctx, "/add_blog/")
		}
		return errHandler.HandleRedirect(ctx, "/Login/")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageDisplayBlog, fiber.Map{
			"Title": "Home",
			"Blogs": blogList,
		})
	}
}

func (h *BlogsHandler) HandleViewBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	blogList, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs")
	}

	if len(blogList) == 0 {
		return errHandler.HandleRedirect(ctx, "/add_blog/")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageDisplayBlog, fiber.Map{
			"Title": "Blogs",
			"Blogs": blogList,
		})
	}
}

func (h *BlogsHandler) HandleAddBlogForm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	return h.renderAddBlog(ctx, c, requestID, blogs.CreateBlogRequest{}, nil)
}

func (h *BlogsHandler) renderAddBlog(ctx *fiber.Ctx, c context.Context, requestID string, form blogs.CreateBlogRequest, fieldErrors map[string]string) error {
	errHandler := handlerUtil.New(h.log, h.sessions)

	categories, err := h.blogsService.GetAllCategories(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_categories")
	}

	data := fiber.Map{
		"Title":      "Add Blog",
		"Form":       form,
		"Categories": categories,
	}
	if fieldErrors != nil {
		return errHandler.HandleValidationError(ctx, requestID, pageAddBlog, data, fieldErrors)
	}
	return errHandler.HandlePage(ctx, fiber.StatusOK, pageAddBlog, data)
}

func (h *BlogsHandler) HandleAddBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	var req blogs.CreateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	image, ok := imagePart(ctx)
	if !ok {
		log.Debug(log.Fields{
			"request_id": requestID,
		}, "[BlogsHandler][HandleAddBlog] No image part in request")
		return h.renderAddBlog(ctx, c, requestID, req, map[string]string{
			"image": "No file part",
		})
	}

	user, ok := contextPkg.GetUser(c)
	if !ok {
		return errHandler.Handle(ctx, requestID, session.ErrSessionRequired, ctx.Path(), "create_blog")
	}

	blogID, err := h.blogsService.CreateBlog(c, req, user.ID, image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	log.Info(log.Fields{
		"request_id": requestID,
		"blog_id":    blogID,
		"user_id":    user.ID,
	}, "[BlogsHandler][HandleAddBlog] Blog created")

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirectWithFlash(ctx, "/view_blog/", session.FlashSuccess, "blog added")
	}
}

// imagePart reports whether the request carries an image part. A part sent
// without a chosen file is parsed as a plain value and yields a nil header.
func imagePart(ctx *fiber.Ctx) (*multipart.FileHeader, bool) {
	if image, err := ctx.FormFile("image"); err == nil {
		return image, true
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, false
	}
	if _, ok := form.Value["image"]; ok {
		return nil, true
	}
	return nil, false
}

func (h *BlogsHandler) HandleDetailBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_blog_id")
	}

	detail, err := h.blogsService.GetBlogDetail(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog_detail")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageDetailBlog, fiber.Map{
			"Title":    detail.Blog.Title,
			"Blog":     detail.Blog,
			"Comments": detail.Comments,
		})
	}
}

// HandleAddComment sends visitors without a session to the login page
// instead of rendering an error.
func (h *BlogsHandler) HandleAddComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_blog_id")
	}

	user, ok := contextPkg.GetUser(c)
	if !ok {
		return errHandler.HandleRedirect(ctx, "/Login/")
	}

	var req blogs.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if _, err := h.blogsService.AddComment(c, id, req, user.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_comment")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, detailPath(id))
	}
}

func (h *BlogsHandler) HandleEditBlogForm(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_blog_id")
	}

	blog, err := h.blogsService.GetBlogByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageEditBlog, fiber.Map{
			"Title": "Edit Blog",
			"Blog":  blog,
		})
	}
}

func (h *BlogsHandler) HandleEditBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_blog_id")
	}

	var req blogs.UpdateBlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.blogsService.UpdateBlog(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirect(ctx, detailPath(id))
	}
}

func (h *BlogsHandler) HandleDeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_blog_id")
	}

	if err := h.blogsService.DeleteBlog(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleRedirectWithFlash(ctx, "/view_blog/", session.FlashSuccess, "successfully deleted..")
	}
}

func (h *BlogsHandler) HandleBlogsByCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log, h.sessions)

	id, err := paramID(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_category_id")
	}

	blogList, err := h.blogsService.GetBlogsByCategory(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_blogs_by_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandlePage(ctx, fiber.StatusOK, pageBlogByCategory, fiber.Map{
			"Title": "Category",
			"Blogs": blogList,
		})
	}
}
