package blogsHandler

import (
	blogService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	blogsService blogService.IBlogsService
	validator    *validator.Validate
	middleware   middleware.Middleware
	sessions     session.ISession
}

func New(
	log *logrus.Logger,
	bs blogService.IBlogsService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	sessions session.ISession) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		blogsService: bs,
		validator:    validate,
		middleware:   middleware,
		sessions:     sessions,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	srv.Get("/", h.HandleHome)

	srv.Get("/add_category/", h.HandleAddCategoryForm)
	srv.Post("/add_category/", h.HandleAddCategory)
	srv.Get("/category/", h.HandleListCategories)
	srv.Get("/delete_category/:id/", h.HandleDeleteCategory)

	srv.Get("/add_blog/", h.HandleAddBlogForm)
	srv.Post("/add_blog/", h.HandleAddBlog)
	srv.Get("/view_blog/", h.HandleViewBlogs)
	srv.Get("/detail_blog/:id/", h.HandleDetailBlog)
	srv.Post("/detail_blog/:id/", h.HandleAddComment)
	srv.Get("/edit_blog/:id/", h.HandleEditBlogForm)
	srv.Post("/edit_blog/:id/", h.HandleEditBlog)
	srv.Get("/delete_blog/:id/", h.HandleDeleteBlog)
	srv.Get("/category_blog/:id/", h.HandleBlogsByCategory)

	srv.Get("/delete_comment/:id/", h.HandleDeleteComment)
}
