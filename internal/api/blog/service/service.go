package blogService

import (
	"context"
	"mime/multipart"

	"ProjectBlog/internal/api/blog"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/upload"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateCategory(ctx context.Context, req blogs.CreateCategoryRequest, userID int64) (int64, error)
	GetAllCategories(ctx context.Context) ([]entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID int64, imageFile *multipart.FileHeader) (int64, error)
	GetAllBlogs(ctx context.Context) ([]entity.BlogView, error)
	GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error)
	GetBlogDetail(ctx context.Context, id int64) (blogs.BlogDetail, error)
	GetBlogsByCategory(ctx context.Context, categoryID int64) ([]entity.BlogView, error)
	UpdateBlog(ctx context.Context, id int64, req blogs.UpdateBlogRequest) error
	DeleteBlog(ctx context.Context, id int64) error

	AddComment(ctx context.Context, blogID int64, req blogs.CreateCommentRequest, userID int64) (int64, error)
	DeleteComment(ctx context.Context, id int64) (int64, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	images    upload.ItfUploader
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	images upload.ItfUploader,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		images:    images,
	}
}
