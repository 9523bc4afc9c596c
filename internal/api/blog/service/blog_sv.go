package blogService

import (
	"context"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/sirupsen/logrus"
)

// CreateBlog stores the image first and then inserts the blog. A blog that
// fails to insert leaves its image behind.
func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, userID int64, imageFile *multipart.FileHeader) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	categoryID, err := strconv.ParseInt(strings.TrimSpace(req.Category), 10, 64)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Invalid category value")
		return 0, blogs.ErrInvalidCategory
	}

	var image string
	if imageFile != nil && imageFile.Filename != "" {
		image, err = s.images.Save(ctx, imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to store image")
			return 0, blogs.ErrFailedToUpload
		}
	}

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}
	defer repo.Rollback()

	id, err := repo.Blogs.CreateBlog(ctx, entity.Blog{
		Title:       req.Title,
		Body:        req.Body,
		Image:       image,
		CreatedDate: time.Now().UTC(),
		WriterID:    userID,
		CategoryID:  categoryID,
	})
	if err != nil {
		return 0, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"blog_id":     id,
		"category_id": categoryID,
		"image":       image,
	}).Info("Blog created")

	return id, nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Blogs.GetAllBlogs(ctx)
}

func (s *blogsService) GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.BlogView{}, err
	}

	return repo.Blogs.GetBlogByID(ctx, id)
}

func (s *blogsService) GetBlogDetail(ctx context.Context, id int64) (blogs.BlogDetail, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogDetail{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return blogs.BlogDetail{}, err
	}

	comments, err := repo.Comments.GetCommentsByBlogID(ctx, id)
	if err != nil {
		return blogs.BlogDetail{}, err
	}

	return blogs.BlogDetail{Blog: blog, Comments: comments}, nil
}

func (s *blogsService) GetBlogsByCategory(ctx context.Context, categoryID int64) ([]entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Blogs.GetBlogsByCategory(ctx, categoryID)
}

func (s *blogsService) UpdateBlog(ctx context.Context, id int64, req blogs.UpdateBlogRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Blogs.UpdateBlog(ctx, id, req.Title, req.Body); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog updated")

	return nil
}

// DeleteBlog removes only the blog row. Its comments stay behind.
func (s *blogsService) DeleteBlog(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
	}).Info("Blog deleted")

	return nil
}
