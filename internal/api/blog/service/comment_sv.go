package blogService

import (
	"context"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) AddComment(ctx context.Context, blogID int64, req blogs.CreateCommentRequest, userID int64) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}
	defer repo.Rollback()

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		return 0, err
	}

	id, err := repo.Comments.CreateComment(ctx, entity.Comment{
		Text:     req.Text,
		WriterID: userID,
		BlogID:   blogID,
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
		"request_id": requestID,
		"blog_id":    blogID,
		"comment_id": id,
	}).Info("Comment added")

	return id, nil
}

// DeleteComment returns the blog the comment belonged to.
func (s *blogsService) DeleteComment(ctx context.Context, id int64) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, err
	}
	defer repo.Rollback()

	comment, err := repo.Comments.GetCommentByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := repo.Comments.DeleteComment(ctx, id); err != nil {
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
		"request_id": requestID,
		"comment_id": id,
		"blog_id":    comment.BlogID,
	}).Info("Comment deleted")

	return comment.BlogID, nil
}
