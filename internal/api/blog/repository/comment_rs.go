package blogRepository

import (
	"context"
	"database/sql"
	"errors"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CommentDB struct {
	ID         int64          `db:"id"`
	Comment    sql.NullString `db:"comment"`
	WriterID   sql.NullInt64  `db:"writer_id"`
	BlogID     sql.NullInt64  `db:"blog_id"`
	WriterName string         `db:"writer_name"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"comment":   comment.Text,
		"writer_id": comment.WriterID,
		"blog_id":   comment.BlogID,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return 0, mapWriteError(err)
	}

	return id, nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id int64) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	query, args, err := sqlx.Named(queryGetCommentByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"comment_id": id,
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, blogs.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment).Comment, nil
}

func (r *commentsRepository) GetCommentsByBlogID(ctx context.Context, blogID int64) ([]entity.CommentView, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comments []CommentDB

	query, args, err := sqlx.Named(queryGetCommentsByBlogID, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &comments, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByBlogID execution err")
		return nil, err
	}

	result := make([]entity.CommentView, 0, len(comments))
	for _, comment := range comments {
		result = append(result, r.makeComment(comment))
	}

	return result, nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteComment, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) makeComment(comment CommentDB) entity.CommentView {
	return entity.CommentView{
		Comment: entity.Comment{
			ID:       comment.ID,
			Text:     comment.Comment.String,
			WriterID: comment.WriterID.Int64,
			BlogID:   comment.BlogID.Int64,
		},
		WriterName: comment.WriterName,
	}
}
