package blogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID           int64          `db:"id"`
	Title        sql.NullString `db:"title"`
	Body         sql.NullString `db:"body"`
	Image        sql.NullString `db:"image"`
	CreatedDate  time.Time      `db:"created_date"`
	WriterID     sql.NullInt64  `db:"writer_id"`
	CategoryID   sql.NullInt64  `db:"category_id"`
	WriterName   string         `db:"writer_name"`
	CategoryName string         `db:"category_name"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	createdDate := blog.CreatedDate
	if createdDate.IsZero() {
		createdDate = time.Now().UTC()
	}

	argsKV := map[string]interface{}{
		"title":        blog.Title,
		"body":         blog.Body,
		"image":        blog.Image,
		"created_date": createdDate,
		"writer_id":    blog.WriterID,
		"category_id":  blog.CategoryID,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		mapped := mapWriteError(err)
		if mapped != err {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("CreateBlog rejected by constraint")
			return 0, mapped
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return 0, err
	}

	return id, nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.BlogView{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
			}).Warn("GetBlogByID no rows found")
			return entity.BlogView{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.BlogView{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context) ([]entity.BlogView, error) {
	return r.selectBlogs(ctx, queryGetAllBlogs, map[string]interface{}{}, "GetAllBlogs")
}

func (r *blogsRepository) GetBlogsByCategory(ctx context.Context, categoryID int64) ([]entity.BlogView, error) {
	argsKV := map[string]interface{}{
		"category_id": categoryID,
	}
	return r.selectBlogs(ctx, queryGetBlogsByCategory, argsKV, "GetBlogsByCategory")
}

func (r *blogsRepository) selectBlogs(ctx context.Context, namedQuery string, argsKV map[string]interface{}, op string) ([]entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	result := make([]entity.BlogView, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, id int64, title string, body string) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":    id,
		"title": title,
		"body":  body,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		mapped := mapWriteError(err)
		if mapped != err {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("UpdateBlog rejected by constraint")
			return mapped
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	return r.expectOneRow(result, requestID, "UpdateBlog", blogs.ErrBlogNotFound)
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	return r.expectOneRow(result, requestID, "DeleteBlog", blogs.ErrBlogNotFound)
}

func (r *blogsRepository) expectOneRow(result sql.Result, requestID string, op string, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " failed to get rows affected")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(op + " no rows affected")
		return notFound
	}

	return nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.BlogView {
	return entity.BlogView{
		Blog: entity.Blog{
			ID:          blog.ID,
			Title:       blog.Title.String,
			Body:        blog.Body.String,
			Image:       blog.Image.String,
			CreatedDate: blog.CreatedDate,
			WriterID:    blog.WriterID.Int64,
			CategoryID:  blog.CategoryID.Int64,
		},
		WriterName:   blog.WriterName,
		CategoryName: blog.CategoryName,
	}
}
