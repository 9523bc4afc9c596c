package blogRepository

import (
	"errors"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:      &blogsRepository{q: sqlExecutor, log: r.log},
		Categories: &categoriesRepository{q: sqlExecutor, log: r.log},
		Comments:   &commentsRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) (int64, error)
		GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error)
		GetAllBlogs(ctx context.Context) ([]entity.BlogView, error)
		GetBlogsByCategory(ctx context.Context, categoryID int64) ([]entity.BlogView, error)
		UpdateBlog(ctx context.Context, id int64, title string, body string) error
		DeleteBlog(ctx context.Context, id int64) error
	}

	Categories interface {
		CreateCategory(ctx context.Context, category entity.Category) (int64, error)
		GetAllCategories(ctx context.Context) ([]entity.Category, error)
		DeleteCategory(ctx context.Context, id int64) error
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) (int64, error)
		GetCommentByID(ctx context.Context, id int64) (entity.Comment, error)
		GetCommentsByBlogID(ctx context.Context, blogID int64) ([]entity.CommentView, error)
		DeleteComment(ctx context.Context, id int64) error
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

// mapWriteError turns postgres constraint failures into domain errors.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505":
		if pqErr.Constraint == "blogs_title_key" {
			return blogs.ErrTitleAlreadyExists
		}
	case "22001":
		return blogs.ErrValueTooLong
	}

	return err
}
