package blogRepository

import (
	"context"
	"database/sql"

	"ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID       int64          `db:"id"`
	Name     sql.NullString `db:"name"`
	WriterID sql.NullInt64  `db:"writer_id"`
}

func (r *categoriesRepository) CreateCategory(ctx context.Context, category entity.Category) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"name":      category.Name,
		"writer_id": category.WriterID,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating category")
		return 0, mapWriteError(err)
	}

	return id, nil
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categories []CategoryDB

	query := r.q.Rebind(queryGetAllCategories)

	if err := r.q.SelectContext(ctx, &categories, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, entity.Category{
			ID:       category.ID,
			Name:     category.Name.String,
			WriterID: category.WriterID.Int64,
		})
	}

	return result, nil
}

// DeleteCategory leaves blogs of the category in place.
func (r *categoriesRepository) DeleteCategory(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteCategory, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteCategory execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": id,
		}).Warn("DeleteCategory no rows affected")
		return blogs.ErrCategoryNotFound
	}

	return nil
}
