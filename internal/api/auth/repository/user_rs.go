package authRepository

import (
	"context"
	"database/sql"
	"errors"

	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID       int64          `db:"id"`
	Username sql.NullString `db:"username"`
	Email    sql.NullString `db:"email"`
	Password sql.NullString `db:"password"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) (int64, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"password": user.Password,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			switch pqErr.Constraint {
			case "users_username_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Username already exists")
				return 0, auth.ErrUsernameAlreadyExists
			case "users_email_key":
				r.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Email already exists")
				return 0, auth.ErrEmailAlreadyExists
			}
		}
		if errors.As(err, &pqErr) && pqErr.Code == "22001" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("User field exceeds column size")
			return 0, auth.ErrValueTooLong
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")

		return 0, err
	}

	return id, nil
}

// GetByCredentials matches username and password verbatim.
func (r *userRepository) GetByCredentials(c context.Context, username string, password string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"username": username,
		"password": password,
	}

	return r.getOne(c, requestID, queryGetByCredentials, argsKV, "GetByCredentials")
}

func (r *userRepository) GetByID(c context.Context, id int64) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"id": id,
	}

	return r.getOne(c, requestID, queryGetByID, argsKV, "GetByID")
}

func (r *userRepository) getOne(c context.Context, requestID string, namedQuery string, argsKV map[string]interface{}, op string) (entity.User, error) {
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn(op + " no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return entity.User{}, err
	}

	return r.makeUser(user), nil
}

func (r *userRepository) makeUser(user UserDB) entity.User {
	return entity.User{
		ID:       user.ID,
		Username: user.Username.String,
		Email:    user.Email.String,
		Password: user.Password.String,
	}
}
