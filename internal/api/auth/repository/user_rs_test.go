package authRepository

import (
	"context"
	"errors"
	"io"
	"testing"

	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(sqlx.NewDb(db, "postgres"), logger), mock
}

func TestCreateUser(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`INSERT INTO users \(username, email, password\)`).
		WithArgs("alice", "alice@example.com", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	id, err := client.Users.CreateUser(context.Background(), entity.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{name: "username", constraint: "users_username_key", want: auth.ErrUsernameAlreadyExists},
		{name: "email", constraint: "users_email_key", want: auth.ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO users`).
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})
			mock.ExpectRollback()

			client, err := repo.NewClient(true)
			require.NoError(t, err)

			_, err = client.Users.CreateUser(context.Background(), entity.User{Username: "alice"})
			assert.ErrorIs(t, err, tt.want)
			require.NoError(t, client.Rollback())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUserValueTooLong(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(&pq.Error{Code: "22001"})

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	_, err = client.Users.CreateUser(context.Background(), entity.User{Username: "alice"})
	assert.ErrorIs(t, err, auth.ErrValueTooLong)
}

func TestCreateUserDatabaseError(t *testing.T) {
	repo, mock := setupRepo(t)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(dbErr)

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	_, err = client.Users.CreateUser(context.Background(), entity.User{Username: "alice"})
	assert.ErrorIs(t, err, dbErr)
}

func TestGetByCredentials(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT id, username, email, password\s+FROM users\s+WHERE username = \$1 AND password = \$2`).
		WithArgs("alice", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow(int64(5), "alice", "alice@example.com", "secret"))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	user, err := client.Users.GetByCredentials(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, entity.User{ID: 5, Username: "alice", Email: "alice@example.com", Password: "secret"}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByCredentialsNoMatch(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs("alice", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	_, err = client.Users.GetByCredentials(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
			AddRow(int64(9), "bob", nil, "pw"))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	user, err := client.Users.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Empty(t, user.Email)
}
