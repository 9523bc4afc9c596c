package auth

import (
	"net/http"

	"ProjectBlog/pkg/response"
)

var (
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "user name already exists")
	ErrEmailAlreadyExists    = response.NewError(http.StatusConflict, "email already exists")
	ErrInvalidCredentials    = response.NewError(http.StatusUnauthorized, "please check User name or password")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrValueTooLong          = response.NewError(http.StatusBadRequest, "value too long for field")
)
