package blogs

import (
	"net/http"

	"ProjectBlog/pkg/response"
)

var (
	ErrBlogNotFound       = response.NewError(http.StatusNotFound, "blog not found")
	ErrCategoryNotFound   = response.NewError(http.StatusNotFound, "category not found")
	ErrCommentNotFound    = response.NewError(http.StatusNotFound, "comment not found")
	ErrInvalidID          = response.NewError(http.StatusNotFound, "page not found")
	ErrTitleAlreadyExists = response.NewError(http.StatusConflict, "blog title already exists")
	ErrInvalidCategory    = response.NewError(http.StatusBadRequest, "category must be a number")
	ErrValueTooLong       = response.NewError(http.StatusBadRequest, "value too long for field")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to store image")
)
