package blogs

import "ProjectBlog/internal/entity"

type CreateCategoryRequest struct {
	Name string `form:"category" validate:"required"`
}

func (CreateCategoryRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"category.required": "Please Fill the Field.",
	}
}

// CreateBlogRequest carries the text fields of the add blog form. The image
// travels separately as a multipart file.
type CreateBlogRequest struct {
	Title    string `form:"title"`
	Body     string `form:"body"`
	Category string `form:"category"`
}

type UpdateBlogRequest struct {
	Title string `form:"txttitle"`
	Body  string `form:"txtbody"`
}

type CreateCommentRequest struct {
	Text string `form:"txtcomment"`
}

type BlogDetail struct {
	Blog     entity.BlogView
	Comments []entity.CommentView
}
