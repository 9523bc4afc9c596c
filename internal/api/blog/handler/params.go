package blogsHandler

import (
	"ProjectBlog/internal/api/blog"

	"github.com/gofiber/fiber/v2"
)

func paramID(ctx *fiber.Ctx) (int64, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, blogs.ErrInvalidID
	}
	return int64(id), nil
}
