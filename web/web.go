package web

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var views embed.FS

// NewEngine loads the embedded page templates. imageBase is prefixed to the
// stored image name of a blog when rendering it.
func NewEngine(imageBase string) *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("imageURL", func(name string) string {
		if name == "" {
			return ""
		}
		return strings.TrimSuffix(imageBase, "/") + "/" + name
	})
	engine.AddFunc("fieldError", func(errs map[string]string, field string) string {
		return errs[field]
	})

	return engine
}
