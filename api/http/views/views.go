package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var files embed.FS

// New returns the HTML engine over the embedded pages. Templates are named
// after their file without the .html suffix; partials.html holds the shared blocks.
func New() *html.Engine {
	pages, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(pages), ".html")
}
