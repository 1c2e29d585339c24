// Package web renders the character browser as server-side HTML.
//
// Templates and static assets are embedded in the binary. The index page
// receives exactly four values: the characters, the resolved offset, the
// search term and the attribution markup.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"herodex/internal/browse"
	"herodex/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only text a client sees when a page cannot be produced.
const ErrorBody = "Internal Server error occurred"

// IndexTemplate is the name of the page template.
const IndexTemplate = "index"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// IndexView is the render context of the index template.
type IndexView struct {
	Characters  []catalog.Character
	Offset      int
	SearchTerm  string
	Attribution template.HTML
}

// NewIndexView maps a catalog page and the resolved browse state onto the
// template context. The attribution is upstream-supplied markup and is
// rendered unescaped.
func NewIndexView(page *catalog.CharacterPage, state browse.State) IndexView {
	return IndexView{
		Characters:  page.Characters,
		Offset:      state.Offset,
		SearchTerm:  state.SearchTerm,
		Attribution: template.HTML(page.AttributionHTML),
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded static assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return http.FS(sub)
}

// SetupRoutes installs the templates, the index page and the static assets.
func SetupRoutes(router *gin.Engine, source Source, pageSize int) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	h := NewHandler(source, pageSize)
	router.GET("/", h.Index)
	router.StaticFS("/static", Static())
	return nil
}
