package rest

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/powersector-desk/internal/backend"
	"github.com/daniilsolovey/powersector-desk/internal/charts"
	"github.com/daniilsolovey/powersector-desk/internal/textfmt"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"markdown": func(s string) template.HTML {
		return template.HTML(textfmt.HTML(s)) // #nosec G203 -- raw HTML is dropped by the renderer
	},
	"summary": func(s string) template.HTML {
		return template.HTML(textfmt.SafeHTML(s)) // #nosec G203
	},
	"sentiments": func() []backend.Sentiment { return backend.Sentiments },
	"fields": func() []backend.Field {
		return []backend.Field{backend.FieldURL, backend.FieldAuthor, backend.FieldSource}
	},
	"inc":      func(i int) int { return i + 1 },
	"truncate": charts.Truncate,
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		templates: template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")),
	}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
