package api

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/userhub/userhub/web"
)

// Renderer adapts the embedded html/template views to echo's Renderer
// interface. Templates are addressed by file name, e.g. "login.html".
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
