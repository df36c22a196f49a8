package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"law_site_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed html/*.html
var files embed.FS

// sanitizer cleans CMS-sourced HTML before it is marked safe for a template.
var sanitizer = bluemonday.UGCPolicy()

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates with the shared func map.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// safeHTML sanitizes CMS rich text and marks it renderable.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(sanitizer.Sanitize(s))
		},
		"t": func(lang, key string) string {
			return i18n.Translate(lang, key)
		},
		"formatDate": func(t time.Time, lang string) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		"stars": func(rating int) string {
			if rating < 0 {
				rating = 0
			}
			if rating > 5 {
				rating = 5
			}
			return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
		},
	}

	t, err := template.New("").Funcs(funcMap).ParseFS(files, "html/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
