// Package web serves the server-rendered pages of both front-ends.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"shopfront/pkg/logger"

	"github.com/shopspring/decimal"
)

//go:embed templates static
var assets embed.FS

// Renderer executes page templates that share one layout.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"money": func(price float64) string {
		return decimal.NewFromFloat(price).StringFixed(2)
	},
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}

// NewRenderer parses templates/<app>/layout.html together with every other
// page of the app. Pages are looked up by file name without extension.
func NewRenderer(app string) (*Renderer, error) {
	dir := path.Join("templates", app)
	entries, err := fs.ReadDir(assets, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates for %s: %w", app, err)
	}

	layout := path.Join(dir, "layout.html")
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, e := range entries {
		if e.IsDir() || e.Name() == "layout.html" {
			continue
		}
		page := path.Join(dir, e.Name())
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(assets, layout, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.pages[e.Name()[:len(e.Name())-len(path.Ext(e.Name()))]] = t
	}
	return r, nil
}

// Render writes the page with status. Execution happens into a buffer so a
// template error never leaves a half-written page.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := rd.pages[page]
	if !ok {
		logger.WithContext(r.Context()).Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// StaticHandler serves the embedded stylesheet under /static/.
func StaticHandler() http.Handler {
	sub, _ := fs.Sub(assets, "static")
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
