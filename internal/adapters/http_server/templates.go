package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"travel_reco/internal/domain"
	"travel_reco/internal/pages"
)

//go:embed templates/*.html
var tmplFS embed.FS

var pageFiles = map[domain.Page]string{
	domain.PageHome:          "templates/home.html",
	domain.PageSearchResults: "templates/home.html",
	domain.PageAbout:         "templates/about.html",
	domain.PageContact:       "templates/contact.html",
}

var funcs = template.FuncMap{
	"imageClass": func(c domain.Category) string {
		switch c {
		case domain.CategoryBeaches:
			return "beach-image"
		case domain.CategoryTemples:
			return "temple-image"
		}
		return "city-image"
	},
}

type contactForm struct {
	Sent    bool
	Message pages.ContactMessage
	Errors  pages.FieldErrors
}

// pageData is the view model shared by every page.
type pageData struct {
	Page    domain.Page
	Title   string
	Hero    pages.Hero
	Query   string
	Results domain.ResultsView
	Contact contactForm
}

type templates struct {
	pages   map[domain.Page]*template.Template
	results *template.Template
}

func parseTemplates() (*templates, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(tmplFS, "templates/layout.html", "templates/results.html")
	if err != nil {
		return nil, fmt.Errorf("parse base templates: %w", err)
	}
	t := &templates{pages: make(map[domain.Page]*template.Template, len(pageFiles)), results: base}
	for p, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(tmplFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		t.pages[p] = clone
	}
	return t, nil
}

// render is the single dispatch from page state to HTML.
func (t *templates) render(w http.ResponseWriter, status int, d pageData) {
	tmpl, ok := t.pages[d.Page]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	t.write(w, status, tmpl, "layout", d)
}

// renderResults writes the results area alone, replacing it wholesale client-side.
func (t *templates) renderResults(w http.ResponseWriter, v domain.ResultsView) {
	t.write(w, http.StatusOK, t.results, "results", v)
}

func (t *templates) write(w http.ResponseWriter, status int, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Str("template", name).Msg("write response failed")
	}
}
