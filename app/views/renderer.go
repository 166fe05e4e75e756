package views

import (
	"html/template"
	"net/http"
	"path/filepath"
)

// Renderer turns a template name and a data structure into an HTML response.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

// TemplateRenderer renders html/template files parsed once at startup.
type TemplateRenderer struct {
	templates *template.Template
}

// New parses every .html file under dir.
func New(dir string) (*TemplateRenderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render writes the named template to w.
func (tr *TemplateRenderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tr.templates.ExecuteTemplate(w, name, data)
}
