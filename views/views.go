package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"path"

	"github.com/dcode-github/property_listing_app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Page is the data every template receives.
type Page struct {
	User     string
	Flashes  []string
	Status   int
	Message  string
	Username string

	Properties []models.Property
	Featured   []models.Property
	Types      []models.PropertyType
	Property   *models.Property
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page Page) error
}

// Templates renders pages from the embedded templates, each parsed together
// with the shared layout.
type Templates struct {
	pages map[string]*template.Template
}

func New() (*Templates, error) {
	funcs := template.FuncMap{
		"first": func(urls []string) string {
			if len(urls) == 0 {
				return ""
			}
			return urls[0]
		},
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		tmpl, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[path.Base(name)] = tmpl
	}
	return &Templates{pages: pages}, nil
}

// Render executes the page into a buffer first so a template error never
// produces a half-written response.
func (t *Templates) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}

	page.Status = status
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing %s response: %v", name, err)
	}
	return nil
}
