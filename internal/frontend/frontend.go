// Package frontend serves the notebook-listing pages. Exported notebooks
// are standalone HTML files dropped into the notebook directory under the
// template dir; the index lists them by base name.
package frontend

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/nbportal/portal/internal/api/httperr"
	"github.com/nbportal/portal/internal/config"
	"github.com/nbportal/portal/internal/metrics"
	"github.com/nbportal/portal/pkg/logger"
)

const indexTemplate = "notebooks.html"

// Blueprint serves the notebook frontend route group.
type Blueprint struct {
	log         *logger.Logger
	templateDir string
	notebookDir string
}

// New returns the frontend blueprint for the configured paths.
func New(paths config.PathsConfig, log *logger.Logger) *Blueprint {
	if log == nil {
		log = logger.Discard()
	}
	return &Blueprint{
		log:         log,
		templateDir: paths.TemplateDir,
		notebookDir: filepath.Join(paths.TemplateDir, paths.NotebookSubdir),
	}
}

func (b *Blueprint) Name() string { return "frontend" }

// Register attaches the notebook routes.
func (b *Blueprint) Register(r *mux.Router) {
	r.Handle("/notebooks", httperr.HandlerFunc(b.index)).Methods(http.MethodGet)
	r.Handle("/notebooks/{name}", httperr.HandlerFunc(b.show)).Methods(http.MethodGet)
}

// index renders the listing page with every notebook name found in the
// notebook directory.
func (b *Blueprint) index(w http.ResponseWriter, r *http.Request) error {
	names, err := b.list()
	if err != nil {
		b.log.WithError(err).Error("listing notebooks")
		return fmt.Errorf("list notebooks: %w", err)
	}

	tmpl, err := template.ParseFiles(filepath.Join(b.templateDir, indexTemplate))
	if err != nil {
		return fmt.Errorf("parse index template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.Execute(w, struct{ Notebooks []string }{Notebooks: names})
}

// show serves the HTML export matching the requested name, or a clean 404
// when no such export exists.
func (b *Blueprint) show(w http.ResponseWriter, r *http.Request) error {
	name := mux.Vars(r)["name"]
	if !validName(name) {
		metrics.RecordNotebookRender("rejected")
		return httperr.NotFound("")
	}

	path := filepath.Join(b.notebookDir, name+".html")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		metrics.RecordNotebookRender("missing")
		return httperr.NotFound(fmt.Sprintf("no notebook named %q", name))
	}

	metrics.RecordNotebookRender("ok")
	http.ServeFile(w, r, path)
	return nil
}

// list returns the base names, extension stripped, of the .html files in
// the notebook directory, in directory-listing order.
func (b *Blueprint) list() ([]string, error) {
	entries, err := os.ReadDir(b.notebookDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".html"))
	}
	return names, nil
}

// validName rejects path separators and dot segments so requests cannot
// escape the notebook directory.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
