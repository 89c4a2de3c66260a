// Package web serves the catalog page: a server-rendered Bootstrap view over the package API.
//
// # Routes
//
//	GET /        → filter form, refresh alert, error banner or result table, pagination
//	GET /healthz → "ok"
//
// Every request to / runs one [catalog.Adapter] load: the optional refresh followed by the listing call.
// Upstream failures are rendered into the page and never turn into an HTTP error; a 500 only means
// the template itself failed.
//
// The page template is embedded and parsed once by [NewHandler]. Links are taken verbatim from
// [catalog.LinkState] and [catalog.Pagination], so the page only decides layout.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/models"
	"github.com/desertthunder/wgx/internal/server"
	"github.com/desertthunder/wgx/internal/shared"
)

//go:embed templates/*.html
var templates embed.FS

// Catalog is the part of [catalog.Adapter] the page depends on.
type Catalog interface {
	Load(ctx context.Context, values url.Values) *catalog.Page
	Routes() catalog.APIRoutes
}

var _ Catalog = (*catalog.Adapter)(nil)
var _ server.Handler = (*Handler)(nil)

// Handler renders the catalog page.
type Handler struct {
	catalog Catalog
	logger  *log.Logger
	tmpl    *template.Template
}

type view struct {
	*catalog.Page
	Routes      catalog.APIRoutes
	Sorts       []models.Sort
	MinPageSize int
	MaxPageSize int
}

// NewHandler parses the embedded templates. A nil logger falls back to a stderr logger.
func NewHandler(c Catalog, logger *log.Logger) (*Handler, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{catalog: c, logger: logger, tmpl: tmpl}, nil
}

// Routes returns the HTTP routes this handler serves.
func (h *Handler) Routes() []server.Route {
	return []server.Route{
		{Method: http.MethodGet, Pattern: "/{$}"},
		{Method: http.MethodGet, Pattern: "/healthz"},
	}
}

// ServeHTTP handles the page and health check requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/healthz" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok")
		return
	}
	h.index(w, r)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page := h.catalog.Load(r.Context(), r.URL.Query())

	data := view{
		Page:        page,
		Routes:      h.catalog.Routes(),
		Sorts:       models.Sorts,
		MinPageSize: catalog.MinPageSize,
		MaxPageSize: catalog.MaxPageSize,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("failed to render page", "id", server.RequestID(r.Context()), "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
