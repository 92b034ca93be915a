// Package api implements the read-only portfolio JSON API using chi.
package api

import (
	"log/slog"
	"net/http"

	"github.com/davewd/folio/internal/navigator"
	"github.com/davewd/folio/internal/portfolio"
	"github.com/davewd/folio/internal/preview"
)

// Handler holds API route handlers.
type Handler struct {
	svc      *portfolio.Service
	resolver *preview.Resolver
}

// NewHandler creates a new Handler. resolver may be nil when link previews
// are disabled.
func NewHandler(svc *portfolio.Service, resolver *preview.Resolver) *Handler {
	return &Handler{svc: svc, resolver: resolver}
}

// Projects handles GET /api/projects. The selection state (search, tags,
// status, sortKey, sortDirection) comes entirely from query parameters;
// unrecognized parameters are ignored here and preserved by the codec.
func (h *Handler) Projects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Projects(r.URL.Query()))
}

// Facets handles GET /api/projects/facets.
func (h *Handler) Facets(w http.ResponseWriter, _ *http.Request) {
	view := h.svc.Projects(nil)
	writeJSON(w, http.StatusOK, view.Facets)
}

// Timeline handles GET /api/timeline.
func (h *Handler) Timeline(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Timeline())
}

// Thoughts handles GET /api/thoughts. The "section" parameter selects the
// active thought/section; absent or unknown ids resolve to the first
// thought. With "navigate=next|prev" and "from=<thought-id>" the response is
// anchored at the adjacent thought's first section instead.
func (h *Handler) Thoughts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if dir := q.Get("navigate"); dir == navigator.Next || dir == navigator.Prev {
		writeJSON(w, http.StatusOK, h.svc.Navigate(q.Get("from"), dir))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Thoughts(q.Get("section")))
}

// Reading handles GET /api/reading.
func (h *Handler) Reading(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Reading())
}

// Styles handles GET /api/styles.
func (h *Handler) Styles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Styles())
}

// Preview handles GET /api/preview?url=. A missing resolver or any
// resolution failure yields an empty image URL, never an error status.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("url")
	if target == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'url' is required"))
		return
	}

	img := ""
	if h.resolver != nil {
		img = h.resolver.Resolve(r.Context(), target, slog.Default())
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": img})
}
