package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davewd/folio/internal/portfolio"
	"github.com/davewd/folio/internal/preview"
)

// NewRouter creates a chi router with all API routes mounted. The API is
// read-only; there is deliberately no write surface and no auth.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(svc *portfolio.Service, resolver *preview.Resolver, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, resolver)

	r := chi.NewRouter()

	r.Get("/projects", h.Projects)
	r.Get("/projects/facets", h.Facets)
	r.Get("/timeline", h.Timeline)
	r.Get("/thoughts", h.Thoughts)
	r.Get("/reading", h.Reading)
	r.Get("/styles", h.Styles)
	r.Get("/preview", h.Preview)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
