package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers report endpoints on the /reports subtree. Public
// endpoints resolve the actor optionally so guests can browse and
// submit; /mine requires a session.
func Routes(r chi.Router, h *Handler, optionalAuth, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/filters", h.Filters)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/mine", h.Mine)
	})
}
