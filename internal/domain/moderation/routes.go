package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes registers moderation endpoints on the /reports subtree.
// Flagging resolves the actor optionally so a guest attempt reaches the
// permission rules and is denied there; the queue endpoints are admin
// gated in the service as well as here.
func Routes(r chi.Router, h *Handler, optionalAuth, requireAuth, requireAdmin func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)

		r.Post("/{id}/spam", h.Flag)
	})

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(requireAdmin)

		r.Get("/flagged", h.ListFlagged)
		r.Get("/flagged/count", h.FlaggedCount)
		r.Delete("/flagged/{id}", h.ModerateDelete)
		r.Post("/{id}/dismiss-spam", h.DismissSpam)
	})
}
