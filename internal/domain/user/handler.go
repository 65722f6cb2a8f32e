package user

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/pkg/response"
)

// Handler handles user management HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates a new user handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		response.Unavailable(w, "User directory is temporarily unavailable")
		return
	}

	response.OK(w, users)
}
