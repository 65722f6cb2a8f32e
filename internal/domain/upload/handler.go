package upload

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/pkg/response"
)

// Handler handles upload HTTP requests
type Handler struct {
	service  *Service
	maxBytes int64
}

// NewHandler creates upload handler
func NewHandler(service *Service, maxBytes int64) *Handler {
	return &Handler{service: service, maxBytes: maxBytes}
}

// Upload handles POST /upload. Expects a multipart form with a "photo"
// field and responds with the stored file's URL.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		response.BadRequest(w, "Missing photo file")
		return
	}
	defer file.Close()

	result, err := h.service.Upload(r.Context(), file)
	if err != nil {
		switch err {
		case ErrInvalidImage:
			response.BadRequest(w, "File is not a valid image")
		case ErrFileTooLarge:
			response.BadRequest(w, "File exceeds the upload size limit")
		case ErrStoreFailed:
			response.Unavailable(w, "Photo storage is temporarily unavailable")
		default:
			log.Error().Err(err).Msg("failed to upload photo")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}
