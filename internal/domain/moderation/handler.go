package moderation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/middleware"
	"github.com/foundit/foundit-api/internal/pkg/response"
)

// Handler handles moderation HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates moderation handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Flag handles POST /reports/{id}/spam
func (h *Handler) Flag(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	result, err := h.service.Flag(r.Context(), actor, id)
	if err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "You cannot flag this report")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to flag report")
			response.Unavailable(w, "Flagging is temporarily unavailable")
		}
		return
	}

	response.OK(w, result)
}

// DismissSpam handles POST /reports/{id}/dismiss-spam
func (h *Handler) DismissSpam(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	if err := h.service.DismissSpam(r.Context(), actor, id); err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "Only administrators can dismiss flags")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to dismiss spam flags")
			response.Unavailable(w, "Moderation is temporarily unavailable")
		}
		return
	}

	response.NoContent(w)
}

// ModerateDelete handles DELETE /reports/flagged/{id}
func (h *Handler) ModerateDelete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	if err := h.service.ModerateDelete(r.Context(), actor, id); err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "Only administrators can remove reports from the queue")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to moderate delete report")
			response.Unavailable(w, "Moderation is temporarily unavailable")
		}
		return
	}

	response.NoContent(w)
}

// ListFlagged handles GET /reports/flagged
func (h *Handler) ListFlagged(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	flagged, err := h.service.ListFlagged(r.Context(), actor)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "Only administrators can view the moderation queue")
		default:
			log.Error().Err(err).Msg("failed to list flagged reports")
			response.Unavailable(w, "Moderation queue is temporarily unavailable")
		}
		return
	}

	response.OK(w, flagged)
}

// FlaggedCount handles GET /reports/flagged/count
func (h *Handler) FlaggedCount(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	count, err := h.service.FlaggedCount(r.Context(), actor)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "Only administrators can view the moderation queue")
		default:
			log.Error().Err(err).Msg("failed to count flagged reports")
			response.Unavailable(w, "Moderation queue is temporarily unavailable")
		}
		return
	}

	response.OK(w, map[string]int{"count": count})
}
