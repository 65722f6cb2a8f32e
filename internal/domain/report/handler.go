package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/middleware"
	"github.com/foundit/foundit-api/internal/pkg/response"
	"github.com/foundit/foundit-api/internal/pkg/validator"
)

// Handler handles report HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /reports
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	filter := Filter{
		Type:     r.URL.Query().Get("type"),
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
	}
	if filter.Type != "" && !IsValidType(filter.Type) {
		response.BadRequest(w, "Unknown report type")
		return
	}
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		response.BadRequest(w, "Unknown report status")
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", DefaultPageSize)

	result, err := h.service.List(r.Context(), actor, filter, page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reports")
		response.Unavailable(w, "Report listing is temporarily unavailable")
		return
	}

	response.WithMeta(w, result.Items, response.Meta{
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.PageSize,
		Pages:   result.TotalPages,
		HasNext: result.Page < result.TotalPages,
		HasPrev: result.Page > 1 && result.Total > 0,
	})
}

// Create handles POST /reports
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}
	if _, err := req.ParseDate(); err != nil {
		response.ValidationError(w, map[string]string{"date_event": "must be a date in YYYY-MM-DD format"})
		return
	}

	rep, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "You cannot create reports")
		default:
			log.Error().Err(err).Msg("failed to create report")
			response.InternalError(w)
		}
		return
	}

	response.Created(w, rep)
}

// Get handles GET /reports/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	rep, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "You cannot view this report")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to get report")
			response.Unavailable(w, "Report is temporarily unavailable")
		}
		return
	}

	response.OK(w, rep)
}

// Update handles PATCH /reports/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	var req UpdateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}
	if req.DateEvent != nil {
		if _, err := time.Parse(DateLayout, *req.DateEvent); err != nil {
			response.ValidationError(w, map[string]string{"date_event": "must be a date in YYYY-MM-DD format"})
			return
		}
	}

	rep, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "You cannot edit this report")
		case ErrReportDeleted:
			response.Conflict(w, "Deleted reports cannot be modified")
		case ErrInvalidTransition:
			response.Conflict(w, "Invalid status transition")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to update report")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, rep)
}

// Delete handles DELETE /reports/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		switch err {
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrForbidden:
			response.Forbidden(w, "You cannot delete this report")
		default:
			log.Error().Err(err).Str("report_id", id.String()).Msg("failed to delete report")
			response.InternalError(w)
		}
		return
	}

	response.NoContent(w)
}

// Mine handles GET /reports/mine
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	reports, err := h.service.Mine(r.Context(), actor)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Forbidden(w, "Sign in to see your reports")
		default:
			log.Error().Err(err).Msg("failed to list own reports")
			response.Unavailable(w, "Report listing is temporarily unavailable")
		}
		return
	}

	response.OK(w, reports)
}

// Filters handles GET /reports/filters
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	filters, err := h.service.Filters(r.Context(), actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to derive filter values")
		response.Unavailable(w, "Filter values are temporarily unavailable")
		return
	}

	response.OK(w, filters)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
