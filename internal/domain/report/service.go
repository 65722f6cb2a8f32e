package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/pkg/identity"
)

// PhotoStore removes stored report photos by their public URL
type PhotoStore interface {
	Remove(ctx context.Context, url string) error
}

// Service handles report business logic. Every entry point takes the
// acting identity and consults the permission rules before touching
// the store.
type Service struct {
	repo   Repository
	photos PhotoStore // nil disables blob cleanup
}

// NewService creates report service
func NewService(repo Repository, photos PhotoStore) *Service {
	return &Service{repo: repo, photos: photos}
}

// Create submits a new report. Guests may submit; their reports carry
// a null owner.
func (s *Service) Create(ctx context.Context, actor identity.Actor, req *CreateRequest) (*Report, error) {
	if !Can(actor, nil, ActionCreate) {
		return nil, ErrForbidden
	}

	dateEvent, err := req.ParseDate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rep := &Report{
		ID:           uuid.New(),
		OwnerID:      actor.NullOwner(),
		Type:         Type(req.Type),
		Title:        req.Title,
		Description:  req.Description,
		ItemCategory: req.ItemCategory,
		Location:     req.Location,
		DateEvent:    dateEvent,
		PhotoURL:     req.PhotoURL,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return nil, err
	}

	return rep, nil
}

// Get returns a single report, subject to the view rule
func (s *Service) Get(ctx context.Context, actor identity.Actor, id uuid.UUID) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}
	if !Can(actor, rep, ActionView) {
		return nil, ErrForbidden
	}
	return rep, nil
}

// Update applies a partial edit. Deleted reports are immutable for
// everyone, admins included.
func (s *Service) Update(ctx context.Context, actor identity.Actor, id uuid.UUID, req *UpdateRequest) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}
	if rep.Status == StatusDeleted {
		return nil, ErrReportDeleted
	}
	if !Can(actor, rep, ActionEdit) {
		return nil, ErrForbidden
	}

	oldPhotoURL := rep.PhotoURL

	if req.Type != nil {
		rep.Type = Type(*req.Type)
	}
	if req.Title != nil {
		rep.Title = *req.Title
	}
	if req.Description != nil {
		rep.Description = *req.Description
	}
	if req.ItemCategory != nil {
		rep.ItemCategory = *req.ItemCategory
	}
	if req.Location != nil {
		rep.Location = *req.Location
	}
	if req.DateEvent != nil {
		dateEvent, err := time.Parse(DateLayout, *req.DateEvent)
		if err != nil {
			return nil, err
		}
		rep.DateEvent = dateEvent
	}
	if req.PhotoURL != nil {
		rep.PhotoURL = *req.PhotoURL
	}
	if req.Status != nil {
		next := Status(*req.Status)
		if !CanTransition(rep.Status, next) {
			return nil, ErrInvalidTransition
		}
		rep.Status = next
	}

	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}

	// Replaced photos leave an orphaned blob behind; clean it up best
	// effort once the row is durably updated.
	if s.photos != nil && oldPhotoURL != "" && rep.PhotoURL != oldPhotoURL {
		if err := s.photos.Remove(ctx, oldPhotoURL); err != nil {
			log.Warn().Err(err).Str("photo_url", oldPhotoURL).Msg("failed to remove replaced photo")
		}
	}

	return rep, nil
}

// Delete soft deletes a report. Deleting an already deleted report
// succeeds as a no-op so retries after a timeout are safe.
func (s *Service) Delete(ctx context.Context, actor identity.Actor, id uuid.UUID) error {
	rep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rep == nil {
		return ErrReportNotFound
	}
	if !Can(actor, rep, ActionDelete) {
		return ErrForbidden
	}
	if rep.Status == StatusDeleted {
		return nil
	}

	return s.repo.SoftDelete(ctx, id)
}

// List returns the filtered, paginated browse view. The full visible
// collection is fetched and filtered in memory; the dataset is small
// and bounded, and this keeps filter semantics in one place.
func (s *Service) List(ctx context.Context, actor identity.Actor, filter Filter, page, pageSize int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := Apply(filter, Visible(actor, all))

	return &ListResult{
		Items:      Page(filtered, page, pageSize),
		Total:      len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(filtered), pageSize),
	}, nil
}

// Mine returns the actor's own reports, still subject to the view rule
func (s *Service) Mine(ctx context.Context, actor identity.Actor) ([]Report, error) {
	if actor.IsGuest() {
		return nil, ErrForbidden
	}

	own, err := s.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	return Visible(actor, own), nil
}

// Filters returns the distinct values for the browse dropdowns,
// derived on demand from the actor's visible collection
func (s *Service) Filters(ctx context.Context, actor identity.Actor) (*FiltersResponse, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := Visible(actor, all)

	return &FiltersResponse{
		Types:      DistinctTypes(visible),
		Statuses:   DistinctStatuses(visible),
		Categories: DistinctCategories(visible),
	}, nil
}
