package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines report data access interface
type Repository interface {
	Create(ctx context.Context, r *Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*Report, error)
	// Update persists r's mutable fields. The store refuses updates to
	// deleted rows; those return ErrReportDeleted.
	Update(ctx context.Context, r *Report) error
	// SoftDelete marks the report deleted, keeping the row for audit.
	// Deleting an already deleted report is a no-op.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]Report, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Report, error)
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new report repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create creates a new report
func (r *repository) Create(ctx context.Context, rep *Report) error {
	query := `
		INSERT INTO reports (id, owner_id, type, title, description, item_category, location, date_event, photo_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		rep.ID,
		rep.OwnerID,
		rep.Type,
		rep.Title,
		rep.Description,
		rep.ItemCategory,
		rep.Location,
		rep.DateEvent,
		rep.PhotoURL,
		rep.Status,
	)
	if err != nil {
		return fmt.Errorf("report repository create: %w", err)
	}

	return nil
}

// GetByID returns report by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Report, error) {
	query := `
		SELECT id, owner_id, type, title, description, item_category, location, date_event, photo_url, status, created_at, updated_at
		FROM reports WHERE id = $1
	`
	var rep Report
	err := r.db.GetContext(ctx, &rep, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rep, nil
}

// Update updates a report, refusing to touch deleted rows
func (r *repository) Update(ctx context.Context, rep *Report) error {
	query := `
		UPDATE reports
		SET type = $2, title = $3, description = $4, item_category = $5,
		    location = $6, date_event = $7, photo_url = $8, status = $9,
		    updated_at = NOW()
		WHERE id = $1 AND status <> 'deleted'
	`

	res, err := r.db.ExecContext(ctx, query,
		rep.ID,
		rep.Type,
		rep.Title,
		rep.Description,
		rep.ItemCategory,
		rep.Location,
		rep.DateEvent,
		rep.PhotoURL,
		rep.Status,
	)
	if err != nil {
		return fmt.Errorf("report repository update: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("report repository update: %w", err)
	}
	if affected == 0 {
		return ErrReportDeleted
	}

	return nil
}

// SoftDelete marks the report as deleted
func (r *repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reports SET status = 'deleted', updated_at = NOW()
		WHERE id = $1 AND status <> 'deleted'
	`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("report repository soft delete: %w", err)
	}

	return nil
}

// ListAll returns the whole collection in store order
func (r *repository) ListAll(ctx context.Context) ([]Report, error) {
	query := `
		SELECT id, owner_id, type, title, description, item_category, location, date_event, photo_url, status, created_at, updated_at
		FROM reports ORDER BY created_at DESC
	`
	reports := []Report{}
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("report repository list all: %w", err)
	}

	return reports, nil
}

// ListByOwner returns all reports owned by the given user
func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Report, error) {
	query := `
		SELECT id, owner_id, type, title, description, item_category, location, date_event, photo_url, status, created_at, updated_at
		FROM reports WHERE owner_id = $1 ORDER BY created_at DESC
	`
	reports := []Report{}
	if err := r.db.SelectContext(ctx, &reports, query, ownerID); err != nil {
		return nil, fmt.Errorf("report repository list by owner: %w", err)
	}

	return reports, nil
}
