package moderation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines spam flag data access interface
type Repository interface {
	// InsertFlag records a flag unless this user already flagged the
	// report. Returns false when the flag already existed.
	InsertFlag(ctx context.Context, reportID, userID uuid.UUID) (bool, error)
	Aggregate(ctx context.Context, reportID uuid.UUID) (*FlagAggregate, error)
	// DeleteFlags removes every flag on the report in one statement.
	DeleteFlags(ctx context.Context, reportID uuid.UUID) error
	// ListFlagged returns all non-deleted reports carrying at least one
	// flag, most flagged first, oldest report first on ties.
	ListFlagged(ctx context.Context) ([]FlaggedReport, error)
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new moderation repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// InsertFlag upserts a spam flag
func (r *repository) InsertFlag(ctx context.Context, reportID, userID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO spam_flags (report_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (report_id, user_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query, reportID, userID)
	if err != nil {
		return false, fmt.Errorf("moderation repository insert flag: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("moderation repository insert flag: %w", err)
	}

	return affected > 0, nil
}

// Aggregate derives the flag count and flagging usernames for a report
func (r *repository) Aggregate(ctx context.Context, reportID uuid.UUID) (*FlagAggregate, error) {
	query := `
		SELECT u.username
		FROM spam_flags f
		JOIN users u ON u.id = f.user_id
		WHERE f.report_id = $1
		ORDER BY f.created_at ASC
	`

	usernames := []string{}
	if err := r.db.SelectContext(ctx, &usernames, query, reportID); err != nil {
		return nil, fmt.Errorf("moderation repository aggregate: %w", err)
	}

	return &FlagAggregate{
		FlagCount: len(usernames),
		FlaggedBy: usernames,
	}, nil
}

// DeleteFlags clears all flags on a report
func (r *repository) DeleteFlags(ctx context.Context, reportID uuid.UUID) error {
	query := `DELETE FROM spam_flags WHERE report_id = $1`

	if _, err := r.db.ExecContext(ctx, query, reportID); err != nil {
		return fmt.Errorf("moderation repository delete flags: %w", err)
	}

	return nil
}

// ListFlagged returns the moderation queue
func (r *repository) ListFlagged(ctx context.Context) ([]FlaggedReport, error) {
	query := `
		SELECT r.id, r.owner_id, r.type, r.title, r.description, r.item_category,
		       r.location, r.date_event, r.photo_url, r.status, r.created_at, r.updated_at,
		       COUNT(f.user_id) AS flag_count,
		       array_agg(u.username ORDER BY f.created_at ASC) AS flagged_by
		FROM reports r
		JOIN spam_flags f ON f.report_id = r.id
		JOIN users u ON u.id = f.user_id
		WHERE r.status <> 'deleted'
		GROUP BY r.id
		ORDER BY flag_count DESC, r.created_at ASC
	`

	flagged := []FlaggedReport{}
	if err := r.db.SelectContext(ctx, &flagged, query); err != nil {
		return nil, fmt.Errorf("moderation repository list flagged: %w", err)
	}

	return flagged, nil
}
