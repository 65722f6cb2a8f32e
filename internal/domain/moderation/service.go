package moderation

import (
	"context"

	"github.com/google/uuid"

	"github.com/foundit/foundit-api/internal/domain/report"
	"github.com/foundit/foundit-api/internal/pkg/identity"
)

// Service orchestrates community flagging and the admin moderation
// workflow. Policy lives in the report permission rules; this service
// resolves the report, asks those rules, then drives the flag store.
type Service struct {
	flags   Repository
	reports report.Repository
}

// NewService creates moderation service
func NewService(flags Repository, reports report.Repository) *Service {
	return &Service{flags: flags, reports: reports}
}

// Flag records actor's spam assertion against a report. Repeat flags
// from the same user are a no-op reported via AlreadyFlagged.
func (s *Service) Flag(ctx context.Context, actor identity.Actor, reportID uuid.UUID) (*FlagResult, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}
	if !report.Can(actor, rep, report.ActionView) {
		return nil, ErrForbidden
	}
	if !report.Can(actor, rep, report.ActionFlag) {
		return nil, ErrForbidden
	}

	inserted, err := s.flags.InsertFlag(ctx, reportID, actor.UserID)
	if err != nil {
		return nil, err
	}

	agg, err := s.flags.Aggregate(ctx, reportID)
	if err != nil {
		return nil, err
	}

	return &FlagResult{
		FlagCount:      agg.FlagCount,
		AlreadyFlagged: !inserted,
	}, nil
}

// Aggregate returns the flag state of one report, admin only
func (s *Service) Aggregate(ctx context.Context, actor identity.Actor, reportID uuid.UUID) (*FlagAggregate, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, ErrReportNotFound
	}
	if !report.Can(actor, rep, report.ActionModerate) {
		return nil, ErrForbidden
	}

	return s.flags.Aggregate(ctx, reportID)
}

// DismissSpam clears every flag on the report. Dismissing an already
// clean report succeeds as a no-op.
func (s *Service) DismissSpam(ctx context.Context, actor identity.Actor, reportID uuid.UUID) error {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if rep == nil {
		return ErrReportNotFound
	}
	if !report.Can(actor, rep, report.ActionModerate) {
		return ErrForbidden
	}

	return s.flags.DeleteFlags(ctx, reportID)
}

// ModerateDelete soft deletes a report from the moderation queue. The
// row and its historical flags stay queryable by admins for audit.
func (s *Service) ModerateDelete(ctx context.Context, actor identity.Actor, reportID uuid.UUID) error {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if rep == nil {
		return ErrReportNotFound
	}
	if !report.Can(actor, rep, report.ActionModerate) && !report.Can(actor, rep, report.ActionDelete) {
		return ErrForbidden
	}
	if rep.Status == report.StatusDeleted {
		return nil
	}

	return s.reports.SoftDelete(ctx, reportID)
}

// ListFlagged returns the moderation queue, admin only. The queue is
// recomputed from the store on each call rather than cached.
func (s *Service) ListFlagged(ctx context.Context, actor identity.Actor) ([]FlaggedReport, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	return s.flags.ListFlagged(ctx)
}

// FlaggedCount is the pending-moderation badge value, derived from the
// queue length on demand so it never drifts from the store.
func (s *Service) FlaggedCount(ctx context.Context, actor identity.Actor) (int, error) {
	flagged, err := s.ListFlagged(ctx, actor)
	if err != nil {
		return 0, err
	}
	return len(flagged), nil
}
