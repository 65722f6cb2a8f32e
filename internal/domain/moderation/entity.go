package moderation

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/foundit/foundit-api/internal/domain/report"
)

// SpamFlag is a single user's spam assertion against a report. A user
// may flag a given report at most once; flags are append-only until a
// moderator dismisses them in bulk.
type SpamFlag struct {
	ReportID  uuid.UUID `db:"report_id" json:"report_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FlagAggregate is the derived flag state of one report
type FlagAggregate struct {
	FlagCount int      `json:"flag_count"`
	FlaggedBy []string `json:"flagged_by"`
}

// FlagResult is returned from a flag attempt. Repeat flags are a no-op
// signaled through AlreadyFlagged, never an error.
type FlagResult struct {
	FlagCount      int  `json:"flag_count"`
	AlreadyFlagged bool `json:"already_flagged"`
}

// FlaggedReport is the moderation queue projection: a report joined
// with its flag aggregate. Not persisted, recomputed per read.
type FlaggedReport struct {
	report.Report
	FlagCount int            `db:"flag_count" json:"flag_count"`
	FlaggedBy pq.StringArray `db:"flagged_by" json:"flagged_by"`
}
