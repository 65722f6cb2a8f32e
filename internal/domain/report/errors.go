package report

import "errors"

var (
	ErrReportNotFound    = errors.New("report not found")
	ErrReportDeleted     = errors.New("report is deleted and cannot be modified")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("action not allowed")
)
