package moderation

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")
	ErrForbidden      = errors.New("action not allowed")
)
