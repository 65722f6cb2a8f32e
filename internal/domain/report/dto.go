package report

import (
	"time"
)

// DateLayout is the wire format for event dates
const DateLayout = "2006-01-02"

// CreateRequest represents a new report submission
type CreateRequest struct {
	Type         string `json:"type" validate:"required,report_type"`
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"required,max=2000"`
	ItemCategory string `json:"item_category" validate:"max=100"`
	Location     string `json:"location" validate:"required,max=200"`
	DateEvent    string `json:"date_event" validate:"required"`
	PhotoURL     string `json:"photo_url" validate:"omitempty,url"`
}

// ParseDate parses the event date
func (r *CreateRequest) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, r.DateEvent)
}

// UpdateRequest represents a partial edit. Nil fields are untouched.
type UpdateRequest struct {
	Type         *string `json:"type" validate:"omitempty,report_type"`
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	ItemCategory *string `json:"item_category" validate:"omitempty,max=100"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	DateEvent    *string `json:"date_event"`
	PhotoURL     *string `json:"photo_url" validate:"omitempty,url"`
	Status       *string `json:"status" validate:"omitempty,report_status"`
}

// FiltersResponse holds distinct values for the browse dropdowns
type FiltersResponse struct {
	Types      []string `json:"types"`
	Statuses   []string `json:"statuses"`
	Categories []string `json:"categories"`
}

// ListResult is a filtered page of reports with pagination totals
type ListResult struct {
	Items      []Report `json:"items"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}
