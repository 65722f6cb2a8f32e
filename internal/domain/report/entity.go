package report

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a report as a lost or a found item
type Type string

const (
	TypeLost  Type = "lost"
	TypeFound Type = "found"
)

// Status is the lifecycle state of a report
type Status string

const (
	StatusActive  Status = "active"
	StatusClaimed Status = "claimed"
	StatusDeleted Status = "deleted"
)

// Report represents a lost or found item record. Guest submissions
// carry a null owner.
type Report struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	OwnerID      uuid.NullUUID `db:"owner_id" json:"owner_id"`
	Type         Type          `db:"type" json:"type"`
	Title        string        `db:"title" json:"title"`
	Description  string        `db:"description" json:"description"`
	ItemCategory string        `db:"item_category" json:"item_category"`
	Location     string        `db:"location" json:"location"`
	DateEvent    time.Time     `db:"date_event" json:"date_event"`
	PhotoURL     string        `db:"photo_url" json:"photo_url,omitempty"`
	Status       Status        `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// CanTransition reports whether a status change is legal. Allowed moves
// are active to claimed, active to deleted and claimed to deleted;
// deleted is terminal. Setting the same status again is a no-op and
// always legal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusActive:
		return to == StatusClaimed || to == StatusDeleted
	case StatusClaimed:
		return to == StatusDeleted
	default:
		return false
	}
}

// IsValidType reports whether s names a known report type
func IsValidType(s string) bool {
	return s == string(TypeLost) || s == string(TypeFound)
}

// IsValidStatus reports whether s names a known report status
func IsValidStatus(s string) bool {
	return s == string(StatusActive) || s == string(StatusClaimed) || s == string(StatusDeleted)
}
