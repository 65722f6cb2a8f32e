package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/foundit/foundit-api/internal/pkg/identity"
)

// User represents a registered account
type User struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	Username     string        `db:"username" json:"username"`
	Email        string        `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         identity.Role `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}
