package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an owner account. Authentication itself is delegated to
// the deployment's auth provider; this table only anchors ownership.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
