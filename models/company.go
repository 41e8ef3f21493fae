package models

import (
	"time"

	"github.com/google/uuid"
)

// Company represents the business entity documents are issued under.
// One per owning user by convention; not enforced as a unique constraint.
type Company struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Jurisdiction string    `json:"jurisdiction"`
	LogoURL      *string   `json:"logo_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
