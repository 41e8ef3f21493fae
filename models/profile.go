package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a hiree being onboarded; belongs to exactly one company.
// Date fields are ISO strings (YYYY-MM-DD) so that blank values can render
// as fill-in-manually placeholders in generated documents.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	CompanyID    uuid.UUID `json:"company_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"` // profile label, distinct from the hiree's legal name
	HireeName    string    `json:"hiree_name"`
	HireeDob     *string   `json:"hiree_dob"`
	HireeAddress string    `json:"hiree_address"`
	HireeEmail   string    `json:"hiree_email"`
	HireePhone   string    `json:"hiree_phone"`
	HireeDate    string    `json:"hiree_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
