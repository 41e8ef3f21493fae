package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType identifies a tiered service offering
type ServiceType string

const (
	ServicePhoto      ServiceType = "photo"
	ServiceVideo      ServiceType = "video"
	ServiceIGuide     ServiceType = "iguide"
	ServiceMatterport ServiceType = "matterport"
)

// ServiceTypes lists all tiered service types in display order
var ServiceTypes = []ServiceType{ServicePhoto, ServiceVideo, ServiceIGuide, ServiceMatterport}

// ValidServiceType reports whether s is a known tiered service type
func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServicePhoto, ServiceVideo, ServiceIGuide, ServiceMatterport:
		return true
	}
	return false
}

// FlatService is a company-scoped service billed at one fixed rate.
// Rate is stored as the string the user typed; unparseable values resolve
// to 0 at document-assembly time rather than failing.
type FlatService struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Rate      string    `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
}

// Tier is a contiguous square-footage range used for progressive pricing.
// Across all tiers of a company, ranges must not overlap and max >= min.
type Tier struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	MinSqft   int       `json:"min_sqft"`
	MaxSqft   int       `json:"max_sqft"`
	CreatedAt time.Time `json:"created_at"`
}

// TieredRate is the rate for a (tier, service type) pair
type TieredRate struct {
	ID          uuid.UUID   `json:"id"`
	CompanyID   uuid.UUID   `json:"company_id"`
	TierID      uuid.UUID   `json:"tier_id"`
	ServiceType ServiceType `json:"service_type"`
	Rate        string      `json:"rate"`
	CreatedAt   time.Time   `json:"created_at"`
}

// HireeFlatService is a per-hiree override row for a flat service.
// Absence of a row, or IsEnabled=false, means "use company default".
type HireeFlatService struct {
	ID            uuid.UUID `json:"id"`
	ProfileID     uuid.UUID `json:"profile_id"`
	FlatServiceID uuid.UUID `json:"flat_service_id"`
	CustomRate    *string   `json:"custom_rate"`
	IsEnabled     bool      `json:"is_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HireeTieredRate is a per-hiree override row for a tiered rate
type HireeTieredRate struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	TieredRateID uuid.UUID `json:"tiered_rate_id"`
	CustomRate   *string   `json:"custom_rate"`
	IsEnabled    bool      `json:"is_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
