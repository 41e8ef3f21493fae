package models

import (
	"time"

	"github.com/google/uuid"
)

// PriceSource records where a gear item's estimated price came from
type PriceSource string

const (
	PriceSourceManual       PriceSource = "manual"
	PriceSourceAIEstimate   PriceSource = "ai_estimate"
	PriceSourceUserOverride PriceSource = "user_override"
)

// GearItem is a company-scoped catalog equipment item. Estimated prices are
// in CAD and optional; LastEstimatedAt is set when the estimator ran.
type GearItem struct {
	ID                uuid.UUID    `json:"id"`
	CompanyID         uuid.UUID    `json:"company_id"`
	Name              string       `json:"name"`
	EstimatedPriceCAD *float64     `json:"estimated_price_cad"`
	PriceSource       *PriceSource `json:"price_source"`
	LastEstimatedAt   *time.Time   `json:"last_estimated_at"`
	CreatedAt         time.Time    `json:"created_at"`
}

// HireeGearItem is a per-hiree override row for a catalog gear item.
// When no row exists for a catalog item, the item defaults to required.
type HireeGearItem struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	GearItemID  uuid.UUID `json:"gear_item_id"`
	IsRequired  bool      `json:"is_required"`
	CustomNotes *string   `json:"custom_notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HireeCustomGearItem is hiree-scoped gear; it carries its own required
// flag and notes directly, so no override row applies.
type HireeCustomGearItem struct {
	ID                uuid.UUID    `json:"id"`
	ProfileID         uuid.UUID    `json:"profile_id"`
	Name              string       `json:"name"`
	IsRequired        bool         `json:"is_required"`
	CustomNotes       *string      `json:"custom_notes"`
	EstimatedPriceCAD *float64     `json:"estimated_price_cad"`
	PriceSource       *PriceSource `json:"price_source"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
