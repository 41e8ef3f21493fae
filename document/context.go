package document

import (
	"hireedocs-backend/models"

	"github.com/google/uuid"
)

// FlatServicePrice is a flat service with its effective (override-resolved)
// rate for the hiree being documented.
type FlatServicePrice struct {
	ID   uuid.UUID
	Name string
	Rate float64
}

// TierPricing is one square-footage tier with its effective per-service rates
type TierPricing struct {
	MinSqft int
	MaxSqft int
	Rates   map[models.ServiceType]float64
}

// GearLine is one equipment line of the gear document
type GearLine struct {
	Name     string
	Required bool
	Notes    string
	PriceCAD *float64
}

// Context bundles everything document assembly reads. Assembly never touches
// storage; callers resolve overrides and load signatures up front.
type Context struct {
	Company      *models.Company
	Profile      *models.Profile
	FlatServices []FlatServicePrice
	Tiers        []TierPricing
	Gear         []GearLine
	Offer        *models.OfferDetails
	Template     *models.Template

	// Signature images as data URLs; empty means unsigned
	HireeSignature   string
	CompanySignature string
}

// addendum returns the template's addendum text, if any
func (c *Context) addendum() string {
	if c.Template == nil {
		return ""
	}
	return c.Template.Addendum
}

// clauses returns the template's initials-page clauses, if any
func (c *Context) clauses() []string {
	if c.Template == nil {
		return nil
	}
	return c.Template.Clauses
}
