package document

import (
	"math"
	"strconv"
	"strings"

	"hireedocs-backend/models"

	"github.com/google/uuid"
)

// RateOverride is a hiree-specific rate exception. A nil *RateOverride means
// "no override row exists"; the company default applies.
type RateOverride struct {
	Rate    float64
	Enabled bool
}

// GearOverride is a hiree-specific requirement exception for catalog gear
type GearOverride struct {
	Required bool
	Notes    string
}

// ParseDecimalOrZero is the named silent-coercion policy: rates are stored
// as user-typed strings, and anything unparseable resolves to 0 so documents
// always render. ParseFloat accepts "nan" and "inf" spellings; those are not
// rates, so non-finite values coerce to 0 too.
func ParseDecimalOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ResolveFlatRate returns the effective rate for a flat service: the
// override wins only when enabled with a positive rate, otherwise the
// company base rate applies.
func ResolveFlatRate(svc models.FlatService, o *RateOverride) float64 {
	if o != nil && o.Enabled && o.Rate > 0 {
		return o.Rate
	}
	return ParseDecimalOrZero(svc.Rate)
}

// ResolveTieredRate returns the effective rate for a (tier, service) pair
// under the same rule as ResolveFlatRate.
func ResolveTieredRate(tr models.TieredRate, o *RateOverride) float64 {
	if o != nil && o.Enabled && o.Rate > 0 {
		return o.Rate
	}
	return ParseDecimalOrZero(tr.Rate)
}

// ResolveGearRequired returns whether a gear item is required for a hiree.
// Custom gear carries its own flag. Catalog gear follows the override row
// when one exists and otherwise defaults to required.
func ResolveGearRequired(isCustom, itemRequired bool, o *GearOverride) bool {
	if isCustom {
		return itemRequired
	}
	if o != nil {
		return o.Required
	}
	return true
}

// ResolveFlatServices builds the priced flat-service lines for a hiree
func ResolveFlatServices(services []models.FlatService, overrides map[uuid.UUID]*RateOverride) []FlatServicePrice {
	out := make([]FlatServicePrice, 0, len(services))
	for _, svc := range services {
		out = append(out, FlatServicePrice{
			ID:   svc.ID,
			Name: svc.Name,
			Rate: ResolveFlatRate(svc, overrides[svc.ID]),
		})
	}
	return out
}

// ResolveTierPricing builds per-tier rate rows for a hiree. Tiers with no
// rate row for a service type resolve to 0 for that cell.
func ResolveTierPricing(tiers []models.Tier, rates []models.TieredRate, overrides map[uuid.UUID]*RateOverride) []TierPricing {
	byTier := make(map[uuid.UUID][]models.TieredRate)
	for _, r := range rates {
		byTier[r.TierID] = append(byTier[r.TierID], r)
	}

	out := make([]TierPricing, 0, len(tiers))
	for _, tier := range tiers {
		tp := TierPricing{
			MinSqft: tier.MinSqft,
			MaxSqft: tier.MaxSqft,
			Rates:   make(map[models.ServiceType]float64, len(models.ServiceTypes)),
		}
		for _, r := range byTier[tier.ID] {
			tp.Rates[r.ServiceType] = ResolveTieredRate(r, overrides[r.ID])
		}
		out = append(out, tp)
	}
	return out
}

// ResolveGear merges catalog gear (through its override rows) with the
// hiree's custom gear into the lines the gear document renders.
func ResolveGear(items []models.GearItem, overrides map[uuid.UUID]*GearOverride, custom []models.HireeCustomGearItem) []GearLine {
	out := make([]GearLine, 0, len(items)+len(custom))
	for _, item := range items {
		o := overrides[item.ID]
		line := GearLine{
			Name:     item.Name,
			Required: ResolveGearRequired(false, false, o),
			PriceCAD: item.EstimatedPriceCAD,
		}
		if o != nil {
			line.Notes = o.Notes
		}
		out = append(out, line)
	}
	for _, item := range custom {
		line := GearLine{
			Name:     item.Name,
			Required: ResolveGearRequired(true, item.IsRequired, nil),
			PriceCAD: item.EstimatedPriceCAD,
		}
		if item.CustomNotes != nil {
			line.Notes = *item.CustomNotes
		}
		out = append(out, line)
	}
	return out
}
