package service

import (
	"context"
	"errors"
	"sort"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
)

// PricingService handles business logic for company pricing and the
// per-hiree rate overrides layered over it. The gear repository is only
// needed for CSV export/import, which covers the gear catalog too.
type PricingService struct {
	pricingRepo  *repository.PricingRepository
	overrideRepo *repository.OverrideRepository
	gearRepo     *repository.GearRepository
}

// PricingServiceOption is a functional option for PricingService
type PricingServiceOption func(*PricingService)

// WithPricingRepository sets the pricing repository
func WithPricingRepository(repo *repository.PricingRepository) PricingServiceOption {
	return func(s *PricingService) {
		s.pricingRepo = repo
	}
}

// WithOverrideRepository sets the override repository
func WithOverrideRepository(repo *repository.OverrideRepository) PricingServiceOption {
	return func(s *PricingService) {
		s.overrideRepo = repo
	}
}

// PricingWithGearRepository sets the gear repository used by CSV export/import
func PricingWithGearRepository(repo *repository.GearRepository) PricingServiceOption {
	return func(s *PricingService) {
		s.gearRepo = repo
	}
}

// NewPricingService creates a new pricing service
func NewPricingService(opts ...PricingServiceOption) *PricingService {
	s := &PricingService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TiersAreValid reports whether a tier set is well formed: every range has
// max >= min, and once sorted by min no range starts at or before the end of
// the previous one. Touching ranges count as overlapping.
func TiersAreValid(tiers []models.Tier) bool {
	for _, t := range tiers {
		if t.MaxSqft < t.MinSqft {
			return false
		}
	}

	sorted := make([]models.Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinSqft < sorted[j].MinSqft })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].MinSqft <= sorted[i-1].MaxSqft {
			return false
		}
	}
	return true
}

// CreateFlatService adds a flat service to a company
func (s *PricingService) CreateFlatService(ctx context.Context, companyID uuid.UUID, name, rate string) (*models.FlatService, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}

	svc := &models.FlatService{CompanyID: companyID, Name: name, Rate: rate}
	if err := s.pricingRepo.CreateFlatService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// ListFlatServices lists a company's flat services
func (s *PricingService) ListFlatServices(ctx context.Context, companyID uuid.UUID) ([]models.FlatService, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}
	return s.pricingRepo.ListFlatServices(ctx, companyID)
}

// UpdateFlatService updates a flat service's name and rate
func (s *PricingService) UpdateFlatService(ctx context.Context, id uuid.UUID, name, rate string) error {
	if s.pricingRepo == nil {
		return errors.New("pricing repository not set")
	}
	return s.pricingRepo.UpdateFlatService(ctx, &models.FlatService{ID: id, Name: name, Rate: rate})
}

// DeleteFlatService deletes a flat service
func (s *PricingService) DeleteFlatService(ctx context.Context, id uuid.UUID) error {
	if s.pricingRepo == nil {
		return errors.New("pricing repository not set")
	}
	return s.pricingRepo.DeleteFlatService(ctx, id)
}

// ReplaceTiers validates and swaps a company's full tier set
func (s *PricingService) ReplaceTiers(ctx context.Context, companyID uuid.UUID, tiers []models.Tier) ([]models.Tier, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}

	if !TiersAreValid(tiers) {
		return nil, ErrInvalidTiers
	}

	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinSqft < tiers[j].MinSqft })
	if err := s.pricingRepo.ReplaceTiers(ctx, companyID, tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// ListTiers lists a company's tiers
func (s *PricingService) ListTiers(ctx context.Context, companyID uuid.UUID) ([]models.Tier, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}
	return s.pricingRepo.ListTiers(ctx, companyID)
}

// SetTieredRate sets the rate for a (tier, service type) pair
func (s *PricingService) SetTieredRate(ctx context.Context, companyID, tierID uuid.UUID, serviceType models.ServiceType, rate string) (*models.TieredRate, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}

	if !models.ValidServiceType(serviceType) {
		return nil, ErrInvalidServiceType
	}

	tr := &models.TieredRate{
		CompanyID:   companyID,
		TierID:      tierID,
		ServiceType: serviceType,
		Rate:        rate,
	}
	if err := s.pricingRepo.UpsertTieredRate(ctx, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

// ListTieredRates lists a company's tiered rates
func (s *PricingService) ListTieredRates(ctx context.Context, companyID uuid.UUID) ([]models.TieredRate, error) {
	if s.pricingRepo == nil {
		return nil, errors.New("pricing repository not set")
	}
	return s.pricingRepo.ListTieredRates(ctx, companyID)
}

// SetFlatOverrideRequest sets a hiree's flat-service rate exception
type SetFlatOverrideRequest struct {
	ProfileID     uuid.UUID
	FlatServiceID uuid.UUID
	CustomRate    *string
	IsEnabled     bool
}

// SetFlatOverride upserts a hiree's flat-service override row
func (s *PricingService) SetFlatOverride(ctx context.Context, req SetFlatOverrideRequest) (*models.HireeFlatService, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}

	o := &models.HireeFlatService{
		ProfileID:     req.ProfileID,
		FlatServiceID: req.FlatServiceID,
		CustomRate:    req.CustomRate,
		IsEnabled:     req.IsEnabled,
	}
	if err := s.overrideRepo.UpsertFlatOverride(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// SetTieredOverrideRequest sets a hiree's tiered-rate exception
type SetTieredOverrideRequest struct {
	ProfileID    uuid.UUID
	TieredRateID uuid.UUID
	CustomRate   *string
	IsEnabled    bool
}

// SetTieredOverride upserts a hiree's tiered-rate override row
func (s *PricingService) SetTieredOverride(ctx context.Context, req SetTieredOverrideRequest) (*models.HireeTieredRate, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}

	o := &models.HireeTieredRate{
		ProfileID:    req.ProfileID,
		TieredRateID: req.TieredRateID,
		CustomRate:   req.CustomRate,
		IsEnabled:    req.IsEnabled,
	}
	if err := s.overrideRepo.UpsertTieredOverride(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOverrides returns both kinds of rate override rows for a profile
func (s *PricingService) ListOverrides(ctx context.Context, profileID uuid.UUID) ([]models.HireeFlatService, []models.HireeTieredRate, error) {
	if s.overrideRepo == nil {
		return nil, nil, errors.New("override repository not set")
	}

	flat, err := s.overrideRepo.ListFlatOverrides(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	tiered, err := s.overrideRepo.ListTieredOverrides(ctx, profileID)
	if err != nil {
		return nil, nil, err
	}
	return flat, tiered, nil
}
