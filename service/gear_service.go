package service

import (
	"context"
	"errors"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GearService handles business logic for the company gear catalog, per-hiree
// requirement overrides, and hiree-scoped custom gear.
type GearService struct {
	gearRepo     *repository.GearRepository
	overrideRepo *repository.OverrideRepository
}

// GearServiceOption is a functional option for GearService
type GearServiceOption func(*GearService)

// WithGearRepository sets the gear repository
func WithGearRepository(repo *repository.GearRepository) GearServiceOption {
	return func(s *GearService) {
		s.gearRepo = repo
	}
}

// WithGearOverrideRepository sets the override repository
func WithGearOverrideRepository(repo *repository.OverrideRepository) GearServiceOption {
	return func(s *GearService) {
		s.overrideRepo = repo
	}
}

// NewGearService creates a new gear service
func NewGearService(opts ...GearServiceOption) *GearService {
	s := &GearService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGearItem adds a catalog item, optionally with a manual price
func (s *GearService) CreateGearItem(ctx context.Context, companyID uuid.UUID, name string, price *float64) (*models.GearItem, error) {
	if s.gearRepo == nil {
		return nil, errors.New("gear repository not set")
	}

	item := &models.GearItem{CompanyID: companyID, Name: name, EstimatedPriceCAD: price}
	if price != nil {
		src := models.PriceSourceManual
		item.PriceSource = &src
	}
	if err := s.gearRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListGearItems lists a company's catalog gear
func (s *GearService) ListGearItems(ctx context.Context, companyID uuid.UUID) ([]models.GearItem, error) {
	if s.gearRepo == nil {
		return nil, errors.New("gear repository not set")
	}
	return s.gearRepo.ListByCompany(ctx, companyID)
}

// RenameGearItem renames a catalog item
func (s *GearService) RenameGearItem(ctx context.Context, id uuid.UUID, name string) error {
	if s.gearRepo == nil {
		return errors.New("gear repository not set")
	}
	return s.gearRepo.UpdateName(ctx, id, name)
}

// SetGearPrice records a manual price override for a catalog item
func (s *GearService) SetGearPrice(ctx context.Context, id uuid.UUID, price *float64) error {
	if s.gearRepo == nil {
		return errors.New("gear repository not set")
	}

	if _, err := s.gearRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.gearRepo.UpdatePrice(ctx, id, price, models.PriceSourceUserOverride)
}

// DeleteGearItem removes a catalog item
func (s *GearService) DeleteGearItem(ctx context.Context, id uuid.UUID) error {
	if s.gearRepo == nil {
		return errors.New("gear repository not set")
	}
	return s.gearRepo.Delete(ctx, id)
}

// SetGearOverrideRequest sets a hiree's requirement exception for a catalog item
type SetGearOverrideRequest struct {
	ProfileID   uuid.UUID
	GearItemID  uuid.UUID
	IsRequired  bool
	CustomNotes *string
}

// SetGearOverride upserts a hiree's catalog-gear override row
func (s *GearService) SetGearOverride(ctx context.Context, req SetGearOverrideRequest) (*models.HireeGearItem, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}

	o := &models.HireeGearItem{
		ProfileID:   req.ProfileID,
		GearItemID:  req.GearItemID,
		IsRequired:  req.IsRequired,
		CustomNotes: req.CustomNotes,
	}
	if err := s.overrideRepo.UpsertGearOverride(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListGearOverrides lists a hiree's catalog-gear override rows
func (s *GearService) ListGearOverrides(ctx context.Context, profileID uuid.UUID) ([]models.HireeGearItem, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}
	return s.overrideRepo.ListGearOverrides(ctx, profileID)
}

// SaveCustomGearRequest carries a hiree-scoped gear item
type SaveCustomGearRequest struct {
	ProfileID   uuid.UUID
	Name        string
	IsRequired  bool
	CustomNotes *string
	PriceCAD    *float64
}

// CreateCustomGear adds a hiree-scoped custom gear item
func (s *GearService) CreateCustomGear(ctx context.Context, req SaveCustomGearRequest) (*models.HireeCustomGearItem, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}

	item := &models.HireeCustomGearItem{
		ProfileID:         req.ProfileID,
		Name:              req.Name,
		IsRequired:        req.IsRequired,
		CustomNotes:       req.CustomNotes,
		EstimatedPriceCAD: req.PriceCAD,
	}
	if req.PriceCAD != nil {
		src := models.PriceSourceManual
		item.PriceSource = &src
	}
	if err := s.overrideRepo.CreateCustomGear(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListCustomGear lists a hiree's custom gear
func (s *GearService) ListCustomGear(ctx context.Context, profileID uuid.UUID) ([]models.HireeCustomGearItem, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}
	return s.overrideRepo.ListCustomGear(ctx, profileID)
}

// UpdateCustomGear updates a hiree-scoped custom gear item
func (s *GearService) UpdateCustomGear(ctx context.Context, id uuid.UUID, req SaveCustomGearRequest) (*models.HireeCustomGearItem, error) {
	if s.overrideRepo == nil {
		return nil, errors.New("override repository not set")
	}

	item := &models.HireeCustomGearItem{
		ID:                id,
		ProfileID:         req.ProfileID,
		Name:              req.Name,
		IsRequired:        req.IsRequired,
		CustomNotes:       req.CustomNotes,
		EstimatedPriceCAD: req.PriceCAD,
	}
	if req.PriceCAD != nil {
		src := models.PriceSourceUserOverride
		item.PriceSource = &src
	}
	if err := s.overrideRepo.UpdateCustomGear(ctx, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// DeleteCustomGear removes a hiree-scoped custom gear item
func (s *GearService) DeleteCustomGear(ctx context.Context, id uuid.UUID) error {
	if s.overrideRepo == nil {
		return errors.New("override repository not set")
	}
	return s.overrideRepo.DeleteCustomGear(ctx, id)
}
