package service

import (
	"context"
	"errors"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileService handles business logic for hiree profiles
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

// ProfileServiceOption is a functional option for ProfileService
type ProfileServiceOption func(*ProfileService)

// WithProfileRepository sets the profile repository
func WithProfileRepository(repo *repository.ProfileRepository) ProfileServiceOption {
	return func(s *ProfileService) {
		s.profileRepo = repo
	}
}

// NewProfileService creates a new profile service
func NewProfileService(opts ...ProfileServiceOption) *ProfileService {
	s := &ProfileService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveProfileRequest carries the hiree fields for create and update
type SaveProfileRequest struct {
	CompanyID    uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	HireeName    string
	HireeDob     *string
	HireeAddress string
	HireeEmail   string
	HireePhone   string
	HireeDate    string
}

// CreateProfile creates a hiree profile
func (s *ProfileService) CreateProfile(ctx context.Context, req SaveProfileRequest) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profile repository not set")
	}

	profile := &models.Profile{
		CompanyID:    req.CompanyID,
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		HireeName:    req.HireeName,
		HireeDob:     req.HireeDob,
		HireeAddress: req.HireeAddress,
		HireeEmail:   req.HireeEmail,
		HireePhone:   req.HireePhone,
		HireeDate:    req.HireeDate,
	}
	if profile.Name == "" {
		profile.Name = req.HireeName
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profile repository not set")
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return profile, nil
}

// ListProfiles lists a company's profiles
func (s *ProfileService) ListProfiles(ctx context.Context, companyID uuid.UUID) ([]*models.Profile, error) {
	if s.profileRepo == nil {
		return nil, errors.New("profile repository not set")
	}
	return s.profileRepo.ListByCompany(ctx, companyID)
}

// UpdateProfile updates a profile's hiree fields
func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, req SaveProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.HireeName = req.HireeName
	profile.HireeDob = req.HireeDob
	profile.HireeAddress = req.HireeAddress
	profile.HireeEmail = req.HireeEmail
	profile.HireePhone = req.HireePhone
	profile.HireeDate = req.HireeDate
	if profile.Name == "" {
		profile.Name = req.HireeName
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// DeleteProfile deletes a profile and its per-hiree records
func (s *ProfileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if s.profileRepo == nil {
		return errors.New("profile repository not set")
	}
	return s.profileRepo.Delete(ctx, id)
}
