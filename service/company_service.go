package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"
	"hireedocs-backend/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	companyRepo *repository.CompanyRepository
	store       storage.Storage
}

// CompanyServiceOption is a functional option for CompanyService
type CompanyServiceOption func(*CompanyService)

// WithCompanyRepository sets the company repository
func WithCompanyRepository(repo *repository.CompanyRepository) CompanyServiceOption {
	return func(s *CompanyService) {
		s.companyRepo = repo
	}
}

// WithCompanyStorage sets the blob storage used for logos
func WithCompanyStorage(store storage.Storage) CompanyServiceOption {
	return func(s *CompanyService) {
		s.store = store
	}
}

// NewCompanyService creates a new company service
func NewCompanyService(opts ...CompanyServiceOption) *CompanyService {
	s := &CompanyService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	OwnerID      uuid.UUID
	Name         string
	Jurisdiction string
}

// CreateCompany creates a company
func (s *CompanyService) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*models.Company, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	company := &models.Company{
		OwnerID:      req.OwnerID,
		Name:         req.Name,
		Jurisdiction: req.Jurisdiction,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return company, nil
}

// ListCompanies lists companies owned by a user
func (s *CompanyService) ListCompanies(ctx context.Context, ownerID uuid.UUID) ([]*models.Company, error) {
	if s.companyRepo == nil {
		return nil, errors.New("company repository not set")
	}
	return s.companyRepo.ListByOwner(ctx, ownerID)
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	ID           uuid.UUID
	Name         string
	Jurisdiction string
}

// UpdateCompany updates a company's name and jurisdiction
func (s *CompanyService) UpdateCompany(ctx context.Context, req UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetCompany(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Jurisdiction = req.Jurisdiction
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// UploadLogoRequest represents a logo upload as a base64 data URL
type UploadLogoRequest struct {
	CompanyID uuid.UUID
	DataURL   string
}

// UploadLogo decodes the logo image, stores it, and records its storage
// path on the company.
func (s *CompanyService) UploadLogo(ctx context.Context, req UploadLogoRequest) (*models.Company, error) {
	if s.store == nil {
		return nil, errors.New("storage not set")
	}

	company, err := s.GetCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	data, ext, err := storage.DecodeDataURL(req.DataURL)
	if err != nil {
		return nil, err
	}

	path, err := s.store.Upload(ctx, company.ID, fmt.Sprintf("logo%s", ext), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if company.LogoURL != nil && *company.LogoURL != "" {
		// old logo is best-effort cleanup; the new record matters
		_ = s.store.Delete(ctx, *company.LogoURL)
	}

	company.LogoURL = &path
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany deletes a company and everything under it
func (s *CompanyService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if s.companyRepo == nil {
		return errors.New("company repository not set")
	}
	return s.companyRepo.Delete(ctx, id)
}
