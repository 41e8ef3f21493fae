package service

import (
	"context"
	"errors"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OfferService handles business logic for offers
type OfferService struct {
	offerRepo *repository.OfferRepository
}

// OfferServiceOption is a functional option for OfferService
type OfferServiceOption func(*OfferService)

// WithOfferRepository sets the offer repository
func WithOfferRepository(repo *repository.OfferRepository) OfferServiceOption {
	return func(s *OfferService) {
		s.offerRepo = repo
	}
}

// NewOfferService creates a new offer service
func NewOfferService(opts ...OfferServiceOption) *OfferService {
	s := &OfferService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveOffer creates or replaces the offer for a profile. New offers start
// as drafts when no status is given.
func (s *OfferService) SaveOffer(ctx context.Context, offer *models.OfferDetails) (*models.OfferDetails, error) {
	if s.offerRepo == nil {
		return nil, errors.New("offer repository not set")
	}

	if offer.Status == "" {
		offer.Status = models.OfferStatusDraft
	}
	if offer.FlatServices == nil {
		offer.FlatServices = models.SelectedServices{}
	}
	if offer.TieredServices == nil {
		offer.TieredServices = models.SelectedServices{}
	}

	if err := s.offerRepo.Upsert(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// GetOffer retrieves a profile's offer
func (s *OfferService) GetOffer(ctx context.Context, profileID uuid.UUID) (*models.OfferDetails, error) {
	if s.offerRepo == nil {
		return nil, errors.New("offer repository not set")
	}

	offer, err := s.offerRepo.GetByProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoOffer
		}
		return nil, err
	}
	return offer, nil
}

// UpdateOfferStatus moves a profile's offer through its lifecycle
func (s *OfferService) UpdateOfferStatus(ctx context.Context, profileID uuid.UUID, status models.OfferStatus) error {
	if s.offerRepo == nil {
		return errors.New("offer repository not set")
	}
	return s.offerRepo.UpdateStatus(ctx, profileID, status)
}

// DeleteOffer deletes a profile's offer
func (s *OfferService) DeleteOffer(ctx context.Context, profileID uuid.UUID) error {
	if s.offerRepo == nil {
		return errors.New("offer repository not set")
	}
	return s.offerRepo.Delete(ctx, profileID)
}
