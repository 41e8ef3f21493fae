package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Access tokens are url-safe and long enough to be unguessable.
const tokenLength = 32

const defaultAccessTTL = 7 * 24 * time.Hour

// SignatureService handles in-app signature capture, public signing links,
// and hiree access grants.
type SignatureService struct {
	signatureRepo *repository.SignatureRepository
	profileRepo   *repository.ProfileRepository
	documents     *DocumentService
	accessTTL     time.Duration
}

// SignatureServiceOption is a functional option for SignatureService
type SignatureServiceOption func(*SignatureService)

// WithSignatureRepository sets the signature repository
func WithSignatureRepository(repo *repository.SignatureRepository) SignatureServiceOption {
	return func(s *SignatureService) {
		s.signatureRepo = repo
	}
}

// SignatureWithProfileRepository sets the profile repository
func SignatureWithProfileRepository(repo *repository.ProfileRepository) SignatureServiceOption {
	return func(s *SignatureService) {
		s.profileRepo = repo
	}
}

// WithDocumentService sets the document service used to freeze snapshots
func WithDocumentService(documents *DocumentService) SignatureServiceOption {
	return func(s *SignatureService) {
		s.documents = documents
	}
}

// WithAccessTTL overrides the hiree access token lifetime
func WithAccessTTL(ttl time.Duration) SignatureServiceOption {
	return func(s *SignatureService) {
		s.accessTTL = ttl
	}
}

// NewSignatureService creates a new signature service
func NewSignatureService(opts ...SignatureServiceOption) *SignatureService {
	s := &SignatureService{accessTTL: defaultAccessTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newToken mints a random url-safe token
func newToken() (string, error) {
	buf := make([]byte, tokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// SaveSignatureRequest stores an in-app signature image
type SaveSignatureRequest struct {
	ProfileID     uuid.UUID
	CompanyID     *uuid.UUID
	SignatureType models.SignatureType
	SignatureData string
}

// SaveSignature stores one of a profile's signature slots
func (s *SignatureService) SaveSignature(ctx context.Context, req SaveSignatureRequest) (*models.Signature, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}

	sig := &models.Signature{
		ProfileID:     req.ProfileID,
		CompanyID:     req.CompanyID,
		SignatureType: req.SignatureType,
		SignatureData: req.SignatureData,
	}
	if err := s.signatureRepo.UpsertSignature(ctx, sig); err != nil {
		return nil, err
	}
	return sig, nil
}

// GetSignature retrieves one of a profile's signature slots
func (s *SignatureService) GetSignature(ctx context.Context, profileID uuid.UUID, sigType models.SignatureType) (*models.Signature, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}

	sig, err := s.signatureRepo.GetSignature(ctx, profileID, sigType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sig, nil
}

// ClearSignature clears one of a profile's signature slots
func (s *SignatureService) ClearSignature(ctx context.Context, profileID uuid.UUID, sigType models.SignatureType) error {
	if s.signatureRepo == nil {
		return errors.New("signature repository not set")
	}
	return s.signatureRepo.DeleteSignature(ctx, profileID, sigType)
}

// CreateLinkRequest creates a public signing link for one document
type CreateLinkRequest struct {
	ProfileID    uuid.UUID
	DocumentType models.DocumentType
}

// CreateLink freezes the document as currently assembled and issues a
// tokenized link bound to that snapshot. Later pricing or profile edits do
// not change what the signer sees.
func (s *SignatureService) CreateLink(ctx context.Context, req CreateLinkRequest) (*models.SignatureLink, error) {
	if s.signatureRepo == nil || s.profileRepo == nil {
		return nil, errors.New("signature and profile repositories not set")
	}
	if s.documents == nil {
		return nil, errors.New("document service not set")
	}

	profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	built, err := s.documents.BuildDocument(ctx, BuildDocumentRequest{
		ProfileID:    req.ProfileID,
		DocumentType: req.DocumentType,
	})
	if err != nil {
		return nil, err
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	link := &models.SignatureLink{
		ProfileID:    req.ProfileID,
		CompanyID:    profile.CompanyID,
		DocumentType: req.DocumentType,
		DocumentData: models.SignatureDocument{
			Type:  req.DocumentType,
			Title: built.Title,
			HTML:  built.HTML,
		},
		SignatureToken: token,
	}
	if err := s.signatureRepo.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// GetLinkByToken retrieves a signing link for public viewing
func (s *SignatureService) GetLinkByToken(ctx context.Context, token string) (*models.SignatureLink, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}

	link, err := s.signatureRepo.GetLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return link, nil
}

// ListLinks lists a profile's signing links
func (s *SignatureService) ListLinks(ctx context.Context, profileID uuid.UUID) ([]*models.SignatureLink, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}
	return s.signatureRepo.ListLinksByProfile(ctx, profileID)
}

// SignRequest records a signature through a public link
type SignRequest struct {
	Token         string
	Role          models.SignerRole
	SignatureData string
	InitialData   *string
}

// Sign performs the single unsigned -> signed transition on a link
func (s *SignatureService) Sign(ctx context.Context, req SignRequest) (*models.SignatureLink, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}
	if req.Role != models.SignerTenant && req.Role != models.SignerHiree {
		return nil, errors.New("unknown signer role")
	}

	link, err := s.GetLinkByToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if link.IsSigned {
		return nil, ErrAlreadySigned
	}

	ok, err := s.signatureRepo.MarkSigned(ctx, link.ID, req.Role, &req.SignatureData, req.InitialData)
	if err != nil {
		return nil, err
	}
	if !ok {
		// lost the race with another signer
		return nil, ErrAlreadySigned
	}

	return s.signatureRepo.GetLinkByID(ctx, link.ID)
}

// ResetLinkRequest clears a signed link with an audit trail
type ResetLinkRequest struct {
	LinkID  uuid.UUID
	ResetBy uuid.UUID
	Reason  *string
}

// ResetLink clears a link's signed state and records who did it and why
func (s *SignatureService) ResetLink(ctx context.Context, req ResetLinkRequest) error {
	if s.signatureRepo == nil {
		return errors.New("signature repository not set")
	}

	if _, err := s.signatureRepo.GetLinkByID(ctx, req.LinkID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return s.signatureRepo.ResetLink(ctx, req.LinkID, req.ResetBy, req.Reason)
}

// ListResetLogs lists a link's reset history
func (s *SignatureService) ListResetLogs(ctx context.Context, linkID uuid.UUID) ([]models.SignatureResetLog, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}
	return s.signatureRepo.ListResetLogs(ctx, linkID)
}

// DeleteLink deletes a signing link
func (s *SignatureService) DeleteLink(ctx context.Context, id uuid.UUID) error {
	if s.signatureRepo == nil {
		return errors.New("signature repository not set")
	}
	return s.signatureRepo.DeleteLink(ctx, id)
}

// CreateHireeAccess issues an expiring access token a hiree can use to open
// their profile without an account.
func (s *SignatureService) CreateHireeAccess(ctx context.Context, profileID uuid.UUID) (*models.HireeAccess, error) {
	if s.signatureRepo == nil {
		return nil, errors.New("signature repository not set")
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	access := &models.HireeAccess{
		ProfileID:   profileID,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.accessTTL),
	}
	if err := s.signatureRepo.CreateHireeAccess(ctx, access); err != nil {
		return nil, err
	}
	return access, nil
}

// RedeemHireeAccess validates and consumes an access token, returning the
// profile it grants.
func (s *SignatureService) RedeemHireeAccess(ctx context.Context, token string) (*models.Profile, error) {
	if s.signatureRepo == nil || s.profileRepo == nil {
		return nil, errors.New("signature and profile repositories not set")
	}

	access, err := s.signatureRepo.GetHireeAccessByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ok, err := s.signatureRepo.MarkHireeAccessUsed(ctx, access.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrLinkExpired
	}

	return s.profileRepo.GetByID(ctx, access.ProfileID)
}
