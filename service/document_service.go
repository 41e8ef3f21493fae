package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hireedocs-backend/document"
	"hireedocs-backend/models"
	"hireedocs-backend/renderer"
	"hireedocs-backend/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DocumentService assembles the five document types for a profile and turns
// them into PDFs through the render service.
type DocumentService struct {
	profileRepo   *repository.ProfileRepository
	companyRepo   *repository.CompanyRepository
	pricingRepo   *repository.PricingRepository
	overrideRepo  *repository.OverrideRepository
	gearRepo      *repository.GearRepository
	offerRepo     *repository.OfferRepository
	templateRepo  *repository.TemplateRepository
	signatureRepo *repository.SignatureRepository
	renderClient  *renderer.Client
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// DocumentWithProfileRepository sets the profile repository
func DocumentWithProfileRepository(repo *repository.ProfileRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.profileRepo = repo
	}
}

// DocumentWithCompanyRepository sets the company repository
func DocumentWithCompanyRepository(repo *repository.CompanyRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.companyRepo = repo
	}
}

// DocumentWithPricingRepository sets the pricing repository
func DocumentWithPricingRepository(repo *repository.PricingRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.pricingRepo = repo
	}
}

// DocumentWithOverrideRepository sets the override repository
func DocumentWithOverrideRepository(repo *repository.OverrideRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.overrideRepo = repo
	}
}

// DocumentWithGearRepository sets the gear repository
func DocumentWithGearRepository(repo *repository.GearRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.gearRepo = repo
	}
}

// DocumentWithOfferRepository sets the offer repository
func DocumentWithOfferRepository(repo *repository.OfferRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.offerRepo = repo
	}
}

// DocumentWithTemplateRepository sets the template repository
func DocumentWithTemplateRepository(repo *repository.TemplateRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.templateRepo = repo
	}
}

// DocumentWithSignatureRepository sets the signature repository
func DocumentWithSignatureRepository(repo *repository.SignatureRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.signatureRepo = repo
	}
}

// DocumentWithRenderClient sets the PDF render client
func DocumentWithRenderClient(client *renderer.Client) DocumentServiceOption {
	return func(s *DocumentService) {
		s.renderClient = client
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildDocumentRequest identifies one document to assemble
type BuildDocumentRequest struct {
	ProfileID    uuid.UUID
	DocumentType models.DocumentType
}

// BuildDocumentResult carries the assembled HTML
type BuildDocumentResult struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

// BuildDocument loads everything the document needs, resolves the hiree's
// overrides, and assembles the HTML.
func (s *DocumentService) BuildDocument(ctx context.Context, req BuildDocumentRequest) (*BuildDocumentResult, error) {
	if !models.ValidDocumentType(req.DocumentType) {
		return nil, ErrInvalidDocType
	}

	docCtx, err := s.loadContext(ctx, req.ProfileID, req.DocumentType)
	if err != nil {
		return nil, err
	}

	return &BuildDocumentResult{
		Title: models.DocumentTitle(req.DocumentType),
		HTML:  document.Build(req.DocumentType, docCtx),
	}, nil
}

// RenderDocumentResult carries the rendered PDF
type RenderDocumentResult struct {
	Filename string
	PDF      []byte
}

// RenderDocument assembles a document and renders it to PDF
func (s *DocumentService) RenderDocument(ctx context.Context, req BuildDocumentRequest) (*RenderDocumentResult, error) {
	if s.renderClient == nil {
		return nil, errors.New("render client not set")
	}

	built, err := s.BuildDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	filename := pdfFilename(req.DocumentType, built.Title)
	pdf, err := s.renderClient.RenderPDF(ctx, built.HTML, renderer.RenderOptions{
		Format:   "Letter",
		Filename: filename,
	})
	if err != nil {
		return nil, err
	}

	return &RenderDocumentResult{Filename: filename, PDF: pdf}, nil
}

func pdfFilename(docType models.DocumentType, title string) string {
	slug := strings.ToLower(title)
	for _, cut := range []string{"&", ",", "."} {
		slug = strings.ReplaceAll(slug, cut, "")
	}
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = string(docType)
	}
	return fmt.Sprintf("%s.pdf", slug)
}

// SaveTemplate creates or replaces one document's customization
func (s *DocumentService) SaveTemplate(ctx context.Context, tmpl *models.Template) (*models.Template, error) {
	if s.templateRepo == nil {
		return nil, errors.New("template repository not set")
	}
	if !models.ValidDocumentType(tmpl.DocumentType) {
		return nil, ErrInvalidDocType
	}
	if tmpl.Clauses == nil {
		tmpl.Clauses = []string{}
	}

	if err := s.templateRepo.Upsert(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// ListTemplates lists a profile's document customizations
func (s *DocumentService) ListTemplates(ctx context.Context, profileID uuid.UUID) ([]models.Template, error) {
	if s.templateRepo == nil {
		return nil, errors.New("template repository not set")
	}
	return s.templateRepo.ListByProfile(ctx, profileID)
}

// DeleteTemplate removes one document's customization
func (s *DocumentService) DeleteTemplate(ctx context.Context, profileID uuid.UUID, docType models.DocumentType) error {
	if s.templateRepo == nil {
		return errors.New("template repository not set")
	}
	if !models.ValidDocumentType(docType) {
		return ErrInvalidDocType
	}
	return s.templateRepo.Delete(ctx, profileID, docType)
}

// loadContext gathers profile, company, resolved pricing, gear, offer,
// customization, and signature images for assembly.
func (s *DocumentService) loadContext(ctx context.Context, profileID uuid.UUID, docType models.DocumentType) (*document.Context, error) {
	if s.profileRepo == nil || s.companyRepo == nil {
		return nil, errors.New("profile and company repositories not set")
	}

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, profile.CompanyID)
	if err != nil {
		return nil, err
	}

	docCtx := &document.Context{Company: company, Profile: profile}

	if s.pricingRepo != nil && s.overrideRepo != nil {
		if err := s.loadPricing(ctx, docCtx, profile); err != nil {
			return nil, err
		}
	}
	if s.gearRepo != nil && s.overrideRepo != nil {
		if err := s.loadGear(ctx, docCtx, profile); err != nil {
			return nil, err
		}
	}

	if s.offerRepo != nil {
		offer, err := s.offerRepo.GetByProfile(ctx, profileID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		docCtx.Offer = offer
	}

	if s.templateRepo != nil {
		tmpl, err := s.templateRepo.GetByProfileAndType(ctx, profileID, docType)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		docCtx.Template = tmpl
	}

	if s.signatureRepo != nil {
		if sig, err := s.signatureRepo.GetSignature(ctx, profileID, models.SignatureHiree); err == nil {
			docCtx.HireeSignature = sig.SignatureData
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if sig, err := s.signatureRepo.GetSignature(ctx, profileID, models.SignatureCompany); err == nil {
			docCtx.CompanySignature = sig.SignatureData
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	return docCtx, nil
}

func (s *DocumentService) loadPricing(ctx context.Context, docCtx *document.Context, profile *models.Profile) error {
	flat, err := s.pricingRepo.ListFlatServices(ctx, profile.CompanyID)
	if err != nil {
		return err
	}
	tiers, err := s.pricingRepo.ListTiers(ctx, profile.CompanyID)
	if err != nil {
		return err
	}
	rates, err := s.pricingRepo.ListTieredRates(ctx, profile.CompanyID)
	if err != nil {
		return err
	}

	flatOverrides, err := s.overrideRepo.ListFlatOverrides(ctx, profile.ID)
	if err != nil {
		return err
	}
	tieredOverrides, err := s.overrideRepo.ListTieredOverrides(ctx, profile.ID)
	if err != nil {
		return err
	}

	flatMap := make(map[uuid.UUID]*document.RateOverride, len(flatOverrides))
	for _, o := range flatOverrides {
		flatMap[o.FlatServiceID] = rateOverrideFrom(o.CustomRate, o.IsEnabled)
	}
	tieredMap := make(map[uuid.UUID]*document.RateOverride, len(tieredOverrides))
	for _, o := range tieredOverrides {
		tieredMap[o.TieredRateID] = rateOverrideFrom(o.CustomRate, o.IsEnabled)
	}

	docCtx.FlatServices = document.ResolveFlatServices(flat, flatMap)
	docCtx.Tiers = document.ResolveTierPricing(tiers, rates, tieredMap)
	return nil
}

func (s *DocumentService) loadGear(ctx context.Context, docCtx *document.Context, profile *models.Profile) error {
	items, err := s.gearRepo.ListByCompany(ctx, profile.CompanyID)
	if err != nil {
		return err
	}
	overrides, err := s.overrideRepo.ListGearOverrides(ctx, profile.ID)
	if err != nil {
		return err
	}
	custom, err := s.overrideRepo.ListCustomGear(ctx, profile.ID)
	if err != nil {
		return err
	}

	overrideMap := make(map[uuid.UUID]*document.GearOverride, len(overrides))
	for _, o := range overrides {
		g := &document.GearOverride{Required: o.IsRequired}
		if o.CustomNotes != nil {
			g.Notes = *o.CustomNotes
		}
		overrideMap[o.GearItemID] = g
	}

	docCtx.Gear = document.ResolveGear(items, overrideMap, custom)
	return nil
}

func rateOverrideFrom(customRate *string, enabled bool) *document.RateOverride {
	o := &document.RateOverride{Enabled: enabled}
	if customRate != nil {
		o.Rate = document.ParseDecimalOrZero(*customRate)
	}
	return o
}
