package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"hireedocs-backend/models"
	"hireedocs-backend/repository"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
)

const defaultEstimationModel = "gemini-2.0-flash"

// EstimationService prices gear items through the Gemini API and records an
// audit row for every run.
type EstimationService struct {
	gearRepo     *repository.GearRepository
	overrideRepo *repository.OverrideRepository
	logRepo      *repository.EstimationLogRepository
	geminiClient *genai.Client
	model        string
}

// EstimationServiceOption is a functional option for EstimationService
type EstimationServiceOption func(*EstimationService)

// EstimationWithGearRepository sets the gear repository
func EstimationWithGearRepository(repo *repository.GearRepository) EstimationServiceOption {
	return func(s *EstimationService) {
		s.gearRepo = repo
	}
}

// EstimationWithOverrideRepository sets the override repository
func EstimationWithOverrideRepository(repo *repository.OverrideRepository) EstimationServiceOption {
	return func(s *EstimationService) {
		s.overrideRepo = repo
	}
}

// EstimationWithLogRepository sets the estimation log repository
func EstimationWithLogRepository(repo *repository.EstimationLogRepository) EstimationServiceOption {
	return func(s *EstimationService) {
		s.logRepo = repo
	}
}

// EstimationWithGeminiClient sets the Gemini client
func EstimationWithGeminiClient(client *genai.Client) EstimationServiceOption {
	return func(s *EstimationService) {
		s.geminiClient = client
	}
}

// EstimationWithModel overrides the Gemini model name
func EstimationWithModel(model string) EstimationServiceOption {
	return func(s *EstimationService) {
		s.model = model
	}
}

// NewEstimationService creates a new estimation service
func NewEstimationService(opts ...EstimationServiceOption) *EstimationService {
	s := &EstimationService{model: defaultEstimationModel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EstimateGearRequest scopes one estimation run
type EstimateGearRequest struct {
	ProfileID uuid.UUID
	CompanyID uuid.UUID
	Type      models.EstimationType
}

// EstimatedItem is one priced line of an estimation run
type EstimatedItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	PriceCAD float64   `json:"price_cad"`
	Custom   bool      `json:"custom"`
}

// EstimateGearResult summarizes one estimation run
type EstimateGearResult struct {
	Items      []EstimatedItem `json:"items"`
	TotalCAD   float64         `json:"total_cad"`
	TokensUsed int             `json:"tokens_used"`
}

type estimationTarget struct {
	id     uuid.UUID
	name   string
	custom bool
}

// EstimateGear prices the requested scope of gear, writes the prices back
// with ai_estimate provenance, and logs the run.
func (s *EstimationService) EstimateGear(ctx context.Context, req EstimateGearRequest) (*EstimateGearResult, error) {
	if s.geminiClient == nil {
		return nil, errors.New("gemini client not set")
	}
	if s.gearRepo == nil || s.overrideRepo == nil {
		return nil, errors.New("gear repositories not set")
	}

	var targets []estimationTarget

	if req.Type == models.EstimateCompanyGear || req.Type == models.EstimateAllGear {
		items, err := s.gearRepo.ListByCompany(ctx, req.CompanyID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			targets = append(targets, estimationTarget{id: item.ID, name: item.Name})
		}
	}
	if req.Type == models.EstimateCustomGear || req.Type == models.EstimateAllGear {
		items, err := s.overrideRepo.ListCustomGear(ctx, req.ProfileID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			targets = append(targets, estimationTarget{id: item.ID, name: item.Name, custom: true})
		}
	}

	if len(targets) == 0 {
		return nil, ErrNothingToEstimate
	}

	prices, tokens, err := s.callEstimator(ctx, targets)
	if err != nil {
		return nil, err
	}

	result := &EstimateGearResult{TokensUsed: tokens}
	for _, target := range targets {
		price, ok := prices[strings.ToLower(target.name)]
		if !ok || price <= 0 {
			log.Printf("estimator returned no price for %q, skipping", target.name)
			continue
		}

		p := price
		if target.custom {
			err = s.overrideRepo.UpdateCustomGearPrice(ctx, target.id, &p, models.PriceSourceAIEstimate)
		} else {
			err = s.gearRepo.UpdatePrice(ctx, target.id, &p, models.PriceSourceAIEstimate)
		}
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, EstimatedItem{
			ID:       target.id,
			Name:     target.name,
			PriceCAD: price,
			Custom:   target.custom,
		})
		result.TotalCAD += price
	}

	if s.logRepo != nil {
		logRow := &models.GearEstimationLog{
			ProfileID:             req.ProfileID,
			CompanyID:             req.CompanyID,
			EstimationType:        req.Type,
			ItemsEstimated:        len(result.Items),
			TotalEstimatedCostCAD: result.TotalCAD,
			TokensUsed:            tokens,
		}
		if err := s.logRepo.Create(ctx, logRow); err != nil {
			log.Printf("failed to write estimation log: %v", err)
		}
	}

	return result, nil
}

// callEstimator sends one batched prompt and returns prices keyed by
// lowercased item name.
func (s *EstimationService) callEstimator(ctx context.Context, targets []estimationTarget) (map[string]float64, int, error) {
	var names strings.Builder
	for _, t := range targets {
		fmt.Fprintf(&names, "- %s\n", t.name)
	}

	prompt := fmt.Sprintf(`You are a procurement assistant for a real estate media company in Canada.
Estimate the current typical retail price in Canadian dollars for each piece of
photography/videography equipment below. Use mid-range professional models when
the item name is generic.

Items:
%s
Respond with ONLY a JSON array, no prose, in this exact shape:
[{"name": "<item name exactly as given>", "price_cad": <number>}]`, names.String())

	model := s.geminiClient.GenerativeModel(s.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, 0, fmt.Errorf("gemini request failed: %w", err)
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, tokens, errors.New("gemini returned no candidates")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	prices, err := parseEstimatorResponse(raw.String())
	if err != nil {
		return nil, tokens, err
	}
	return prices, tokens, nil
}

// parseEstimatorResponse decodes the model's JSON array, tolerating markdown
// code fences around it.
func parseEstimatorResponse(raw string) (map[string]float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var rows []struct {
		Name     string  `json:"name"`
		PriceCAD float64 `json:"price_cad"`
	}
	if err := json.Unmarshal([]byte(cleaned), &rows); err != nil {
		return nil, fmt.Errorf("unparseable estimator response: %w", err)
	}

	prices := make(map[string]float64, len(rows))
	for _, row := range rows {
		prices[strings.ToLower(strings.TrimSpace(row.Name))] = row.PriceCAD
	}
	return prices, nil
}

// ListEstimationLogs lists a company's estimation runs
func (s *EstimationService) ListEstimationLogs(ctx context.Context, companyID uuid.UUID) ([]models.GearEstimationLog, error) {
	if s.logRepo == nil {
		return nil, errors.New("estimation log repository not set")
	}
	return s.logRepo.ListByCompany(ctx, companyID)
}
