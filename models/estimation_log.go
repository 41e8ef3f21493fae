package models

import (
	"time"

	"github.com/google/uuid"
)

// EstimationType scopes a gear price estimation run
type EstimationType string

const (
	EstimateCompanyGear EstimationType = "company_gear"
	EstimateCustomGear  EstimationType = "hiree_custom_gear"
	EstimateAllGear     EstimationType = "all_gear"
)

// GearEstimationLog records one LLM price-estimation run for usage tracking
type GearEstimationLog struct {
	ID                    uuid.UUID      `json:"id"`
	ProfileID             uuid.UUID      `json:"profile_id"`
	CompanyID             uuid.UUID      `json:"company_id"`
	EstimationType        EstimationType `json:"estimation_type"`
	ItemsEstimated        int            `json:"items_estimated"`
	TotalEstimatedCostCAD float64        `json:"total_estimated_cost_cad"`
	TokensUsed            int            `json:"tokens_used"`
	CreatedAt             time.Time      `json:"created_at"`
}
