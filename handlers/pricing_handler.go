package handlers

import (
	"bytes"
	"net/http"

	"hireedocs-backend/models"
	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PricingHandler handles HTTP requests for company pricing and per-hiree
// rate overrides.
type PricingHandler struct {
	pricing *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricing *service.PricingService) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// SaveFlatServiceRequest represents the request body for a flat service
type SaveFlatServiceRequest struct {
	Name string `json:"name" binding:"required"`
	Rate string `json:"rate"`
}

// CreateFlatService handles POST /api/companies/:id/flat-services
func (h *PricingHandler) CreateFlatService(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveFlatServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	svc, err := h.pricing.CreateFlatService(c.Request.Context(), companyID, req.Name, req.Rate)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, svc)
}

// ListFlatServices handles GET /api/companies/:id/flat-services
func (h *PricingHandler) ListFlatServices(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	services, err := h.pricing.ListFlatServices(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, services)
}

// UpdateFlatService handles PUT /api/flat-services/:id
func (h *PricingHandler) UpdateFlatService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveFlatServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.pricing.UpdateFlatService(c.Request.Context(), id, req.Name, req.Rate); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteFlatService handles DELETE /api/flat-services/:id
func (h *PricingHandler) DeleteFlatService(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.pricing.DeleteFlatService(c.Request.Context(), id); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// ReplaceTiersRequest represents the full tier set for a company
type ReplaceTiersRequest struct {
	Tiers []struct {
		MinSqft int `json:"min_sqft"`
		MaxSqft int `json:"max_sqft"`
	} `json:"tiers" binding:"required"`
}

// ReplaceTiers handles PUT /api/companies/:id/tiers
func (h *PricingHandler) ReplaceTiers(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req ReplaceTiersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tiers := make([]models.Tier, len(req.Tiers))
	for i, t := range req.Tiers {
		tiers[i] = models.Tier{MinSqft: t.MinSqft, MaxSqft: t.MaxSqft}
	}

	replaced, err := h.pricing.ReplaceTiers(c.Request.Context(), companyID, tiers)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, replaced)
}

// ListTiers handles GET /api/companies/:id/tiers
func (h *PricingHandler) ListTiers(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	tiers, err := h.pricing.ListTiers(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, tiers)
}

// SetTieredRateRequest represents the request body for one tiered rate cell
type SetTieredRateRequest struct {
	TierID      string `json:"tier_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Rate        string `json:"rate"`
}

// SetTieredRate handles PUT /api/companies/:id/tiered-rates
func (h *PricingHandler) SetTieredRate(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SetTieredRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tierID, err := uuid.Parse(req.TierID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_TIER_ID", "Invalid tier_id format")
		return
	}

	rate, err := h.pricing.SetTieredRate(c.Request.Context(), companyID, tierID, models.ServiceType(req.ServiceType), req.Rate)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, rate)
}

// ListTieredRates handles GET /api/companies/:id/tiered-rates
func (h *PricingHandler) ListTieredRates(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	rates, err := h.pricing.ListTieredRates(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, rates)
}

// SetOverrideRequest represents a per-hiree rate exception
type SetOverrideRequest struct {
	FlatServiceID *string `json:"flat_service_id"`
	TieredRateID  *string `json:"tiered_rate_id"`
	CustomRate    *string `json:"custom_rate"`
	IsEnabled     bool    `json:"is_enabled"`
}

// SetOverride handles PUT /api/profiles/:id/overrides. The body names either
// a flat service or a tiered rate.
func (h *PricingHandler) SetOverride(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	switch {
	case req.FlatServiceID != nil:
		serviceID, err := uuid.Parse(*req.FlatServiceID)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "INVALID_SERVICE_ID", "Invalid flat_service_id format")
			return
		}
		o, err := h.pricing.SetFlatOverride(c.Request.Context(), service.SetFlatOverrideRequest{
			ProfileID:     profileID,
			FlatServiceID: serviceID,
			CustomRate:    req.CustomRate,
			IsEnabled:     req.IsEnabled,
		})
		if err != nil {
			respondServiceErr(c, err)
			return
		}
		respondOK(c, http.StatusOK, o)

	case req.TieredRateID != nil:
		rateID, err := uuid.Parse(*req.TieredRateID)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "INVALID_RATE_ID", "Invalid tiered_rate_id format")
			return
		}
		o, err := h.pricing.SetTieredOverride(c.Request.Context(), service.SetTieredOverrideRequest{
			ProfileID:    profileID,
			TieredRateID: rateID,
			CustomRate:   req.CustomRate,
			IsEnabled:    req.IsEnabled,
		})
		if err != nil {
			respondServiceErr(c, err)
			return
		}
		respondOK(c, http.StatusOK, o)

	default:
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", "flat_service_id or tiered_rate_id required")
	}
}

// ListOverrides handles GET /api/profiles/:id/overrides
func (h *PricingHandler) ListOverrides(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	flat, tiered, err := h.pricing.ListOverrides(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"flat_services": flat,
		"tiered_rates":  tiered,
	})
}

// ExportPricingCSV handles GET /api/companies/:id/pricing/export
func (h *PricingHandler) ExportPricingCSV(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.pricing.ExportPricingCSV(c.Request.Context(), companyID, &buf); err != nil {
		respondServiceErr(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pricing.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// ImportPricingCSV handles POST /api/companies/:id/pricing/import
func (h *PricingHandler) ImportPricingCSV(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.pricing.ImportPricingCSV(c.Request.Context(), companyID, c.Request.Body); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"imported": true})
}
