package handlers

import (
	"net/http"

	"hireedocs-backend/models"
	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GearHandler handles HTTP requests for gear catalogs, per-hiree gear
// overrides, custom gear, and price estimation.
type GearHandler struct {
	gear       *service.GearService
	estimation *service.EstimationService
}

// NewGearHandler creates a new gear handler
func NewGearHandler(gear *service.GearService, estimation *service.EstimationService) *GearHandler {
	return &GearHandler{gear: gear, estimation: estimation}
}

// SaveGearItemRequest represents the request body for a catalog gear item
type SaveGearItemRequest struct {
	Name     string   `json:"name" binding:"required"`
	PriceCAD *float64 `json:"price_cad"`
}

// CreateGearItem handles POST /api/companies/:id/gear
func (h *GearHandler) CreateGearItem(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveGearItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.gear.CreateGearItem(c.Request.Context(), companyID, req.Name, req.PriceCAD)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, item)
}

// ListGearItems handles GET /api/companies/:id/gear
func (h *GearHandler) ListGearItems(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	items, err := h.gear.ListGearItems(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, items)
}

// UpdateGearItem handles PUT /api/gear/:id
func (h *GearHandler) UpdateGearItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveGearItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.gear.RenameGearItem(c.Request.Context(), id, req.Name); err != nil {
		respondServiceErr(c, err)
		return
	}
	if req.PriceCAD != nil {
		if err := h.gear.SetGearPrice(c.Request.Context(), id, req.PriceCAD); err != nil {
			respondServiceErr(c, err)
			return
		}
	}

	respondOK(c, http.StatusOK, gin.H{"updated": true})
}

// DeleteGearItem handles DELETE /api/gear/:id
func (h *GearHandler) DeleteGearItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.gear.DeleteGearItem(c.Request.Context(), id); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// SetGearOverrideRequest represents a per-hiree requirement exception
type SetGearOverrideRequest struct {
	GearItemID  string  `json:"gear_item_id" binding:"required"`
	IsRequired  bool    `json:"is_required"`
	CustomNotes *string `json:"custom_notes"`
}

// SetGearOverride handles PUT /api/profiles/:id/gear-overrides
func (h *GearHandler) SetGearOverride(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SetGearOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	itemID, err := uuid.Parse(req.GearItemID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_GEAR_ITEM_ID", "Invalid gear_item_id format")
		return
	}

	o, err := h.gear.SetGearOverride(c.Request.Context(), service.SetGearOverrideRequest{
		ProfileID:   profileID,
		GearItemID:  itemID,
		IsRequired:  req.IsRequired,
		CustomNotes: req.CustomNotes,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, o)
}

// ListGearOverrides handles GET /api/profiles/:id/gear-overrides
func (h *GearHandler) ListGearOverrides(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	overrides, err := h.gear.ListGearOverrides(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, overrides)
}

// SaveCustomGearRequest represents a hiree-scoped custom gear item
type SaveCustomGearRequest struct {
	Name        string   `json:"name" binding:"required"`
	IsRequired  bool     `json:"is_required"`
	CustomNotes *string  `json:"custom_notes"`
	PriceCAD    *float64 `json:"price_cad"`
}

// CreateCustomGear handles POST /api/profiles/:id/custom-gear
func (h *GearHandler) CreateCustomGear(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveCustomGearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.gear.CreateCustomGear(c.Request.Context(), service.SaveCustomGearRequest{
		ProfileID:   profileID,
		Name:        req.Name,
		IsRequired:  req.IsRequired,
		CustomNotes: req.CustomNotes,
		PriceCAD:    req.PriceCAD,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, item)
}

// ListCustomGear handles GET /api/profiles/:id/custom-gear
func (h *GearHandler) ListCustomGear(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	items, err := h.gear.ListCustomGear(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, items)
}

// UpdateCustomGear handles PUT /api/custom-gear/:id
func (h *GearHandler) UpdateCustomGear(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveCustomGearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	item, err := h.gear.UpdateCustomGear(c.Request.Context(), id, service.SaveCustomGearRequest{
		Name:        req.Name,
		IsRequired:  req.IsRequired,
		CustomNotes: req.CustomNotes,
		PriceCAD:    req.PriceCAD,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, item)
}

// DeleteCustomGear handles DELETE /api/custom-gear/:id
func (h *GearHandler) DeleteCustomGear(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.gear.DeleteCustomGear(c.Request.Context(), id); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// EstimateGearRequest scopes an estimation run
type EstimateGearRequest struct {
	CompanyID string `json:"company_id" binding:"required"`
	Type      string `json:"type"`
}

// EstimateGear handles POST /api/profiles/:id/gear/estimate
func (h *GearHandler) EstimateGear(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req EstimateGearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_COMPANY_ID", "Invalid company_id format")
		return
	}

	estimationType := models.EstimationType(req.Type)
	if estimationType == "" {
		estimationType = models.EstimateAllGear
	}
	switch estimationType {
	case models.EstimateCompanyGear, models.EstimateCustomGear, models.EstimateAllGear:
	default:
		respondErr(c, http.StatusBadRequest, "INVALID_ESTIMATION_TYPE", "Unknown estimation type")
		return
	}

	result, err := h.estimation.EstimateGear(c.Request.Context(), service.EstimateGearRequest{
		ProfileID: profileID,
		CompanyID: companyID,
		Type:      estimationType,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// ListEstimationLogs handles GET /api/companies/:id/estimation-logs
func (h *GearHandler) ListEstimationLogs(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	logs, err := h.estimation.ListEstimationLogs(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, logs)
}
