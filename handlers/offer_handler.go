package handlers

import (
	"net/http"

	"hireedocs-backend/models"
	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles HTTP requests for offers
type OfferHandler struct {
	offers *service.OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// SaveOfferRequest represents the request body for creating or updating an offer
type SaveOfferRequest struct {
	Position         string                  `json:"position"`
	StartDate        *string                 `json:"start_date"`
	EndDate          *string                 `json:"end_date"`
	WorkSchedule     string                  `json:"work_schedule"`
	ProbationMonths  string                  `json:"probation_months"`
	ManagerName      string                  `json:"manager_name"`
	ManagerEmail     string                  `json:"manager_email"`
	ManagerPhone     string                  `json:"manager_phone"`
	ManagerExt       string                  `json:"manager_ext"`
	ContactExt       string                  `json:"contact_ext"`
	ReturnBy         *string                 `json:"return_by"`
	CEOName          string                  `json:"ceo_name"`
	Compensation     models.Compensation     `json:"compensation"`
	Responsibilities string                  `json:"responsibilities"`
	Requirements     string                  `json:"requirements"`
	Terms            string                  `json:"terms"`
	FlatServices     models.SelectedServices `json:"flat_services"`
	TieredServices   models.SelectedServices `json:"tiered_services"`
	Status           string                  `json:"status"`
}

// SaveOffer handles PUT /api/profiles/:id/offer
func (h *OfferHandler) SaveOffer(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	offer := &models.OfferDetails{
		ProfileID:        profileID,
		Position:         req.Position,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		WorkSchedule:     req.WorkSchedule,
		ProbationMonths:  req.ProbationMonths,
		ManagerName:      req.ManagerName,
		ManagerEmail:     req.ManagerEmail,
		ManagerPhone:     req.ManagerPhone,
		ManagerExt:       req.ManagerExt,
		ContactExt:       req.ContactExt,
		ReturnBy:         req.ReturnBy,
		CEOName:          req.CEOName,
		Compensation:     req.Compensation,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Terms:            req.Terms,
		FlatServices:     req.FlatServices,
		TieredServices:   req.TieredServices,
		Status:           models.OfferStatus(req.Status),
	}

	saved, err := h.offers.SaveOffer(c.Request.Context(), offer)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, saved)
}

// GetOffer handles GET /api/profiles/:id/offer
func (h *OfferHandler) GetOffer(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	offer, err := h.offers.GetOffer(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, offer)
}

// UpdateOfferStatusRequest represents an offer lifecycle transition
type UpdateOfferStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOfferStatus handles PUT /api/profiles/:id/offer/status
func (h *OfferHandler) UpdateOfferStatus(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateOfferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	status := models.OfferStatus(req.Status)
	switch status {
	case models.OfferStatusDraft, models.OfferStatusFinalized, models.OfferStatusSent,
		models.OfferStatusAccepted, models.OfferStatusRejected:
	default:
		respondErr(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown offer status")
		return
	}

	if err := h.offers.UpdateOfferStatus(c.Request.Context(), profileID, status); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"status": status})
}

// DeleteOffer handles DELETE /api/profiles/:id/offer
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.offers.DeleteOffer(c.Request.Context(), profileID); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
