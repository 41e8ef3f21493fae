package handlers

import (
	"net/http"

	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles HTTP requests for hiree profiles
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// SaveProfileRequest represents the request body for creating or updating a profile
type SaveProfileRequest struct {
	CompanyID    string  `json:"company_id"`
	OwnerID      string  `json:"owner_id"`
	Name         string  `json:"name"`
	HireeName    string  `json:"hiree_name" binding:"required"`
	HireeDob     *string `json:"hiree_dob"`
	HireeAddress string  `json:"hiree_address"`
	HireeEmail   string  `json:"hiree_email"`
	HireePhone   string  `json:"hiree_phone"`
	HireeDate    string  `json:"hiree_date"`
}

func (req *SaveProfileRequest) toService() service.SaveProfileRequest {
	return service.SaveProfileRequest{
		Name:         req.Name,
		HireeName:    req.HireeName,
		HireeDob:     req.HireeDob,
		HireeAddress: req.HireeAddress,
		HireeEmail:   req.HireeEmail,
		HireePhone:   req.HireePhone,
		HireeDate:    req.HireeDate,
	}
}

// CreateProfile handles POST /api/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_COMPANY_ID", "Invalid company_id format")
		return
	}
	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_OWNER_ID", "Invalid owner_id format")
		return
	}

	serviceReq := req.toService()
	serviceReq.CompanyID = companyID
	serviceReq.OwnerID = ownerID

	profile, err := h.profiles.CreateProfile(c.Request.Context(), serviceReq)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, profile)
}

// GetProfile handles GET /api/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, profile)
}

// ListProfiles handles GET /api/companies/:id/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	companyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	profiles, err := h.profiles.ListProfiles(c.Request.Context(), companyID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, profiles)
}

// UpdateProfile handles PUT /api/profiles/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), id, req.toService())
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/profiles/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.profiles.DeleteProfile(c.Request.Context(), id); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
