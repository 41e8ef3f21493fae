package handlers

import (
	"net/http"

	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	companies *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// SaveCompanyRequest represents the request body for creating or updating a company
type SaveCompanyRequest struct {
	OwnerID      string `json:"owner_id"`
	Name         string `json:"name" binding:"required"`
	Jurisdiction string `json:"jurisdiction"`
}

// CreateCompany handles POST /api/companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_OWNER_ID", "Invalid owner_id format")
		return
	}

	company, err := h.companies.CreateCompany(c.Request.Context(), service.CreateCompanyRequest{
		OwnerID:      ownerID,
		Name:         req.Name,
		Jurisdiction: req.Jurisdiction,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, company)
}

// GetCompany handles GET /api/companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	company, err := h.companies.GetCompany(c.Request.Context(), id)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, company)
}

// ListCompanies handles GET /api/companies?owner_id=
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_OWNER_ID", "owner_id query parameter required")
		return
	}

	companies, err := h.companies.ListCompanies(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, companies)
}

// UpdateCompany handles PUT /api/companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	company, err := h.companies.UpdateCompany(c.Request.Context(), service.UpdateCompanyRequest{
		ID:           id,
		Name:         req.Name,
		Jurisdiction: req.Jurisdiction,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, company)
}

// UploadLogoRequest represents a logo upload as a base64 data URL
type UploadLogoRequest struct {
	DataURL string `json:"data_url" binding:"required"`
}

// UploadLogo handles POST /api/companies/:id/logo
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UploadLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	company, err := h.companies.UploadLogo(c.Request.Context(), service.UploadLogoRequest{
		CompanyID: id,
		DataURL:   req.DataURL,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.companies.DeleteCompany(c.Request.Context(), id); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
