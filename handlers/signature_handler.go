package handlers

import (
	"net/http"

	"hireedocs-backend/models"
	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignatureHandler handles HTTP requests for in-app signatures, public
// signing links, and hiree access tokens.
type SignatureHandler struct {
	signatures *service.SignatureService
}

// NewSignatureHandler creates a new signature handler
func NewSignatureHandler(signatures *service.SignatureService) *SignatureHandler {
	return &SignatureHandler{signatures: signatures}
}

// SaveSignatureRequest represents an in-app signature capture
type SaveSignatureRequest struct {
	CompanyID     *string `json:"company_id"`
	SignatureType string  `json:"signature_type" binding:"required"`
	SignatureData string  `json:"signature_data" binding:"required"`
}

// SaveSignature handles PUT /api/profiles/:id/signatures
func (h *SignatureHandler) SaveSignature(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	sigType := models.SignatureType(req.SignatureType)
	if sigType != models.SignatureHiree && sigType != models.SignatureCompany {
		respondErr(c, http.StatusBadRequest, "INVALID_SIGNATURE_TYPE", "signature_type must be hiree or company")
		return
	}

	var companyID *uuid.UUID
	if req.CompanyID != nil {
		id, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			respondErr(c, http.StatusBadRequest, "INVALID_COMPANY_ID", "Invalid company_id format")
			return
		}
		companyID = &id
	}

	sig, err := h.signatures.SaveSignature(c.Request.Context(), service.SaveSignatureRequest{
		ProfileID:     profileID,
		CompanyID:     companyID,
		SignatureType: sigType,
		SignatureData: req.SignatureData,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, sig)
}

// GetSignature handles GET /api/profiles/:id/signatures/:type
func (h *SignatureHandler) GetSignature(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	sig, err := h.signatures.GetSignature(c.Request.Context(), profileID, models.SignatureType(c.Param("type")))
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, sig)
}

// ClearSignature handles DELETE /api/profiles/:id/signatures/:type
func (h *SignatureHandler) ClearSignature(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.signatures.ClearSignature(c.Request.Context(), profileID, models.SignatureType(c.Param("type"))); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"cleared": true})
}

// CreateLinkRequest represents a request to issue a signing link
type CreateLinkRequest struct {
	DocumentType string `json:"document_type" binding:"required"`
}

// CreateLink handles POST /api/profiles/:id/signature-links
func (h *SignatureHandler) CreateLink(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	link, err := h.signatures.CreateLink(c.Request.Context(), service.CreateLinkRequest{
		ProfileID:    profileID,
		DocumentType: models.DocumentType(req.DocumentType),
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, link)
}

// ListLinks handles GET /api/profiles/:id/signature-links
func (h *SignatureHandler) ListLinks(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	links, err := h.signatures.ListLinks(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, links)
}

// GetPublicLink handles GET /api/sign/:token. No auth; the token is the
// credential.
func (h *SignatureHandler) GetPublicLink(c *gin.Context) {
	link, err := h.signatures.GetLinkByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, link)
}

// SignRequest represents a signature submitted through a public link
type SignRequest struct {
	Role          string  `json:"role" binding:"required"`
	SignatureData string  `json:"signature_data" binding:"required"`
	InitialData   *string `json:"initial_data"`
}

// Sign handles POST /api/sign/:token
func (h *SignatureHandler) Sign(c *gin.Context) {
	var req SignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	link, err := h.signatures.Sign(c.Request.Context(), service.SignRequest{
		Token:         c.Param("token"),
		Role:          models.SignerRole(req.Role),
		SignatureData: req.SignatureData,
		InitialData:   req.InitialData,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, link)
}

// ResetLinkRequest represents a tenant clearing a signed link
type ResetLinkRequest struct {
	ResetBy string  `json:"reset_by" binding:"required"`
	Reason  *string `json:"reason"`
}

// ResetLink handles POST /api/signature-links/:id/reset
func (h *SignatureHandler) ResetLink(c *gin.Context) {
	linkID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req ResetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	resetBy, err := uuid.Parse(req.ResetBy)
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_RESET_BY", "Invalid reset_by format")
		return
	}

	if err := h.signatures.ResetLink(c.Request.Context(), service.ResetLinkRequest{
		LinkID:  linkID,
		ResetBy: resetBy,
		Reason:  req.Reason,
	}); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"reset": true})
}

// ListResetLogs handles GET /api/signature-links/:id/reset-logs
func (h *SignatureHandler) ListResetLogs(c *gin.Context) {
	linkID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	logs, err := h.signatures.ListResetLogs(c.Request.Context(), linkID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, logs)
}

// DeleteLink handles DELETE /api/signature-links/:id
func (h *SignatureHandler) DeleteLink(c *gin.Context) {
	linkID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.signatures.DeleteLink(c.Request.Context(), linkID); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// CreateHireeAccess handles POST /api/profiles/:id/hiree-access
func (h *SignatureHandler) CreateHireeAccess(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	access, err := h.signatures.CreateHireeAccess(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusCreated, access)
}

// RedeemHireeAccess handles POST /api/hiree-access/:token/redeem
func (h *SignatureHandler) RedeemHireeAccess(c *gin.Context) {
	profile, err := h.signatures.RedeemHireeAccess(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, profile)
}
