package handlers

import (
	"net/http"

	"hireedocs-backend/models"
	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
)

// DocumentHandler handles HTTP requests for document assembly, PDF
// rendering, and per-document customizations.
type DocumentHandler struct {
	documents *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// BuildDocument handles GET /api/profiles/:id/documents/:type
func (h *DocumentHandler) BuildDocument(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.documents.BuildDocument(c.Request.Context(), service.BuildDocumentRequest{
		ProfileID:    profileID,
		DocumentType: models.DocumentType(c.Param("type")),
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// RenderDocument handles GET /api/profiles/:id/documents/:type/pdf
func (h *DocumentHandler) RenderDocument(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.documents.RenderDocument(c.Request.Context(), service.BuildDocumentRequest{
		ProfileID:    profileID,
		DocumentType: models.DocumentType(c.Param("type")),
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

// SaveTemplateRequest represents one document's customization
type SaveTemplateRequest struct {
	Clauses  []string `json:"clauses"`
	Addendum string   `json:"addendum"`
}

// SaveTemplate handles PUT /api/profiles/:id/templates/:type
func (h *DocumentHandler) SaveTemplate(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	tmpl, err := h.documents.SaveTemplate(c.Request.Context(), &models.Template{
		ProfileID:    profileID,
		DocumentType: models.DocumentType(c.Param("type")),
		Clauses:      req.Clauses,
		Addendum:     req.Addendum,
	})
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, tmpl)
}

// ListTemplates handles GET /api/profiles/:id/templates
func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	templates, err := h.documents.ListTemplates(c.Request.Context(), profileID)
	if err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, templates)
}

// DeleteTemplate handles DELETE /api/profiles/:id/templates/:type
func (h *DocumentHandler) DeleteTemplate(c *gin.Context) {
	profileID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.documents.DeleteTemplate(c.Request.Context(), profileID, models.DocumentType(c.Param("type"))); err != nil {
		respondServiceErr(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
