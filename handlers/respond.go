package handlers

import (
	"errors"
	"net/http"

	"hireedocs-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondOK writes the success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondErr writes the error envelope
func respondErr(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceErr maps service sentinel errors onto HTTP statuses and
// stable codes; anything unmapped is a 500.
func respondServiceErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondErr(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrNoOffer):
		respondErr(c, http.StatusNotFound, "NO_OFFER", err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		respondErr(c, http.StatusConflict, "EMAIL_TAKEN", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondErr(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, service.ErrInvalidTiers):
		respondErr(c, http.StatusBadRequest, "INVALID_TIERS", err.Error())
	case errors.Is(err, service.ErrInvalidServiceType):
		respondErr(c, http.StatusBadRequest, "INVALID_SERVICE_TYPE", err.Error())
	case errors.Is(err, service.ErrInvalidDocType):
		respondErr(c, http.StatusBadRequest, "INVALID_DOCUMENT_TYPE", err.Error())
	case errors.Is(err, service.ErrAlreadySigned):
		respondErr(c, http.StatusConflict, "ALREADY_SIGNED", err.Error())
	case errors.Is(err, service.ErrLinkExpired):
		respondErr(c, http.StatusGone, "LINK_EXPIRED", err.Error())
	case errors.Is(err, service.ErrNothingToEstimate):
		respondErr(c, http.StatusBadRequest, "NOTHING_TO_ESTIMATE", err.Error())
	default:
		respondErr(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}

// pathUUID parses a UUID path parameter, writing the error response itself
// on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondErr(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
