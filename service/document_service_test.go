package service

import (
	"testing"

	"hireedocs-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestPdfFilename(t *testing.T) {
	assert.Equal(t, "training-waiver-liability-release.pdf",
		pdfFilename(models.DocWaiver, models.DocumentTitle(models.DocWaiver)))
	assert.Equal(t, "non-compete-agreement.pdf",
		pdfFilename(models.DocNoncompete, models.DocumentTitle(models.DocNoncompete)))
	assert.Equal(t, "equipment-gear-supply-obligations.pdf",
		pdfFilename(models.DocGear, models.DocumentTitle(models.DocGear)))
	assert.Equal(t, "pay.pdf", pdfFilename(models.DocPay, ""))
}

func TestRateOverrideFrom(t *testing.T) {
	rate := "150.50"
	o := rateOverrideFrom(&rate, true)
	assert.Equal(t, 150.50, o.Rate)
	assert.True(t, o.Enabled)

	o = rateOverrideFrom(nil, true)
	assert.Equal(t, 0.0, o.Rate)

	bad := "n/a"
	o = rateOverrideFrom(&bad, false)
	assert.Equal(t, 0.0, o.Rate)
	assert.False(t, o.Enabled)
}
