package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstimatorResponse(t *testing.T) {
	prices, err := parseEstimatorResponse(`[{"name": "Full-frame camera", "price_cad": 2499.99}, {"name": "Tripod", "price_cad": 350}]`)
	require.NoError(t, err)
	assert.Equal(t, 2499.99, prices["full-frame camera"])
	assert.Equal(t, 350.0, prices["tripod"])
}

func TestParseEstimatorResponseCodeFence(t *testing.T) {
	raw := "```json\n[{\"name\": \"Drone\", \"price_cad\": 1800}]\n```"
	prices, err := parseEstimatorResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, prices["drone"])
}

func TestParseEstimatorResponseGarbage(t *testing.T) {
	_, err := parseEstimatorResponse("sorry, I cannot price these items")
	assert.Error(t, err)

	_, err = parseEstimatorResponse(`{"name": "not an array"}`)
	assert.Error(t, err)
}
