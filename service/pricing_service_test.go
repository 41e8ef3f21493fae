package service

import (
	"testing"

	"hireedocs-backend/models"

	"github.com/stretchr/testify/assert"
)

func tier(min, max int) models.Tier {
	return models.Tier{MinSqft: min, MaxSqft: max}
}

func TestTiersAreValid(t *testing.T) {
	assert.True(t, TiersAreValid(nil))
	assert.True(t, TiersAreValid([]models.Tier{tier(1, 1000)}))
	assert.True(t, TiersAreValid([]models.Tier{tier(1, 1000), tier(1001, 2000), tier(2001, 3500)}))

	// order of input does not matter
	assert.True(t, TiersAreValid([]models.Tier{tier(2001, 3500), tier(1, 1000), tier(1001, 2000)}))

	// inverted range
	assert.False(t, TiersAreValid([]models.Tier{tier(1000, 1)}))

	// overlapping ranges
	assert.False(t, TiersAreValid([]models.Tier{tier(1, 1000), tier(900, 2000)}))

	// touching ranges count as overlapping
	assert.False(t, TiersAreValid([]models.Tier{tier(1, 1000), tier(1000, 2000)}))

	// duplicate ranges
	assert.False(t, TiersAreValid([]models.Tier{tier(1, 1000), tier(1, 1000)}))
}
