package document

import (
	"testing"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalOrZero(t *testing.T) {
	assert.Equal(t, 120.0, ParseDecimalOrZero("120"))
	assert.Equal(t, 0.15, ParseDecimalOrZero(" 0.15 "))
	assert.Equal(t, 0.0, ParseDecimalOrZero(""))
	assert.Equal(t, 0.0, ParseDecimalOrZero("abc"))

	// ParseFloat parses these, but they are not rates
	assert.Equal(t, 0.0, ParseDecimalOrZero("nan"))
	assert.Equal(t, 0.0, ParseDecimalOrZero("NaN"))
	assert.Equal(t, 0.0, ParseDecimalOrZero("inf"))
	assert.Equal(t, 0.0, ParseDecimalOrZero("-Inf"))
}

func TestResolveFlatRate(t *testing.T) {
	svc := models.FlatService{Name: "Floor Plans", Rate: "120"}

	// no override row
	assert.Equal(t, 120.0, ResolveFlatRate(svc, nil))

	// enabled override with positive rate wins
	assert.Equal(t, 150.0, ResolveFlatRate(svc, &RateOverride{Rate: 150, Enabled: true}))

	// disabled override falls back to the company rate
	assert.Equal(t, 120.0, ResolveFlatRate(svc, &RateOverride{Rate: 150, Enabled: false}))

	// enabled but zero rate falls back as well
	assert.Equal(t, 120.0, ResolveFlatRate(svc, &RateOverride{Rate: 0, Enabled: true}))

	// unparseable base rate resolves to 0, never errors
	assert.Equal(t, 0.0, ResolveFlatRate(models.FlatService{Rate: "n/a"}, nil))
}

func TestFlatServiceTableToleratesBadRate(t *testing.T) {
	// a rate string spelling a non-finite float renders as $0.00
	lines := ResolveFlatServices([]models.FlatService{
		{ID: uuid.New(), Name: "Floor Plans", Rate: "nan"},
	}, nil)
	out := flatServiceTable(lines)
	assert.Contains(t, out, "Floor Plans")
	assert.Contains(t, out, "$0.00")
}

func TestResolveTieredRate(t *testing.T) {
	tr := models.TieredRate{ServiceType: models.ServicePhoto, Rate: "0.12"}

	assert.Equal(t, 0.12, ResolveTieredRate(tr, nil))
	assert.Equal(t, 0.18, ResolveTieredRate(tr, &RateOverride{Rate: 0.18, Enabled: true}))
	assert.Equal(t, 0.12, ResolveTieredRate(tr, &RateOverride{Rate: 0.18, Enabled: false}))
}

func TestResolveGearRequired(t *testing.T) {
	// custom gear carries its own flag; the override argument is ignored
	assert.True(t, ResolveGearRequired(true, true, nil))
	assert.False(t, ResolveGearRequired(true, false, &GearOverride{Required: true}))

	// catalog gear follows the override row when present
	assert.False(t, ResolveGearRequired(false, false, &GearOverride{Required: false}))
	assert.True(t, ResolveGearRequired(false, false, &GearOverride{Required: true}))

	// catalog gear with no override row defaults to required
	assert.True(t, ResolveGearRequired(false, false, nil))
}

func TestResolveFlatServices(t *testing.T) {
	a := models.FlatService{ID: uuid.New(), Name: "Floor Plans", Rate: "120"}
	b := models.FlatService{ID: uuid.New(), Name: "Virtual Staging", Rate: "45"}

	out := ResolveFlatServices([]models.FlatService{a, b}, map[uuid.UUID]*RateOverride{
		b.ID: {Rate: 60, Enabled: true},
	})

	require.Len(t, out, 2)
	assert.Equal(t, 120.0, out[0].Rate)
	assert.Equal(t, "Floor Plans", out[0].Name)
	assert.Equal(t, 60.0, out[1].Rate)
}

func TestResolveTierPricing(t *testing.T) {
	companyID := uuid.New()
	t1 := models.Tier{ID: uuid.New(), CompanyID: companyID, MinSqft: 1, MaxSqft: 1000}
	t2 := models.Tier{ID: uuid.New(), CompanyID: companyID, MinSqft: 1001, MaxSqft: 2000}

	r1 := models.TieredRate{ID: uuid.New(), TierID: t1.ID, ServiceType: models.ServicePhoto, Rate: "0.10"}
	r2 := models.TieredRate{ID: uuid.New(), TierID: t1.ID, ServiceType: models.ServiceVideo, Rate: "0.20"}
	r3 := models.TieredRate{ID: uuid.New(), TierID: t2.ID, ServiceType: models.ServicePhoto, Rate: "0.08"}

	out := ResolveTierPricing(
		[]models.Tier{t1, t2},
		[]models.TieredRate{r1, r2, r3},
		map[uuid.UUID]*RateOverride{r3.ID: {Rate: 0.07, Enabled: true}},
	)

	require.Len(t, out, 2)
	assert.Equal(t, 0.10, out[0].Rates[models.ServicePhoto])
	assert.Equal(t, 0.20, out[0].Rates[models.ServiceVideo])
	// tier 1 has no iguide rate row; the cell resolves to 0
	assert.Equal(t, 0.0, out[0].Rates[models.ServiceIGuide])
	assert.Equal(t, 0.07, out[1].Rates[models.ServicePhoto])
}

func TestResolveGear(t *testing.T) {
	price := 2499.0
	cam := models.GearItem{ID: uuid.New(), Name: "Full-frame camera", EstimatedPriceCAD: &price}
	drone := models.GearItem{ID: uuid.New(), Name: "Drone"}
	notes := "must be insured"
	custom := models.HireeCustomGearItem{Name: "Gimbal", IsRequired: false, CustomNotes: &notes}

	out := ResolveGear(
		[]models.GearItem{cam, drone},
		map[uuid.UUID]*GearOverride{drone.ID: {Required: false, Notes: "waived for this hire"}},
		[]models.HireeCustomGearItem{custom},
	)

	require.Len(t, out, 3)

	assert.Equal(t, "Full-frame camera", out[0].Name)
	assert.True(t, out[0].Required)
	require.NotNil(t, out[0].PriceCAD)
	assert.Equal(t, 2499.0, *out[0].PriceCAD)

	assert.False(t, out[1].Required)
	assert.Equal(t, "waived for this hire", out[1].Notes)

	assert.Equal(t, "Gimbal", out[2].Name)
	assert.False(t, out[2].Required)
	assert.Equal(t, "must be insured", out[2].Notes)
	assert.Nil(t, out[2].PriceCAD)
}
