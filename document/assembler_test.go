package document

import (
	"strings"
	"testing"

	"hireedocs-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() *Context {
	dob := "1998-06-14"
	return &Context{
		Company: &models.Company{
			ID:           uuid.New(),
			Name:         "Northline Media & Co",
			Jurisdiction: "Ontario, Canada",
		},
		Profile: &models.Profile{
			ID:           uuid.New(),
			HireeName:    "Jordan O'Neill",
			HireeEmail:   "jordan@example.com",
			HireePhone:   "416-555-0101",
			HireeAddress: "12 King St W, Toronto",
			HireeDob:     &dob,
		},
	}
}

func TestBuildNilContext(t *testing.T) {
	out := Build(models.DocWaiver, nil)
	assert.Contains(t, out, "No Profile Loaded")

	out = Build(models.DocWaiver, &Context{Company: &models.Company{}})
	assert.Contains(t, out, "No Profile Loaded")
}

func TestBuildWaiver(t *testing.T) {
	ctx := testContext()
	ctx.Template = &models.Template{
		DocumentType: models.DocWaiver,
		Clauses:      []string{"I understand the risks of on-site training.", "I will not share client data."},
		Addendum:     "Bring your own safety boots.",
	}

	out := Build(models.DocWaiver, ctx)

	// company name is escaped everywhere it appears
	assert.Contains(t, out, "Northline Media &amp; Co")
	assert.NotContains(t, out, "Northline Media & Co<")

	// document titles are trusted constants and interpolate unescaped
	assert.Contains(t, out, "Training Waiver & Liability Release")
	assert.Contains(t, out, "1. Assumption of Risk")
	assert.Contains(t, out, "5. Governing Law")
	assert.Contains(t, out, "laws of Ontario, Canada")

	// hiree block with escaped name
	assert.Contains(t, out, "Jordan O&#39;Neill")
	assert.Contains(t, out, "June 14, 1998")

	// both signature slots, unsigned
	assert.Contains(t, out, "Trainee Signature")
	assert.Contains(t, out, "Company Representative Signature")
	assert.Equal(t, 2, strings.Count(out, "Signature required"))

	// addendum block, once
	assert.Equal(t, 1, strings.Count(out, "Additional Terms"))
	assert.Contains(t, out, "Bring your own safety boots.")

	// one initials page with one row per clause
	assert.Equal(t, 1, strings.Count(out, "Initials Page"))
	assert.Equal(t, 2, strings.Count(out, "border-bottom:1px solid #000"))

	assert.Contains(t, out, "Document ID: SGM-")
}

func TestBuildWaiverNoTemplate(t *testing.T) {
	out := Build(models.DocWaiver, testContext())
	assert.NotContains(t, out, "Initials Page")
	assert.NotContains(t, out, "Additional Terms")
}

func TestBuildNoncompete(t *testing.T) {
	out := Build(models.DocNoncompete, testContext())
	assert.Contains(t, out, "three (3) years")
	assert.Contains(t, out, "1. Restriction on Competition")
	assert.Contains(t, out, "4. Severability")
	assert.Contains(t, out, "Employee Signature")
	assert.Contains(t, out, "within Ontario, Canada")
}

func TestBuildGear(t *testing.T) {
	ctx := testContext()
	price1 := 2499.0
	price2 := 650.0
	ctx.Gear = []GearLine{
		{Name: "Full-frame camera", Required: true, PriceCAD: &price1},
		{Name: "Tripod", Required: true, Notes: "carbon fiber preferred", PriceCAD: &price2},
		{Name: "Drone", Required: false},
	}

	out := Build(models.DocGear, ctx)

	assert.Contains(t, out, "Transport Canada drone certification")
	assert.Contains(t, out, "Full-frame camera")
	assert.Contains(t, out, "$2,499.00")
	assert.Contains(t, out, "carbon fiber preferred")
	// non-required items are omitted from the table
	assert.NotContains(t, out, "Drone")
	assert.Contains(t, out, "Estimated Total")
	assert.Contains(t, out, "$3,149.00")
	assert.Contains(t, out, "Hiree Signature")
}

func TestBuildGearNoPrices(t *testing.T) {
	ctx := testContext()
	ctx.Gear = []GearLine{{Name: "Tripod", Required: true}}

	out := Build(models.DocGear, ctx)
	assert.Contains(t, out, "Tripod")
	assert.NotContains(t, out, "Estimated Total")
}

func TestBuildPayRequiresOffer(t *testing.T) {
	out := Build(models.DocPay, testContext())
	assert.Contains(t, out, "No Offer Created")
}

func TestBuildPay(t *testing.T) {
	ctx := testContext()
	start := "2026-03-01"
	ctx.Offer = &models.OfferDetails{
		Position:        "Real Estate Photographer",
		StartDate:       &start,
		ProbationMonths: "3",
		Compensation:    models.Compensation{HourlyRate: 28.5},
		FlatServices:    models.SelectedServices{{Name: "Floor Plans"}},
		TieredServices:  models.SelectedServices{{ID: "photo", Name: "Photo"}},
	}
	ctx.FlatServices = []FlatServicePrice{
		{ID: uuid.New(), Name: "Floor Plans", Rate: 120},
		{ID: uuid.New(), Name: "Virtual Staging", Rate: 45},
	}
	ctx.Tiers = []TierPricing{
		{MinSqft: 1, MaxSqft: 1000, Rates: map[models.ServiceType]float64{
			models.ServicePhoto: 0.10,
			models.ServiceVideo: 0.20,
		}},
	}

	out := Build(models.DocPay, ctx)

	assert.Contains(t, out, "Compensation Agreement")
	assert.Contains(t, out, "Real Estate Photographer")
	assert.Contains(t, out, "$28.50")

	// probation window: start plus three months
	assert.Contains(t, out, "March 1, 2026")
	assert.Contains(t, out, "June 1, 2026")

	// only offer-selected services appear
	assert.Contains(t, out, "Floor Plans")
	assert.NotContains(t, out, "Virtual Staging")

	// only the selected tiered column appears
	assert.Contains(t, out, "Up to 1,000 SQ.FT")
	assert.Contains(t, out, ">Photo<")
	assert.NotContains(t, out, ">Video<")

	assert.Contains(t, out, "Employer Signature")
	assert.Contains(t, out, "Employee Signature")
}

func TestBuildPayNoServicesSelected(t *testing.T) {
	ctx := testContext()
	ctx.Offer = &models.OfferDetails{Position: "Editor"}
	ctx.FlatServices = []FlatServicePrice{{ID: uuid.New(), Name: "Floor Plans", Rate: 120}}

	out := Build(models.DocPay, ctx)
	assert.Contains(t, out, "No services selected on the offer.")
	assert.NotContains(t, out, "Floor Plans")
}

func TestBuildOfferRequiresOffer(t *testing.T) {
	out := Build(models.DocOffer, testContext())
	assert.Contains(t, out, "No Offer Created")
}

func TestBuildOffer(t *testing.T) {
	ctx := testContext()
	start := "2026-04-15"
	returnBy := "2026-04-01"
	ctx.Offer = &models.OfferDetails{
		Position:        "Videographer",
		StartDate:       &start,
		ReturnBy:        &returnBy,
		ProbationMonths: "2",
		WorkSchedule:    "Tuesday to Saturday, 9am-5pm",
		ManagerName:     "Sam Reyes",
		ManagerEmail:    "sam@example.com",
		CEOName:         "Dana Whitfield (CEO)",
		Compensation:    models.Compensation{Benefits: "extended health after probation"},
	}

	out := Build(models.DocOffer, ctx)

	assert.Contains(t, out, "Offer of Co-Working")
	assert.Contains(t, out, "Dear _____________________,")
	assert.Contains(t, out, "position of Videographer")
	assert.Contains(t, out, "April 15, 2026")
	assert.Contains(t, out, "2 month(s)")
	assert.Contains(t, out, "Tuesday to Saturday, 9am-5pm")
	assert.Contains(t, out, "Sam Reyes")
	assert.Contains(t, out, "extended health after probation")
	assert.Contains(t, out, "April 1, 2026")
	assert.Contains(t, out, "Dana Whitfield (CEO)")
	assert.Contains(t, out, "(SEAL)")

	// only the hiree signs the acceptance letter
	assert.Contains(t, out, "Freelancer Signature")
	assert.Equal(t, 1, strings.Count(out, "Signature required"))
}

func TestBuildSignedSignatureEmbeds(t *testing.T) {
	ctx := testContext()
	ctx.HireeSignature = "data:image/png;base64,AAAA"

	out := Build(models.DocWaiver, ctx)
	assert.Contains(t, out, `src="data:image/png;base64,AAAA"`)
	// the company slot stays unsigned
	assert.Equal(t, 1, strings.Count(out, "Signature required"))
}

func TestBuildDefaultsCompanyName(t *testing.T) {
	ctx := testContext()
	ctx.Company.Name = ""
	ctx.Company.Jurisdiction = ""

	out := Build(models.DocWaiver, ctx)
	assert.Contains(t, out, "Solution Gate Media")
	assert.Contains(t, out, "laws of Ontario, Canada")
}

func TestBuildAllTypesRender(t *testing.T) {
	ctx := testContext()
	start := "2026-03-01"
	ctx.Offer = &models.OfferDetails{Position: "Photographer", StartDate: &start, ProbationMonths: "1"}

	for _, dt := range models.DocumentTypes {
		out := Build(dt, ctx)
		require.NotEmpty(t, out, string(dt))
		assert.Contains(t, out, "Document ID: SGM-", string(dt))
		assert.Contains(t, out, "Northline Media &amp; Co", string(dt))
	}
}
