package document

import (
	"fmt"
	"strings"

	"hireedocs-backend/models"
)

// Build assembles the HTML body for one document type from the resolved
// context. It is a pure transformation: no I/O, no failure modes. Missing
// prerequisites render explanatory placeholder fragments instead of erroring.
func Build(docType models.DocumentType, ctx *Context) string {
	if ctx == nil || ctx.Company == nil || ctx.Profile == nil {
		return noProfilePlaceholder()
	}

	c := EscapeHTML(companyNameOrDefault(ctx.Company))
	j := EscapeHTML(jurisdictionOrDefault(ctx.Company))
	id := NewDocumentID()

	switch docType {
	case models.DocWaiver:
		return buildWaiver(ctx, c, j, id)
	case models.DocNoncompete:
		return buildNoncompete(ctx, c, j, id)
	case models.DocGear:
		return buildGear(ctx, c, id)
	case models.DocPay:
		return buildPay(ctx, c, id)
	case models.DocOffer:
		return buildOffer(ctx, c, id)
	}
	return ""
}

func companyNameOrDefault(c *models.Company) string {
	if c.Name != "" {
		return c.Name
	}
	return "Solution Gate Media"
}

func jurisdictionOrDefault(c *models.Company) string {
	if c.Jurisdiction != "" {
		return c.Jurisdiction
	}
	return "Ontario, Canada"
}

func noProfilePlaceholder() string {
	return `<div style="padding:24px;text-align:center;color:#6b7280"><div style="font-size:18px;font-weight:600;color:#0f172a;margin-bottom:8px">No Profile Loaded</div><p>Load a hiree profile to generate documents.</p></div>`
}

// NoOfferPlaceholder is returned for pay and offer documents when the
// profile has no offer record yet.
func NoOfferPlaceholder() string {
	return `<div style="padding:24px;text-align:center;color:#6b7280"><div style="font-size:18px;font-weight:600;color:#0f172a;margin-bottom:8px">No Offer Created</div><p>Create an offer first to generate this document.</p></div>`
}

func clauseHeading(text string) string {
	return `<h3 style="margin:14px 0 8px;font-size:16px;color:#0f172a">` + text + `</h3>`
}

func paragraph(html string) string {
	return `<p style="color:#1f2937">` + html + `</p>`
}

func buildWaiver(ctx *Context, c, j, id string) string {
	title := models.DocumentTitle(models.DocWaiver)
	var b strings.Builder
	b.WriteString(logoBlock(ctx.Company, c))
	b.WriteString(topTitle(title, c))
	b.WriteString(hireeBlock(ctx.Profile))
	b.WriteString(clauseHeading("1. Assumption of Risk"))
	b.WriteString(paragraph("The Trainee acknowledges that participation in training and shadowing activities may involve risks, including but not limited to property damage, personal injury, equipment loss, and privacy concerns. The Trainee voluntarily assumes all such risks associated with training."))
	b.WriteString(clauseHeading("2. Release of Liability"))
	b.WriteString(paragraph("The Trainee releases and holds harmless " + c + ", its employees, contractors, clients, and affiliates from any claims, demands, damages, or liabilities arising from or related to training activities."))
	b.WriteString(clauseHeading("3. Confidentiality &amp; Non-Disclosure"))
	b.WriteString(paragraph("The Trainee agrees not to disclose or use any confidential information, business practices, client data, images, or techniques observed during training for any purpose outside of the training session."))
	b.WriteString(clauseHeading("4. Image Rights"))
	b.WriteString(paragraph("Any photographs, videos, or media taken during training remain the sole property of " + c + ". Trainees may not use, distribute, or claim ownership of such media."))
	b.WriteString(clauseHeading("5. Governing Law"))
	b.WriteString(paragraph("This Agreement shall be governed by and construed in accordance with the laws of " + j + "."))
	b.WriteString(addendumBlock(ctx.addendum()))
	b.WriteString(signatureBlock("Trainee Signature", ctx.HireeSignature))
	b.WriteString(signatureBlock("Company Representative Signature", ctx.CompanySignature))
	b.WriteString(footerBlock(title, id))
	b.WriteString(initialsPage(title, id, ctx.clauses()))
	return b.String()
}

func buildNoncompete(ctx *Context, c, j, id string) string {
	title := models.DocumentTitle(models.DocNoncompete)
	var b strings.Builder
	b.WriteString(logoBlock(ctx.Company, c))
	b.WriteString(topTitle(title, c))
	b.WriteString(hireeBlock(ctx.Profile))
	b.WriteString(paragraph("This Non-Compete Agreement is effective during employment and for a period of three (3) years following termination."))
	b.WriteString(clauseHeading("1. Restriction on Competition"))
	b.WriteString(paragraph("Employee agrees not to engage in, directly or indirectly, any business or employment involving visual content services related to real estate, including but not limited to photography, videography, drone services, 3D tours, or any other services offered by " + c + ", within " + j + "."))
	b.WriteString(clauseHeading("2. Confidential Information"))
	b.WriteString(paragraph("Employee acknowledges access to confidential business information, client data, strategies, and techniques, and agrees not to disclose, use, or exploit such information outside the scope of employment."))
	b.WriteString(clauseHeading("3. Enforcement"))
	b.WriteString(paragraph(c + " may enforce this Agreement through legal action, including injunctive relief and damages available under the laws of " + j + "."))
	b.WriteString(clauseHeading("4. Severability"))
	b.WriteString(paragraph("If any provision is held invalid or unenforceable, the remainder shall continue in full force and effect."))
	b.WriteString(clauseHeading("5. Governing Law"))
	b.WriteString(paragraph("This Agreement shall be governed by and construed in accordance with the laws of " + j + "."))
	b.WriteString(addendumBlock(ctx.addendum()))
	b.WriteString(signatureBlock("Employee Signature", ctx.HireeSignature))
	b.WriteString(signatureBlock("Company Representative Signature", ctx.CompanySignature))
	b.WriteString(footerBlock(title, id))
	b.WriteString(initialsPage(title, id, ctx.clauses()))
	return b.String()
}

func buildGear(ctx *Context, c, id string) string {
	title := models.DocumentTitle(models.DocGear)
	var b strings.Builder
	b.WriteString(logoBlock(ctx.Company, c))
	b.WriteString(topTitle(title, c))
	b.WriteString(hireeBlock(ctx.Profile))
	b.WriteString(paragraph("All new hires are required to have the following equipment prior to their first day of work. Equipment must be in working condition and available for inspection. Proof of Transport Canada drone certification is mandatory. Rentals may be accepted temporarily with prior written approval."))
	b.WriteString(clauseHeading("Required Equipment"))
	b.WriteString(gearTable(ctx.Gear))
	b.WriteString(addendumBlock(ctx.addendum()))
	b.WriteString(signatureBlock("Hiree Signature", ctx.HireeSignature))
	b.WriteString(signatureBlock("Company Representative Signature", ctx.CompanySignature))
	b.WriteString(footerBlock(title, id))
	b.WriteString(initialsPage(title, id, ctx.clauses()))
	return b.String()
}

// gearTable lists the required equipment lines with their estimated CAD
// prices; the total row appears only when at least one price is known.
func gearTable(lines []GearLine) string {
	required := make([]GearLine, 0, len(lines))
	for _, line := range lines {
		if line.Required {
			required = append(required, line)
		}
	}
	if len(required) == 0 {
		return `<p style="color:#6b7280">No equipment configured.</p>`
	}

	var b strings.Builder
	b.WriteString(`
        <table style="width:100%;border-collapse:collapse;border:1px solid #e2e8f0;margin:8px 0"><thead><tr style="background:#f8fafc">`)
	b.WriteString(`<th ` + thStyle + `>Equipment</th><th ` + thStyle + `>Estimated Price (CAD)</th>`)
	b.WriteString(`</tr></thead><tbody>`)

	total := 0.0
	anyPrice := false
	for _, line := range required {
		name := EscapeHTML(line.Name)
		if line.Notes != "" {
			name += ` <span style="color:#6b7280;font-size:11px">(` + EscapeHTML(line.Notes) + `)</span>`
		}
		price := "&mdash;"
		if line.PriceCAD != nil {
			price = FormatCurrency(*line.PriceCAD)
			total += *line.PriceCAD
			anyPrice = true
		}
		b.WriteString(`<tr><td ` + tdStyle + `>` + name + `</td><td ` + tdStyle + `>` + price + `</td></tr>`)
	}
	if anyPrice {
		b.WriteString(`<tr><td ` + tdStyle + `><strong>Estimated Total</strong></td><td ` + tdStyle + `><strong>` + FormatCurrency(total) + `</strong></td></tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

func buildPay(ctx *Context, c, id string) string {
	if ctx.Offer == nil {
		return NoOfferPlaceholder()
	}
	o := ctx.Offer
	title := models.DocumentTitle(models.DocPay)

	effFrom := Blank
	effUntil := Blank
	if o.StartDate != nil && *o.StartDate != "" {
		effFrom = FormatLongDate(*o.StartDate)
		if months := int(ParseDecimalOrZero(o.ProbationMonths)); months > 0 {
			if until := AddMonths(*o.StartDate, months); until != "" {
				effUntil = FormatLongDate(until)
			}
		}
	}

	var b strings.Builder
	b.WriteString(logoBlock(ctx.Company, c))
	b.WriteString(topTitle(title, c))
	b.WriteString(hireeBlock(ctx.Profile))
	b.WriteString(positionBlock(o))
	b.WriteString(compensationBlock(o.Compensation))
	b.WriteString(clauseHeading("1) Tiered &amp; Flat Services"))
	b.WriteString(offerPricingTables(ctx, o))
	b.WriteString(clauseHeading("2) Payment &amp; Terms"))
	b.WriteString(`<ol style="color:#1f2937;padding-left:18px;margin:6px 0">`)
	b.WriteString(`<li><strong>Effective Period:</strong> From <u>` + effFrom + `</u> until <u>` + effUntil + `</u> (probation window).</li>`)
	b.WriteString(`<li>Compensation is payable every two (2) weeks; statutory deductions may apply.</li>`)
	b.WriteString(`<li>Travel outside of the standard service region will be compensated when pre-approved.</li>`)
	b.WriteString(`<li>In case of errors, reshoots, or client complaints, compensation may be held until resolved by the original provider; if resolved by another team member, compensation may be transferred accordingly.</li>`)
	b.WriteString(`<li>All other terms of the Employment Agreement continue to apply; where there is a conflict, this Compensation Agreement prevails unless superseded in writing.</li>`)
	b.WriteString(`</ol>`)
	b.WriteString(addendumBlock(ctx.addendum()))
	b.WriteString(signatureBlock("Employer Signature", ctx.CompanySignature))
	b.WriteString(signatureBlock("Employee Signature", ctx.HireeSignature))
	b.WriteString(footerBlock(title, id))
	b.WriteString(initialsPage(title, id, ctx.clauses()))
	return b.String()
}

// positionBlock shows the engagement frame of the offer; blank dates render
// as fill-in placeholders.
func positionBlock(o *models.OfferDetails) string {
	start := Blank
	if o.StartDate != nil && *o.StartDate != "" {
		start = FormatLongDate(*o.StartDate)
	}
	end := ""
	if o.EndDate != nil && *o.EndDate != "" {
		end = `<div><strong>End Date:</strong> ` + FormatLongDate(*o.EndDate) + `</div>`
	}
	schedule := ""
	if o.WorkSchedule != "" {
		schedule = `<div><strong>Work Schedule:</strong> ` + EscapeHTML(o.WorkSchedule) + `</div>`
	}
	position := Blank
	if o.Position != "" {
		position = EscapeHTML(o.Position)
	}
	return fmt.Sprintf(`
      <div style="margin:12px 0;padding:12px;background:#f8fafc;border-radius:8px;border:1px solid #e2e8f0">
        <div style="font-weight:600;color:#0f172a;margin-bottom:4px">Position Details</div>
        <div style="color:#475569;font-size:14px">
          <div><strong>Position:</strong> %s</div>
          <div><strong>Start Date:</strong> %s</div>%s%s
        </div>
      </div>`, position, start, end, schedule)
}

// compensationBlock renders only the non-zero/non-empty compensation fields;
// it disappears entirely when nothing is set.
func compensationBlock(comp models.Compensation) string {
	var rows []string
	if comp.BaseSalary > 0 {
		rows = append(rows, `<div><strong>Base Salary:</strong> `+FormatCurrency(comp.BaseSalary)+` per year</div>`)
	}
	if comp.HourlyRate > 0 {
		rows = append(rows, `<div><strong>Hourly Rate:</strong> `+FormatCurrency(comp.HourlyRate)+` per hour</div>`)
	}
	if comp.Commission > 0 {
		rows = append(rows, fmt.Sprintf(`<div><strong>Commission:</strong> %g%%</div>`, comp.Commission))
	}
	if comp.Benefits != "" {
		rows = append(rows, `<div><strong>Benefits:</strong> `+EscapeHTML(comp.Benefits)+`</div>`)
	}
	if len(rows) == 0 {
		return ""
	}
	return fmt.Sprintf(`
      <div style="margin:12px 0;padding:12px;background:#f8fafc;border-radius:8px;border:1px solid #e2e8f0">
        <div style="font-weight:600;color:#0f172a;margin-bottom:4px">Compensation</div>
        <div style="color:#475569;font-size:14px">%s</div>
      </div>`, strings.Join(rows, ""))
}

// offerPricingTables restricts the pricing tables to the services the offer
// explicitly selects; unselected company services do not appear.
func offerPricingTables(ctx *Context, o *models.OfferDetails) string {
	flat := selectedFlatServices(ctx.FlatServices, o.FlatServices)
	types := selectedServiceTypes(o.TieredServices)

	if len(flat) == 0 && len(types) == 0 {
		return `<p style="color:#6b7280">No services selected on the offer.</p>`
	}

	var b strings.Builder
	if len(types) > 0 {
		b.WriteString(tieredRateTable(ctx.Tiers, types))
	}
	b.WriteString(flatServiceTable(flat))
	return b.String()
}

func selectedFlatServices(all []FlatServicePrice, selected models.SelectedServices) []FlatServicePrice {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[string]bool, len(selected)*2)
	for _, s := range selected {
		if s.ID != "" {
			want[strings.ToLower(s.ID)] = true
		}
		if s.Name != "" {
			want[strings.ToLower(s.Name)] = true
		}
	}
	var out []FlatServicePrice
	for _, svc := range all {
		if want[strings.ToLower(svc.ID.String())] || want[strings.ToLower(svc.Name)] {
			out = append(out, svc)
		}
	}
	return out
}

func selectedServiceTypes(selected models.SelectedServices) []models.ServiceType {
	if len(selected) == 0 {
		return nil
	}
	want := make(map[string]bool, len(selected)*2)
	for _, s := range selected {
		want[strings.ToLower(s.ID)] = true
		want[strings.ToLower(s.Name)] = true
	}
	var out []models.ServiceType
	for _, t := range models.ServiceTypes {
		if want[string(t)] || want[strings.ToLower(serviceTypeLabel(t))] {
			out = append(out, t)
		}
	}
	return out
}

func buildOffer(ctx *Context, c, id string) string {
	if ctx.Offer == nil {
		return NoOfferPlaceholder()
	}
	o := ctx.Offer
	title := models.DocumentTitle(models.DocOffer)

	position := "Photographer"
	if o.Position != "" {
		position = o.Position
	}
	start := Blank
	if o.StartDate != nil && *o.StartDate != "" {
		start = FormatLongDate(*o.StartDate)
	}
	probation := "1"
	if o.ProbationMonths != "" {
		probation = o.ProbationMonths
	}
	returnBy := Blank
	if o.ReturnBy != nil && *o.ReturnBy != "" {
		returnBy = FormatLongDate(*o.ReturnBy)
	}
	ceo := "Alipasha Amidi (CEO)"
	if o.CEOName != "" {
		ceo = o.CEOName
	}

	orBlank := func(s, fallback string) string {
		if s == "" {
			return fallback
		}
		return EscapeHTML(s)
	}

	var b strings.Builder
	b.WriteString(logoBlock(ctx.Company, c))
	b.WriteString(topTitle("Offer of Co-Working &mdash; "+EscapeHTML(position), c))
	b.WriteString(`<p style="color:#475569;margin:0 0 6px">Date: ` + FormatLongDate(TodayISO()) + `</p>`)
	b.WriteString(paragraph("Dear _____________________,"))
	b.WriteString(paragraph("I am very pleased to offer you the position of " + EscapeHTML(position) + " with " + c + ". This position has a start date of " + start + " and includes a probationary period of " + EscapeHTML(probation) + " month(s), after which your performance will be reviewed."))
	if o.WorkSchedule != "" {
		b.WriteString(paragraph("Your regular work schedule will be " + EscapeHTML(o.WorkSchedule) + "."))
	}
	b.WriteString(paragraph("You will report to <strong>" + orBlank(o.ManagerName, "________") + "</strong> (" + orBlank(o.ManagerEmail, "________") + " &bull; " + orBlank(o.ManagerPhone, "(647) 931-0909") + " Ext " + orBlank(o.ManagerExt, "300") + ")."))
	if o.Compensation.Benefits != "" {
		b.WriteString(paragraph("This position includes the following benefits: " + EscapeHTML(o.Compensation.Benefits) + "."))
	}
	b.WriteString(paragraph("Please indicate your acceptance by signing below and returning this letter by " + returnBy + ". For general questions, contact (647) 931-0909 Ext " + orBlank(o.ContactExt, "500") + "."))
	b.WriteString(addendumBlock(ctx.addendum()))
	b.WriteString(`<div style="margin-top:18px;font-weight:600">` + EscapeHTML(ceo) + `</div>`)
	b.WriteString(`<div>Per: ____________ ____________ (SEAL)</div>`)
	b.WriteString(`<h3 style="margin-top:24px;font-size:16px;color:#0f172a">Acceptance</h3>`)
	b.WriteString(paragraph("I accept this offer of co-working terms as outlined above."))
	b.WriteString(signatureBlock("Freelancer Signature", ctx.HireeSignature))
	b.WriteString(footerBlock(title, id))
	b.WriteString(initialsPage(title, id, ctx.clauses()))
	return b.String()
}
