package document

import (
	"fmt"
	"strings"

	"hireedocs-backend/models"
)

// Shared sub-blocks of every generated document. All user-supplied text is
// escaped here, once, at the interpolation site. Styles are inlined because
// the output must stand alone in a headless renderer with no external
// stylesheets.

func logoBlock(company *models.Company, escapedName string) string {
	if company.LogoURL != nil && *company.LogoURL != "" {
		return fmt.Sprintf(`<div style="text-align:center;margin-bottom:20px"><img src="%s" alt="Company Logo" style="max-height:60px;object-fit:contain" /></div>`,
			EscapeHTML(*company.LogoURL))
	}
	return fmt.Sprintf(`<div style="text-align:center;margin-bottom:20px"><div style="font-size:24px;font-weight:700;color:#0f172a">%s</div></div>`, escapedName)
}

func topTitle(title, escapedCompany string) string {
	return fmt.Sprintf(`<div style="margin-bottom:6px"><div style="font-size:22px;line-height:1.2;font-weight:700;color:#0f172a">%s</div><div style="color:#475569">%s</div></div>`,
		title, escapedCompany)
}

func hireeBlock(p *models.Profile) string {
	orBlank := func(s string) string {
		if s == "" {
			return Blank
		}
		return EscapeHTML(s)
	}
	dob := Blank
	if p.HireeDob != nil && *p.HireeDob != "" {
		dob = FormatLongDate(*p.HireeDob)
	}
	return fmt.Sprintf(`
      <div style="margin:12px 0;padding:12px;background:#f8fafc;border-radius:8px;border:1px solid #e2e8f0">
        <div style="font-weight:600;color:#0f172a;margin-bottom:4px">Hiree Information</div>
        <div style="color:#475569;font-size:14px">
          <div><strong>Name:</strong> %s</div>
          <div><strong>Email:</strong> %s</div>
          <div><strong>Phone:</strong> %s</div>
          <div><strong>Address:</strong> %s</div>
          <div><strong>Date of Birth:</strong> %s</div>
        </div>
      </div>`,
		orBlank(p.HireeName), orBlank(p.HireeEmail), orBlank(p.HireePhone), orBlank(p.HireeAddress), dob)
}

func signatureBlock(label, signatureData string) string {
	inner := `<div style="color:#9ca3af">Signature required</div>`
	if signatureData != "" {
		inner = fmt.Sprintf(`<img src="%s" alt="Signature" style="max-height:50px;max-width:200px;object-fit:contain" />`, signatureData)
	}
	return fmt.Sprintf(`
      <div style="margin:20px 0;padding:12px;border:1px solid #e2e8f0;border-radius:8px">
        <div style="font-weight:600;color:#0f172a;margin-bottom:8px">%s</div>
        <div style="height:60px;border:1px solid #d1d5db;border-radius:4px;background:#fff;display:flex;align-items:center;justify-content:center">%s</div>
        <div style="margin-top:8px;color:#6b7280;font-size:12px">Date: %s</div>
      </div>`, label, inner, Blank)
}

func footerBlock(title, docID string) string {
	return fmt.Sprintf(`
      <div style="margin-top:30px;padding-top:20px;border-top:1px solid #e2e8f0;color:#6b7280;font-size:12px;text-align:center">
        <div>%s &mdash; Document ID: %s</div>
        <div>Generated on %s</div>
      </div>`, title, docID, FormatLongDate(TodayISO()))
}

func addendumBlock(addendum string) string {
	if addendum == "" {
		return ""
	}
	return fmt.Sprintf(`
      <div style="margin:20px 0;padding:12px;background:#fef3c7;border:1px solid #f59e0b;border-radius:8px">
        <div style="font-weight:600;color:#92400e;margin-bottom:8px">Additional Terms &amp; Notes</div>
        <div style="color:#92400e;white-space:pre-line">%s</div>
      </div>`, EscapeHTML(addendum))
}

// initialsPage appends a forced page break and one blank-initial row per
// clause; it is meant to be physically initialed in the printed PDF.
func initialsPage(title, docID string, clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	var rows strings.Builder
	for _, clause := range clauses {
		rows.WriteString(fmt.Sprintf(`
            <div style="margin:12px 0;padding:8px;border:1px solid #e2e8f0;border-radius:4px;display:flex;align-items:flex-start;gap:12px">
              <div style="min-width:60px;height:20px;border-bottom:1px solid #000;flex-shrink:0"></div>
              <div style="flex:1;color:#374151;font-size:14px">%s</div>
            </div>`, EscapeHTML(clause)))
	}
	return fmt.Sprintf(`
      <div style="page-break-before:always;margin-top:20px">
        <div style="text-align:center;margin-bottom:20px">
          <div style="font-size:18px;font-weight:700;color:#0f172a">%s &mdash; Initials Page</div>
          <div style="color:#6b7280;font-size:12px">Document ID: %s</div>
        </div>
        <div style="margin:20px 0">
          <div style="font-weight:600;color:#0f172a;margin-bottom:12px">Please initial each clause below:</div>%s
        </div>
      </div>`, title, docID, rows.String())
}

const thStyle = `style="padding:8px;text-align:left;border-bottom:1px solid #e2e8f0;font-size:12px;color:#374151"`
const tdStyle = `style="padding:8px;border-bottom:1px solid #e2e8f0;font-size:12px;color:#374151"`

// tieredRateTable renders the per-square-foot pricing table, limited to the
// given service-type columns.
func tieredRateTable(tiers []TierPricing, types []models.ServiceType) string {
	if len(tiers) == 0 || len(types) == 0 {
		return `<p style="color:#6b7280">No tiered services configured.</p>`
	}
	var b strings.Builder
	b.WriteString(`
        <div style="margin:12px 0">
          <h4 style="margin:8px 0;font-size:14px;color:#0f172a">Tiered Services (Per Square Foot)</h4>
          <table style="width:100%;border-collapse:collapse;border:1px solid #e2e8f0;margin:8px 0"><thead><tr style="background:#f8fafc">`)
	b.WriteString(`<th ` + thStyle + `>Range</th>`)
	for _, t := range types {
		b.WriteString(`<th ` + thStyle + `>` + serviceTypeLabel(t) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, tier := range tiers {
		b.WriteString(`<tr><td ` + tdStyle + `>` + TierLabel(tier.MinSqft, tier.MaxSqft) + `</td>`)
		for _, t := range types {
			b.WriteString(`<td ` + tdStyle + `>` + FormatCurrency(tier.Rates[t]) + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

func flatServiceTable(services []FlatServicePrice) string {
	if len(services) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`
        <div style="margin:12px 0">
          <h4 style="margin:8px 0;font-size:14px;color:#0f172a">Flat Rate Services</h4>
          <table style="width:100%;border-collapse:collapse;border:1px solid #e2e8f0;margin:8px 0"><thead><tr style="background:#f8fafc">`)
	b.WriteString(`<th ` + thStyle + `>Service</th><th ` + thStyle + `>Rate</th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for _, svc := range services {
		b.WriteString(`<tr><td ` + tdStyle + `>` + EscapeHTML(svc.Name) + `</td><td ` + tdStyle + `>` + FormatCurrency(svc.Rate) + `</td></tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

func serviceTypeLabel(t models.ServiceType) string {
	switch t {
	case models.ServicePhoto:
		return "Photo"
	case models.ServiceVideo:
		return "Video"
	case models.ServiceIGuide:
		return "iGuide"
	case models.ServiceMatterport:
		return "Matterport"
	}
	return string(t)
}
