package document

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "", EscapeHTML(""))
	assert.Equal(t, "plain text", EscapeHTML("plain text"))
	assert.Equal(t, "&lt;script&gt;alert(&#39;x&#39;)&lt;/script&gt;", EscapeHTML("<script>alert('x')</script>"))
	assert.Equal(t, "Tom &amp; Jerry &quot;Inc&quot;", EscapeHTML(`Tom & Jerry "Inc"`))
	// ampersand first, so already-escaped text escapes again rather than
	// passing through
	assert.Equal(t, "&amp;amp;", EscapeHTML("&amp;"))
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "March 5, 2026", FormatLongDate("2026-03-05"))
	assert.Equal(t, "January 2, 2006", FormatLongDate("2006-01-02"))
	assert.Equal(t, Blank, FormatLongDate(""))
	assert.Equal(t, Blank, FormatLongDate("not-a-date"))
	assert.Equal(t, Blank, FormatLongDate("2026-13-40"))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, "2026-04-05", AddMonths("2026-03-05", 1))
	assert.Equal(t, "2026-12-01", AddMonths("2026-06-01", 6))
	// overflow normalizes instead of clamping
	assert.Equal(t, "2026-03-03", AddMonths("2026-01-31", 1))
	// year rollover
	assert.Equal(t, "2027-01-15", AddMonths("2026-11-15", 2))
	assert.Equal(t, "", AddMonths("", 1))
	assert.Equal(t, "", AddMonths("2026-03", 1))
	assert.Equal(t, "", AddMonths("garbage", 1))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$120.00", FormatCurrency(120))
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56))
	assert.Equal(t, "$1,234,567.89", FormatCurrency(1234567.89))
	assert.Equal(t, "-$950.50", FormatCurrency(-950.5))

	// non-finite amounts must render, not panic
	assert.Equal(t, "$0.00", FormatCurrency(math.NaN()))
	assert.Equal(t, "$0.00", FormatCurrency(math.Inf(1)))
	assert.Equal(t, "$0.00", FormatCurrency(math.Inf(-1)))
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Up to 1,000 SQ.FT", TierLabel(1, 1000))
	assert.Equal(t, "1,001 – 2,000 SQ.FT", TierLabel(1001, 2000))
	assert.Equal(t, "2,001 – 3,500 SQ.FT", TierLabel(2001, 3500))
}

func TestNewDocumentID(t *testing.T) {
	pattern := regexp.MustCompile(`^SGM-[0-9A-Z]+-[0-9A-Z]{5}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewDocumentID()
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// the random suffix keeps same-millisecond renders distinct
	assert.Greater(t, len(seen), 1)
}
