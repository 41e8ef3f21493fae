package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Blank is the fill-in-manually placeholder rendered for missing fields
const Blank = "________________"

// TodayISO returns the current date as YYYY-MM-DD
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}

// FormatLongDate renders an ISO date (YYYY-MM-DD) as e.g. "March 5, 2026".
// Missing or malformed input renders the blank placeholder, not an error.
func FormatLongDate(iso string) string {
	if iso == "" {
		return Blank
	}
	dt, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return Blank
	}
	return dt.Format("January 2, 2006")
}

// AddMonths shifts an ISO date by a number of months, normalizing overflow
// (Jan 31 + 1 month lands in early March). Returns "" on malformed input.
func AddMonths(iso string, months int) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return ""
	}
	y, err1 := strconv.Atoi(parts[0])
	mo, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || y == 0 || mo == 0 || d == 0 {
		return ""
	}
	dt := time.Date(y, time.Month(mo+months), d, 0, 0, 0, 0, time.UTC)
	return dt.Format("2006-01-02")
}

// FormatCurrency renders an amount as $1,234.56. Non-finite amounts render
// as $0.00.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		s += ".00"
		dot = len(s) - 3
	}
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// TierLabel renders a tier range for table headers, e.g. "1,001 – 2,000 SQ.FT",
// collapsing a range starting at 1 to "Up to N SQ.FT".
func TierLabel(minSqft, maxSqft int) string {
	if minSqft == 1 {
		return fmt.Sprintf("Up to %s SQ.FT", groupThousands(maxSqft))
	}
	return fmt.Sprintf("%s – %s SQ.FT", groupThousands(minSqft), groupThousands(maxSqft))
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		b.WriteByte(',')
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
