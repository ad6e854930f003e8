// Package donation holds the form-controller rules for the give page:
// amount and donor validation, the submit gate, and summary formatting.
package donation

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Donation bounds in dollars.
var (
	minAmount = decimal.NewFromInt(1)
	maxAmount = decimal.NewFromInt(10000)
)

// MinAmountCents and MaxAmountCents are the same bounds in minor units,
// enforced again server-side on /api/pay.
const (
	MinAmountCents int64 = 100
	MaxAmountCents int64 = 1_000_000
)

var (
	nonAmountRunes = regexp.MustCompile(`[^\d.]`)
	emailShape     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateAmount strips non-numeric characters from raw, parses it as a
// decimal dollar amount and returns the value in cents. ok is false when the
// input does not parse or falls outside $1.00–$10,000.00.
func ValidateAmount(raw string) (cents int64, ok bool) {
	cleaned := nonAmountRunes.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	amt, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, false
	}
	if amt.LessThan(minAmount) || amt.GreaterThan(maxAmount) {
		return 0, false
	}
	return amt.Mul(decimal.NewFromInt(100)).IntPart(), true
}

func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func ValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// ValidateDonor reports whether both donor identity fields are usable.
func ValidateDonor(name, email string) bool {
	return ValidName(name) && ValidEmail(email)
}

// ReadyToGive is the submit gate: all three fields must be valid at once.
func ReadyToGive(amountOK, nameOK, emailOK bool) bool {
	return amountOK && nameOK && emailOK
}

// ComputeSummary renders the confirmation line shown under the form.
// Pure formatting, no side effects.
func ComputeSummary(cents int64, fundLabel string) string {
	return FormatUSD(cents) + " → " + fundLabel
}

// FormatUSD renders cents as a grouped dollar string, e.g. 125000 → "$1,250.00".
func FormatUSD(cents int64) string {
	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
