// Package money parses and formats amounts following the Indonesian numeric
// convention where a period groups thousands: "10.000" means ten thousand.
// A period is therefore never a decimal point here; stripping separators is
// lossy for inputs like "10.5" (parsed as 105) and that is accepted behaviour.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var groupedRe = regexp.MustCompile(`\d+\.\d{3}`)

// ParseAmount strips grouping separators from raw text and parses the rest as
// a decimal number. The boolean is false when the cleaned text is not numeric.
func ParseAmount(text string) (decimal.Decimal, bool) {
	raw := strings.ReplaceAll(strings.TrimSpace(text), ".", "")
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsGroupFormatted reports whether the raw text already carries a full
// thousands group (three digits after a separator). It only influences how
// the amount is echoed back, never the parsed value.
func IsGroupFormatted(text string) bool {
	return groupedRe.MatchString(text)
}

// FormatRupiah renders an amount as "Rp" plus period-grouped digits.
// Negative amounts keep a leading minus sign.
func FormatRupiah(d decimal.Decimal) string {
	neg := d.IsNegative()
	digits := d.Abs().Truncate(0).String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("Rp")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// EchoAmount picks the display form for a just-typed amount: already grouped
// input is echoed verbatim with the currency prefix, anything else is
// formatted freshly.
func EchoAmount(rawText string, amount decimal.Decimal) string {
	if IsGroupFormatted(rawText) {
		return "Rp" + strings.TrimSpace(rawText)
	}
	return FormatRupiah(amount)
}
