package utils

import (
	"strings"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// crcPerUSD is the fixed conversion rate used by the legacy conversion path.
const crcPerUSD = 520

var crcRate = decimal.NewFromInt(crcPerUSD)

// FormatCurrency renders an amount for display in the given currency.
// Colones are conventionally quoted without minor units, so CRC amounts are
// rounded to whole units (half away from zero, decimal's Round behavior) and
// grouped with comma thousands separators. Every other supported currency is
// rendered with exactly two fraction digits and no grouping.
// Example: FormatCurrency(35420, CRC) == "₡35,420"; FormatCurrency(87.3, USD) == "$87.30".
func FormatCurrency(amount decimal.Decimal, code domain.CurrencyCode) string {
	info, ok := domain.Currencies[code]
	if !ok {
		// Unknown codes are a programming error; render without a symbol
		// rather than panic in a display path.
		return amount.StringFixed(2)
	}

	if code == domain.CRC {
		return info.Symbol + groupThousands(amount.Round(0).String())
	}
	return info.Symbol + amount.StringFixed(2)
}

// ConvertCurrency converts an amount between currencies using the fixed
// CRC-per-USD rate. Identity when from == to. Any pair other than USD<->CRC
// passes the amount through unchanged, matching the behavior this replaces.
func ConvertCurrency(amount decimal.Decimal, from, to domain.CurrencyCode) decimal.Decimal {
	if from == to {
		return amount
	}
	switch {
	case from == domain.USD && to == domain.CRC:
		return amount.Mul(crcRate)
	case from == domain.CRC && to == domain.USD:
		return amount.Div(crcRate)
	default:
		return amount
	}
}

// groupThousands inserts comma separators into the integer digits of s.
// s is the output of decimal.String on a whole number, possibly negative.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
