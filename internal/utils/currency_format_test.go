package utils

import (
	"strings"
	"testing"

	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		code     domain.CurrencyCode
		expected string
	}{
		{"crc whole grouping", "35420", domain.CRC, "₡35,420"},
		{"crc rounds half up", "35420.5", domain.CRC, "₡35,421"},
		{"crc rounds down", "35420.4", domain.CRC, "₡35,420"},
		{"crc no grouping under thousand", "950", domain.CRC, "₡950"},
		{"crc millions", "1234567", domain.CRC, "₡1,234,567"},
		{"crc negative", "-35420", domain.CRC, "₡-35,420"},
		{"usd two decimals", "87.3", domain.USD, "$87.30"},
		{"usd rounds to cents", "87.305", domain.USD, "$87.31"},
		{"usd no grouping", "1234.5", domain.USD, "$1234.50"},
		{"usd zero", "0", domain.USD, "$0.00"},
		{"eur two decimals", "19.9", domain.EUR, "€19.90"},
		{"usd negative", "-12.5", domain.USD, "$-12.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatCurrency(amount, tt.code))
		})
	}
}

func TestFormatCurrency_UnknownCode(t *testing.T) {
	got := FormatCurrency(decimal.NewFromInt(10), domain.CurrencyCode("XXX"))
	assert.Equal(t, "10.00", got)
}

func TestConvertCurrency(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	t.Run("identity", func(t *testing.T) {
		assert.True(t, hundred.Equal(ConvertCurrency(hundred, domain.USD, domain.USD)))
	})
	t.Run("usd to crc", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(52000).Equal(ConvertCurrency(hundred, domain.USD, domain.CRC)))
	})
	t.Run("crc to usd", func(t *testing.T) {
		assert.True(t, decimal.NewFromInt(10).Equal(ConvertCurrency(decimal.NewFromInt(5200), domain.CRC, domain.USD)))
	})
	t.Run("unsupported pair passes through", func(t *testing.T) {
		assert.True(t, hundred.Equal(ConvertCurrency(hundred, domain.EUR, domain.CRC)))
		assert.True(t, hundred.Equal(ConvertCurrency(hundred, domain.USD, domain.EUR)))
	})
}

func TestConvertCurrency_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(-1_000_000_00, 1_000_000_00).Draw(t, "cents")
		amount := decimal.New(cents, -2)

		converted := ConvertCurrency(amount, domain.USD, domain.CRC)
		back := ConvertCurrency(converted, domain.CRC, domain.USD)
		if !back.Equal(amount) {
			t.Fatalf("round trip changed %s to %s", amount, back)
		}
	})
}

func TestConvertCurrency_Identity(t *testing.T) {
	codes := []domain.CurrencyCode{domain.USD, domain.CRC, domain.EUR}
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(-1_000_000_00, 1_000_000_00).Draw(t, "cents")
		amount := decimal.New(cents, -2)
		code := codes[rapid.IntRange(0, len(codes)-1).Draw(t, "code")]

		if !ConvertCurrency(amount, code, code).Equal(amount) {
			t.Fatalf("identity conversion changed %s", amount)
		}
	})
}

func TestFormatCurrency_CRCDigitsGrouped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(0, 999_999_999).Draw(t, "units")
		formatted := FormatCurrency(decimal.NewFromInt(units), domain.CRC)

		if !strings.HasPrefix(formatted, "₡") {
			t.Fatalf("missing symbol: %q", formatted)
		}
		body := strings.TrimPrefix(formatted, "₡")
		for _, group := range strings.Split(body, ",")[1:] {
			if len(group) != 3 {
				t.Fatalf("bad grouping in %q", formatted)
			}
		}
		if strings.Contains(body, ".") {
			t.Fatalf("crc must not carry fraction digits: %q", formatted)
		}
	})
}

func TestFormatCurrency_NonCRCTwoDecimals(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(0, 1_000_000_00).Draw(t, "cents")
		formatted := FormatCurrency(decimal.New(cents, -2), domain.USD)

		body := strings.TrimPrefix(formatted, "$")
		parts := strings.Split(body, ".")
		if len(parts) != 2 || len(parts[1]) != 2 {
			t.Fatalf("expected exactly two fraction digits: %q", formatted)
		}
		if strings.Contains(body, ",") {
			t.Fatalf("non-crc must not group thousands: %q", formatted)
		}
	})
}
