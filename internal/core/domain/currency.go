package domain

// CurrencyCode identifies a supported currency (e.g. "USD").
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	CRC CurrencyCode = "CRC"
	EUR CurrencyCode = "EUR"
)

// Currency holds display metadata for a supported currency.
type Currency struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
}

// Currencies is the fixed set of currencies the application supports.
// Every CurrencyCode used anywhere in the system must have an entry here;
// an unknown code reaching a lookup is a programming error, not a runtime
// condition, so boundaries validate codes before they travel further.
var Currencies = map[CurrencyCode]Currency{
	USD: {Code: USD, Symbol: "$", Name: "US Dollar"},
	CRC: {Code: CRC, Symbol: "₡", Name: "Costa Rican Colón"},
	EUR: {Code: EUR, Symbol: "€", Name: "Euro"},
}

// IsValidCurrency reports whether code is one of the supported currencies.
func IsValidCurrency(code CurrencyCode) bool {
	_, ok := Currencies[code]
	return ok
}
