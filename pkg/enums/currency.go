package enums

import "fmt"

// Currency tags raw decimal amounts. Formatting stays a presentation
// concern; the core never stores formatted strings.
type Currency string

const (
	// CurrencyALL is the shop's local currency (Albanian lek).
	CurrencyALL Currency = "ALL"
	// CurrencyGBP tags the secondary purchase amount.
	CurrencyGBP Currency = "GBP"
)

var validCurrencies = []Currency{
	CurrencyALL,
	CurrencyGBP,
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is recognized.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
