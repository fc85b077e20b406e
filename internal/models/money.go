package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a source amount ("1234.50"). Empty text is an error:
// the caller decides whether a missing amount is acceptable.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return d, nil
}

// FormatAmount renders with two fraction digits and '.' as separator.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
