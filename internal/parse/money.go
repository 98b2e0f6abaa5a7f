// Package parse normalizes the money and date text found in Mexican
// bank statements. Both parsers are forgiving: unreadable input
// degrades to a zero value or a miss, never an error, so one mangled
// cell cannot abort an import.
package parse

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount converts statement money text to an exact decimal. It accepts
// "$1,234.56", "1234.56", " 500 " and accounting-style negatives like
// "(1,200.50)". Empty or unreadable input yields zero.
func Amount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "") // non-breaking space

	if s == "" || s == "-" {
		return decimal.Zero
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return v.Neg()
	}
	return v
}
