// Package currencyutils converts statement amount strings into decimal values.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var spacePattern = regexp.MustCompile(`\s+`)

// StandardizeAmount rewrites an amount so that '.' is the only decimal separator
// and no grouping marks remain.
//
// When both ',' and '.' appear, whichever comes last is the decimal separator and the
// other is a thousands mark. A lone ',' is a decimal separator. Otherwise '.' is the
// decimal separator and stray commas are dropped.
func StandardizeAmount(amountStr string) string {
	s := spacePattern.ReplaceAllString(amountStr, "")

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	return s
}

// NormalizeAmount parses an amount such as "1.234,56", "1,234.56" or "-50,00".
// Anything that does not reduce to a number is an error; callers decide what
// to do with the row.
func NormalizeAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// FormatAmount renders an amount with two decimals, e.g. for CSV export.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
