// Package dateutils converts the date encodings found in bank statements to ISO dates.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	brazilianDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	nonDigitPattern      = regexp.MustCompile(`\D`)
)

// ParseBrazilianDate reorders a DD/MM/YYYY date into YYYY-MM-DD.
// Only the shape is checked; "31/02/2024" becomes "2024-02-31" and is left for
// downstream validation. Single-digit day and month are zero-padded.
func ParseBrazilianDate(s string) (string, error) {
	m := brazilianDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("unable to parse date: %q", s)
	}
	return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1])), nil
}

// ParseOFXDate reads an OFX DTPOSTED value such as "20240115120000[-3:BRT]".
// Non-digits are dropped and the first eight digits are taken as YYYYMMDD.
func ParseOFXDate(s string) (string, error) {
	digits := nonDigitPattern.ReplaceAllString(s, "")
	if len(digits) < 8 {
		return "", fmt.Errorf("unable to parse OFX date: %q", s)
	}
	return fmt.Sprintf("%s-%s-%s", digits[0:4], digits[4:6], digits[6:8]), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
