package mensafeed

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// priceLinePattern identifies a line carrying at least one euro
	// amount, e.g. "2,95 € / 4,60 € / 5,50 €". A bare "12,34" without
	// the currency symbol does not qualify.
	priceLinePattern = regexp.MustCompile(`\d+[,.]\d+\s*€`)

	// amountSuffixPattern trims everything from the first character that
	// is neither a digit nor a dot, e.g. "4.60/Portion" -> "4.60".
	amountSuffixPattern = regexp.MustCompile(`[^\d.].*$`)
)

// IsPriceLine reports whether line contains a euro amount.
func IsPriceLine(line string) bool {
	return priceLinePattern.MatchString(line)
}

// ParseAmount parses one price token from the page. The token is
// normalized first: currency symbol and spaces stripped, decimal comma
// converted to a dot, trailing non-numeric text removed. Returns nil when
// no parseable amount remains; a malformed token never raises an error.
func ParseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = amountSuffixPattern.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParsePriceLine splits a designated price line on "/" and maps the parts
// positionally to the students, employees and others tiers. Parts beyond
// the third are ignored; a part that fails to parse leaves its tier nil.
func ParsePriceLine(line string) Prices {
	var parts []string
	for _, p := range strings.Split(line, "/") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var prices Prices
	if len(parts) >= 1 {
		prices.Students = ParseAmount(parts[0])
	}
	if len(parts) >= 2 {
		prices.Employees = ParseAmount(parts[1])
	}
	if len(parts) >= 3 {
		prices.Others = ParseAmount(parts[2])
	}
	return prices
}
