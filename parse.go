package mensafeed

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Patterns for the markdown-shaped page text produced by the converter.
// Day headers arrive as h4 lines, meal entries as h5 list bullets.
var (
	// dayHeaderPattern matches a day header like "#### Montag, 12.5." —
	// weekday name, comma, day.month. with no year.
	dayHeaderPattern = regexp.MustCompile(`####\s*([A-Za-zÄÖÜäöüß]+),\s*(\d{1,2}\.\d{1,2}\.)`)

	// mealMarkerPattern separates meal entries within a day block. The
	// marker also matches at block start, where the first entry's bullet
	// has no preceding newline left after trimming.
	mealMarkerPattern = regexp.MustCompile(`(?:^|\n)\s*\*\s*#####\s*`)

	// genericDishPattern matches the numbered dish-slot headers
	// ("Essen 1", "ESSEN 2", ...) that all normalize to one category.
	genericDishPattern = regexp.MustCompile(`(?i)^essen\s*\d+`)

	// parentheticalPattern captures annotation groups in meal text.
	parentheticalPattern = regexp.MustCompile(`\(([^)]+)\)`)

	// annotationSplitPattern splits a parenthetical group into parts.
	annotationSplitPattern = regexp.MustCompile(`[/,]`)

	// letterPattern decides allergen codes vs. textual notes. The set is
	// deliberately the alphabet as printed on this page, umlauts and ß
	// included; widening it to all of Unicode would reclassify
	// legitimate allergen codes.
	letterPattern = regexp.MustCompile(`[A-Za-zÄÖÜäöüß]`)

	// noisePattern matches residual lines of bare digits and list
	// punctuation, e.g. stray allergen numerals under a dish.
	noisePattern = regexp.MustCompile(`^[\d,\s/()]+$`)
)

// priceWindow is the number of lines after the dish name searched for a
// price line. The bound is inherited from the deployed feed and kept for
// compatibility rather than derived from the page structure.
const priceWindow = 5

// CanonicalCategory is the category assigned to numbered dish slots.
const CanonicalCategory = "Hauptgericht"

// ParseWeek extracts the week's menu from markdown-shaped page text. The
// year completes the day headers' day/month dates. Days whose date does
// not resolve keep an empty Date but are still returned, so callers can
// tally how much of the week the page actually covered.
func ParseWeek(text string, year int) []*Day {
	headers := dayHeaderPattern.FindAllStringSubmatchIndex(text, -1)
	days := make([]*Day, 0, len(headers))

	for i, h := range headers {
		day := &Day{
			Weekday: strings.TrimSpace(text[h[2]:h[3]]),
			Date:    completeDate(strings.TrimSpace(text[h[4]:h[5]]), year),
		}

		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		block := strings.TrimSpace(text[h[1]:end])

		for _, entry := range mealMarkerPattern.Split(block, -1) {
			if meal, ok := parseEntry(entry); ok {
				day.Meals = append(day.Meals, meal)
			}
		}
		days = append(days, day)
	}
	return days
}

// completeDate appends year to a "D.M." header fragment and renders the
// result as an ISO-8601 date. Returns "" when the combination is not a
// real calendar date (e.g. "30.2.").
func completeDate(dayMonth string, year int) string {
	t, err := time.Parse("2.1.2006", dayMonth+strconv.Itoa(year))
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// parseEntry turns one bullet-delimited entry into a Meal. The second
// return value is false for entries with no header line boundary or no
// body content; such entries are skipped silently.
func parseEntry(entry string) (*Meal, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, false
	}

	// First line is the raw category header, the rest is the meal body.
	idx := strings.IndexByte(entry, '\n')
	if idx < 0 {
		return nil, false
	}
	rawCategory := strings.TrimSpace(entry[:idx])
	body := strings.TrimSpace(entry[idx:])

	lines := nonEmptyLines(body)
	if len(lines) == 0 {
		return nil, false
	}

	meal := &Meal{
		Category: normalizeCategory(rawCategory),
		Name:     lines[0],
	}

	// The price line is the first euro-amount line within the window
	// after the name. Outside the window nothing counts as a price.
	priceLine := ""
	for i := 1; i < len(lines) && i <= priceWindow; i++ {
		if IsPriceLine(lines[i]) {
			priceLine = lines[i]
			break
		}
	}

	notes, allergens := parseAnnotations(rawCategory + " " + body)

	// Residual lines become notes unless they are the price line, pure
	// numeric noise, or already collected from a parenthetical group.
	for _, line := range lines[1:] {
		if line == priceLine {
			continue
		}
		if noisePattern.MatchString(line) {
			continue
		}
		if !slices.Contains(notes, line) {
			notes = append(notes, line)
		}
	}
	meal.Notes = notes
	meal.Allergens = allergens

	if priceLine != "" {
		meal.Prices = ParsePriceLine(priceLine)
	}
	return meal, true
}

// normalizeCategory maps the numbered dish-slot headers to the canonical
// category and passes every other header through verbatim.
func normalizeCategory(raw string) string {
	if genericDishPattern.MatchString(raw) {
		return CanonicalCategory
	}
	return raw
}

// parseAnnotations collects every parenthesized group in text and
// classifies it: groups without a letter are slash- or comma-separated
// allergen code lists, the rest are free-text note lists.
func parseAnnotations(text string) (notes, allergens []string) {
	for _, m := range parentheticalPattern.FindAllStringSubmatch(text, -1) {
		parts := annotationSplitPattern.Split(m[1], -1)
		if letterPattern.MatchString(m[1]) {
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					notes = append(notes, p)
				}
			}
		} else {
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					allergens = append(allergens, p)
				}
			}
		}
	}
	return notes, allergens
}

// nonEmptyLines splits s into trimmed lines, dropping blank ones.
func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
