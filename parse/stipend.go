package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/talentfold/ingest/core"
)

// StipendParser heuristics only resolve INR monthly figures. Foreign
// currencies are marked ambiguous rather than converted; that is a non-goal.

var (
	currencyRe    = regexp.MustCompile(`₹|inr|rs\.?`)
	periodicityRe = regexp.MustCompile(`per\s*annum|per\s*year|lpa|per\s*(month|mo)|/\s*month`)
	annualRe      = regexp.MustCompile(`per\s*annum|per\s*year|lpa|lakh`)
	rangeRe       = regexp.MustCompile(`-|–|to`)
	nonNumericRe  = regexp.MustCompile(`[^0-9.]`)
)

// lakhScale converts lakh-denominated figures to rupees.
const lakhScale = 100000

// ParseStipend turns a free-text compensation string into a normalized
// monthly INR range. It never fails; see core.ParsedStipend for the
// nil/ambiguous conventions.
func ParseStipend(raw string) core.ParsedStipend {
	if raw == "" {
		return core.ParsedStipend{}
	}
	lower := strings.ToLower(raw)

	// Foreign currency is intentionally unresolved, not converted.
	if strings.Contains(lower, "usd") || strings.Contains(lower, "$") {
		return core.ParsedStipend{Ambiguous: true}
	}

	annual := annualRe.MatchString(lower)
	// "3 LPA" means three lakh per annum: a bare figure next to an lpa
	// marker carries the lakh magnitude implicitly.
	impliedLakh := strings.Contains(lower, "lpa")

	cleaned := currencyRe.ReplaceAllString(lower, "")
	cleaned = periodicityRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	parts := rangeRe.Split(cleaned, -1)
	min := tokenValue(parts[0], impliedLakh)
	max := min
	if len(parts) > 1 {
		max = tokenValue(parts[1], impliedLakh)
	}

	if annual {
		min = monthly(min)
		max = monthly(max)
	}

	// A single parseable figure populates both bounds.
	if min == nil && max != nil {
		min = max
	}
	if max == nil && min != nil {
		max = min
	}
	if min == nil && max == nil {
		return core.ParsedStipend{Ambiguous: true}
	}
	return core.ParsedStipend{Min: min, Max: max}
}

// tokenValue parses one numeric token, applying the magnitude rules:
// a trailing "k" multiplies by 1,000; "lakh" or a trailing bare "l"
// multiplies by 100,000. When the token itself has no magnitude suffix and
// the raw string carried an lpa marker, the lakh magnitude applies.
func tokenValue(token string, impliedLakh bool) *int {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	scale := 1.0
	switch {
	case strings.HasSuffix(token, "k"):
		scale = 1000
	case strings.Contains(token, "lakh"), strings.HasSuffix(token, "l"):
		scale = lakhScale
	case impliedLakh:
		scale = lakhScale
	}

	digits := nonNumericRe.ReplaceAllString(token, "")
	if digits == "" {
		return nil
	}
	num, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}
	value := int(num * scale)
	return &value
}

// monthly converts an annual figure to a monthly one, rounding half-up.
func monthly(annual *int) *int {
	if annual == nil {
		return nil
	}
	value := int(math.Floor(float64(*annual)/12 + 0.5))
	return &value
}
