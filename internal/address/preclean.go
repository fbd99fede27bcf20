package address

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hamilton-sales/internal/mappings"
)

// protect is a placeholder rune substituted for decimal points between
// digits so they survive punctuation stripping.
const protect = "⟐"

var (
	extraInfoRe  = regexp.MustCompile(`\s*\([A-Za-z]+\)\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	fractionRe   = regexp.MustCompile(`\b(\d+)\s+(\d+)/(\d+)\b`)
	decimalDotRe = regexp.MustCompile(`(\d)\.(\d)`)
	punctRe      = regexp.MustCompile(`[^\w\s` + protect + `\-/]`)

	unitTokenRe = regexp.MustCompile(`^(?i)(\d+[A-Za-z]{1,2}|[A-Za-z]{1,2}\d+)$`)
)

// Preclean performs light, non-destructive cleanup before tagging:
// trim, drop parenthetical annotations, collapse whitespace runs, collapse
// spelled fractions ("915 1/2" -> "915.5"), strip stray punctuation while
// preserving decimal points, hyphens and slashes. Always returns a string.
func Preclean(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = extraInfoRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = fractionRe.ReplaceAllStringFunc(s, collapseFraction)
	// Fraction collapse must run before range detection so "1/2" is never
	// read as a second address number.
	s = decimalDotRe.ReplaceAllString(s, "${1}"+protect+"${2}")
	s = punctRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, protect, ".")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	return s
}

// collapseFraction rewrites "915 1/2" as "915.5".
func collapseFraction(m string) string {
	sub := fractionRe.FindStringSubmatch(m)
	whole, _ := strconv.Atoi(sub[1])
	num, _ := strconv.Atoi(sub[2])
	den, _ := strconv.Atoi(sub[3])
	if den == 0 {
		return m
	}
	return strings.TrimRight(strings.TrimRight(
		fmt.Sprintf("%g", float64(whole)+float64(num)/float64(den)), "0"), ".")
}

// MoveLeadingUnitToken rewrites a unit token trailing the house number into
// an explicit secondary-unit suffix the tagger can label:
//
//	"5757 1D CHEVIOT RD" -> "5757 CHEVIOT RD UNIT 1D"
//
// The rewrite only fires when the housing type says the parcel actually has
// units; otherwise the token could be an address-number suffix.
func MoveLeadingUnitToken(addr string, housing mappings.HousingType) string {
	parts := strings.Fields(addr)
	if len(parts) < 4 {
		return addr
	}

	house, maybeUnit := parts[0], parts[1]
	if !isAllDigits(house) || !unitTokenRe.MatchString(maybeUnit) {
		return addr
	}

	rest := strings.Join(parts[2:], " ")
	switch housing {
	case mappings.HousingUnit, mappings.HousingCondo:
		return fmt.Sprintf("%s %s UNIT %s", house, rest, maybeUnit)
	case mappings.HousingApt:
		return fmt.Sprintf("%s %s APT %s", house, rest, maybeUnit)
	default:
		return addr
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
