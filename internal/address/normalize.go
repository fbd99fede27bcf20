package address

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hamilton-sales/internal/mappings"
)

var numericRe = regexp.MustCompile(`^\d+$`)

// Normalize canonicalizes a structured address: word-form house numbers are
// coerced to digits, directionals expand to full words, suffixes and unit
// types map to their canonical USPS spellings, and place/state are
// uppercased. Pure and total: a lookup miss always leaves the value
// unchanged, and Normalize(Normalize(p)) == Normalize(p).
func Normalize(p Parts) Parts {
	p.AddressNumber = CoerceAddressNumber(p.AddressNumber)

	p.StreetNamePreDirectional = mapToken(p.StreetNamePreDirectional, mappings.Direction)
	p.StreetNamePostDirectional = mapToken(p.StreetNamePostDirectional, mappings.Direction)
	p.StreetNamePostType = mapToken(p.StreetNamePostType, mappings.StreetSuffix)
	p.OccupancyType = mapToken(p.OccupancyType, mappings.SecondaryUnit)

	p.StreetName = strings.ToUpper(p.StreetName)
	p.PlaceName = strings.ToUpper(p.PlaceName)
	p.StateName = strings.ToUpper(p.StateName)

	return p
}

// mapToken uppercases, strips a trailing period and maps through the given
// table; the input value wins when the table has no entry.
func mapToken(value string, table map[string]string) string {
	if value == "" {
		return ""
	}
	key := strings.TrimSuffix(strings.ToUpper(value), ".")
	if canonical, ok := table[key]; ok {
		return canonical
	}
	return key
}

var leadingRangeRe = regexp.MustCompile(`^\s*(\d+)\s*-\s*\d+\b`)

// CoerceAddressNumber returns a strictly numeric house number where a safe
// conversion exists ("one hundred twenty three" -> "123"), and the original
// value otherwise. It never invents a number.
func CoerceAddressNumber(value string) string {
	if m := leadingRangeRe.FindStringSubmatch(value); m != nil {
		value = m[1]
	}
	if value == "" || numericRe.MatchString(value) {
		return value
	}
	if n, ok := wordToNumber(value); ok {
		return strconv.Itoa(n)
	}
	return value
}

// wordToNumber converts a spelled cardinal ("one hundred twenty-three") to
// its integer value. Ordinals and anything outside the spelled-number
// vocabulary fail the conversion.
func wordToNumber(s string) (int, bool) {
	words := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(words) == 0 {
		return 0, false
	}

	total, current := 0, 0
	seen := false
	for _, w := range words {
		if w == "and" {
			continue
		}
		switch {
		case mappings.NumberUnits[w] != 0 || w == "zero":
			current += mappings.NumberUnits[w]
			seen = true
		case mappings.NumberTens[w] != 0:
			current += mappings.NumberTens[w]
			seen = true
		case mappings.NumberScales[w] != 0:
			if current == 0 {
				current = 1
			}
			current *= mappings.NumberScales[w]
			if mappings.NumberScales[w] >= 1000 {
				total += current
				current = 0
			}
			seen = true
		default:
			return 0, false
		}
	}
	if !seen {
		return 0, false
	}
	return total + current, true
}
