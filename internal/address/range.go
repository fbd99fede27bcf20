package address

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/hamilton-sales/internal/mappings"
)

// RangeType records which disambiguation branch produced a structured
// address.
type RangeType string

const (
	RangeNone    RangeType = "none"
	RangeRange   RangeType = "range"
	RangeUnit    RangeType = "unit"
	RangeApt     RangeType = "apt"
	RangeUnknown RangeType = "unknown"
)

// Plausibility thresholds: buildings do not span more than ~200 street
// numbers, while unit numbers commonly run into the thousands.
const (
	maxRangeSpan = 200
	maxUnitValue = 6000
)

var (
	rangePrefixRe = regexp.MustCompile(`^\s*(\d+)\s+(\d+)\s+(.*)$`)
	hyphenRangeRe = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s+(.*)$`)
)

// DetectAddressRange inspects a leading two-number pattern such as
// "1308 1310 WILLIAM H TAFT RD" (or the hyphenated "1308-1310" form) and
// decides whether the second number is a range terminus, a secondary-unit
// identifier, or noise. It returns the low/high bounds (empty when not
// applicable), the rewritten address to hand to the tagger, and the audit
// tag for the branch that fired.
//
// When the numbers cannot be reconciled with the housing type the address is
// passed through unchanged with RangeUnknown: a low-confidence signal, not a
// guess.
func DetectAddressRange(addr string, housing mappings.HousingType) (low, high, addrForTagging string, rangeType RangeType) {
	m := rangePrefixRe.FindStringSubmatch(addr)
	if m == nil {
		m = hyphenRangeRe.FindStringSubmatch(addr)
	}
	if m == nil {
		return "", "", addr, RangeNone
	}

	low, high = m[1], m[2]
	rest := m[3]

	lowN, errLow := strconv.Atoi(low)
	highN, errHigh := strconv.Atoi(high)
	if errLow != nil || errHigh != nil {
		return "", "", addr, RangeNone
	}
	diff := highN - lowN

	switch {
	case diff >= 1 && diff <= maxRangeSpan:
		// Plausible street-address range, unless the parcel is an
		// apartment building, where the second number is a unit.
		if housing == mappings.HousingApt {
			return low, "", fmt.Sprintf("%s %s APT %s", low, rest, high), RangeApt
		}
		return low, high, fmt.Sprintf("%s %s", low, rest), RangeRange

	case diff <= 0:
		// Equal or descending numbers are not a valid ascending range.
		switch housing {
		case mappings.HousingUnit, mappings.HousingCondo:
			return low, "", fmt.Sprintf("%s %s UNIT %s", low, rest, high), RangeUnit
		case mappings.HousingApt:
			return low, "", fmt.Sprintf("%s %s APT %s", low, rest, high), RangeApt
		}

	case diff > maxRangeSpan && highN <= maxUnitValue:
		switch housing {
		case mappings.HousingUnit, mappings.HousingCondo:
			return low, "", fmt.Sprintf("%s %s UNIT %s", low, rest, high), RangeUnit
		case mappings.HousingApt:
			return low, "", fmt.Sprintf("%s %s APT %s", low, rest, high), RangeApt
		}
	}

	return "", "", addr, RangeUnknown
}
