// Package tagger implements the address-tagging capability on top of
// libpostal via the gopostal bindings.
package tagger

import (
	"fmt"
	"strings"

	postal "github.com/openvenues/gopostal/parser"

	"github.com/hamilton-sales/internal/address"
	"github.com/hamilton-sales/internal/mappings"
)

// Postal tags addresses with libpostal and translates its labels onto the
// component taxonomy the resolver expects. libpostal lowercases everything,
// so values are uppercased to match the county's data conventions.
type Postal struct{}

// New returns a libpostal-backed tagger.
func New() *Postal {
	return &Postal{}
}

// Tag decomposes addr into named components. It returns an error when
// libpostal assigns the same label twice with conflicting values, which is
// the ambiguity signal callers must treat as a non-fatal per-row issue.
func (t *Postal) Tag(addr string) (map[string]string, error) {
	components := postal.ParseAddress(addr)

	byLabel := map[string]string{}
	for _, c := range components {
		value := strings.ToUpper(strings.TrimSpace(c.Value))
		if value == "" {
			continue
		}
		if prev, ok := byLabel[c.Label]; ok && prev != value {
			return nil, fmt.Errorf("repeated label %q: %q vs %q", c.Label, prev, value)
		}
		byLabel[c.Label] = value
	}

	out := map[string]string{}
	for label, value := range byLabel {
		switch label {
		case "house_number":
			out[address.CompAddressNumber] = value
		case "road":
			splitRoad(value, out)
		case "unit":
			splitUnit(value, out)
		case "house":
			out[address.CompBuildingName] = value
		case "po_box":
			out[address.CompUSPSBoxID] = value
			out[address.CompUSPSBoxType] = "PO BOX"
		case "suburb":
			if byLabel["city"] == "" {
				out[address.CompPlaceName] = value
			}
		case "city":
			out[address.CompPlaceName] = value
		case "state":
			out[address.CompStateName] = value
		}
	}
	return out, nil
}

// splitRoad decomposes a libpostal road value into directional, name and
// suffix components using the lexical tables.
func splitRoad(road string, out map[string]string) {
	tokens := strings.Fields(road)
	if len(tokens) == 0 {
		return
	}

	if len(tokens) > 1 && mappings.IsDirection(tokens[0]) {
		out[address.CompPreDirectional] = tokens[0]
		tokens = tokens[1:]
	}

	if len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if mappings.IsDirection(last) {
			out[address.CompPostDirectional] = last
			tokens = tokens[:len(tokens)-1]
		}
	}

	if len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if _, ok := mappings.StreetSuffix[last]; ok {
			out[address.CompPostType] = last
			tokens = tokens[:len(tokens)-1]
		}
	}

	if len(tokens) > 0 {
		out[address.CompStreetName] = strings.Join(tokens, " ")
	}
}

// splitUnit separates a secondary-unit head word from its identifier:
// "UNIT 206" -> OccupancyType "UNIT", OccupancyIdentifier "206". A bare
// identifier keeps the type empty.
func splitUnit(unit string, out map[string]string) {
	tokens := strings.Fields(unit)
	if len(tokens) == 0 {
		return
	}

	head := strings.TrimSuffix(tokens[0], ".")
	_, canonical := mappings.SecondaryUnit[head]
	if len(tokens) > 1 && (mappings.UnitHeadWords[head] || canonical) {
		out[address.CompOccupancyType] = head
		out[address.CompOccupancyIdentifier] = strings.Join(tokens[1:], " ")
		return
	}
	out[address.CompOccupancyIdentifier] = strings.Join(tokens, " ")
}
