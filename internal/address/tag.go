package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hamilton-sales/internal/mappings"
)

// Tagger decomposes a cleaned address string into named components. It is an
// external capability: implementations may fail on repeated or ambiguous
// component labels, which resolution treats as a per-row issue rather than an
// error.
type Tagger interface {
	Tag(addr string) (map[string]string, error)
}

// Row is one scraped sale record as delivered by the scraping collaborator.
// All fields are raw strings; parsing happens during resolution.
type Row struct {
	ParcelNumber string
	Address      string
	BBB          string
	FinSqFt      string
	Use          string
	YearBuilt    string
	TransferDate string
	Amount       string
}

// Resolver turns raw rows into structured addresses using a Tagger.
type Resolver struct {
	tagger Tagger
}

// NewResolver creates a Resolver backed by the given tagging capability.
func NewResolver(tagger Tagger) *Resolver {
	return &Resolver{tagger: tagger}
}

// Resolve produces the structured address for one row. A nil Parts result
// with one or more issue strings means the row could not be parsed; callers
// must keep the row unparsed rather than discard it.
func (r *Resolver) Resolve(row Row) (*Parts, []string) {
	var issues []string

	if strings.TrimSpace(row.Address) == "" {
		return nil, append(issues, "empty or non-text address")
	}

	cleaned := Preclean(row.Address)

	housing := housingTypeOf(row.Use)
	cleaned = MoveLeadingUnitToken(cleaned, housing)

	low, high, addrForTagging, rangeType := DetectAddressRange(cleaned, housing)

	tagged, err := r.tagger.Tag(addrForTagging)
	if err != nil {
		return nil, append(issues, fmt.Sprintf("tagging failed: %v", err))
	}
	tagged = fixAlphaAddressNumber(tagged)

	// A detected high bound below the low bound means the range branch was
	// fed noise; drop the bound rather than store a descending range.
	if high != "" {
		if h, errH := strconv.Atoi(high); errH == nil {
			if l, errL := strconv.Atoi(low); errL == nil && h < l {
				high = ""
			}
		}
	}

	rooms := ParseRoomCode(row.BBB)

	p := &Parts{
		ParcelNumber:      row.ParcelNumber,
		TransferDate:      row.TransferDate,
		AddressNumberLow:  low,
		AddressNumberHigh: high,
		AddressRangeType:  rangeType,
		ParcelJoin:        ParcelJoin(row.ParcelNumber),
		AmountNum:         SafeInt(row.Amount),
		TotalRooms:        rooms.TotalRooms,
		Bedrooms:          rooms.Bedrooms,
		FullBaths:         rooms.FullBaths,
		HalfBaths:         rooms.HalfBaths,
	}
	for label, value := range tagged {
		p.setComponent(label, value)
	}

	return p, issues
}

// fixAlphaAddressNumber folds a digit-free address number back into the
// street name. Generic taggers routinely mislabel a spelled leading word
// ("MAIN ST" has no house number) as the address number.
func fixAlphaAddressNumber(tagged map[string]string) map[string]string {
	num, ok := tagged[CompAddressNumber]
	if !ok || strings.ContainsAny(num, "0123456789") {
		return tagged
	}
	tagged[CompStreetName] = strings.TrimSpace(num + " " + tagged[CompStreetName])
	delete(tagged, CompAddressNumber)
	return tagged
}

func housingTypeOf(use string) mappings.HousingType {
	if n := SafeInt(use); n != nil {
		return mappings.HousingTypeForUse(*n)
	}
	return mappings.HousingNone
}
