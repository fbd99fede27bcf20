// Package hash derives the identity and change-detection digests used for
// idempotent storage of sale records.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hamilton-sales/internal/address"
)

// digest joins the stringified fields in order and returns the SHA-256 hex
// digest. All hashing in this package goes through here so the coercion rule
// stays uniform.
func digest(fields []string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

func coerce(v string) string {
	return strings.TrimSpace(v)
}

func coerceInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// RecordKey is the stable identity digest of one sale event: a pure function
// of (parcel number, transfer date), the narrowest natural key. It is the
// conflict target for upserts and never changes across re-scrapes of
// unchanged source data.
func RecordKey(parcelNumber, transferDate string) string {
	return digest([]string{coerce(parcelNumber), coerce(transferDate)})
}

// RowHash is the content digest over the full normalized field set plus the
// sale facts, in a fixed field order. Any change to a tracked attribute
// changes the hash, so re-scrapes can skip unchanged rows without storing
// previous snapshots. A nil parts value hashes as all-empty components.
func RowHash(row address.Row, parts *address.Parts) string {
	p := parts
	if p == nil {
		p = &address.Parts{}
	}
	fields := []string{
		coerce(row.ParcelNumber),
		coerce(row.Address),
		coerce(row.BBB),
		coerce(row.FinSqFt),
		coerce(row.Use),
		coerce(row.YearBuilt),
		coerce(row.TransferDate),
		coerce(row.Amount),
		coerce(p.Recipient),
		coerce(p.AddressNumber),
		coerce(p.AddressNumberLow),
		coerce(p.AddressNumberHigh),
		coerce(p.AddressNumberPrefix),
		coerce(p.AddressNumberSuffix),
		coerce(p.StreetName),
		coerce(p.StreetNamePreDirectional),
		coerce(p.StreetNamePreModifier),
		coerce(p.StreetNamePreType),
		coerce(p.StreetNamePostDirectional),
		coerce(p.StreetNamePostModifier),
		coerce(p.StreetNamePostType),
		coerce(p.CornerOf),
		coerce(p.IntersectionSeparator),
		coerce(p.LandmarkName),
		coerce(p.USPSBoxGroupID),
		coerce(p.USPSBoxGroupType),
		coerce(p.USPSBoxID),
		coerce(p.USPSBoxType),
		coerce(p.BuildingName),
		coerce(p.OccupancyType),
		coerce(p.OccupancyIdentifier),
		coerce(p.SubaddressIdentifier),
		coerce(p.SubaddressType),
		coerce(p.PlaceName),
		coerce(p.StateName),
		coerce(string(p.AddressRangeType)),
		coerceInt(p.AmountNum),
		coerceInt(p.TotalRooms),
		coerceInt(p.Bedrooms),
		coerceInt(p.FullBaths),
		coerceInt(p.HalfBaths),
	}
	return digest(fields)
}
