package address

// Component labels produced by a Tagger. These follow the component taxonomy
// of US postal addresses; a tagger returns a sparse map keyed by these.
const (
	CompRecipient             = "Recipient"
	CompAddressNumber         = "AddressNumber"
	CompAddressNumberPrefix   = "AddressNumberPrefix"
	CompAddressNumberSuffix   = "AddressNumberSuffix"
	CompStreetName            = "StreetName"
	CompPreDirectional        = "StreetNamePreDirectional"
	CompPreModifier           = "StreetNamePreModifier"
	CompPreType               = "StreetNamePreType"
	CompPostDirectional       = "StreetNamePostDirectional"
	CompPostModifier          = "StreetNamePostModifier"
	CompPostType              = "StreetNamePostType"
	CompCornerOf              = "CornerOf"
	CompIntersectionSeparator = "IntersectionSeparator"
	CompLandmarkName          = "LandmarkName"
	CompUSPSBoxGroupID        = "USPSBoxGroupID"
	CompUSPSBoxGroupType      = "USPSBoxGroupType"
	CompUSPSBoxID             = "USPSBoxID"
	CompUSPSBoxType           = "USPSBoxType"
	CompBuildingName          = "BuildingName"
	CompOccupancyType         = "OccupancyType"
	CompOccupancyIdentifier   = "OccupancyIdentifier"
	CompSubaddressIdentifier  = "SubaddressIdentifier"
	CompSubaddressType        = "SubaddressType"
	CompPlaceName             = "PlaceName"
	CompStateName             = "StateName"
)

// Parts is the canonical structured address produced by resolution. Missing
// components are empty strings; numeric extras are nil when absent. A Parts
// value is never mutated in place: Normalize returns a new value.
type Parts struct {
	RecordKey    string
	ParcelNumber string
	TransferDate string
	Recipient    string

	// Primary address number, string-typed to preserve leading context.
	AddressNumber string

	// Populated only when a genuine street-address range was detected.
	AddressNumberLow  string
	AddressNumberHigh string

	AddressNumberPrefix string
	AddressNumberSuffix string

	StreetName                string
	StreetNamePreDirectional  string
	StreetNamePreModifier     string
	StreetNamePreType         string
	StreetNamePostDirectional string
	StreetNamePostModifier    string
	StreetNamePostType        string

	CornerOf              string
	IntersectionSeparator string
	LandmarkName          string

	USPSBoxGroupID   string
	USPSBoxGroupType string
	USPSBoxID        string
	USPSBoxType      string

	BuildingName string

	// Secondary unit, kept strictly separate from AddressNumber.
	OccupancyType       string
	OccupancyIdentifier string

	SubaddressIdentifier string
	SubaddressType       string

	PlaceName string
	StateName string

	// Audit tag recording which disambiguation branch fired.
	AddressRangeType RangeType

	RowHash string

	// Zero-padded join key for the county parcel geodata set.
	ParcelJoin string

	// Sale facts carried alongside the address.
	AmountNum  *int
	TotalRooms *int
	Bedrooms   *int
	FullBaths  *int
	HalfBaths  *int
}

// setComponent assigns a tagged component value onto the matching field.
// Unknown labels are ignored; the tagger contract allows labels this engine
// does not track.
func (p *Parts) setComponent(label, value string) {
	switch label {
	case CompRecipient:
		p.Recipient = value
	case CompAddressNumber:
		p.AddressNumber = value
	case CompAddressNumberPrefix:
		p.AddressNumberPrefix = value
	case CompAddressNumberSuffix:
		p.AddressNumberSuffix = value
	case CompStreetName:
		p.StreetName = value
	case CompPreDirectional:
		p.StreetNamePreDirectional = value
	case CompPreModifier:
		p.StreetNamePreModifier = value
	case CompPreType:
		p.StreetNamePreType = value
	case CompPostDirectional:
		p.StreetNamePostDirectional = value
	case CompPostModifier:
		p.StreetNamePostModifier = value
	case CompPostType:
		p.StreetNamePostType = value
	case CompCornerOf:
		p.CornerOf = value
	case CompIntersectionSeparator:
		p.IntersectionSeparator = value
	case CompLandmarkName:
		p.LandmarkName = value
	case CompUSPSBoxGroupID:
		p.USPSBoxGroupID = value
	case CompUSPSBoxGroupType:
		p.USPSBoxGroupType = value
	case CompUSPSBoxID:
		p.USPSBoxID = value
	case CompUSPSBoxType:
		p.USPSBoxType = value
	case CompBuildingName:
		p.BuildingName = value
	case CompOccupancyType:
		p.OccupancyType = value
	case CompOccupancyIdentifier:
		p.OccupancyIdentifier = value
	case CompSubaddressIdentifier:
		p.SubaddressIdentifier = value
	case CompSubaddressType:
		p.SubaddressType = value
	case CompPlaceName:
		p.PlaceName = value
	case CompStateName:
		p.StateName = value
	}
}
