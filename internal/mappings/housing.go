package mappings

// HousingType is the coarse classification derived from the county land-use
// code, used to disambiguate numeric address tokens.
type HousingType string

const (
	HousingNone  HousingType = ""
	HousingCondo HousingType = "condo"
	HousingApt   HousingType = "apt"
	HousingUnit  HousingType = "unit"
)

// Land-use codes observed in the county's sale exports.
var (
	condoUses       = map[int]bool{550: true, 552: true, 554: true, 555: true, 558: true}
	aptUses         = map[int]bool{401: true, 402: true, 403: true, 404: true, 431: true}
	multiFamilyUses = map[int]bool{520: true, 530: true}
)

// HousingTypeForUse classifies a land-use code. Unknown codes map to
// HousingNone.
func HousingTypeForUse(use int) HousingType {
	switch {
	case condoUses[use]:
		return HousingCondo
	case aptUses[use]:
		return HousingApt
	case multiFamilyUses[use]:
		return HousingUnit
	default:
		return HousingNone
	}
}
