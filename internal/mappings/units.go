package mappings

// SecondaryUnit maps every observed spelling of a secondary-unit designator
// to the canonical USPS word.
var SecondaryUnit = map[string]string{
	"APT": "APARTMENT", "APT.": "APARTMENT", "APARTMENT": "APARTMENT",
	"APART": "APARTMENT", "APTMT": "APARTMENT",
	"BSMT": "BASEMENT", "BSMT.": "BASEMENT", "BASEMENT": "BASEMENT",
	"BSMENT": "BASEMENT", "BASMT": "BASEMENT",
	"BLDG": "BUILDING", "BLDG.": "BUILDING", "BUILDING": "BUILDING",
	"BLDNG": "BUILDING",
	"DEPT": "DEPARTMENT", "DEPT.": "DEPARTMENT", "DEPARTMENT": "DEPARTMENT",
	"FL": "FLOOR", "FL.": "FLOOR", "FLR": "FLOOR", "FLOOR": "FLOOR",
	"FRNT": "FRONT", "FRNT.": "FRONT", "FRONT": "FRONT",
	"HNGR": "HANGAR", "HNGR.": "HANGAR", "HANGER": "HANGAR", "HANGAR": "HANGAR",
	"KEY": "KEY", "KEY.": "KEY",
	"LBBY": "LOBBY", "LBBY.": "LOBBY", "LOBBY": "LOBBY",
	"LOT": "LOT", "LOT.": "LOT",
	"LOWR": "LOWER", "LOWR.": "LOWER", "LOWER": "LOWER",
	"OFC": "OFFICE", "OFC.": "OFFICE", "OFFICE": "OFFICE", "OFFC": "OFFICE",
	"PH": "PENTHOUSE", "PH.": "PENTHOUSE", "PENTHOUSE": "PENTHOUSE",
	"PIER": "PIER", "PIER.": "PIER",
	"REAR": "REAR", "REAR.": "REAR",
	"RM": "ROOM", "RM.": "ROOM", "ROOM": "ROOM",
	"SIDE": "SIDE", "SIDE.": "SIDE",
	"SLIP": "SLIP", "SLIP.": "SLIP",
	"SPC": "SPACE", "SPC.": "SPACE", "SPACE": "SPACE",
	"STOP": "STOP", "STOP.": "STOP",
	"STE": "SUITE", "STE.": "SUITE", "SUITE": "SUITE",
	"TRLR": "TRAILER", "TRLR.": "TRAILER", "TRAILER": "TRAILER",
	"UNIT": "UNIT", "UNIT.": "UNIT",
	"UPPR": "UPPER", "UPPR.": "UPPER", "UPPER": "UPPER", "UPR": "UPPER",
}

// SecondaryUnitAbbrev maps the canonical USPS word to the USPS standard
// abbreviation.
var SecondaryUnitAbbrev = map[string]string{
	"APARTMENT":  "APT",
	"BASEMENT":   "BSMT",
	"BUILDING":   "BLDG",
	"DEPARTMENT": "DEPT",
	"FLOOR":      "FL",
	"FRONT":      "FRNT",
	"HANGAR":     "HNGR",
	"KEY":        "KEY",
	"LOBBY":      "LBBY",
	"LOT":        "LOT",
	"LOWER":      "LOWR",
	"OFFICE":     "OFC",
	"PENTHOUSE":  "PH",
	"PIER":       "PIER",
	"REAR":       "REAR",
	"ROOM":       "RM",
	"SIDE":       "SIDE",
	"SLIP":       "SLIP",
	"SPACE":      "SPC",
	"STOP":       "STOP",
	"SUITE":      "STE",
	"TRAILER":    "TRLR",
	"UNIT":       "UNIT",
	"UPPER":      "UPPR",
}

// UnitHeadWords are tokens that introduce a secondary unit when they appear
// inline in an address string.
var UnitHeadWords = map[string]bool{
	"#":     true,
	"APT":   true,
	"UNIT":  true,
	"STE":   true,
	"SUITE": true,
	"ROOM":  true,
	"RM":    true,
}
