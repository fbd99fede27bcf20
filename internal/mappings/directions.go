package mappings

// Direction maps directional abbreviations to the full-word canonical form.
// Downstream consumers standardize on expanded directions.
var Direction = map[string]string{
	"N":  "NORTH",
	"S":  "SOUTH",
	"E":  "EAST",
	"W":  "WEST",
	"NW": "NORTHWEST",
	"SW": "SOUTHWEST",
	"NE": "NORTHEAST",
	"SE": "SOUTHEAST",
}

// DirectionAbbrev is the inverse of Direction.
var DirectionAbbrev = map[string]string{
	"NORTH":     "N",
	"SOUTH":     "S",
	"EAST":      "E",
	"WEST":      "W",
	"NORTHWEST": "NW",
	"SOUTHWEST": "SW",
	"NORTHEAST": "NE",
	"SOUTHEAST": "SE",
}

// IsDirection reports whether token (already uppercased) is a directional,
// in either abbreviated or full-word form.
func IsDirection(token string) bool {
	if _, ok := Direction[token]; ok {
		return true
	}
	_, ok := DirectionAbbrev[token]
	return ok
}
