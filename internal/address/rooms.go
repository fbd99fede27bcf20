package address

import (
	"strconv"
	"strings"
)

// RoomCounts holds the room counts parsed from the county's compact
// dash-delimited "total-bed-full-half" code.
type RoomCounts struct {
	TotalRooms *int
	Bedrooms   *int
	FullBaths  *int
	HalfBaths  *int
}

// ParseRoomCode parses a code such as "6 - 2 - 2 - 0". Missing or
// unparseable positions yield nil counts.
func ParseRoomCode(code string) RoomCounts {
	var parts []string
	if strings.TrimSpace(code) != "" {
		parts = strings.Split(code, "-")
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return RoomCounts{
		TotalRooms: SafeInt(parts[0]),
		Bedrooms:   SafeInt(parts[1]),
		FullBaths:  SafeInt(parts[2]),
		HalfBaths:  SafeInt(parts[3]),
	}
}

// SafeInt parses values like "550", "$123,456.00" or "550.0" into an int,
// returning nil when no safe conversion exists.
func SafeInt(s string) *int {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

// ParcelJoin derives the zero-padded join key linking a parcel number to the
// county's parcel geodata set: hyphens removed, first eleven characters,
// leading zero prepended.
func ParcelJoin(parcelNumber string) string {
	digits := strings.ReplaceAll(strings.TrimSpace(parcelNumber), "-", "")
	if digits == "" {
		return ""
	}
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return "0" + digits
}
