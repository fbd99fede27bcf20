// Package geocode enriches structured sale records with coordinates from an
// external forward-geocoding API, caching results by parcel number so an
// unchanged parcel is never re-queried.
package geocode

import "context"

// Result is one geocode lookup outcome, keyed in the cache by parcel number.
// A failed or no-match lookup is a Result with every field nil; it is cached
// like a success so known failures are not re-attempted.
type Result struct {
	FormattedAddress *string  `json:"formatted_address"`
	Longitude        *float64 `json:"longitude"`
	Latitude         *float64 `json:"latitude"`
	HouseNum         *string  `json:"house_num"`
	StreetName       *string  `json:"street_name"`
	APICity          *string  `json:"api_city"`
	County           *string  `json:"county"`
	APIState         *string  `json:"api_state"`
	APIPostalCode    *string  `json:"api_postal_code"`
	Confidence       *float64 `json:"confidence"`
}

// Resolved reports whether the lookup produced usable coordinates.
func (r Result) Resolved() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Geocoder is the external geocoding capability. Implementations must be
// idempotent per (address, parcel) pair so results are cacheable by parcel.
type Geocoder interface {
	Geocode(ctx context.Context, addr, parcelNumber string) (Result, error)
}
