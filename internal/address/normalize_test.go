package address

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Parts
		want Parts
	}{
		{
			name: "directional and suffix expand to full words",
			in: Parts{
				AddressNumber:            "123",
				StreetNamePreDirectional: "N",
				StreetName:               "Main",
				StreetNamePostType:       "Ave",
			},
			want: Parts{
				AddressNumber:            "123",
				StreetNamePreDirectional: "NORTH",
				StreetName:               "MAIN",
				StreetNamePostType:       "AVENUE",
			},
		},
		{
			name: "occupancy type with trailing period",
			in: Parts{
				OccupancyType:       "Apt.",
				OccupancyIdentifier: "4B",
			},
			want: Parts{
				OccupancyType:       "APARTMENT",
				OccupancyIdentifier: "4B",
			},
		},
		{
			name: "spelled house number coerced to digits",
			in: Parts{
				AddressNumber: "one hundred twenty three",
				StreetName:    "ELM",
			},
			want: Parts{
				AddressNumber: "123",
				StreetName:    "ELM",
			},
		},
		{
			name: "unknown tokens pass through uppercased",
			in: Parts{
				StreetNamePostType: "Qway",
				PlaceName:          "Cincinnati",
				StateName:          "oh",
			},
			want: Parts{
				StreetNamePostType: "QWAY",
				PlaceName:          "CINCINNATI",
				StateName:          "OH",
			},
		},
		{
			name: "leading range in house number keeps low bound",
			in: Parts{
				AddressNumber: "1308-1310",
			},
			want: Parts{
				AddressNumber: "1308",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	p := Parts{
		AddressNumber:            "one thousand",
		StreetNamePreDirectional: "NE",
		StreetName:               "Reading",
		StreetNamePostType:       "Rd",
		OccupancyType:            "Ste",
	}
	once := Normalize(p)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize not idempotent: %+v vs %+v", once, twice)
	}
}

func TestCoerceAddressNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"123", "123"},
		{"one hundred twenty three", "123"},
		{"twenty-one", "21"},
		{"two thousand", "2000"},
		{"ABC123", "ABC123"},
		{"main", "main"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CoerceAddressNumber(tt.input)
			if got != tt.want {
				t.Errorf("CoerceAddressNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
