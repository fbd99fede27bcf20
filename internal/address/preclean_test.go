package address

import (
	"testing"

	"github.com/hamilton-sales/internal/mappings"
)

func TestPreclean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple address untouched",
			input: "1308 WILLIAM H TAFT RD",
			want:  "1308 WILLIAM H TAFT RD",
		},
		{
			name:  "parenthetical annotation removed",
			input: "915 ELM ST (REAR)",
			want:  "915 ELM ST",
		},
		{
			name:  "fraction collapsed to decimal",
			input: "915 1/2 ELM ST",
			want:  "915.5 ELM ST",
		},
		{
			name:  "fraction and annotation together",
			input: "915 1/2 Elm St (Rear)",
			want:  "915.5 Elm St",
		},
		{
			name:  "whitespace runs collapsed",
			input: "  1308   WILLIAM   H  TAFT RD ",
			want:  "1308 WILLIAM H TAFT RD",
		},
		{
			name:  "punctuation stripped keeping hyphen and slash",
			input: "123 MAIN ST., APT #4",
			want:  "123 MAIN ST APT 4",
		},
		{
			name:  "quarter fraction",
			input: "12 1/4 OAK AVE",
			want:  "12.25 OAK AVE",
		},
		{
			name:  "empty input",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preclean(tt.input)
			if got != tt.want {
				t.Errorf("Preclean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoveLeadingUnitToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		housing mappings.HousingType
		want    string
	}{
		{
			name:    "condo unit token moved",
			input:   "5757 1D CHEVIOT RD",
			housing: mappings.HousingCondo,
			want:    "5757 CHEVIOT RD UNIT 1D",
		},
		{
			name:    "apartment token moved with APT",
			input:   "5757 1D CHEVIOT RD",
			housing: mappings.HousingApt,
			want:    "5757 CHEVIOT RD APT 1D",
		},
		{
			name:    "single family untouched",
			input:   "5757 1D CHEVIOT RD",
			housing: mappings.HousingNone,
			want:    "5757 1D CHEVIOT RD",
		},
		{
			name:    "no unit token untouched",
			input:   "5757 CHEVIOT HILLS RD",
			housing: mappings.HousingCondo,
			want:    "5757 CHEVIOT HILLS RD",
		},
		{
			name:    "letter-then-digit token moved",
			input:   "400 B7 VINE ST",
			housing: mappings.HousingUnit,
			want:    "400 VINE ST UNIT B7",
		},
		{
			name:    "too few tokens untouched",
			input:   "5757 1D RD",
			housing: mappings.HousingCondo,
			want:    "5757 1D RD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveLeadingUnitToken(tt.input, tt.housing)
			if got != tt.want {
				t.Errorf("MoveLeadingUnitToken(%q, %q) = %q, want %q",
					tt.input, tt.housing, got, tt.want)
			}
		})
	}
}
