package address

import (
	"testing"

	"github.com/hamilton-sales/internal/mappings"
)

func TestDetectAddressRange(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		housing  mappings.HousingType
		wantLow  string
		wantHigh string
		wantAddr string
		wantType RangeType
	}{
		{
			name:     "ascending pair becomes range",
			input:    "1308 1310 WILLIAM H TAFT RD",
			housing:  mappings.HousingNone,
			wantLow:  "1308",
			wantHigh: "1310",
			wantAddr: "1308 WILLIAM H TAFT RD",
			wantType: RangeRange,
		},
		{
			name:     "hyphenated pair becomes range",
			input:    "1308-1310 WILLIAM H TAFT RD",
			housing:  mappings.HousingNone,
			wantLow:  "1308",
			wantHigh: "1310",
			wantAddr: "1308 WILLIAM H TAFT RD",
			wantType: RangeRange,
		},
		{
			name:     "ascending pair on apartment building is a unit",
			input:    "1308 1310 WILLIAM H TAFT RD",
			housing:  mappings.HousingApt,
			wantLow:  "1308",
			wantHigh: "",
			wantAddr: "1308 WILLIAM H TAFT RD APT 1310",
			wantType: RangeApt,
		},
		{
			name:     "descending pair on condo is a unit",
			input:    "4951 305 N ARBOR WOODS CT",
			housing:  mappings.HousingCondo,
			wantLow:  "4951",
			wantHigh: "",
			wantAddr: "4951 N ARBOR WOODS CT UNIT 305",
			wantType: RangeUnit,
		},
		{
			name:     "wide gap with plausible unit number on unit housing",
			input:    "100 4500 MAIN ST",
			housing:  mappings.HousingUnit,
			wantLow:  "100",
			wantHigh: "",
			wantAddr: "100 MAIN ST UNIT 4500",
			wantType: RangeUnit,
		},
		{
			name:     "descending pair on single family is unknown",
			input:    "4951 305 N ARBOR WOODS CT",
			housing:  mappings.HousingNone,
			wantLow:  "",
			wantHigh: "",
			wantAddr: "4951 305 N ARBOR WOODS CT",
			wantType: RangeUnknown,
		},
		{
			name:     "implausibly large second number is unknown",
			input:    "100 9999 MAIN ST",
			housing:  mappings.HousingUnit,
			wantLow:  "",
			wantHigh: "",
			wantAddr: "100 9999 MAIN ST",
			wantType: RangeUnknown,
		},
		{
			name:     "single number passes through",
			input:    "1308 WILLIAM H TAFT RD",
			housing:  mappings.HousingNone,
			wantLow:  "",
			wantHigh: "",
			wantAddr: "1308 WILLIAM H TAFT RD",
			wantType: RangeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, addr, rangeType := DetectAddressRange(tt.input, tt.housing)
			if low != tt.wantLow {
				t.Errorf("low = %q, want %q", low, tt.wantLow)
			}
			if high != tt.wantHigh {
				t.Errorf("high = %q, want %q", high, tt.wantHigh)
			}
			if addr != tt.wantAddr {
				t.Errorf("addr = %q, want %q", addr, tt.wantAddr)
			}
			if rangeType != tt.wantType {
				t.Errorf("rangeType = %q, want %q", rangeType, tt.wantType)
			}
		})
	}
}
