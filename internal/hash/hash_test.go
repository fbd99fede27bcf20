package hash

import (
	"regexp"
	"testing"

	"github.com/hamilton-sales/internal/address"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestRecordKey(t *testing.T) {
	key := RecordKey("603-0A23-0254-00", "2024-03-15")

	if !hexRe.MatchString(key) {
		t.Fatalf("RecordKey produced %q, want 64 hex characters", key)
	}

	if again := RecordKey("603-0A23-0254-00", "2024-03-15"); again != key {
		t.Errorf("RecordKey not deterministic: %q vs %q", key, again)
	}

	if same := RecordKey(" 603-0A23-0254-00 ", "2024-03-15"); same != key {
		t.Errorf("RecordKey should ignore surrounding whitespace")
	}

	if other := RecordKey("603-0A23-0254-00", "2024-06-01"); other == key {
		t.Errorf("different transfer dates must yield different keys")
	}

	if other := RecordKey("603-0A23-0255-00", "2024-03-15"); other == key {
		t.Errorf("different parcels must yield different keys")
	}
}

func TestRowHash(t *testing.T) {
	amount := 250000
	row := address.Row{
		ParcelNumber: "603-0A23-0254-00",
		Address:      "1308 WILLIAM H TAFT RD",
		BBB:          "6 - 2 - 2 - 0",
		Use:          "510",
		TransferDate: "2024-03-15",
		Amount:       "$250,000.00",
	}
	parts := &address.Parts{
		AddressNumber: "1308",
		StreetName:    "WILLIAM H TAFT",
		AmountNum:     &amount,
	}

	base := RowHash(row, parts)
	if !hexRe.MatchString(base) {
		t.Fatalf("RowHash produced %q, want 64 hex characters", base)
	}

	if again := RowHash(row, parts); again != base {
		t.Errorf("RowHash not deterministic")
	}

	t.Run("raw field change changes hash", func(t *testing.T) {
		changed := row
		changed.YearBuilt = "1952"
		if RowHash(changed, parts) == base {
			t.Errorf("YearBuilt change did not change hash")
		}
	})

	t.Run("structured field change changes hash", func(t *testing.T) {
		altered := *parts
		altered.StreetNamePostType = "ROAD"
		if RowHash(row, &altered) == base {
			t.Errorf("post type change did not change hash")
		}
	})

	t.Run("numeric extra change changes hash", func(t *testing.T) {
		other := 275000
		altered := *parts
		altered.AmountNum = &other
		if RowHash(row, &altered) == base {
			t.Errorf("amount change did not change hash")
		}
	})

	t.Run("nil parts hashes as empty components", func(t *testing.T) {
		if RowHash(row, nil) != RowHash(row, &address.Parts{}) {
			t.Errorf("nil parts must hash like the zero value")
		}
	})
}
