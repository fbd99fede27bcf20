package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hamilton-sales/internal/address"
	"github.com/hamilton-sales/internal/geocode"
)

// splitTagger is a minimal deterministic tagger: first token is the address
// number, the rest is street name.
type splitTagger struct{}

func (splitTagger) Tag(addr string) (map[string]string, error) {
	tokens := strings.Fields(addr)
	tagged := map[string]string{}
	if len(tokens) > 0 {
		tagged[address.CompAddressNumber] = tokens[0]
	}
	if len(tokens) > 1 {
		tagged[address.CompStreetName] = strings.Join(tokens[1:], " ")
	}
	return tagged, nil
}

func TestResolveRows(t *testing.T) {
	p := New(splitTagger{}, false)

	rows := []address.Row{
		{
			ParcelNumber: "603-0A23-0254-00",
			Address:      "1308 WILLIAM H TAFT RD",
			TransferDate: "2024-03-15",
			Amount:       "$250,000.00",
		},
		{
			ParcelNumber: "603-0A23-0254-00",
			Address:      "",
			TransferDate: "2021-07-01",
		},
	}

	records := p.ResolveRows(rows)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	good := records[0]
	if good.Parts == nil {
		t.Fatalf("parseable row produced nil parts: %v", good.Issues)
	}
	if good.Parts.AddressNumber != "1308" {
		t.Errorf("AddressNumber = %q, want 1308", good.Parts.AddressNumber)
	}
	if good.RecordKey == "" || good.RowHash == "" {
		t.Errorf("missing digests: key=%q hash=%q", good.RecordKey, good.RowHash)
	}
	if good.Parts.RecordKey != good.RecordKey {
		t.Errorf("parts record key %q != record key %q", good.Parts.RecordKey, good.RecordKey)
	}

	bad := records[1]
	if bad.Parts != nil {
		t.Errorf("empty address produced parts: %+v", bad.Parts)
	}
	if len(bad.Issues) == 0 {
		t.Errorf("empty address produced no issue")
	}
	if bad.RecordKey == "" || bad.RowHash == "" {
		t.Errorf("unparseable rows must still carry digests")
	}

	// Same parcel, different transfer dates: distinct sale events.
	if good.RecordKey == bad.RecordKey {
		t.Errorf("records with different transfer dates share a record key")
	}
}

func TestGeocodeTargets(t *testing.T) {
	records := []Record{
		{Raw: address.Row{ParcelNumber: "P1", Address: "1308 WILLIAM H TAFT RD"}},
		{Raw: address.Row{ParcelNumber: "P1", Address: "1308 WILLIAM H TAFT RD"}},
		{Raw: address.Row{ParcelNumber: "P2", Address: "915 1/2 ELM ST (REAR)"}},
		{Raw: address.Row{ParcelNumber: ""}},
	}

	targets := GeocodeTargets(records)
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}
	if targets[0].ParcelNumber != "P1" || targets[1].ParcelNumber != "P2" {
		t.Errorf("targets = %+v", targets)
	}
	if targets[1].Address != "915.5 ELM ST" {
		t.Errorf("query address = %q, want precleaned form", targets[1].Address)
	}
}

func TestApplyGeocodes(t *testing.T) {
	lon, lat := -84.51, 39.10
	records := []Record{
		{Raw: address.Row{ParcelNumber: "P1"}},
		{Raw: address.Row{ParcelNumber: "P2"}},
	}
	results := map[string]geocode.Result{
		"P1": {Longitude: &lon, Latitude: &lat},
	}

	records = ApplyGeocodes(records, results)
	if !records[0].Geo.Resolved() {
		t.Errorf("P1 did not receive its coordinates")
	}
	if records[1].Geo.Resolved() {
		t.Errorf("P2 received coordinates it never had")
	}
}

func TestReadSalesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	csvData := strings.Join([]string{
		`Parcel Number,Address,BBB,FinSqFt,Use,Year Built,Transfer Date,Amount`,
		`603-0A23-0254-00,1308 WILLIAM H TAFT RD,6 - 2 - 2 - 0,1850,510,1910,2024-03-15,"$250,000.00"`,
		`077-0001-0099-00,4951 305 N ARBOR WOODS CT,,,550,,2024-04-02,"$180,000.00"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadSalesCSV(false, path)
	if err != nil {
		t.Fatalf("ReadSalesCSV() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ParcelNumber != "603-0A23-0254-00" {
		t.Errorf("ParcelNumber = %q", rows[0].ParcelNumber)
	}
	if rows[0].Amount != "$250,000.00" {
		t.Errorf("Amount = %q", rows[0].Amount)
	}
	if rows[1].Use != "550" {
		t.Errorf("Use = %q", rows[1].Use)
	}

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := ReadSalesCSV(false, filepath.Join(t.TempDir(), "nope.csv")); err == nil {
			t.Errorf("expected error for missing file")
		}
	})
}
