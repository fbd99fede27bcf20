// Package pipeline orchestrates address resolution over scraped sale rows:
// preclean, disambiguate, tag, normalize, hash.
package pipeline

import (
	"github.com/hamilton-sales/internal/address"
	"github.com/hamilton-sales/internal/debug"
	"github.com/hamilton-sales/internal/geocode"
	"github.com/hamilton-sales/internal/hash"
)

// Record is one fully processed sale row: the raw input, the structured
// address (nil when unparseable), the identity and change digests, and the
// geocode outcome once enrichment has run.
type Record struct {
	Raw       address.Row
	Parts     *address.Parts
	Issues    []string
	RecordKey string
	RowHash   string
	Geo       geocode.Result
}

// QueryAddress is the address string used for geocode lookups: the cleaned
// raw address.
func (r Record) QueryAddress() string {
	return address.Preclean(r.Raw.Address)
}

// Pipeline resolves raw rows into records ready for upsert and enrichment.
type Pipeline struct {
	resolver *address.Resolver
	debug    bool
}

// New creates a pipeline over the given tagging capability.
func New(tagger address.Tagger, debugEnabled bool) *Pipeline {
	return &Pipeline{resolver: address.NewResolver(tagger), debug: debugEnabled}
}

// ResolveRows processes every row independently: a row that fails to parse
// yields a Record with nil Parts and its issue strings, never an error.
// Hashes are computed for every row, parsed or not, so unparseable rows
// still upsert idempotently.
func (p *Pipeline) ResolveRows(rows []address.Row) []Record {
	defer debug.DebugTiming(p.debug, "address resolution")()

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, p.resolveRow(row))
	}

	parsed := 0
	for _, r := range records {
		if r.Parts != nil {
			parsed++
		}
	}
	debug.DebugOutput(p.debug, "resolved %d/%d rows", parsed, len(records))

	return records
}

func (p *Pipeline) resolveRow(row address.Row) Record {
	parts, issues := p.resolver.Resolve(row)
	if parts != nil {
		normalized := address.Normalize(*parts)
		parts = &normalized
	}

	rec := Record{
		Raw:       row,
		Parts:     parts,
		Issues:    issues,
		RecordKey: hash.RecordKey(row.ParcelNumber, row.TransferDate),
	}
	rec.RowHash = hash.RowHash(row, parts)
	if parts != nil {
		parts.RecordKey = rec.RecordKey
		parts.RowHash = rec.RowHash
	}
	return rec
}

// GeocodeTargets lists the records to enrich, one target per parcel.
// Duplicate parcels (multiple sales) collapse to a single target since the
// cache is keyed by parcel.
func GeocodeTargets(records []Record) []geocode.Target {
	seen := map[string]bool{}
	var targets []geocode.Target
	for _, r := range records {
		parcel := r.Raw.ParcelNumber
		if parcel == "" || seen[parcel] {
			continue
		}
		seen[parcel] = true
		targets = append(targets, geocode.Target{
			ParcelNumber: parcel,
			Address:      r.QueryAddress(),
		})
	}
	return targets
}

// ApplyGeocodes copies enrichment results onto their records.
func ApplyGeocodes(records []Record, results map[string]geocode.Result) []Record {
	for i := range records {
		if res, ok := results[records[i].Raw.ParcelNumber]; ok {
			records[i].Geo = res
		}
	}
	return records
}
