package geocode

import (
	"context"
	"log"

	"github.com/hamilton-sales/internal/debug"
)

// Target is one row needing coordinates.
type Target struct {
	ParcelNumber string
	Address      string
}

// Enricher runs the geocode enrichment loop: batches of pending parcels,
// cache-first lookups, and stall detection so permanently unresolvable
// addresses cannot spin the loop forever.
type Enricher struct {
	geocoder  Geocoder
	cache     *Cache
	batchSize int
	debug     bool
}

// NewEnricher wires an enrichment loop over the given geocoder and cache.
func NewEnricher(geocoder Geocoder, cache *Cache, batchSize int, debugEnabled bool) *Enricher {
	if batchSize <= 0 {
		batchSize = 10
	}
	return &Enricher{geocoder: geocoder, cache: cache, batchSize: batchSize, debug: debugEnabled}
}

// Run geocodes every target until all are resolved or progress stalls for
// two consecutive passes. It returns the lookup outcome per parcel,
// including all-null results for unresolvable addresses. Per-row failures
// are logged and cached as null results; only cancellation aborts the loop.
func (e *Enricher) Run(ctx context.Context, targets []Target) (map[string]Result, error) {
	defer debug.DebugTiming(e.debug, "geocode enrichment")()

	results := make(map[string]Result, len(targets))
	stalls := 0

	for {
		pending := e.pending(targets, results)
		if len(pending) == 0 {
			break
		}
		debug.DebugOutput(e.debug, "remaining to geocode: %d parcels", len(pending))

		before := len(pending)
		for start := 0; start < len(pending); start += e.batchSize {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			end := start + e.batchSize
			if end > len(pending) {
				end = len(pending)
			}
			for _, t := range pending[start:end] {
				results[t.ParcelNumber] = e.lookup(ctx, t)
			}
		}

		after := len(e.pending(targets, results))
		if after == before {
			stalls++
			if stalls >= 2 {
				log.Printf("geocoding stalled with %d unresolved parcels; exiting loop", after)
				break
			}
		} else {
			stalls = 0
		}
	}

	return results, nil
}

// pending returns the targets still lacking coordinates, preserving order.
func (e *Enricher) pending(targets []Target, results map[string]Result) []Target {
	var out []Target
	for _, t := range targets {
		if r, ok := results[t.ParcelNumber]; !ok || !r.Resolved() {
			out = append(out, t)
		}
	}
	return out
}

// lookup is cache-first: a hit never re-issues an external call, even for a
// cached null result. Failures become cached null results so the same
// failing address is not hammered on later passes or runs.
func (e *Enricher) lookup(ctx context.Context, t Target) Result {
	if r, ok := e.cache.Get(t.ParcelNumber); ok {
		return r
	}

	r, err := e.geocoder.Geocode(ctx, t.Address, t.ParcelNumber)
	if err != nil {
		log.Printf("geocoding error for parcel %s: %v", t.ParcelNumber, err)
		r = Result{}
	}
	e.cache.Put(t.ParcelNumber, r)
	return r
}
