package geocode

import (
	"context"
	"errors"
	"testing"
)

// fakeGeocoder resolves parcels listed in coords and fails or misses the
// rest, counting every external call.
type fakeGeocoder struct {
	coords map[string][2]float64
	errFor map[string]bool
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, addr, parcelNumber string) (Result, error) {
	f.calls++
	if f.errFor[parcelNumber] {
		return Result{}, errors.New("upstream unavailable")
	}
	if c, ok := f.coords[parcelNumber]; ok {
		lon, lat := c[0], c[1]
		return Result{Longitude: &lon, Latitude: &lat}, nil
	}
	return Result{}, nil
}

func TestEnricherRun(t *testing.T) {
	t.Run("resolvable targets complete in one pass", func(t *testing.T) {
		geocoder := &fakeGeocoder{coords: map[string][2]float64{
			"P1": {-84.51, 39.10},
			"P2": {-84.52, 39.11},
		}}
		enricher := NewEnricher(geocoder, NewCache(nil), 10, false)

		results, err := enricher.Run(context.Background(), []Target{
			{ParcelNumber: "P1", Address: "1308 WILLIAM H TAFT RD"},
			{ParcelNumber: "P2", Address: "915.5 ELM ST"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results, want 2", len(results))
		}
		if !results["P1"].Resolved() || !results["P2"].Resolved() {
			t.Errorf("expected both parcels resolved: %+v", results)
		}
		if geocoder.calls != 2 {
			t.Errorf("external calls = %d, want 2", geocoder.calls)
		}
	})

	t.Run("unresolvable targets stall out without spinning", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		cache := NewCache(nil)
		enricher := NewEnricher(geocoder, cache, 10, false)

		results, err := enricher.Run(context.Background(), []Target{
			{ParcelNumber: "P1", Address: "NO SUCH PLACE"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if results["P1"].Resolved() {
			t.Errorf("unresolvable parcel reported as resolved")
		}
		// First pass issues the lookup; the cached null result makes every
		// later pass a no-op until the stall counter halts the loop.
		if geocoder.calls != 1 {
			t.Errorf("external calls = %d, want 1", geocoder.calls)
		}
		if _, ok := cache.Get("P1"); !ok {
			t.Errorf("null result was not cached")
		}
	})

	t.Run("lookup errors are cached as null results", func(t *testing.T) {
		geocoder := &fakeGeocoder{errFor: map[string]bool{"P1": true}}
		cache := NewCache(nil)
		enricher := NewEnricher(geocoder, cache, 10, false)

		results, err := enricher.Run(context.Background(), []Target{
			{ParcelNumber: "P1", Address: "123 MAIN ST"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if results["P1"].Resolved() {
			t.Errorf("failed lookup reported as resolved")
		}
		if geocoder.calls != 1 {
			t.Errorf("external calls = %d, want 1", geocoder.calls)
		}
	})

	t.Run("cache hits never reach the geocoder", func(t *testing.T) {
		lon, lat := -84.51, 39.10
		cache := NewCache(nil)
		cache.Put("P1", Result{Longitude: &lon, Latitude: &lat})

		geocoder := &fakeGeocoder{}
		enricher := NewEnricher(geocoder, cache, 10, false)

		results, err := enricher.Run(context.Background(), []Target{
			{ParcelNumber: "P1", Address: "1308 WILLIAM H TAFT RD"},
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !results["P1"].Resolved() {
			t.Errorf("cached coordinates not returned")
		}
		if geocoder.calls != 0 {
			t.Errorf("external calls = %d, want 0", geocoder.calls)
		}
	})

	t.Run("cancellation aborts the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		geocoder := &fakeGeocoder{}
		enricher := NewEnricher(geocoder, NewCache(nil), 10, false)

		_, err := enricher.Run(ctx, []Target{{ParcelNumber: "P1", Address: "123 MAIN ST"}})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
		if geocoder.calls != 0 {
			t.Errorf("external calls = %d, want 0", geocoder.calls)
		}
	})
}
