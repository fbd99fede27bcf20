package geocode

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is an empty cache", func(t *testing.T) {
		store := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
		entries, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("got %d entries, want 0", len(entries))
		}
	})

	t.Run("flush then load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "cache.json")
		store := NewFileStore(path)

		lon, lat := -84.51, 39.10
		city := "CINCINNATI"
		entries := map[string]Result{
			"603-0A23-0254-00": {Longitude: &lon, Latitude: &lat, APICity: &city},
			"077-0001-0099-00": {}, // cached null lookup
		}
		if err := store.Flush(ctx, entries); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(loaded) != 2 {
			t.Fatalf("got %d entries, want 2", len(loaded))
		}

		hit := loaded["603-0A23-0254-00"]
		if !hit.Resolved() {
			t.Errorf("resolved entry lost its coordinates: %+v", hit)
		}
		if hit.APICity == nil || *hit.APICity != "CINCINNATI" {
			t.Errorf("APICity = %v, want CINCINNATI", hit.APICity)
		}

		if loaded["077-0001-0099-00"].Resolved() {
			t.Errorf("null entry came back resolved")
		}
	})
}

func TestCacheLoadFlush(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "cache.json"))

	cache := NewCache(store)
	if err := cache.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	lon, lat := -84.51, 39.10
	cache.Put("P1", Result{Longitude: &lon, Latitude: &lat})
	cache.Put("P2", Result{})
	if err := cache.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	reloaded := NewCache(store)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() after flush error = %v", err)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded %d entries, want 2", reloaded.Len())
	}
	if r, ok := reloaded.Get("P1"); !ok || !r.Resolved() {
		t.Errorf("P1 = %+v ok=%v, want resolved hit", r, ok)
	}
	if r, ok := reloaded.Get("P2"); !ok || r.Resolved() {
		t.Errorf("P2 = %+v ok=%v, want cached null", r, ok)
	}
}
