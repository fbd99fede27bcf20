package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the geocode cache as a single JSON object keyed by
// parcel number, matching the cache file layout earlier runs produced.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the cache file. A missing file is an empty cache, not an error.
func (s *FileStore) Load(ctx context.Context) (map[string]Result, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]Result{}, nil
		}
		return nil, fmt.Errorf("read geocode cache %s: %w", s.path, err)
	}

	entries := map[string]Result{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse geocode cache %s: %w", s.path, err)
	}
	return entries, nil
}

// Flush writes the cache file, creating parent directories as needed.
func (s *FileStore) Flush(ctx context.Context, entries map[string]Result) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create geocode cache dir: %w", err)
		}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode geocode cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write geocode cache %s: %w", s.path, err)
	}
	return nil
}
