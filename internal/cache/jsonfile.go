//go:build !bolt

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// SpeciesCacheFile maps species/form names to National Dex numbers
	SpeciesCacheFile = "species_cache.json"

	// VariantCacheFile maps species names to their variant form names
	VariantCacheFile = "variant_cache.json"
)

type fileStore struct {
	dir      string
	species  map[string]int
	variants map[string][]string
	dirty    bool
}

func openStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	s := &fileStore{
		dir:      dir,
		species:  make(map[string]int),
		variants: make(map[string][]string),
	}

	// A corrupt or truncated file falls back to an empty cache; it will be
	// rebuilt from the API and overwritten on the next flush.
	loadJSONFile(filepath.Join(dir, SpeciesCacheFile), &s.species)
	loadJSONFile(filepath.Join(dir, VariantCacheFile), &s.variants)

	return s, nil
}

func clearStore(dir string) error {
	for _, name := range []string{SpeciesCacheFile, VariantCacheFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove cache file %s: %w", name, err)
		}
	}

	return nil
}

func loadJSONFile(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	_ = json.Unmarshal(data, out)
}

func (s *fileStore) DexNumber(name string) (int, bool) {
	dex, ok := s.species[name]

	return dex, ok
}

func (s *fileStore) PutDexNumber(name string, dex int) {
	s.species[name] = dex
	s.dirty = true
}

func (s *fileStore) Variants(name string) ([]string, bool) {
	variants, ok := s.variants[name]

	return variants, ok
}

func (s *fileStore) PutVariants(name string, variants []string) {
	if variants == nil {
		variants = []string{}
	}

	s.variants[name] = variants
	s.dirty = true
}

func (s *fileStore) Len() (int, int) {
	return len(s.species), len(s.variants)
}

func (s *fileStore) Flush() error {
	if !s.dirty {
		return nil
	}

	if err := writeJSONFile(filepath.Join(s.dir, SpeciesCacheFile), s.species); err != nil {
		return err
	}

	if err := writeJSONFile(filepath.Join(s.dir, VariantCacheFile), s.variants); err != nil {
		return err
	}

	s.dirty = false

	return nil
}

func (s *fileStore) Close() error {
	return s.Flush()
}

func writeJSONFile(path string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode cache file %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file %s: %w", filepath.Base(path), err)
	}

	return nil
}
