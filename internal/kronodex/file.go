package kronodex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk shape of a saved collection.
type fileFormat struct {
	Items []Entry `yaml:"items"`
}

// Load reads a collection file into a fresh store. A missing file yields an
// empty store, so first runs need no setup.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read kronodex file: %w", err)
	}

	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse kronodex file: %w", err)
	}

	store := New()
	for _, item := range file.Items {
		if err := store.Add(item); err != nil {
			// Duplicate rows in the file collapse to the first occurrence.
			continue
		}
	}
	return store, nil
}

// Save writes the collection to path as YAML.
func Save(store *Store, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create kronodex directory: %w", err)
		}
	}

	data, err := yaml.Marshal(fileFormat{Items: store.Items()})
	if err != nil {
		return fmt.Errorf("failed to marshal kronodex: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write kronodex file: %w", err)
	}
	return nil
}
