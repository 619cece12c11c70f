package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pixil98/go-errors"
)

// FileStore loads every *.json asset found under a directory. It is read
// once at construction and not modified afterwards.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[string]T
}

// NewFileStore loads the assets under path. Problems with individual
// assets are collected into the returned error; the store still holds
// every asset that loaded cleanly.
func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[string]T{},
	}

	err := s.load()
	if err != nil {
		return s, err
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	var paths []string
	err := filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() && filepath.Ext(path) == ".json" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", s.path, err)
	}
	sort.Strings(paths)

	el := errors.NewErrorList()
	origins := make(map[string]string, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)

		asset, err := s.loadAsset(path)
		if err != nil {
			el.Add(fmt.Errorf("loading %s: %w", name, err))
			continue
		}

		err = asset.Validate()
		if err != nil {
			el.Add(fmt.Errorf("validating %s: %w", name, err))
			continue
		}

		// Error if the key is already in use
		if prev, ok := origins[asset.Id()]; ok {
			el.Add(fmt.Errorf("duplicate key %q in %s and %s", asset.Id(), prev, name))
			continue
		}

		origins[asset.Id()] = name
		s.records[asset.Id()] = asset.Spec
	}

	return el.Err()
}

// GetAll returns a copy of every loaded record keyed by asset id.
func (s *FileStore[T]) GetAll() map[string]T {
	vals := map[string]T{}
	for id, v := range s.records {
		vals[id] = v
	}

	return vals
}

func (s *FileStore[T]) loadAsset(path string) (*Asset[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	asset := &Asset[T]{}
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	err = dec.Decode(asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
