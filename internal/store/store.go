// Package store implements the flat-file persistence layer. Each
// collection lives in one JSON file holding a single array; every write
// rewrites the whole file. Writers are not coordinated beyond the
// atomicity of a same-directory rename: concurrent mutations are
// last-writer-wins.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// init creates the data directory and the collection file with an empty
// array on first access.
func (s *Store) init(collection string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	path := s.path(collection)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the whole collection file into v.
func (s *Store) Load(collection string, v interface{}) error {
	if err := s.init(collection); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		return fmt.Errorf("read %s: %w", collection, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", collection, err)
	}
	return nil
}

// Save overwrites the collection file with v, serialized with the same
// two-space indentation the original data files use. The temp-file
// rename keeps a single replace atomic; it does not serialize writers.
func (s *Store) Save(collection string, v interface{}) error {
	if err := s.init(collection); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", collection, err)
	}
	path := s.path(collection)
	tmp, err := os.CreateTemp(s.dir, collection+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}
