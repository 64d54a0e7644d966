// Package jsonfile persists an entity collection as a single pretty-printed
// JSON array, rewritten whole on every save. Writes use the temp-file,
// fsync, rename pattern so a crash never leaves a partially written file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vkotliar/realty/pkg/types"
)

// Persister loads and saves one entity collection from a single JSON file.
type Persister[T any] struct {
	path string
}

// New returns a Persister backed by the given file path. The file is not
// touched until the first Load or Save.
func New[T any](path string) *Persister[T] {
	return &Persister[T]{path: path}
}

// Path returns the backing file path.
func (p *Persister[T]) Path() string { return p.path }

// Load reads the backing file and decodes the collection. A missing file
// yields an empty collection; a malformed file is a persistence failure.
func (p *Persister[T]) Load() ([]T, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, types.NewPersistence(fmt.Sprintf("read %s", p.path), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, types.NewPersistence(fmt.Sprintf("decode %s", p.path), err)
	}
	return items, nil
}

// Save serializes the whole collection and atomically replaces the backing
// file. A nil collection is written as an empty array.
func (p *Persister[T]) Save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return types.NewPersistence(fmt.Sprintf("encode %s", p.path), err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.NewPersistence(fmt.Sprintf("create %s", dir), err)
	}
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return types.NewPersistence("create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.NewPersistence("write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return types.NewPersistence("sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return types.NewPersistence("close temp file", err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		os.Remove(tmpName)
		return types.NewPersistence(fmt.Sprintf("rename to %s", p.path), err)
	}
	return nil
}
