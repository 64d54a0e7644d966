// Package store implements the generic persisted entity collection.
// A Store owns the in-memory records of one entity type, assigns integer
// identities, and rewrites the whole collection through its Persister on
// every mutation.
package store

import (
	"sync"

	"github.com/vkotliar/realty/pkg/types"
)

// Record is the capability every stored entity type must provide:
// a gettable/settable integer identity, resolved at compile time.
type Record interface {
	GetID() int
	SetID(id int)
}

// Persister is the narrow load/save interface the Store persists through.
// Implementations rewrite the entire collection on Save so the backing
// representation never exposes a partial write.
type Persister[T any] interface {
	Load() ([]T, error)
	Save(items []T) error
}

// Store is a durable collection of one entity type. T is a pointer entity
// type (e.g. *types.Client). The mutex is held for the whole
// load-mutate-persist span of each mutation, so a Store is safe to share
// even though the tool itself runs single-session.
type Store[T Record] struct {
	mu        sync.RWMutex
	persister Persister[T]
	items     []T
	nextID    int
}

// New loads the collection from the persister and seeds the identity
// counter at max(existing ids)+1, or 1 for an empty collection. A missing
// backing file is an empty collection; a malformed one is a hard error.
//
// The counter only ever advances after that, so identities are never
// reused even when the highest record is deleted.
func New[T Record](p Persister[T]) (*Store[T], error) {
	items, err := p.Load()
	if err != nil {
		return nil, err
	}
	next := 1
	for _, item := range items {
		if item.GetID() >= next {
			next = item.GetID() + 1
		}
	}
	return &Store[T]{persister: p, items: items, nextID: next}, nil
}

// GetAll returns a snapshot slice of all records. The slice is a copy;
// the records themselves are shared, and edits to them are not durable
// until passed back through Update.
func (s *Store[T]) GetAll() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// GetByID returns the record with the given identity, or false when no
// such record exists. Lookup never fails.
func (s *Store[T]) GetByID(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Count returns the number of records in the collection.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Add assigns the next identity to the record, appends it, and persists
// the collection. The record is returned with its identity set. When the
// persister fails, the collection is left unchanged but the identity
// counter has still advanced.
func (s *Store[T]) Add(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.SetID(s.nextID)
	s.nextID++

	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, item)

	if err := s.persister.Save(next); err != nil {
		var zero T
		return zero, err
	}
	s.items = next
	return item, nil
}

// Update replaces the record with the same identity in place, keeping its
// position, and persists. Returns a not-found error when the identity is
// absent; the collection is untouched in that case.
func (s *Store[T]) Update(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.items {
		if existing.GetID() == item.GetID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.NewNotFound("record", item.GetID())
	}

	next := make([]T, len(s.items))
	copy(next, s.items)
	next[idx] = item

	if err := s.persister.Save(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Delete removes the record with the given identity and persists the
// remaining collection. Deleting an absent identity is a no-op.
func (s *Store[T]) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.items {
		if existing.GetID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)

	if err := s.persister.Save(next); err != nil {
		return err
	}
	s.items = next
	return nil
}
