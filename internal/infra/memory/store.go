// Package memory keeps salon records in process memory. Every read and write
// goes through a Store, which hands out copies only.
package memory

import "sync"

// Store is an id-indexed collection that remembers insertion order.
type Store[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T

	id    func(T) string
	clone func(T) T
}

func NewStore[T any](id func(T) string, clone func(T) T) *Store[T] {
	return &Store[T]{
		items: make(map[string]T),
		id:    id,
		clone: clone,
	}
}

// All returns copies of every record in insertion order.
func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.clone(s.items[id]))
	}
	return out
}

// Filter returns copies of the records keep accepts, in insertion order.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range s.order {
		if v := s.items[id]; keep(v) {
			out = append(out, s.clone(v))
		}
	}
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.clone(v), true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Put stores v. A new id is appended; an existing id is replaced in place.
func (s *Store[T]) Put(v T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.id(v)
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = s.clone(v)
	return s.clone(v)
}

// Mutate applies fn to the stored record and returns a copy of the result.
func (s *Store[T]) Mutate(id string, fn func(*T) error) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	v, ok := s.items[id]
	if !ok {
		return zero, false, nil
	}

	v = s.clone(v)
	if err := fn(&v); err != nil {
		return zero, true, err
	}
	s.items[id] = v
	return s.clone(v), true, nil
}

// Remove reports whether a record was removed.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
