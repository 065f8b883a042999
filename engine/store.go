package engine

import (
	"sync"

	"github.com/lixenwraith/shapecraft/core"
)

// AnyStore is the type-erased view used for whole-entity operations
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
	ClearAdded()
}

// Store is a generic container for one component type
// Iteration order is insertion order with swap-remove
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity
	added      map[core.Entity]struct{}
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 32),
		added:      make(map[core.Entity]struct{}),
	}
}

// Set inserts or overwrites the component for e
// Only a first insertion marks the component as added this tick
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
		s.added[e] = struct{}{}
	}
	s.components[e] = val
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Update applies fn to the stored value in place; false if e has no component
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	delete(s.added, e)
	for i, ent := range s.entities {
		if ent == e {
			last := len(s.entities) - 1
			s.entities[i] = s.entities[last]
			s.entities = s.entities[:last]
			break
		}
	}
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Added reports whether e's component was first inserted during the current tick
func (s *Store[T]) Added(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.added[e]
	return ok
}

// All returns a snapshot of entities holding this component
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
	s.added = make(map[core.Entity]struct{})
}

// ClearAdded drops the added-this-tick markers
func (s *Store[T]) ClearAdded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.added) > 0 {
		s.added = make(map[core.Entity]struct{})
	}
}
