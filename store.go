// FILE: lixenwraith/lightconfig/store.go
package lightconfig

import "fmt"

// Store is a keyed collection of variables. Keys are unique and never map
// to a nil variable.
//
// Store is not internally synchronized; it is meant to be mutated by a
// single owner goroutine.
type Store struct {
	vars map[string]*Variable
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{vars: make(map[string]*Variable)}
}

// Add stores v under key, replacing any variable already there.
func (s *Store) Add(key string, v *Variable) error {
	if v == nil {
		return fmt.Errorf("add %q: %w", key, ErrNilVariable)
	}
	s.vars[key] = v
	return nil
}

// Remove deletes and returns the variable stored under key
func (s *Store) Remove(key string) (*Variable, bool) {
	v, ok := s.vars[key]
	if ok {
		delete(s.vars, key)
	}
	return v, ok
}

// Get returns the variable stored under key
func (s *Store) Get(key string) (*Variable, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Has reports whether key is present
func (s *Store) Has(key string) bool {
	_, ok := s.vars[key]
	return ok
}

// Len returns the number of stored variables
func (s *Store) Len() int { return len(s.vars) }

// Keys returns all keys in sorted order
func (s *Store) Keys() []string { return keysOf(s.vars) }

// All returns every variable, ordered by key.
// Callers must not rely on the order beyond it being stable between calls.
func (s *Store) All() []*Variable {
	keys := s.Keys()
	vars := make([]*Variable, len(keys))
	for i, k := range keys {
		vars[i] = s.vars[k]
	}
	return vars
}

// ResetObservers clears every variable's observer set
func (s *Store) ResetObservers() {
	for _, v := range s.vars {
		v.ResetObservers()
	}
}

// ObserveAll registers o on every variable, in addition to existing
// observers. The returned map holds the registration id per key.
func (s *Store) ObserveAll(o Observer) map[string]ObserverID {
	ids := make(map[string]ObserverID, len(s.vars))
	for k, v := range s.vars {
		ids[k] = v.Observe(o)
	}
	return ids
}

// UnobserveAll removes registrations previously returned by ObserveAll
func (s *Store) UnobserveAll(ids map[string]ObserverID) {
	for k, id := range ids {
		if v, ok := s.vars[k]; ok {
			v.Unobserve(id)
		}
	}
}
