package catalog

import "sync/atomic"

// Store holds the live catalog. Readers take a snapshot with Load; a reload
// builds a complete catalog elsewhere and publishes it with Swap.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore returns a store publishing c.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Load returns the current catalog snapshot.
func (s *Store) Load() *Catalog {
	return s.current.Load()
}

// Swap publishes next and returns the previous catalog.
func (s *Store) Swap(next *Catalog) *Catalog {
	return s.current.Swap(next)
}
