package tags

import (
	"fmt"

	"github.com/jonathan/job-compare/internal/types"
)

// Registry maps tag ids to names. It is built once and never mutated.
type Registry struct {
	ordered []types.Tag
	byID    map[int]string
}

// New builds a registry from tags in load order.
// Ids must be positive and unique, names non-empty.
func New(list []types.Tag) (*Registry, error) {
	r := &Registry{
		ordered: make([]types.Tag, 0, len(list)),
		byID:    make(map[int]string, len(list)),
	}
	for _, t := range list {
		if t.ID <= 0 {
			return nil, fmt.Errorf("tag id must be positive, got %d", t.ID)
		}
		if t.Name == "" {
			return nil, fmt.Errorf("tag %d has an empty name", t.ID)
		}
		if _, dup := r.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tag id %d", t.ID)
		}
		r.byID[t.ID] = t.Name
		r.ordered = append(r.ordered, t)
	}
	return r, nil
}

// Name returns the display name for id.
func (r *Registry) Name(id int) (string, error) {
	name, ok := r.byID[id]
	if !ok {
		return "", &UnknownTagError{ID: id}
	}
	return name, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// All returns the tags in load order. The returned slice is a copy.
func (r *Registry) All() []types.Tag {
	out := make([]types.Tag, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// DisplayName returns the tag name, or "Unknown (id)" when the id is not registered.
func (r *Registry) DisplayName(id int) string {
	if name, err := r.Name(id); err == nil {
		return name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}
