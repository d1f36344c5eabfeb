// Package status tracks timed effects attached to piece identities.
package status

import (
	"github.com/lgbarn/manachess-go/internal/registry"
)

// Kind identifies a status effect.
type Kind int

const (
	// Rooted pieces may be selected but have no legal targets.
	Rooted Kind = iota
	// Shielded pieces absorb the next capture against them.
	Shielded
)

// String returns the display name of the status.
func (k Kind) String() string {
	switch k {
	case Rooted:
		return "Rooted"
	case Shielded:
		return "Shielded"
	default:
		return "Unknown"
	}
}

// Status is one effect, active until turn ExpiresOnTurn begins.
type Status struct {
	Kind          Kind
	ExpiresOnTurn int
}

// Store holds the statuses of every identity. A Store is never modified
// after construction; every operation returns a new one.
type Store struct {
	byID map[registry.ID][]Status
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[registry.ID][]Status)}
}

// Add appends a status to an identity. An identity may carry several.
func (s *Store) Add(id registry.ID, st Status) *Store {
	next := s.clone()
	list := append([]Status(nil), next.byID[id]...)
	next.byID[id] = append(list, st)
	return next
}

// Has reports whether the identity carries a status of the given kind.
func (s *Store) Has(id registry.ID, kind Kind) bool {
	for _, st := range s.byID[id] {
		if st.Kind == kind {
			return true
		}
	}
	return false
}

// Of returns the statuses of an identity.
func (s *Store) Of(id registry.ID) []Status {
	return append([]Status(nil), s.byID[id]...)
}

// RemoveExpired keeps only statuses with ExpiresOnTurn after turn and drops
// identities left with none.
func (s *Store) RemoveExpired(turn int) *Store {
	next := NewStore()
	for id, list := range s.byID {
		var kept []Status
		for _, st := range list {
			if st.ExpiresOnTurn > turn {
				kept = append(kept, st)
			}
		}
		if len(kept) > 0 {
			next.byID[id] = kept
		}
	}
	return next
}

// ConsumeOne removes the first status of the given kind from the identity.
// The store is returned unchanged if there is none.
func (s *Store) ConsumeOne(id registry.ID, kind Kind) *Store {
	list := s.byID[id]
	for i, st := range list {
		if st.Kind != kind {
			continue
		}
		next := s.clone()
		rest := make([]Status, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		if len(rest) == 0 {
			delete(next.byID, id)
		} else {
			next.byID[id] = rest
		}
		return next
	}
	return s
}

// Prune drops every identity for which alive returns false.
func (s *Store) Prune(alive func(registry.ID) bool) *Store {
	next := NewStore()
	for id, list := range s.byID {
		if alive(id) {
			next.byID[id] = list
		}
	}
	return next
}

// IDs returns the identities that carry at least one status.
func (s *Store) IDs() []registry.ID {
	ids := make([]registry.ID, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of identities with statuses.
func (s *Store) Len() int {
	return len(s.byID)
}

func (s *Store) clone() *Store {
	next := &Store{byID: make(map[registry.ID][]Status, len(s.byID))}
	for id, list := range s.byID {
		next.byID[id] = list
	}
	return next
}
