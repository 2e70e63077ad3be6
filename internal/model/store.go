package model

// Store is the in-memory authoritative list of works for the session.
//
// It is created empty at bootstrap, populated once from the initial fetch, then
// mutated in place by create/delete for the rest of the session. Order is
// insertion/fetch order; created works are appended, never sorted. All mutation
// happens from the UI goroutine (Bubble Tea's update loop), so there is no
// locking here; the contract is "mutate, then re-render both galleries" within
// one update step.
type Store struct {
	works []Work
}

// NewStore returns a store seeded with the given works (typically the initial
// fetch result).
func NewStore(works []Work) *Store {
	s := &Store{}
	s.Reset(works)
	return s
}

// Reset replaces the whole store content, keeping the given order.
func (s *Store) Reset(works []Work) {
	s.works = append(s.works[:0:0], works...)
}

// Append adds a work at the end; used after a successful create.
func (s *Store) Append(w Work) {
	s.works = append(s.works, w)
}

// RemoveByID removes the work with the given id and reports whether it was
// present. An absent id is a benign no-op, not an error: a delete can race a
// concurrent refresh, and REST DELETE is idempotent.
func (s *Store) RemoveByID(id int64) bool {
	for i, w := range s.works {
		if w.ID == id {
			s.works = append(s.works[:i], s.works[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns the stored work with the given id.
func (s *Store) FindByID(id int64) (Work, bool) {
	for _, w := range s.works {
		if w.ID == id {
			return w, true
		}
	}
	return Work{}, false
}

// Works returns a copy of the current content in store order. Renderers and
// filters operate on the copy so a later mutation cannot shift a slice they
// are still holding.
func (s *Store) Works() []Work {
	out := make([]Work, len(s.works))
	copy(out, s.works)
	return out
}

// Len returns the number of stored works.
func (s *Store) Len() int {
	return len(s.works)
}
