// Package store keeps the in-memory checklist model and moves it across the
// Location boundary. The store never patches single parameters: Save rebuilds
// the whole query from the model every time.
package store

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/urlstate"
)

// Store is the model of all lists, in display order.
type Store struct {
	loc   Location
	lists []model.List

	// Parameters that are not part of any list family this store owns. They
	// are carried through Save untouched.
	extra urlstate.Query
	// Numbers of lists removed since Load; their families are scrubbed from
	// the query on Save.
	removed map[int]bool
}

// New returns an empty store bound to loc. Call Load to read it.
func New(loc Location) *Store {
	return &Store{loc: loc, removed: map[int]bool{}}
}

// Load replaces the model with what the location currently holds.
func (s *Store) Load() error {
	raw, err := s.loc.Query()
	if err != nil {
		return fmt.Errorf("read location: %w", err)
	}
	q := urlstate.ParseQuery(raw)
	s.lists = urlstate.Decode(q)
	s.removed = map[int]bool{}
	s.extra = nil
	owned := s.numberSet()
	for _, p := range q {
		if n, _, ok := urlstate.ParseKey(p.Key); ok && owned[n] {
			continue
		}
		s.extra = append(s.extra, p)
	}
	return nil
}

// Save writes the full model back to the location.
func (s *Store) Save() error {
	if err := s.loc.Replace(s.Query().String()); err != nil {
		return fmt.Errorf("replace location: %w", err)
	}
	return nil
}

// Query is the query string Save would write: foreign parameters first, in
// their original order, then every list family in display order.
func (s *Store) Query() urlstate.Query {
	owned := s.numberSet()
	var q urlstate.Query
	for _, p := range s.extra {
		if n, _, ok := urlstate.ParseKey(p.Key); ok && (owned[n] || s.removed[n]) {
			continue
		}
		q = append(q, p)
	}
	return append(q, urlstate.EncodeAll(s.lists)...)
}

// Lists returns a copy of every list in display order.
func (s *Store) Lists() []model.List {
	out := make([]model.List, len(s.lists))
	for i, l := range s.lists {
		out[i] = l.Clone()
	}
	return out
}

// Len is the number of lists.
func (s *Store) Len() int { return len(s.lists) }

// List returns the list with number n for in-place mutation. The pointer is
// only valid until the next structural change (Append, Remove, MoveList).
func (s *Store) List(n int) (*model.List, bool) {
	i := s.Index(n)
	if i < 0 {
		return nil, false
	}
	return &s.lists[i], true
}

// At returns the list at display index i.
func (s *Store) At(i int) (*model.List, bool) {
	if i < 0 || i >= len(s.lists) {
		return nil, false
	}
	return &s.lists[i], true
}

// Index is the display index of list n, or -1.
func (s *Store) Index(n int) int {
	return slices.IndexFunc(s.lists, func(l model.List) bool { return l.Number == n })
}

// Numbers returns the list numbers in display order.
func (s *Store) Numbers() []int {
	out := make([]int, len(s.lists))
	for i, l := range s.lists {
		out[i] = l.Number
	}
	return out
}

// NextNumber proposes the number for a new list. Numbers of lists removed
// since Load count as taken, so a freed number is not handed out again in
// the same session. A fresh Load forgets them: front ends that load per call
// (the CLI, the HTTP handlers) may reuse the highest freed number.
func (s *Store) NextNumber() int {
	taken := s.Numbers()
	for n := range s.removed {
		taken = append(taken, n)
	}
	return model.NextListNumber(taken)
}

// Append adds l after the last list.
func (s *Store) Append(l model.List) {
	delete(s.removed, l.Number)
	s.lists = append(s.lists, l)
}

// Remove drops list n from the model and marks its parameters for scrubbing.
func (s *Store) Remove(n int) bool {
	i := s.Index(n)
	if i < 0 {
		return false
	}
	s.lists = slices.Delete(s.lists, i, i+1)
	s.removed[n] = true
	return true
}

// MoveList moves list n so it sits right before the list currently at
// display index slot; slot == Len() moves it to the end. It reports false
// when the move would leave the order unchanged.
func (s *Store) MoveList(n, slot int) bool {
	i := s.Index(n)
	if i < 0 || slot < 0 || slot > len(s.lists) || slot == i || slot == i+1 {
		return false
	}
	l := s.lists[i]
	s.lists = slices.Delete(s.lists, i, i+1)
	if slot > i {
		slot--
	}
	s.lists = slices.Insert(s.lists, slot, l)
	return true
}

func (s *Store) numberSet() map[int]bool {
	set := make(map[int]bool, len(s.lists))
	for _, l := range s.lists {
		set[l.Number] = true
	}
	return set
}
