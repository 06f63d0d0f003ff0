// Package dragdrop turns drag gestures over the list document into moves.
// It owns only hover state; moves go through the engine, which persists
// them.
package dragdrop

import (
	"github.com/idilsaglam/checklist/internal/engine"
	"github.com/idilsaglam/checklist/internal/store"
)

// Coordinator resolves hover and drop targets against the current model.
type Coordinator struct {
	eng    *engine.Engine
	hl     Highlighter
	marker Marker
}

// New returns a coordinator. hl may be nil when nothing draws markers.
func New(eng *engine.Engine, hl Highlighter) *Coordinator {
	return &Coordinator{eng: eng, hl: hl}
}

// Marker is the marker currently shown.
func (c *Coordinator) Marker() Marker { return c.marker }

// Hover recomputes the marker for src over target. Every previous marker is
// cleared first, so at most one is visible.
func (c *Coordinator) Hover(src Source, over Target) Marker {
	c.Leave()
	m := Resolve(c.eng.Store(), src, over)
	c.marker = m
	if c.hl != nil && !m.None() {
		c.hl.ShowMarker(m)
	}
	return m
}

// Leave clears the marker, e.g. when the drag leaves every drop zone.
func (c *Coordinator) Leave() {
	c.marker = Marker{}
	if c.hl != nil {
		c.hl.ClearMarkers()
	}
}

// Drop performs the move src over target resolves to. Targets that resolve
// to no marker are no-ops and write nothing.
func (c *Coordinator) Drop(src Source, over Target) (bool, error) {
	s := c.eng.Store()
	m := Resolve(s, src, over)
	c.Leave()
	if m.None() {
		return false, nil
	}

	if src.Kind == DragList {
		return c.eng.MoveList(src.List, m.Slot)
	}
	switch m.Kind {
	case MarkerBeforeItem:
		return c.eng.MoveItem(src.List, src.Position, m.List, m.Position)
	case MarkerAfterContainer:
		return c.eng.MoveItem(src.List, src.Position, m.List, 0)
	case MarkerPlaceholder:
		dst, ok := s.List(m.List)
		if !ok {
			return false, nil
		}
		before := 1
		if dst.Empty() {
			before = 0
		}
		return c.eng.MoveItem(src.List, src.Position, m.List, before)
	}
	return false, nil
}

// Resolve computes where src would land over target without touching any
// state.
func Resolve(s *store.Store, src Source, over Target) Marker {
	switch src.Kind {
	case DragList:
		return resolveList(s, src, over)
	case DragItem:
		return resolveItem(s, src, over)
	}
	return Marker{}
}

func resolveList(s *store.Store, src Source, over Target) Marker {
	i := s.Index(src.List)
	if i < 0 {
		return Marker{}
	}
	slot := over.Slot
	if over.Kind != OverPlaceholder {
		// Anywhere inside a list block means "before that block".
		slot = s.Index(over.List)
		if slot < 0 {
			return Marker{}
		}
	}
	if slot < 0 || slot > s.Len() || slot == i || slot == i+1 {
		return Marker{}
	}
	m := Marker{Kind: MarkerPlaceholder, Slot: slot}
	if l, ok := s.At(slot); ok {
		m.List = l.Number
	}
	return m
}

func resolveItem(s *store.Store, src Source, over Target) Marker {
	from, ok := s.List(src.List)
	if !ok || src.Position < 1 || src.Position > len(from.Items) {
		return Marker{}
	}
	last := src.Position == len(from.Items)

	switch over.Kind {
	case OverItem:
		l, ok := s.List(over.List)
		if !ok || over.Position < 1 || over.Position > len(l.Items) {
			return Marker{}
		}
		if over.List == src.List && (over.Position == src.Position || over.Position == src.Position+1) {
			return Marker{}
		}
		return Marker{Kind: MarkerBeforeItem, List: over.List, Position: over.Position}

	case OverContainer, OverList:
		l, ok := s.List(over.List)
		if !ok {
			return Marker{}
		}
		if l.Empty() {
			return firstOf(s, s.Index(over.List), src)
		}
		if over.List == src.List && last {
			return Marker{}
		}
		return Marker{Kind: MarkerAfterContainer, List: over.List}

	case OverPlaceholder:
		return firstOf(s, over.Slot, src)
	}
	return Marker{}
}

// firstOf targets "first item of the list following placeholder slot".
func firstOf(s *store.Store, slot int, src Source) Marker {
	l, ok := s.At(slot)
	if !ok {
		return Marker{}
	}
	if l.Number == src.List && src.Position == 1 {
		return Marker{}
	}
	return Marker{Kind: MarkerPlaceholder, Slot: slot, List: l.Number}
}
