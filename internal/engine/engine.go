// Package engine applies user actions to the checklist model, keeps the
// rendered view in step, and persists the result through the store.
//
// Every mutation follows the same order: update the model, tell the
// renderer, save the full query. Mutations return (changed, err): changed is
// false when the action was a no-op (unknown list, position out of range,
// nothing to move), err only reports a failed save.
package engine

import (
	"errors"
	"io"
	"log"
	"slices"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/store"
)

var (
	ErrNoStore    = errors.New("engine: no store")
	ErrNoRenderer = errors.New("engine: no renderer")
)

// Engine runs mutations. It is not safe for concurrent use; front ends call
// it from a single event loop.
type Engine struct {
	store *store.Store
	view  Renderer
	log   *log.Logger
}

// New wires an engine. A nil logger discards debug output.
func New(s *store.Store, r Renderer, logger *log.Logger) (*Engine, error) {
	if s == nil {
		return nil, ErrNoStore
	}
	if r == nil {
		return nil, ErrNoRenderer
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{store: s, view: r, log: logger}, nil
}

// Store exposes the underlying model.
func (e *Engine) Store() *store.Store { return e.store }

// Render draws every list in display order. Used once after Load.
func (e *Engine) Render() {
	for _, l := range e.store.Lists() {
		e.view.RenderList(l)
		if l.Empty() {
			e.view.AddNoItemsMarker(l.Number)
			continue
		}
		for i, it := range l.Items {
			e.view.RenderItem(l.Number, model.ItemID(l.Number, i+1), it)
		}
	}
}

// CreateList appends a new unordered list with no items and returns its
// number. An empty name is allowed.
func (e *Engine) CreateList(name string) (int, error) {
	l := model.List{Number: e.store.NextNumber(), Name: name, Type: model.Unordered}
	e.store.Append(l)
	e.view.RenderList(l)
	e.view.AddNoItemsMarker(l.Number)
	e.log.Printf("create list %s", model.ListID(l.Number))
	return l.Number, e.store.Save()
}

// AddItem appends an unchecked item to list n.
func (e *Engine) AddItem(n int, value string) (bool, error) {
	l, ok := e.store.List(n)
	if !ok {
		e.log.Printf("add item: no list %s", model.ListID(n))
		return false, nil
	}
	it := model.Item{Value: value}
	if l.Empty() {
		e.view.RemoveNoItemsMarker(n)
	}
	l.Items = append(l.Items, it)
	e.view.RenderItem(n, model.ItemID(n, len(l.Items)), it)
	e.view.Renumber(n)
	return true, e.store.Save()
}

// ToggleCheck sets the checked flag of the item at the 1-based position.
// The list's whole checks string is rewritten from the model on save.
func (e *Engine) ToggleCheck(n, position int, checked bool) (bool, error) {
	l, ok := e.store.List(n)
	if !ok || position < 1 || position > len(l.Items) {
		e.log.Printf("toggle check: no item %s", model.ItemID(n, position))
		return false, nil
	}
	l.Items[position-1].Checked = checked
	e.view.SetCheck(model.ItemID(n, position), checked)
	return true, e.store.Save()
}

// ChangeListType switches list n between unordered and ordered. Items keep
// their order, values and checks; only the container changes.
func (e *Engine) ChangeListType(n int, t model.ListType) (bool, error) {
	l, ok := e.store.List(n)
	if !ok || !t.Valid() || l.Type == t {
		return false, nil
	}
	l.Type = t
	e.view.ReplaceContainer(n, t)
	return true, e.store.Save()
}

// MoveItem transplants the item at position pos of list from into list to,
// before the item currently at position before, or at the end when before
// is 0. Moving into an empty list gives that list a container of the origin
// list's type. An origin list left without items is removed and its
// parameters scrubbed. Both lists are renumbered and rewritten.
func (e *Engine) MoveItem(from, pos, to, before int) (bool, error) {
	src, ok := e.store.List(from)
	if !ok || pos < 1 || pos > len(src.Items) {
		e.log.Printf("move item: no item %s", model.ItemID(from, pos))
		return false, nil
	}
	dst, ok := e.store.List(to)
	if !ok {
		e.log.Printf("move item: no list %s", model.ListID(to))
		return false, nil
	}
	if before < 0 || before > len(dst.Items) {
		before = 0
	}
	if from == to && (before == pos || before == pos+1 || (before == 0 && pos == len(src.Items))) {
		return false, nil
	}

	id := model.ItemID(from, pos)
	beforeID := ""
	if before > 0 {
		beforeID = model.ItemID(to, before)
	}

	it := src.Items[pos-1]
	src.Items = slices.Delete(src.Items, pos-1, pos)
	if from == to && before > pos {
		before--
	}
	if dst.Empty() {
		dst.Type = src.Type
		e.view.RemoveNoItemsMarker(to)
		e.view.ReplaceContainer(to, dst.Type)
	}
	if before == 0 {
		dst.Items = append(dst.Items, it)
	} else {
		dst.Items = slices.Insert(dst.Items, before-1, it)
	}
	e.view.MoveItem(id, to, beforeID)

	if from != to && src.Empty() {
		e.store.Remove(from)
		e.view.RemoveList(from)
		e.log.Printf("move item: removed emptied list %s", model.ListID(from))
	} else {
		e.view.Renumber(from)
	}
	if from != to {
		e.view.Renumber(to)
	}
	return true, e.store.Save()
}

// MoveList moves list n in front of the placeholder at slot (0 is before
// the first list, Len() is the trailing placeholder). Slots adjacent to the
// list's current position are no-ops and write nothing.
func (e *Engine) MoveList(n, slot int) (bool, error) {
	before := 0
	if l, ok := e.store.At(slot); ok {
		before = l.Number
	}
	if !e.store.MoveList(n, slot) {
		return false, nil
	}
	e.view.MoveList(n, before)
	return true, e.store.Save()
}
