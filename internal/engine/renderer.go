package engine

import "github.com/idilsaglam/checklist/internal/model"

// Renderer is the view the engine draws through. Handles are plain
// identifiers: list numbers for list blocks and item ids ("l3-2") for items.
// The engine calls it after it has updated the model and never reads
// anything back.
type Renderer interface {
	// RenderList appends a list block (heading, type switch, add-item
	// field) after the last one. The block has neither a container nor a
	// no-items marker yet.
	RenderList(list model.List)
	// RenderItem appends an item to the list's container, creating a
	// container of the block's type when there is none.
	RenderItem(list int, id string, item model.Item)
	AddNoItemsMarker(list int)
	RemoveNoItemsMarker(list int)
	SetCheck(id string, checked bool)
	// ReplaceContainer sets the block's type and, if the block has a
	// container, moves every item node into a fresh container of that type.
	ReplaceContainer(list int, t model.ListType)
	// MoveItem relocates an item node into list's container, before the
	// node beforeID or at the end when beforeID is empty.
	MoveItem(id string, list int, beforeID string)
	// MoveList relocates a list block (and the placeholder preceding it)
	// before the block of list before, or to the end when before is 0.
	MoveList(list, before int)
	RemoveList(list int)
	// Renumber rewrites the item ids of a list to l<n>-1 .. l<n>-N in
	// document order.
	Renumber(list int)
}
