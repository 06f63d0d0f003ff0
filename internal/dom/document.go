// Package dom is the retained view of the checklist page: list blocks with
// their headings, item containers, no-items markers, the placeholders
// between blocks and the current drag marker. The engine draws into it
// through engine.Renderer; the terminal, CLI and HTML front ends paint it.
package dom

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/engine"
	"github.com/idilsaglam/checklist/internal/model"
)

// Node is a rendered item: a checkbox and its label.
type Node struct {
	ID      string
	Value   string
	Checked bool
}

// Container is the <ul>/<ol> holding a block's item nodes.
type Container struct {
	Kind  model.ListType
	Nodes []*Node
}

// Block is a rendered list. It has either a container or the no-items
// marker, never both.
type Block struct {
	Number    int
	Heading   string
	Type      model.ListType
	Container *Container
	NoItems   bool
}

// ID is the block's element id, e.g. "l3".
func (b *Block) ID() string { return model.ListID(b.Number) }

// Document is the page. Placeholder slots are implicit: slot k precedes
// block k and slot len(blocks) trails the last block.
type Document struct {
	blocks []*Block
	marker dragdrop.Marker
}

var (
	_ engine.Renderer      = (*Document)(nil)
	_ dragdrop.Highlighter = (*Document)(nil)
)

func New() *Document { return &Document{} }

// Blocks returns the blocks in page order. Painters must treat them as
// read-only.
func (d *Document) Blocks() []*Block { return slices.Clone(d.blocks) }

// Block finds the block of list n.
func (d *Document) Block(n int) (*Block, bool) {
	i := d.index(n)
	if i < 0 {
		return nil, false
	}
	return d.blocks[i], true
}

// Slots is the number of placeholders.
func (d *Document) Slots() int { return len(d.blocks) + 1 }

// NoLists reports whether the "No lists." message is shown.
func (d *Document) NoLists() bool { return len(d.blocks) == 0 }

// Marker is the drag marker currently shown.
func (d *Document) Marker() dragdrop.Marker { return d.marker }

// Lists reads the document back as model lists, in page order.
func (d *Document) Lists() []model.List {
	out := make([]model.List, 0, len(d.blocks))
	for _, b := range d.blocks {
		l := model.List{Number: b.Number, Name: b.Heading, Type: b.Type}
		if b.Container != nil {
			for _, n := range b.Container.Nodes {
				l.Items = append(l.Items, model.Item{Value: n.Value, Checked: n.Checked})
			}
		}
		out = append(out, l)
	}
	return out
}

// Validate checks the structural invariants: marker and container are
// mutually exclusive, containers match their block's type, and item ids
// are l<n>-1 .. l<n>-N in order.
func (d *Document) Validate() error {
	seen := map[int]bool{}
	for _, b := range d.blocks {
		if seen[b.Number] {
			return fmt.Errorf("%s: duplicate block", b.ID())
		}
		seen[b.Number] = true
		hasItems := b.Container != nil && len(b.Container.Nodes) > 0
		if hasItems == b.NoItems {
			return fmt.Errorf("%s: no-items marker=%v with %d items", b.ID(), b.NoItems, d.count(b))
		}
		if b.Container == nil {
			continue
		}
		if b.Container.Kind != b.Type {
			return fmt.Errorf("%s: %s container in %s block", b.ID(), b.Container.Kind, b.Type)
		}
		for i, n := range b.Container.Nodes {
			if want := model.ItemID(b.Number, i+1); n.ID != want {
				return fmt.Errorf("%s: item %d has id %s, want %s", b.ID(), i+1, n.ID, want)
			}
		}
	}
	return nil
}

func (d *Document) count(b *Block) int {
	if b.Container == nil {
		return 0
	}
	return len(b.Container.Nodes)
}

func (d *Document) index(n int) int {
	return slices.IndexFunc(d.blocks, func(b *Block) bool { return b.Number == n })
}

// find locates the node with the given id.
func (d *Document) find(id string) (*Block, int) {
	for _, b := range d.blocks {
		if b.Container == nil {
			continue
		}
		for i, n := range b.Container.Nodes {
			if n.ID == id {
				return b, i
			}
		}
	}
	return nil, -1
}
