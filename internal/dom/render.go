package dom

import (
	"slices"

	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/model"
)

// Renderer methods. Unknown handles are ignored.

func (d *Document) RenderList(l model.List) {
	if d.index(l.Number) >= 0 {
		return
	}
	t := l.Type
	if !t.Valid() {
		t = model.Unordered
	}
	d.blocks = append(d.blocks, &Block{Number: l.Number, Heading: l.Name, Type: t})
}

func (d *Document) RenderItem(list int, id string, it model.Item) {
	b, ok := d.Block(list)
	if !ok {
		return
	}
	if b.Container == nil {
		b.Container = &Container{Kind: b.Type}
	}
	b.Container.Nodes = append(b.Container.Nodes, &Node{ID: id, Value: it.Value, Checked: it.Checked})
}

func (d *Document) AddNoItemsMarker(list int) {
	if b, ok := d.Block(list); ok {
		b.NoItems = true
	}
}

func (d *Document) RemoveNoItemsMarker(list int) {
	if b, ok := d.Block(list); ok {
		b.NoItems = false
	}
}

func (d *Document) SetCheck(id string, checked bool) {
	if b, i := d.find(id); b != nil {
		b.Container.Nodes[i].Checked = checked
	}
}

func (d *Document) ReplaceContainer(list int, t model.ListType) {
	b, ok := d.Block(list)
	if !ok {
		return
	}
	b.Type = t
	if b.Container == nil {
		return
	}
	// The nodes themselves move over; nothing is re-created.
	b.Container = &Container{Kind: t, Nodes: b.Container.Nodes}
}

func (d *Document) MoveItem(id string, list int, beforeID string) {
	dst, ok := d.Block(list)
	if !ok {
		return
	}
	src, i := d.find(id)
	if src == nil {
		return
	}
	node := src.Container.Nodes[i]
	src.Container.Nodes = slices.Delete(src.Container.Nodes, i, i+1)
	if len(src.Container.Nodes) == 0 {
		src.Container = nil
	}

	if dst.Container == nil {
		dst.Container = &Container{Kind: dst.Type}
	}
	at := len(dst.Container.Nodes)
	if beforeID != "" {
		if j := slices.IndexFunc(dst.Container.Nodes, func(n *Node) bool { return n.ID == beforeID }); j >= 0 {
			at = j
		}
	}
	dst.Container.Nodes = slices.Insert(dst.Container.Nodes, at, node)
}

func (d *Document) MoveList(list, before int) {
	i := d.index(list)
	if i < 0 {
		return
	}
	b := d.blocks[i]
	d.blocks = slices.Delete(d.blocks, i, i+1)
	at := len(d.blocks)
	if before != 0 {
		if j := d.index(before); j >= 0 {
			at = j
		}
	}
	d.blocks = slices.Insert(d.blocks, at, b)
}

func (d *Document) RemoveList(list int) {
	i := d.index(list)
	if i < 0 {
		return
	}
	d.blocks = slices.Delete(d.blocks, i, i+1)
	d.marker = dragdrop.Marker{}
}

func (d *Document) Renumber(list int) {
	b, ok := d.Block(list)
	if !ok || b.Container == nil {
		return
	}
	for i, n := range b.Container.Nodes {
		n.ID = model.ItemID(list, i+1)
	}
}

// Highlighter methods.

func (d *Document) ClearMarkers() { d.marker = dragdrop.Marker{} }

func (d *Document) ShowMarker(m dragdrop.Marker) { d.marker = m }

// MarksSlot reports whether the placeholder at slot carries the marker.
func (d *Document) MarksSlot(slot int) bool {
	return d.marker.Kind == dragdrop.MarkerPlaceholder && d.marker.Slot == slot
}

// MarksBefore reports whether the marker sits before the given node of
// list n.
func (d *Document) MarksBefore(n, position int) bool {
	return d.marker.Kind == dragdrop.MarkerBeforeItem && d.marker.List == n && d.marker.Position == position
}

// MarksEnd reports whether the marker sits after list n's container.
func (d *Document) MarksEnd(n int) bool {
	return d.marker.Kind == dragdrop.MarkerAfterContainer && d.marker.List == n
}
