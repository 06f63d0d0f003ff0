package ui

import (
	"fmt"

	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/model"
)

// DocumentLines lays a document out as panel lines: one heading per list
// block followed by its items or its no-items marker.
func DocumentLines(d *dom.Document) []string {
	t := Current()
	if d.NoLists() {
		return []string{C(t.Muted, "No lists.")}
	}
	var lines []string
	for i, b := range d.Blocks() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, BlockLines(b)...)
	}
	return lines
}

// BlockLines lays out one list block.
func BlockLines(b *dom.Block) []string {
	t := Current()
	done, total := 0, 0
	if b.Container != nil {
		total = len(b.Container.Nodes)
		for _, n := range b.Container.Nodes {
			if n.Checked {
				done++
			}
		}
	}
	heading := b.Heading
	if heading == "" {
		heading = C(t.Muted, "(untitled)")
	}
	lines := []string{fmt.Sprintf("%s %s  %s",
		C(t.Accent, b.ID()), C(t.Title, heading), C(t.Muted, string(b.Type)))}

	if b.NoItems || b.Container == nil {
		return append(lines, "   "+C(t.Muted, "No items."))
	}
	lines = append(lines, "   "+C(t.Muted, ProgressBar(done, total, 20)))
	for i, n := range b.Container.Nodes {
		lines = append(lines, "   "+NodeLine(b.Container.Kind, i+1, n))
	}
	return lines
}

// NodeLine renders one item: its ordinal or bullet, checkbox and text.
func NodeLine(kind model.ListType, position int, n *dom.Node) string {
	t := Current()
	lead := t.Bullet
	if kind == model.Ordered {
		lead = fmt.Sprintf("%d.", position)
	}
	box, text := C(t.Muted, t.BoxUnchecked), n.Value
	if n.Checked {
		box, text = C(t.Success, t.BoxChecked), C(t.Muted, n.Value)
	}
	return fmt.Sprintf("%s %s %s", C(dim, lead), box, text)
}
