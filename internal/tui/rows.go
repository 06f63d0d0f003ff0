package tui

import (
	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/dragdrop"
)

type rowKind int

const (
	rowList rowKind = iota
	rowItem
	rowNoItems
	// rowEnd is the end of a non-empty container; only listed while an item
	// is being dragged.
	rowEnd
	// rowSlot is a placeholder; only listed while dragging.
	rowSlot
)

// row is one cursor stop in the document.
type row struct {
	kind     rowKind
	list     int
	position int
	slot     int
}

// layout flattens the document into cursor stops.
func layout(d *dom.Document, dragging, draggingItem bool) []row {
	blocks := d.Blocks()
	var rows []row
	for i, b := range blocks {
		if dragging {
			rows = append(rows, row{kind: rowSlot, slot: i})
		}
		rows = append(rows, row{kind: rowList, list: b.Number})
		if b.Container == nil {
			rows = append(rows, row{kind: rowNoItems, list: b.Number})
			continue
		}
		for j := range b.Container.Nodes {
			rows = append(rows, row{kind: rowItem, list: b.Number, position: j + 1})
		}
		if draggingItem {
			rows = append(rows, row{kind: rowEnd, list: b.Number})
		}
	}
	if dragging {
		rows = append(rows, row{kind: rowSlot, slot: d.Slots() - 1})
	}
	return rows
}

func (r row) target() dragdrop.Target {
	switch r.kind {
	case rowItem:
		return dragdrop.ItemTarget(r.list, r.position)
	case rowNoItems, rowEnd:
		return dragdrop.ContainerTarget(r.list)
	case rowSlot:
		return dragdrop.PlaceholderTarget(r.slot)
	}
	return dragdrop.ListTarget(r.list)
}

func (r row) source() (dragdrop.Source, bool) {
	switch r.kind {
	case rowList:
		return dragdrop.ListSource(r.list), true
	case rowItem:
		return dragdrop.ItemSource(r.list, r.position), true
	}
	return dragdrop.Source{}, false
}

// find returns the index of the first row equal to r, or -1.
func find(rows []row, r row) int {
	for i, x := range rows {
		if x == r {
			return i
		}
	}
	return -1
}
