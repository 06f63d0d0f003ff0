package dragdrop

import "fmt"

// SourceKind says what is being dragged.
type SourceKind int

const (
	DragList SourceKind = iota
	DragItem
)

// Source is the element being dragged: a list block, or the item at a
// 1-based position in a list.
type Source struct {
	Kind     SourceKind
	List     int
	Position int
}

func ListSource(list int) Source { return Source{Kind: DragList, List: list} }

func ItemSource(list, position int) Source {
	return Source{Kind: DragItem, List: list, Position: position}
}

// TargetKind says what the pointer is over.
type TargetKind int

const (
	// OverPlaceholder is the drop zone at Slot: slot k precedes the k-th
	// list block (0-based) and slot Len() trails the last one.
	OverPlaceholder TargetKind = iota
	OverList
	OverContainer
	OverItem
)

// Target is a droppable element.
type Target struct {
	Kind     TargetKind
	Slot     int
	List     int
	Position int
}

func PlaceholderTarget(slot int) Target { return Target{Kind: OverPlaceholder, Slot: slot} }
func ListTarget(list int) Target        { return Target{Kind: OverList, List: list} }
func ContainerTarget(list int) Target   { return Target{Kind: OverContainer, List: list} }

func ItemTarget(list, position int) Target {
	return Target{Kind: OverItem, List: list, Position: position}
}

// MarkerKind is the visual affinity shown while hovering.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	// MarkerBeforeItem: insert before the item at List/Position.
	MarkerBeforeItem
	// MarkerAfterContainer: append to the end of List's container.
	MarkerAfterContainer
	// MarkerPlaceholder: the placeholder at Slot. For a dragged list this
	// means "move here"; for a dragged item it means "become the first item
	// of List", the list following the placeholder.
	MarkerPlaceholder
)

func (k MarkerKind) String() string {
	switch k {
	case MarkerBeforeItem:
		return "before-item"
	case MarkerAfterContainer:
		return "after-container"
	case MarkerPlaceholder:
		return "placeholder"
	default:
		return "none"
	}
}

// Marker is a resolved drop position. The zero value is MarkerNone.
type Marker struct {
	Kind     MarkerKind
	List     int
	Position int
	Slot     int
}

func (m Marker) None() bool { return m.Kind == MarkerNone }

func (m Marker) String() string {
	switch m.Kind {
	case MarkerBeforeItem:
		return fmt.Sprintf("%s l%d-%d", m.Kind, m.List, m.Position)
	case MarkerAfterContainer:
		return fmt.Sprintf("%s l%d", m.Kind, m.List)
	case MarkerPlaceholder:
		return fmt.Sprintf("%s %d", m.Kind, m.Slot)
	}
	return m.Kind.String()
}

// Highlighter draws markers. Only one marker is visible at a time.
type Highlighter interface {
	ClearMarkers()
	ShowMarker(m Marker)
}
