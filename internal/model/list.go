package model

// ListType selects the container an item list renders into.
type ListType string

const (
	Unordered ListType = "ul"
	Ordered   ListType = "ol"
)

// ParseListType maps a serialized type to a ListType. Anything that is not
// "ol" is unordered, so absent or garbled values fall back to the default.
func ParseListType(s string) ListType {
	if s == string(Ordered) {
		return Ordered
	}
	return Unordered
}

// Valid reports whether t is one of the two known list types.
func (t ListType) Valid() bool { return t == Unordered || t == Ordered }

// List is a named checklist.
type List struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Type   ListType `json:"type"`
	Items  []Item   `json:"items"`
}

// Empty reports whether the list has no items (and so renders the
// "no items" marker instead of a container).
func (l List) Empty() bool { return len(l.Items) == 0 }

// Checks returns the list's bit string: one '1' or '0' per item.
func (l List) Checks() string {
	b := make([]byte, len(l.Items))
	for i, it := range l.Items {
		if it.Checked {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// Clone returns a deep copy so callers can't alias the item slice.
func (l List) Clone() List {
	out := l
	if l.Items != nil {
		out.Items = append([]Item(nil), l.Items...)
	}
	return out
}
