package model

import (
	"strconv"
	"strings"
)

// NextListNumber proposes the number for a new list: one past the highest
// existing number, or 1 when there are none. Gaps left by removed lists are
// never filled, and the input may be in any order.
func NextListNumber(existing []int) int {
	highest := 0
	for _, n := range existing {
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

// ListID is the element identifier of a list block, e.g. "l3".
func ListID(number int) string { return "l" + strconv.Itoa(number) }

// ItemID is the element identifier of the item at the 1-based position in a
// list, e.g. "l3-2".
func ItemID(list, position int) string {
	return ListID(list) + "-" + strconv.Itoa(position)
}

// ParseItemID is the inverse of ItemID.
func ParseItemID(id string) (list, position int, ok bool) {
	rest, found := strings.CutPrefix(id, "l")
	if !found {
		return 0, 0, false
	}
	l, p, found := strings.Cut(rest, "-")
	if !found {
		return 0, 0, false
	}
	list, err := strconv.Atoi(l)
	if err != nil || list < 0 {
		return 0, 0, false
	}
	position, err = strconv.Atoi(p)
	if err != nil || position < 1 {
		return 0, 0, false
	}
	return list, position, true
}
