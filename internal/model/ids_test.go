package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextListNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		want     int
	}{
		{"empty", nil, 1},
		{"contiguous", []int{1, 2, 3}, 4},
		{"gap is not filled", []int{1, 2, 4}, 5},
		{"disordered", []int{7, 2, 5}, 8},
		{"only freed high numbers remain low", []int{1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextListNumber(tt.existing))
		})
	}
}

func TestItemIDRoundTrip(t *testing.T) {
	id := ItemID(12, 3)
	assert.Equal(t, "l12-3", id)

	list, pos, ok := ParseItemID(id)
	assert.True(t, ok)
	assert.Equal(t, 12, list)
	assert.Equal(t, 3, pos)

	for _, bad := range []string{"", "l", "l3", "x3-1", "l3-0", "l3-x", "lx-1"} {
		_, _, ok := ParseItemID(bad)
		assert.False(t, ok, bad)
	}
}

func TestListChecks(t *testing.T) {
	l := List{Items: []Item{{Value: "a", Checked: true}, {Value: "b"}, {Value: "c", Checked: true}}}
	assert.Equal(t, "101", l.Checks())
	assert.Equal(t, "", List{}.Checks())
}

func TestParseListType(t *testing.T) {
	assert.Equal(t, Ordered, ParseListType("ol"))
	assert.Equal(t, Unordered, ParseListType("ul"))
	assert.Equal(t, Unordered, ParseListType(""))
	assert.Equal(t, Unordered, ParseListType("OL"))
	assert.True(t, Ordered.Valid())
	assert.False(t, ListType("dl").Valid())
}
