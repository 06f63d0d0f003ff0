package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
	"github.com/idilsaglam/checklist/internal/ui"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func open(t *testing.T, query string, opts Options) (Model, *store.MemoryLocation) {
	t.Helper()
	loc := store.NewMemoryLocation(query)
	s, err := session.Open(loc, nil)
	require.NoError(t, err)
	return New(s, opts), loc
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func query(loc *store.MemoryLocation) string {
	q, _ := loc.Query()
	return q
}

func TestToggleCheck(t *testing.T) {
	m, loc := open(t, "l1name=a&l1items=x,y", Options{})
	m = press(t, m, keyDown, keySpace)
	assert.Equal(t, "l1name=a&l1type=ul&l1items=x,y&l1checks=10", query(loc))

	m = press(t, m, keySpace)
	assert.Equal(t, "l1name=a&l1type=ul&l1items=x,y&l1checks=00", query(loc))

	// Space on a heading does nothing.
	m = press(t, m, keyUp, keySpace)
	assert.Equal(t, 2, loc.Writes())
	assert.False(t, m.statusErr)
}

func TestAddItem(t *testing.T) {
	m, loc := open(t, "l1name=a", Options{})
	m = press(t, m, runes("a"), runes("milk"), keyEnter)
	assert.Equal(t, "l1name=a&l1type=ul&l1items=milk&l1checks=0", query(loc))
	assert.Equal(t, modeAddItem, m.mode, "input stays open for the next item")

	m = press(t, m, keyEnter)
	assert.True(t, m.statusErr, "empty items are rejected")
	assert.Equal(t, 1, loc.Writes())

	m = press(t, m, runes("eggs"), keyEnter, keyEsc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "l1name=a&l1type=ul&l1items=milk,eggs&l1checks=00", query(loc))
	r, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, row{kind: rowItem, list: 1, position: 2}, r)
}

func TestNewList(t *testing.T) {
	m, loc := open(t, "ref=x", Options{})
	assert.Contains(t, m.View(), "No lists.")

	m = press(t, m, runes("n"), runes("Trip"), keyEnter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "ref=x&l1name=Trip&l1type=ul", query(loc))
	assert.Contains(t, m.View(), "Trip")
	assert.Contains(t, m.View(), "No items.")
}

func TestToggleType(t *testing.T) {
	m, loc := open(t, "l1name=a&l1items=x&l1checks=1", Options{})
	m = press(t, m, runes("t"))
	assert.Equal(t, "l1name=a&l1type=ol&l1items=x&l1checks=1", query(loc))
	b, ok := m.sess.Doc.Block(1)
	require.True(t, ok)
	assert.Equal(t, "ol", string(b.Container.Kind))
}

func TestMoveItemWithKeys(t *testing.T) {
	m, loc := open(t, "l1name=a&l1items=x,y&l2name=b&l2items=z", Options{})
	m = press(t, m, keyDown, runes("m"))
	require.True(t, m.dragging)
	assert.Equal(t, dragdrop.ItemSource(1, 1), m.src)

	// slot0 l1 [l1-1] l1-2 end1 slot1 l2 l2-1 end2 slot2
	m = press(t, m, keyDown, keyDown, keyDown, keyDown, keyDown)
	marker := m.sess.Doc.Marker()
	assert.Equal(t, dragdrop.MarkerBeforeItem, marker.Kind)
	assert.Equal(t, 2, marker.List)
	assert.Equal(t, 1, marker.Position)
	assert.Contains(t, m.View(), ui.Current().Drop)

	m = press(t, m, keyEnter)
	assert.False(t, m.dragging)
	assert.True(t, m.sess.Doc.Marker().None())
	assert.Equal(t, "l1name=a&l1type=ul&l1items=y&l1checks=0&l2name=b&l2type=ul&l2items=x,z&l2checks=00", query(loc))
}

func TestCancelMove(t *testing.T) {
	m, loc := open(t, "l1name=a&l1items=x,y&l2name=b&l2items=z", Options{})
	m = press(t, m, keyDown, runes("m"), keyDown, keyDown, keyDown)
	assert.False(t, m.sess.Doc.Marker().None())

	m = press(t, m, keyEsc)
	assert.False(t, m.dragging)
	assert.True(t, m.sess.Doc.Marker().None())
	assert.Zero(t, loc.Writes())
}

func TestMoveListWithKeys(t *testing.T) {
	m, loc := open(t, "l1name=a&l2name=b", Options{})
	m = press(t, m, keyDown, keyDown, runes("m"))
	require.True(t, m.dragging)
	assert.Equal(t, dragdrop.ListSource(2), m.src)

	// [slot0] l1 no-items slot1 l2 no-items slot2
	m = press(t, m, keyUp, keyUp, keyUp, keyUp)
	assert.True(t, m.sess.Doc.MarksSlot(0))

	m = press(t, m, keyEnter)
	assert.Equal(t, "l2name=b&l2type=ul&l1name=a&l1type=ul", query(loc))
}

func TestCopyURL(t *testing.T) {
	var copied string
	m, _ := open(t, "l1name=a", Options{
		ShareURL: func(q string) string { return "http://localhost:8080/?" + q },
		Copy:     func(s string) error { copied = s; return nil },
	})
	m = press(t, m, runes("y"))
	assert.Equal(t, "http://localhost:8080/?l1name=a&l1type=ul", copied)
	assert.False(t, m.statusErr)
}

func TestQuit(t *testing.T) {
	m, _ := open(t, "", Options{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWindow(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5"}
	assert.Equal(t, lines, window(lines, 0, 10))
	assert.Equal(t, []string{"0", "1", "2"}, window(lines, 0, 3))
	assert.Equal(t, []string{"2", "3", "4"}, window(lines, 3, 3))
	assert.Equal(t, []string{"3", "4", "5"}, window(lines, 5, 3))
}
