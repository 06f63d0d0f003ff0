package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/engine"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
)

func open(t *testing.T, query string) (*session.Session, *store.MemoryLocation) {
	t.Helper()
	loc := store.NewMemoryLocation(query)
	s, err := session.Open(loc, nil)
	require.NoError(t, err)
	return s, loc
}

// inStep asserts the document shows exactly what the model holds and that
// the location holds exactly what the model encodes.
func inStep(t *testing.T, s *session.Session, loc *store.MemoryLocation) {
	t.Helper()
	require.NoError(t, s.Doc.Validate())
	assert.Equal(t, s.Store.Lists(), s.Doc.Lists())
	q, _ := loc.Query()
	assert.Equal(t, s.Query(), q)
}

func ids(t *testing.T, d *dom.Document, n int) []string {
	t.Helper()
	b, ok := d.Block(n)
	require.True(t, ok)
	if b.Container == nil {
		return nil
	}
	var out []string
	for _, node := range b.Container.Nodes {
		out = append(out, node.ID)
	}
	return out
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := engine.New(nil, dom.New(), nil)
	assert.ErrorIs(t, err, engine.ErrNoStore)

	_, err = engine.New(store.New(store.NewMemoryLocation("")), nil, nil)
	assert.ErrorIs(t, err, engine.ErrNoRenderer)
}

func TestCreateList(t *testing.T) {
	s, loc := open(t, "")
	assert.True(t, s.Doc.NoLists())

	n, err := s.Engine.CreateList("Groceries")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	b, ok := s.Doc.Block(1)
	require.True(t, ok)
	assert.True(t, b.NoItems)
	assert.Nil(t, b.Container)
	assert.False(t, s.Doc.NoLists())

	q, _ := loc.Query()
	assert.Equal(t, "l1name=Groceries&l1type=ul", q)

	n, err = s.Engine.CreateList("")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	inStep(t, s, loc)
}

func TestCreateListExtendsPastGaps(t *testing.T) {
	s, _ := open(t, "l7name=a&l2name=b")
	n, err := s.Engine.CreateList("c")
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestAddItemNumbersContiguously(t *testing.T) {
	s, loc := open(t, "l4name=Chores")

	for _, v := range []string{"dishes", "laundry, darks", "bins"} {
		changed, err := s.Engine.AddItem(4, v)
		require.NoError(t, err)
		assert.True(t, changed)
	}

	assert.Equal(t, []string{"l4-1", "l4-2", "l4-3"}, ids(t, s.Doc, 4))
	b, _ := s.Doc.Block(4)
	assert.False(t, b.NoItems)

	q, _ := loc.Query()
	assert.Equal(t, "l4name=Chores&l4type=ul&l4items=dishes,laundry%252C%2520darks,bins&l4checks=000", q)
	inStep(t, s, loc)
}

func TestAddItemUnknownListIsNoop(t *testing.T) {
	s, loc := open(t, "l1name=a")
	changed, err := s.Engine.AddItem(2, "x")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, loc.Writes())
}

func TestToggleCheck(t *testing.T) {
	s, loc := open(t, "l1name=a&l1items=x,y,z&l1checks=1")

	changed, err := s.Engine.ToggleCheck(1, 3, true)
	require.NoError(t, err)
	assert.True(t, changed)

	q, _ := loc.Query()
	assert.Contains(t, q, "l1checks=101")
	inStep(t, s, loc)

	for _, pos := range []int{0, 4} {
		changed, err = s.Engine.ToggleCheck(1, pos, true)
		require.NoError(t, err)
		assert.False(t, changed)
	}
	changed, _ = s.Engine.ToggleCheck(9, 1, true)
	assert.False(t, changed)
	assert.Equal(t, 1, loc.Writes())
}

func TestChangeListTypePreservesItems(t *testing.T) {
	s, loc := open(t, "l4name=a&l4type=ul&l4items=x,y%252Cz,w&l4checks=010")
	before, _ := s.Doc.Block(4)
	nodes := before.Container.Nodes

	changed, err := s.Engine.ChangeListType(4, model.Ordered)
	require.NoError(t, err)
	assert.True(t, changed)

	b, _ := s.Doc.Block(4)
	assert.Equal(t, model.Ordered, b.Container.Kind)
	require.Len(t, b.Container.Nodes, 3)
	for i := range nodes {
		assert.Same(t, nodes[i], b.Container.Nodes[i], "nodes move, not re-created")
	}

	l, _ := s.Store.List(4)
	assert.Equal(t, []model.Item{{Value: "x"}, {Value: "y,z", Checked: true}, {Value: "w"}}, l.Items)
	q, _ := loc.Query()
	assert.Equal(t, "l4name=a&l4type=ol&l4items=x,y%252Cz,w&l4checks=010", q)
	inStep(t, s, loc)

	changed, err = s.Engine.ChangeListType(4, model.Ordered)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, _ = s.Engine.ChangeListType(4, model.ListType("dl"))
	assert.False(t, changed)
	assert.Equal(t, 1, loc.Writes())
}

func TestChangeListTypeWithoutItems(t *testing.T) {
	s, loc := open(t, "l1name=a")
	changed, err := s.Engine.ChangeListType(1, model.Ordered)
	require.NoError(t, err)
	assert.True(t, changed)

	b, _ := s.Doc.Block(1)
	assert.Nil(t, b.Container)
	assert.Equal(t, model.Ordered, b.Type)
	inStep(t, s, loc)
}

func TestMoveItemOnlyItemRemovesOrigin(t *testing.T) {
	s, loc := open(t, "l2name=two&l2type=ol&l2items=moved&l2checks=1&l5name=five&l5items=a,b&l5checks=01")

	changed, err := s.Engine.MoveItem(2, 1, 5, 0)
	require.NoError(t, err)
	assert.True(t, changed)

	_, ok := s.Doc.Block(2)
	assert.False(t, ok, "emptied list is removed from the document")
	_, ok = s.Store.List(2)
	assert.False(t, ok)
	assert.Equal(t, []string{"l5-1", "l5-2", "l5-3"}, ids(t, s.Doc, 5))

	q, _ := loc.Query()
	assert.Equal(t, "l5name=five&l5type=ul&l5items=a,b,moved&l5checks=011", q)
	inStep(t, s, loc)
}

func TestNumbersAreNotReusedAfterRemoval(t *testing.T) {
	s, _ := open(t, "l1name=a&l1items=x&l2name=b&l3name=c&l3items=y&l4name=d&l5name=e")

	_, err := s.Engine.MoveItem(3, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5}, s.Store.Numbers())

	n, err := s.Engine.CreateList("new")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestMoveItemWithinList(t *testing.T) {
	tests := []struct {
		name    string
		pos     int
		before  int
		changed bool
		want    string
	}{
		{"last to front", 4, 1, true, "d,a,b,c"},
		{"first to end", 1, 0, true, "b,c,d,a"},
		{"first before third", 1, 3, true, "b,a,c,d"},
		{"before itself", 2, 2, false, "a,b,c,d"},
		{"before successor", 2, 3, false, "a,b,c,d"},
		{"last to end", 4, 0, false, "a,b,c,d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, loc := open(t, "l1name=x&l1items=a,b,c,d&l1checks=1000")
			changed, err := s.Engine.MoveItem(1, tt.pos, 1, tt.before)
			require.NoError(t, err)
			assert.Equal(t, tt.changed, changed)

			q, _ := loc.Query()
			if tt.changed {
				assert.Contains(t, q, "l1items="+tt.want)
			} else {
				assert.Zero(t, loc.Writes())
			}
			assert.Equal(t, []string{"l1-1", "l1-2", "l1-3", "l1-4"}, ids(t, s.Doc, 1))
			require.NoError(t, s.Doc.Validate())
			assert.Equal(t, s.Store.Lists(), s.Doc.Lists())
		})
	}
}

func TestMoveItemCheckFollowsItem(t *testing.T) {
	s, loc := open(t, "l1name=x&l1items=a,b&l1checks=10&l2name=y&l2items=c&l2checks=0")

	_, err := s.Engine.MoveItem(1, 1, 2, 1)
	require.NoError(t, err)

	q, _ := loc.Query()
	assert.Equal(t, "l1name=x&l1type=ul&l1items=b&l1checks=0&l2name=y&l2type=ul&l2items=a,c&l2checks=10", q)
	inStep(t, s, loc)
}

func TestMoveItemIntoEmptyListAdoptsOriginType(t *testing.T) {
	s, loc := open(t, "l1name=x&l1type=ol&l1items=a,b&l2name=y")

	changed, err := s.Engine.MoveItem(1, 2, 2, 0)
	require.NoError(t, err)
	assert.True(t, changed)

	b, _ := s.Doc.Block(2)
	assert.False(t, b.NoItems)
	assert.Equal(t, model.Ordered, b.Container.Kind)
	assert.Equal(t, []string{"l2-1"}, ids(t, s.Doc, 2))

	q, _ := loc.Query()
	assert.Equal(t, "l1name=x&l1type=ol&l1items=a&l1checks=0&l2name=y&l2type=ol&l2items=b&l2checks=0", q)
	inStep(t, s, loc)
}

func TestMoveItemInvalidReferences(t *testing.T) {
	s, loc := open(t, "l1name=x&l1items=a")
	for _, args := range [][4]int{{2, 1, 1, 0}, {1, 2, 1, 0}, {1, 0, 1, 0}, {1, 1, 3, 0}} {
		changed, err := s.Engine.MoveItem(args[0], args[1], args[2], args[3])
		require.NoError(t, err)
		assert.False(t, changed, "%v", args)
	}
	assert.Zero(t, loc.Writes())
}

func TestMoveList(t *testing.T) {
	s, loc := open(t, "l1name=a&l2name=b&l3name=c")

	changed, err := s.Engine.MoveList(3, 0)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{3, 1, 2}, s.Store.Numbers())

	q, _ := loc.Query()
	assert.Equal(t, "l3name=c&l3type=ul&l1name=a&l1type=ul&l2name=b&l2type=ul", q)
	inStep(t, s, loc)

	changed, err = s.Engine.MoveList(3, 0)
	require.NoError(t, err)
	assert.False(t, changed)
	changed, _ = s.Engine.MoveList(3, 1)
	assert.False(t, changed)
	assert.Equal(t, 1, loc.Writes())

	changed, err = s.Engine.MoveList(3, 3)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []int{1, 2, 3}, s.Store.Numbers())
	inStep(t, s, loc)
}

type brokenLocation struct{ store.MemoryLocation }

var errDisk = errors.New("disk full")

func (b *brokenLocation) Replace(string) error { return errDisk }

func TestSaveErrorsSurface(t *testing.T) {
	s, err := session.Open(&brokenLocation{}, nil)
	require.NoError(t, err)

	_, err = s.Engine.CreateList("a")
	assert.ErrorIs(t, err, errDisk)
}
