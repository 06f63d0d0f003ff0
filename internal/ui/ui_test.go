package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
)

func mono(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() {
		SetTheme("classic")
		SetColorForcing(false, false)
	})
}

func TestDocumentLines(t *testing.T) {
	mono(t)
	s, err := session.Open(store.NewMemoryLocation("l1name=Trip&l1type=ol&l1items=passport,tickets&l1checks=1&l3name=&l3type=ul"), nil)
	require.NoError(t, err)

	got := strings.Join(DocumentLines(s.Doc), "\n")
	want := strings.Join([]string{
		"l1 Trip  ol",
		"   ██████████░░░░░░░░░░  50%",
		"   1. [x] passport",
		"   2. [ ] tickets",
		"",
		"l3 (untitled)  ul",
		"   No items.",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestDocumentLinesNoLists(t *testing.T) {
	mono(t)
	s, err := session.Open(store.NewMemoryLocation(""), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"No lists."}, DocumentLines(s.Doc))
}

func TestPanelPadsToWidestLine(t *testing.T) {
	mono(t)
	got := PanelString([]string{"ab", "wider"})
	assert.Equal(t, "+-------+\n| ab    |\n| wider |\n+-------+\n", got)
}

func TestOKAndFail(t *testing.T) {
	mono(t)
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)

	OK("saved")
	Fail("nope")
	assert.Equal(t, "✔ saved\n", out.String())
	assert.Equal(t, "✖ nope\n", errOut.String())
}
