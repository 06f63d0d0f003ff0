// Package tui is the terminal front end: a Bubble Tea program that paints
// the document and drives the engine and the drag/drop coordinator from
// the keyboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
)

// Options configure the program.
type Options struct {
	// ShareURL turns a query string into the URL copied by "y". Nil copies
	// the bare query string.
	ShareURL func(query string) string
	// Copy writes to the clipboard. Nil uses the system clipboard.
	Copy func(string) error
}

type mode int

const (
	modeBrowse mode = iota
	modeAddItem
	modeNewList
)

// Model is the Bubble Tea model.
type Model struct {
	sess *session.Session
	opts Options
	keys keyMap
	help help.Model

	rows   []row
	cursor int
	width  int
	height int

	mode      mode
	ti        textinput.Model
	inputList int

	dragging bool
	src      dragdrop.Source

	status    string
	statusErr bool
}

// New builds the model over an open session.
func New(sess *session.Session, opts Options) Model {
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	if opts.ShareURL == nil {
		opts.ShareURL = func(q string) string { return q }
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		sess:   sess,
		opts:   opts,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
		ti:     ti,
	}
	m.help.Styles.ShortKey = helpStyle
	m.help.Styles.ShortDesc = helpStyle
	m.relayout()
	return m
}

// Run starts the program on the alternate screen.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) relayout() {
	m.rows = layout(m.sess.Doc, m.dragging, m.dragging && m.src.Kind == dragdrop.DragItem)
	m.clamp()
}

// relayoutAt relayouts and keeps the cursor on r when it survives.
func (m *Model) relayoutAt(r row) {
	m.relayout()
	if i := find(m.rows, r); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) clamp() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) setStatus(msg string) { m.status, m.statusErr = msg, false }

func (m *Model) setError(err error) { m.status, m.statusErr = err.Error(), true }

// report turns a mutation result into a status line.
func (m *Model) report(what string, changed bool, err error) {
	switch {
	case err != nil:
		m.setError(fmt.Errorf("%s: %w", what, err))
	case changed:
		m.setStatus(what)
	default:
		m.setStatus("nothing to do")
	}
	m.relayout()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		if m.dragging {
			return m.updateDrag(msg), nil
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.ti.Value()
		switch m.mode {
		case modeAddItem:
			if strings.TrimSpace(value) == "" {
				m.setError(fmt.Errorf("item cannot be empty"))
				return m, nil
			}
			changed, err := m.sess.Engine.AddItem(m.inputList, value)
			m.report("added item", changed, err)
			// Keep the cursor on the new item so several can be added in a row.
			if i := find(m.rows, row{kind: rowItem, list: m.inputList, position: m.itemCount(m.inputList)}); i >= 0 {
				m.cursor = i
			}
			m.ti.SetValue("")
			return m, nil
		case modeNewList:
			n, err := m.sess.Engine.CreateList(strings.TrimSpace(value))
			if err != nil {
				m.report("create list", false, err)
				break
			}
			m.report("created "+model.ListID(n), true, nil)
			if i := find(m.rows, row{kind: rowList, list: n}); i >= 0 {
				m.cursor = i
			}
		}
		m.closeInput()
		return m, nil
	case "esc":
		m.closeInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) openInput(md mode, list int, placeholder string) {
	m.mode = md
	m.inputList = list
	m.ti.SetValue("")
	m.ti.Placeholder = placeholder
	m.ti.Focus()
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) itemCount(n int) int {
	l, ok := m.sess.Store.List(n)
	if !ok {
		return 0
	}
	return len(l.Items)
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r, ok := m.current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clamp()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clamp()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NewList):
		m.openInput(modeNewList, 0, "New list name...")
	case key.Matches(msg, m.keys.Copy):
		url := m.opts.ShareURL(m.sess.Query())
		if err := m.opts.Copy(url); err != nil {
			m.setError(fmt.Errorf("copy: %w", err))
		} else {
			m.setStatus("copied " + url)
		}
	case !ok:
	case key.Matches(msg, m.keys.Toggle):
		if r.kind != rowItem {
			break
		}
		l, _ := m.sess.Store.List(r.list)
		checked := !l.Items[r.position-1].Checked
		changed, err := m.sess.Engine.ToggleCheck(r.list, r.position, checked)
		m.report("toggled "+model.ItemID(r.list, r.position), changed, err)
	case key.Matches(msg, m.keys.Add):
		m.openInput(modeAddItem, r.list, "New item...")
	case key.Matches(msg, m.keys.Type):
		l, found := m.sess.Store.List(r.list)
		if !found {
			break
		}
		t := model.Ordered
		if l.Type == model.Ordered {
			t = model.Unordered
		}
		changed, err := m.sess.Engine.ChangeListType(r.list, t)
		m.report(model.ListID(r.list)+" is now "+string(t), changed, err)
	case key.Matches(msg, m.keys.Move):
		src, movable := r.source()
		if !movable {
			break
		}
		m.dragging, m.src = true, src
		m.relayoutAt(r)
		m.hover()
		m.setStatus("moving " + describe(src))
	}
	return m, nil
}

func (m Model) updateDrag(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clamp()
		m.hover()
	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clamp()
		m.hover()
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		r, _ := m.current()
		m.sess.Drag.Leave()
		m.dragging = false
		m.setStatus("move cancelled")
		m.relayoutAt(r)
	case key.Matches(msg, m.keys.Drop):
		r, _ := m.current()
		src := m.src
		m.dragging = false
		changed, err := m.sess.Drag.Drop(src, r.target())
		m.report("moved "+describe(src), changed, err)
	}
	return m
}

func (m *Model) hover() {
	if r, ok := m.current(); ok {
		m.sess.Drag.Hover(m.src, r.target())
	}
}

func describe(src dragdrop.Source) string {
	if src.Kind == dragdrop.DragItem {
		return model.ItemID(src.List, src.Position)
	}
	return model.ListID(src.List)
}
