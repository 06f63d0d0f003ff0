package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/ui"
)

const indent = "    "

func (m Model) View() string {
	body, focus := m.bodyLines()
	chrome := 4 // title, blank, status, help
	if m.mode != modeBrowse {
		chrome += 4
	}
	body = window(body, focus, m.height-2-chrome)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(body, "\n"))

	if m.mode != modeBrowse {
		title := "Add item to " + model.ListID(m.inputList)
		if m.mode == modeNewList {
			title = "New list"
		}
		b.WriteString("\n" + frameStyle.Render(title+"\n"+m.ti.View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render("✖ " + m.status))
		} else {
			b.WriteString(successStyle.Render("✔ " + m.status))
		}
	}
	b.WriteString("\n")
	if m.dragging {
		b.WriteString(m.help.View(dragKeys{m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return frameStyle.Render(b.String())
}

func (m Model) header() string {
	done, pending := 0, 0
	for _, l := range m.sess.Store.Lists() {
		for _, it := range l.Items {
			if it.Checked {
				done++
			} else {
				pending++
			}
		}
	}
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Checklist"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Lists"), m.sess.Store.Len(),
	)
}

// bodyLines paints every row and reports the line the cursor is on.
func (m Model) bodyLines() ([]string, int) {
	d := m.sess.Doc
	if d.NoLists() && !m.dragging {
		return []string{mutedStyle.Render("No lists. Press n to create one.")}, 0
	}
	var lines []string
	focus := 0
	for i, r := range m.rows {
		if r.kind == rowList && i > 0 && m.rows[i-1].kind != rowSlot {
			lines = append(lines, "")
		}
		if r.kind == rowItem && d.MarksBefore(r.list, r.position) {
			lines = append(lines, indent+markerStyle.Render(ui.Current().Drop))
		}
		if i == m.cursor {
			focus = len(lines)
		}
		for j, ln := range m.paintRow(d, r) {
			prefix := "  "
			if i == m.cursor && j == 0 {
				prefix = selectedStyle.Render(">") + " "
			}
			lines = append(lines, prefix+ln)
		}
	}
	return lines, focus
}

func (m Model) paintRow(d *dom.Document, r row) []string {
	t := ui.Current()
	switch r.kind {
	case rowSlot:
		if d.MarksSlot(r.slot) {
			return []string{markerStyle.Render(t.Drop + " drop here")}
		}
		return []string{mutedStyle.Render("┄┄")}

	case rowList:
		b, _ := d.Block(r.list)
		heading := b.Heading
		if heading == "" {
			heading = mutedStyle.Render("(untitled)")
		} else {
			heading = titleStyle.Render(heading)
		}
		line := fmt.Sprintf("%s %s  %s", accentStyle.Render(b.ID()), heading, mutedStyle.Render(string(b.Type)))
		if b.Container != nil {
			line += "  " + mutedStyle.Render(progress(b.Container.Nodes))
		}
		if m.isDragged(r) {
			line = draggedStyle.Render(line)
		}
		return []string{line}

	case rowNoItems:
		return []string{indent + mutedStyle.Render("No items.")}

	case rowEnd:
		if d.MarksEnd(r.list) {
			return []string{indent + markerStyle.Render(t.Drop+" end of "+model.ListID(r.list))}
		}
		return []string{indent + mutedStyle.Render("·")}
	}

	b, _ := d.Block(r.list)
	n := b.Container.Nodes[r.position-1]
	lead := t.Bullet
	if b.Container.Kind == model.Ordered {
		lead = fmt.Sprintf("%d.", r.position)
	}
	box := mutedStyle.Render(t.BoxUnchecked)
	if n.Checked {
		box = successStyle.Render(t.BoxChecked)
	}
	head := fmt.Sprintf("%s%s %s ", indent, lead, box)
	pad := strings.Repeat(" ", len(indent)+len([]rune(lead))+len([]rune(t.BoxChecked))+2)

	width := m.width - 8 - len(pad)
	if width < 10 {
		width = 10
	}
	wrapped := strings.Split(wordwrap.String(n.Value, width), "\n")
	out := make([]string, len(wrapped))
	for i, w := range wrapped {
		switch {
		case m.isDragged(r):
			w = draggedStyle.Render(w)
		case n.Checked:
			w = doneStyle.Render(w)
		}
		if i == 0 {
			out[i] = head + w
		} else {
			out[i] = pad + w
		}
	}
	return out
}

func (m Model) isDragged(r row) bool {
	if !m.dragging {
		return false
	}
	switch m.src.Kind {
	case dragdrop.DragList:
		return r.kind == rowList && r.list == m.src.List
	case dragdrop.DragItem:
		return r.kind == rowItem && r.list == m.src.List && r.position == m.src.Position
	}
	return false
}

func progress(nodes []*dom.Node) string {
	done := 0
	for _, n := range nodes {
		if n.Checked {
			done++
		}
	}
	return fmt.Sprintf("%d/%d", done, len(nodes))
}

// window keeps at most height lines, scrolled so focus stays visible.
func window(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
