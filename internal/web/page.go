package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
)

//go:embed templates/*.html static/*.js static/*.css
var assetsFS embed.FS

var tmpl = template.Must(template.New("base").Funcs(template.FuncMap{
	"slotID":      slotID,
	"containerID": containerID,
}).ParseFS(assetsFS, "templates/*.html"))

func slotID(slot int) string { return "slot-" + strconv.Itoa(slot) }

func containerID(list int) string { return model.ListID(list) + "-items" }

type pageView struct {
	Query  string
	Blocks []blockView
	// Trailing is the slot after the last block.
	Trailing int
}

type blockView struct {
	Slot    int
	Number  int
	ID      string
	Heading string
	Type    string
	Ordered bool
	NoItems bool
	Items   []itemView
}

type itemView struct {
	ID       string
	Position int
	Value    string
	Checked  bool
}

func newPageView(d *dom.Document, query string) pageView {
	blocks := d.Blocks()
	v := pageView{Query: query, Trailing: len(blocks)}
	for i, b := range blocks {
		bv := blockView{
			Slot:    i,
			Number:  b.Number,
			ID:      b.ID(),
			Heading: b.Heading,
			Type:    string(b.Type),
			Ordered: b.Type == model.Ordered,
			NoItems: b.NoItems || b.Container == nil,
		}
		if b.Container != nil {
			for j, n := range b.Container.Nodes {
				bv.Items = append(bv.Items, itemView{ID: n.ID, Position: j + 1, Value: n.Value, Checked: n.Checked})
			}
		}
		v.Blocks = append(v.Blocks, bv)
	}
	return v
}

// renderLists renders the lists fragment the page swaps in after a mutation.
func renderLists(d *dom.Document) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "lists", newPageView(d, "")); err != nil {
		return "", fmt.Errorf("render lists: %w", err)
	}
	return buf.String(), nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, err := session.Open(store.NewMemoryLocation(r.URL.RawQuery), s.log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", newPageView(sess.Doc, r.URL.RawQuery)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(assetsFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
