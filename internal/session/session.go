// Package session assembles the pieces every front end needs: a store
// loaded from a location, a document rendered from it, the engine and the
// drag/drop coordinator.
package session

import (
	"fmt"
	"log"

	"github.com/idilsaglam/checklist/internal/dom"
	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/engine"
	"github.com/idilsaglam/checklist/internal/store"
)

type Session struct {
	Store  *store.Store
	Doc    *dom.Document
	Engine *engine.Engine
	Drag   *dragdrop.Coordinator
}

// Open loads loc and renders it. Nothing is drawn if any step fails.
func Open(loc store.Location, logger *log.Logger) (*Session, error) {
	st := store.New(loc)
	if err := st.Load(); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	doc := dom.New()
	eng, err := engine.New(st, doc, logger)
	if err != nil {
		return nil, err
	}
	eng.Render()
	return &Session{
		Store:  st,
		Doc:    doc,
		Engine: eng,
		Drag:   dragdrop.New(eng, doc),
	}, nil
}

// Query is the current query string.
func (s *Session) Query() string { return s.Store.Query().String() }
