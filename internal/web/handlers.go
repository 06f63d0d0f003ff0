package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/idilsaglam/checklist/internal/dragdrop"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
)

// RegisterRoutes mounts the mutation API.
func RegisterRoutes(r chi.Router, logger *log.Logger) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/lists", handleCreateList(logger))
		r.Post("/lists/{n}/items", handleAddItem(logger))
		r.Post("/lists/{n}/checks", handleToggleCheck(logger))
		r.Post("/lists/{n}/type", handleChangeType(logger))
		r.Post("/hover", handleHover(logger))
		r.Post("/drop", handleDrop(logger))
	})
}

type request struct {
	Query    string     `json:"query"`
	Name     string     `json:"name"`
	Value    string     `json:"value"`
	Position int        `json:"position"`
	Checked  bool       `json:"checked"`
	Type     string     `json:"type"`
	Source   *sourceDTO `json:"source"`
	Target   *targetDTO `json:"target"`
}

type sourceDTO struct {
	Kind     string `json:"kind"` // "list" | "item"
	List     int    `json:"list"`
	Position int    `json:"position"`
}

type targetDTO struct {
	Kind     string `json:"kind"` // "placeholder" | "list" | "container" | "item"
	Slot     int    `json:"slot"`
	List     int    `json:"list"`
	Position int    `json:"position"`
}

type response struct {
	Query   string     `json:"query"`
	Changed bool       `json:"changed"`
	HTML    string     `json:"html,omitempty"`
	Marker  *markerDTO `json:"marker,omitempty"`
}

type markerDTO struct {
	Kind     string `json:"kind"`
	List     int    `json:"list,omitempty"`
	Position int    `json:"position,omitempty"`
	Slot     int    `json:"slot"`
	// Element is the id of the element that shows the marker.
	Element string `json:"element,omitempty"`
}

func (s sourceDTO) source() (dragdrop.Source, error) {
	switch s.Kind {
	case "list":
		return dragdrop.ListSource(s.List), nil
	case "item":
		return dragdrop.ItemSource(s.List, s.Position), nil
	}
	return dragdrop.Source{}, fmt.Errorf("unknown source kind %q", s.Kind)
}

func (t targetDTO) target() (dragdrop.Target, error) {
	switch t.Kind {
	case "placeholder":
		return dragdrop.PlaceholderTarget(t.Slot), nil
	case "list":
		return dragdrop.ListTarget(t.List), nil
	case "container":
		return dragdrop.ContainerTarget(t.List), nil
	case "item":
		return dragdrop.ItemTarget(t.List, t.Position), nil
	}
	return dragdrop.Target{}, fmt.Errorf("unknown target kind %q", t.Kind)
}

func newMarkerDTO(m dragdrop.Marker) *markerDTO {
	out := &markerDTO{Kind: m.Kind.String(), List: m.List, Position: m.Position, Slot: m.Slot}
	switch m.Kind {
	case dragdrop.MarkerBeforeItem:
		out.Element = model.ItemID(m.List, m.Position)
	case dragdrop.MarkerAfterContainer:
		out.Element = containerID(m.List)
	case dragdrop.MarkerPlaceholder:
		out.Element = slotID(m.Slot)
	}
	return out
}

// mutation runs fn on a session opened from the request's query and writes
// the resulting query and lists fragment.
func mutation(logger *log.Logger, fn func(r *http.Request, req request, s *session.Session) (bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
			return
		}
		loc := store.NewMemoryLocation(req.Query)
		s, err := session.Open(loc, logger)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		changed, err := fn(r, req, s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		html, err := renderLists(s.Doc)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		q, _ := loc.Query()
		writeJSON(w, http.StatusOK, response{Query: q, Changed: changed, HTML: html})
	}
}

func listParam(r *http.Request) (int, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		return 0, fmt.Errorf("invalid list number %q", chi.URLParam(r, "n"))
	}
	return n, nil
}

func handleCreateList(logger *log.Logger) http.HandlerFunc {
	return mutation(logger, func(r *http.Request, req request, s *session.Session) (bool, error) {
		_, err := s.Engine.CreateList(req.Name)
		return err == nil, err
	})
}

func handleAddItem(logger *log.Logger) http.HandlerFunc {
	return mutation(logger, func(r *http.Request, req request, s *session.Session) (bool, error) {
		n, err := listParam(r)
		if err != nil {
			return false, err
		}
		return s.Engine.AddItem(n, req.Value)
	})
}

func handleToggleCheck(logger *log.Logger) http.HandlerFunc {
	return mutation(logger, func(r *http.Request, req request, s *session.Session) (bool, error) {
		n, err := listParam(r)
		if err != nil {
			return false, err
		}
		return s.Engine.ToggleCheck(n, req.Position, req.Checked)
	})
}

func handleChangeType(logger *log.Logger) http.HandlerFunc {
	return mutation(logger, func(r *http.Request, req request, s *session.Session) (bool, error) {
		n, err := listParam(r)
		if err != nil {
			return false, err
		}
		return s.Engine.ChangeListType(n, model.ListType(req.Type))
	})
}

func handleDrop(logger *log.Logger) http.HandlerFunc {
	return mutation(logger, func(r *http.Request, req request, s *session.Session) (bool, error) {
		src, over, err := dragArgs(req)
		if err != nil {
			return false, err
		}
		return s.Drag.Drop(src, over)
	})
}

// handleHover only computes the marker; it never touches the query.
func handleHover(logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
			return
		}
		src, over, err := dragArgs(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s, err := session.Open(store.NewMemoryLocation(req.Query), logger)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		m := s.Drag.Hover(src, over)
		writeJSON(w, http.StatusOK, response{Query: req.Query, Marker: newMarkerDTO(m)})
	}
}

func dragArgs(req request) (dragdrop.Source, dragdrop.Target, error) {
	if req.Source == nil || req.Target == nil {
		return dragdrop.Source{}, dragdrop.Target{}, fmt.Errorf("source and target are required")
	}
	src, err := req.Source.source()
	if err != nil {
		return dragdrop.Source{}, dragdrop.Target{}, err
	}
	over, err := req.Target.target()
	if err != nil {
		return dragdrop.Source{}, dragdrop.Target{}, err
	}
	return src, over, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
