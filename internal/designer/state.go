package designer

import (
	"sort"

	"DF-DSGNR/internal/design"
)

// State owns one editing session. It is the single source of truth for
// the live design and is not safe for concurrent use: one logical editor
// session owns it at a time, callers serialize access themselves.
type State struct {
	design     design.Design
	selection  map[string]bool
	zoom       float64
	dirty      bool
	showGrid   bool
	snapToGrid bool
	gridSize   float64 // mm
	history    *history
}

const (
	MinZoom = 0.25
	MaxZoom = 2.0

	defaultGridMM = 5.0
)

func New() *State {
	return NewFromDesign(design.NewDesign(design.DefaultPage()))
}

func NewFromDesign(d design.Design) *State {
	s := &State{
		design:     d.Clone(),
		selection:  make(map[string]bool),
		zoom:       1.0,
		showGrid:   true,
		snapToGrid: true,
		gridSize:   defaultGridMM,
	}
	s.history = newHistory(s.design)
	return s
}

// LoadDesign replaces the live design wholesale. Selection and dirty
// flag are reset and the history restarts at the loaded snapshot. View
// preferences (zoom, grid) survive the load.
func (s *State) LoadDesign(d design.Design) {
	s.design = d.Clone()
	s.selection = make(map[string]bool)
	s.dirty = false
	s.history.reset(s.design)
}

// GetDesign returns a deep, independent copy. Callers never alias the
// live design.
func (s *State) GetDesign() design.Design {
	return s.design.Clone()
}

func (s *State) Dirty() bool {
	return s.dirty
}

// MarkClean records that the current design has been persisted.
func (s *State) MarkClean() {
	s.dirty = false
}

func (s *State) SelectElement(id string, additive bool) {
	if _, ok := s.design.ElementByID(id); !ok {
		return
	}
	if !additive {
		s.selection = map[string]bool{id: true}
		return
	}
	if s.selection[id] {
		delete(s.selection, id)
	} else {
		s.selection[id] = true
	}
}

func (s *State) ClearSelection() {
	s.selection = make(map[string]bool)
}

// SelectedIDs returns the selection in sorted order.
func (s *State) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *State) IsSelected(id string) bool {
	return s.selection[id]
}

func (s *State) SetZoom(v float64) {
	if v < MinZoom {
		v = MinZoom
	}
	if v > MaxZoom {
		v = MaxZoom
	}
	s.zoom = v
}

func (s *State) Zoom() float64 {
	return s.zoom
}

func (s *State) ToggleGrid() bool {
	s.showGrid = !s.showGrid
	return s.showGrid
}

func (s *State) ToggleSnapToGrid() bool {
	s.snapToGrid = !s.snapToGrid
	return s.snapToGrid
}

func (s *State) GridVisible() bool {
	return s.showGrid
}

func (s *State) SnapEnabled() bool {
	return s.snapToGrid
}

func (s *State) GridSize() float64 {
	return s.gridSize
}

func (s *State) UpdateGlobalStyles(patch GlobalStylesPatch) {
	g := &s.design.GlobalStyles
	if patch.FontFamily != nil {
		g.FontFamily = *patch.FontFamily
	}
	if patch.FontSize != nil {
		g.FontSize = *patch.FontSize
	}
	if patch.Color != nil {
		g.Color = *patch.Color
	}
	if patch.BackgroundColor != nil {
		g.BackgroundColor = *patch.BackgroundColor
	}
	s.dirty = true
}

func (s *State) UpdatePageSetup(patch PagePatch) {
	p := &s.design.PageSize
	if patch.Width != nil && *patch.Width > 0 {
		p.Width = *patch.Width
	}
	if patch.Height != nil && *patch.Height > 0 {
		p.Height = *patch.Height
	}
	if patch.Margins != nil {
		p.Margins = *patch.Margins
	}
	s.dirty = true
}

// Undo steps the history cursor back and restores that snapshot. The
// restored state differs from the last save point, so the design is
// marked dirty again.
func (s *State) Undo() bool {
	d, ok := s.history.undo()
	if !ok {
		return false
	}
	s.design = d
	s.dirty = true
	s.pruneSelection()
	return true
}

func (s *State) Redo() bool {
	d, ok := s.history.redo()
	if !ok {
		return false
	}
	s.design = d
	s.dirty = true
	s.pruneSelection()
	return true
}

func (s *State) CanUndo() bool {
	return s.history.canUndo()
}

func (s *State) CanRedo() bool {
	return s.history.canRedo()
}

// pruneSelection drops ids that no longer exist after a history move.
func (s *State) pruneSelection() {
	for id := range s.selection {
		if _, ok := s.design.ElementByID(id); !ok {
			delete(s.selection, id)
		}
	}
}

func (s *State) indexOf(id string) int {
	for i := range s.design.Elements {
		if s.design.Elements[i].ID == id {
			return i
		}
	}
	return -1
}
