package designer

import (
	"math"

	"DF-DSGNR/internal/design"
)

// Vertical drop below the top margin for freshly added elements, in mm.
const addElementOffsetMM = 20.0

// AddElement synthesizes an element with kind defaults, centers it in
// the content area, stacks it on top, applies overrides last so they
// win, selects it alone and records an undo step. Returns the new id.
func (s *State) AddElement(kind design.ElementKind, overrides *ElementPatch) string {
	if !design.IsAllowedElementKind(kind) {
		return ""
	}

	el := defaultElement(kind, s.design.PageSize)
	el.Z = s.design.MaxZ() + 1
	if overrides != nil {
		applyElementPatch(&el, *overrides)
	}
	clampElement(&el)

	s.design.Elements = append(s.design.Elements, el)
	s.selection = map[string]bool{el.ID: true}
	s.dirty = true
	s.history.push(s.design)
	return el.ID
}

// UpdateElement shallow-merges the patch into the element. Continuous
// drags and resizes route through here, so no undo step is recorded.
// Locked elements ignore geometry fields.
func (s *State) UpdateElement(id string, patch ElementPatch) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	el := &s.design.Elements[idx]

	if el.Locked {
		patch.X, patch.Y, patch.Width, patch.Height = nil, nil, nil, nil
	}
	if s.snapToGrid {
		snapPatch(&patch, s.gridSize)
	}

	applyElementPatch(el, patch)
	clampElement(el)
	s.dirty = true
}

func (s *State) UpdateElementStyles(id string, patch StylePatch) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	applyStylePatch(&s.design.Elements[idx].Styles, patch)
	s.dirty = true
}

func (s *State) DeleteElement(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.design.Elements = append(s.design.Elements[:idx], s.design.Elements[idx+1:]...)
	delete(s.selection, id)
	s.dirty = true
	s.history.push(s.design)
}

func (s *State) DeleteSelectedElements() {
	if len(s.selection) == 0 {
		return
	}
	kept := s.design.Elements[:0]
	removed := false
	for _, el := range s.design.Elements {
		if s.selection[el.ID] {
			removed = true
			continue
		}
		kept = append(kept, el)
	}
	if !removed {
		return
	}
	s.design.Elements = kept
	s.selection = make(map[string]bool)
	s.dirty = true
	s.history.push(s.design)
}

// DuplicateElement deep-copies the element, offsets it by 5mm on both
// axes and selects only the copy. Returns the copy's id, or "" when the
// source id does not exist.
func (s *State) DuplicateElement(id string) string {
	idx := s.indexOf(id)
	if idx < 0 {
		return ""
	}

	dup := s.design.Elements[idx].Clone()
	dup.ID = design.NewElementID()
	dup.X += 5
	dup.Y += 5
	if dup.Label != "" {
		dup.Label += " (copy)"
	}
	dup.Z = s.design.MaxZ() + 1

	s.design.Elements = append(s.design.Elements, dup)
	s.selection = map[string]bool{dup.ID: true}
	s.dirty = true
	s.history.push(s.design)
	return dup.ID
}

func (s *State) MoveElementToFront(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.design.Elements[idx].Z = s.design.MaxZ() + 1
	s.dirty = true
	s.history.push(s.design)
}

// MoveElementToBack puts the element at z 0 and shifts every other
// element up by one, preserving their relative order.
func (s *State) MoveElementToBack(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	for i := range s.design.Elements {
		if i == idx {
			s.design.Elements[i].Z = 0
		} else {
			s.design.Elements[i].Z++
		}
	}
	s.dirty = true
	s.history.push(s.design)
}

func defaultElement(kind design.ElementKind, page design.PageSetup) design.Element {
	el := design.Element{
		ID:      design.NewElementID(),
		Kind:    kind,
		Visible: true,
	}

	switch kind {
	case design.KindText:
		el.Width, el.Height = 60, 8
		el.Content = "Text"
	case design.KindField:
		el.Width, el.Height = 50, 6
	case design.KindImage:
		el.Width, el.Height = 25, 25
	case design.KindTable:
		el.Width, el.Height = page.ContentWidth(), 60
		el.Table = defaultTableConfig()
	case design.KindDivider:
		el.Width, el.Height = page.ContentWidth(), design.MinElementMM
		el.Stroke = "solid"
	case design.KindTotals:
		el.Width, el.Height = 70, 28
		el.Totals = defaultTotalsConfig()
	case design.KindShape:
		el.Width, el.Height = 30, 20
		el.Shape = "rect"
	}

	el.X = page.Margins.Left + (page.ContentWidth()-el.Width)/2
	el.Y = page.Margins.Top + addElementOffsetMM
	return el
}

// Starter column set for a standard line-item table. Keys follow the
// field catalog so picker-made and default columns share one namespace.
func defaultTableConfig() *design.TableConfig {
	return &design.TableConfig{
		Columns: []design.TableColumn{
			{Key: "items.sno", Label: "#", Width: 8, Align: "center"},
			{Key: "items.name", Label: "Item", Width: 40},
			{Key: "items.qty", Label: "Qty", Width: 12, Align: "right", Format: design.FormatNumber},
			{Key: "items.rate", Label: "Rate", Width: 20, Align: "right", Format: design.FormatCurrency},
			{Key: "items.amount", Label: "Amount", Width: 20, Align: "right", Format: design.FormatCurrency},
		},
		ShowHeader:  true,
		BorderStyle: design.BorderFull,
	}
}

func defaultTotalsConfig() *design.TotalsConfig {
	return &design.TotalsConfig{
		Rows: []design.TotalsRow{
			{Label: "Subtotal", Key: "summary.subtotal", Format: design.FormatCurrency},
			{Label: "Grand Total", Key: "summary.grandTotal", Format: design.FormatCurrency, Bold: true},
		},
		LabelAlign:       "right",
		BorderBeforeBold: true,
	}
}

func clampElement(el *design.Element) {
	if el.X < 0 {
		el.X = 0
	}
	if el.Y < 0 {
		el.Y = 0
	}
	el.Width = design.ClampSize(el.Width)
	el.Height = design.ClampSize(el.Height)
}

func snapPatch(p *ElementPatch, grid float64) {
	if grid <= 0 {
		return
	}
	if p.X != nil {
		v := snapMM(*p.X, grid)
		p.X = &v
	}
	if p.Y != nil {
		v := snapMM(*p.Y, grid)
		p.Y = &v
	}
}

func snapMM(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}
