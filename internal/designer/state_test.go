package designer

import (
	"reflect"
	"strings"
	"testing"

	"DF-DSGNR/internal/design"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }
func ptrB(v bool) *bool       { return &v }

func newTestState(t *testing.T) *State {
	t.Helper()
	return NewFromDesign(design.NewDesign(design.DefaultPage()))
}

func TestAddElementDefaults(t *testing.T) {
	s := newTestState(t)

	id := s.AddElement(design.KindText, nil)
	if id == "" {
		t.Fatalf("AddElement returned empty id")
	}

	d := s.GetDesign()
	if len(d.Elements) != 1 {
		t.Fatalf("element count = %d, want 1", len(d.Elements))
	}
	el := d.Elements[0]

	if el.ID != id || el.Kind != design.KindText || !el.Visible {
		t.Errorf("unexpected element: %#v", el)
	}
	// horizontally centered in the content area
	page := d.PageSize
	wantX := page.Margins.Left + (page.ContentWidth()-el.Width)/2
	if el.X != wantX {
		t.Errorf("x = %g, want %g", el.X, wantX)
	}
	if el.Y != page.Margins.Top+addElementOffsetMM {
		t.Errorf("y = %g, want %g", el.Y, page.Margins.Top+addElementOffsetMM)
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != id {
		t.Errorf("selection = %v, want [%s]", got, id)
	}
	if !s.Dirty() {
		t.Errorf("add must mark the design dirty")
	}
}

func TestAddElementOverridesWin(t *testing.T) {
	s := newTestState(t)

	id := s.AddElement(design.KindText, &ElementPatch{
		X:       ptrF(7),
		Y:       ptrF(11),
		Content: ptrS("Thank you!"),
	})

	el, _ := s.GetDesign().ElementByID(id)
	if el.X != 7 || el.Y != 11 || el.Content != "Thank you!" {
		t.Errorf("overrides not applied: %#v", el)
	}
}

func TestAddElementStacksOnTop(t *testing.T) {
	s := newTestState(t)

	s.AddElement(design.KindText, nil)
	s.AddElement(design.KindDivider, nil)
	id := s.AddElement(design.KindField, nil)

	el, _ := s.GetDesign().ElementByID(id)
	if el.Z != 2 {
		t.Errorf("z = %d, want 2", el.Z)
	}
}

func TestAddElementRejectsUnknownKind(t *testing.T) {
	s := newTestState(t)
	if id := s.AddElement("banner", nil); id != "" {
		t.Errorf("unknown kind produced element %s", id)
	}
	if len(s.GetDesign().Elements) != 0 {
		t.Errorf("unknown kind mutated the design")
	}
}

func TestTableDefaultsCarryStarterColumns(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindTable, nil)

	el, _ := s.GetDesign().ElementByID(id)
	if el.Table == nil {
		t.Fatalf("table element without table config")
	}
	keys := make([]string, 0, len(el.Table.Columns))
	for _, c := range el.Table.Columns {
		keys = append(keys, c.Key)
	}
	want := []string{"items.sno", "items.name", "items.qty", "items.rate", "items.amount"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("starter columns = %v, want %v", keys, want)
	}
}

func TestGeometryClamp(t *testing.T) {
	s := newTestState(t)

	id := s.AddElement(design.KindText, &ElementPatch{
		Width:  ptrF(0.5),
		Height: ptrF(-4),
	})
	s.AddElement(design.KindShape, &ElementPatch{X: ptrF(-20), Y: ptrF(-1)})

	s.UpdateElement(id, ElementPatch{Width: ptrF(1), Height: ptrF(2.9)})

	for _, el := range s.GetDesign().Elements {
		if el.Width < design.MinElementMM || el.Height < design.MinElementMM {
			t.Errorf("element %s is %gx%g, min is %g", el.ID, el.Width, el.Height, design.MinElementMM)
		}
		if el.X < 0 || el.Y < 0 {
			t.Errorf("element %s at (%g, %g), must be non-negative", el.ID, el.X, el.Y)
		}
	}
}

func TestZoomClamp(t *testing.T) {
	s := newTestState(t)

	for _, v := range []float64{3.5, -1, 0.5, 0, 1.25, 99} {
		s.SetZoom(v)
		if z := s.Zoom(); z < MinZoom || z > MaxZoom {
			t.Errorf("SetZoom(%g) left zoom at %g, outside [%g, %g]", v, z, MinZoom, MaxZoom)
		}
	}
	s.SetZoom(0.1)
	if s.Zoom() != MinZoom {
		t.Errorf("zoom = %g, want clamped to %g", s.Zoom(), MinZoom)
	}
	s.SetZoom(10)
	if s.Zoom() != MaxZoom {
		t.Errorf("zoom = %g, want clamped to %g", s.Zoom(), MaxZoom)
	}
}

func TestUpdateElementMergesAndSkipsHistory(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, nil)

	s.UpdateElement(id, ElementPatch{Content: ptrS("edited")})
	s.UpdateElement(id, ElementPatch{X: ptrF(20)})

	el, _ := s.GetDesign().ElementByID(id)
	if el.Content != "edited" || el.X != 20 {
		t.Errorf("patch not merged: %#v", el)
	}

	// field edits create no undo step: one undo returns to the empty design
	if !s.Undo() {
		t.Fatalf("undo failed")
	}
	if got := len(s.GetDesign().Elements); got != 0 {
		t.Errorf("after undo element count = %d, want 0 (updates must not stack history)", got)
	}
}

func TestUpdateElementUnknownIDIsNoop(t *testing.T) {
	s := newTestState(t)
	s.AddElement(design.KindText, nil)
	want := s.GetDesign()

	s.UpdateElement("el-missing", ElementPatch{X: ptrF(99)})
	s.UpdateElementStyles("el-missing", StylePatch{Color: ptrS("#ff0000")})
	s.DeleteElement("el-missing")
	s.MoveElementToFront("el-missing")
	s.MoveElementToBack("el-missing")
	if got := s.DuplicateElement("el-missing"); got != "" {
		t.Errorf("duplicate of missing id returned %q", got)
	}

	if !reflect.DeepEqual(want, s.GetDesign()) {
		t.Errorf("operations on a missing id mutated the design")
	}
}

func TestLockedElementIgnoresGeometry(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, &ElementPatch{X: ptrF(10), Y: ptrF(10)})
	s.UpdateElement(id, ElementPatch{Locked: ptrB(true)})

	s.UpdateElement(id, ElementPatch{X: ptrF(50), Width: ptrF(90), Content: ptrS("still editable")})

	el, _ := s.GetDesign().ElementByID(id)
	if el.X != 10 || el.Width != 60 {
		t.Errorf("locked element moved or resized: %#v", el)
	}
	if el.Content != "still editable" {
		t.Errorf("non-geometry patch must still apply to locked element")
	}
}

func TestSnapToGrid(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, nil)

	// snap is on by default, grid is 5mm
	s.UpdateElement(id, ElementPatch{X: ptrF(12.4), Y: ptrF(12.6)})
	el, _ := s.GetDesign().ElementByID(id)
	if el.X != 10 || el.Y != 15 {
		t.Errorf("snapped to (%g, %g), want (10, 15)", el.X, el.Y)
	}

	s.ToggleSnapToGrid()
	s.UpdateElement(id, ElementPatch{X: ptrF(12.4)})
	el, _ = s.GetDesign().ElementByID(id)
	if el.X != 12.4 {
		t.Errorf("x = %g with snap off, want 12.4", el.X)
	}
}

func TestUpdateElementStyles(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, nil)

	s.UpdateElementStyles(id, StylePatch{FontSize: ptrF(14), FontWeight: ptrS("bold")})
	s.UpdateElementStyles(id, StylePatch{Color: ptrS("#333333")})

	el, _ := s.GetDesign().ElementByID(id)
	if el.Styles.FontSize != 14 || el.Styles.FontWeight != "bold" || el.Styles.Color != "#333333" {
		t.Errorf("styles not merged: %#v", el.Styles)
	}
}

func TestDeleteElement(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, nil)
	keep := s.AddElement(design.KindDivider, nil)

	s.SelectElement(id, false)
	s.DeleteElement(id)

	d := s.GetDesign()
	if len(d.Elements) != 1 || d.Elements[0].ID != keep {
		t.Errorf("unexpected elements after delete: %#v", d.Elements)
	}
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("deleted element still selected")
	}
}

func TestDeleteSelectedElements(t *testing.T) {
	s := newTestState(t)
	a := s.AddElement(design.KindText, nil)
	b := s.AddElement(design.KindText, nil)
	keep := s.AddElement(design.KindText, nil)

	s.SelectElement(a, false)
	s.SelectElement(b, true)
	s.DeleteSelectedElements()

	d := s.GetDesign()
	if len(d.Elements) != 1 || d.Elements[0].ID != keep {
		t.Errorf("unexpected elements after bulk delete: %#v", d.Elements)
	}
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("selection not cleared after bulk delete")
	}

	// empty selection deletes nothing
	before := s.GetDesign()
	s.DeleteSelectedElements()
	if !reflect.DeepEqual(before, s.GetDesign()) {
		t.Errorf("bulk delete with empty selection mutated the design")
	}
}

func TestDuplicateElement(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindText, &ElementPatch{
		X:     ptrF(10),
		Y:     ptrF(20),
		Label: ptrS("Header"),
	})

	dupID := s.DuplicateElement(id)
	if dupID == "" || dupID == id {
		t.Fatalf("duplicate id = %q", dupID)
	}

	d := s.GetDesign()
	dup, _ := d.ElementByID(dupID)
	src, _ := d.ElementByID(id)

	if dup.X != src.X+5 || dup.Y != src.Y+5 {
		t.Errorf("duplicate at (%g, %g), want source +5mm on both axes", dup.X, dup.Y)
	}
	if dup.Label != "Header (copy)" {
		t.Errorf("duplicate label = %q", dup.Label)
	}
	if dup.Z <= src.Z {
		t.Errorf("duplicate z = %d, must stack above source z = %d", dup.Z, src.Z)
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != dupID {
		t.Errorf("selection = %v, want only the duplicate", got)
	}

	// unlabeled elements get no suffix
	plain := s.AddElement(design.KindDivider, nil)
	dupPlain, _ := s.GetDesign().ElementByID(s.DuplicateElement(plain))
	if dupPlain.Label != "" {
		t.Errorf("unlabeled duplicate label = %q, want empty", dupPlain.Label)
	}
}

func TestMoveElementToFront(t *testing.T) {
	s := newTestState(t)
	a := s.AddElement(design.KindText, nil)
	b := s.AddElement(design.KindText, nil)
	c := s.AddElement(design.KindText, nil)

	s.MoveElementToFront(a)

	d := s.GetDesign()
	elA, _ := d.ElementByID(a)
	elB, _ := d.ElementByID(b)
	elC, _ := d.ElementByID(c)
	if elA.Z <= elB.Z || elA.Z <= elC.Z {
		t.Errorf("front element z = %d, others %d and %d", elA.Z, elB.Z, elC.Z)
	}
}

func TestMoveElementToBack(t *testing.T) {
	s := newTestState(t)
	s.AddElement(design.KindText, nil)
	s.AddElement(design.KindText, nil)
	c := s.AddElement(design.KindText, nil)

	before := map[string]int{}
	for _, el := range s.GetDesign().Elements {
		before[el.ID] = el.Z
	}

	s.MoveElementToBack(c)

	for _, el := range s.GetDesign().Elements {
		if el.ID == c {
			if el.Z != 0 {
				t.Errorf("moved element z = %d, want 0", el.Z)
			}
			continue
		}
		if el.Z != before[el.ID]+1 {
			t.Errorf("element %s z = %d, want %d", el.ID, el.Z, before[el.ID]+1)
		}
	}
}

func TestSelection(t *testing.T) {
	s := newTestState(t)
	a := s.AddElement(design.KindText, nil)
	b := s.AddElement(design.KindText, nil)

	s.SelectElement(a, false)
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != a {
		t.Errorf("selection = %v, want [%s]", got, a)
	}

	s.SelectElement(b, true)
	if got := s.SelectedIDs(); len(got) != 2 {
		t.Errorf("additive select gave %v", got)
	}

	// additive select toggles membership
	s.SelectElement(b, true)
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != a {
		t.Errorf("toggle off gave %v", got)
	}

	s.SelectElement("el-missing", false)
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != a {
		t.Errorf("selecting a missing id changed selection to %v", got)
	}

	s.ClearSelection()
	if got := s.SelectedIDs(); len(got) != 0 {
		t.Errorf("selection not cleared: %v", got)
	}
}

func TestUndoRedoSymmetry(t *testing.T) {
	s := newTestState(t)

	// mixed structural sequence, well under the history cap
	a := s.AddElement(design.KindText, &ElementPatch{Label: ptrS("a")})
	b := s.AddElement(design.KindTable, nil)
	s.DuplicateElement(a)
	s.MoveElementToFront(a)
	s.MoveElementToBack(b)
	c := s.AddElement(design.KindTotals, nil)
	s.DeleteElement(c)
	s.DuplicateElement(b)
	n := 8

	want := s.GetDesign()

	for i := 0; i < n; i++ {
		s.Undo()
	}
	for i := 0; i < n; i++ {
		s.Redo()
	}

	if got := s.GetDesign(); !reflect.DeepEqual(want, got) {
		t.Errorf("undo x%d redo x%d did not restore the design", n, n)
	}
}

func TestUndoRedoBounds(t *testing.T) {
	s := newTestState(t)

	if s.CanUndo() || s.CanRedo() {
		t.Fatalf("fresh state must have no history to move through")
	}
	if s.Undo() || s.Redo() {
		t.Fatalf("undo/redo at the boundary must be no-ops")
	}

	s.AddElement(design.KindText, nil)
	if !s.CanUndo() {
		t.Fatalf("structural mutation must enable undo")
	}
	s.Undo()
	if s.CanUndo() {
		t.Errorf("single step undone, CanUndo must be false")
	}
	if !s.CanRedo() {
		t.Errorf("after undo, CanRedo must be true")
	}
}

func TestUndoRedoMarkDirty(t *testing.T) {
	s := newTestState(t)
	s.AddElement(design.KindText, nil)
	s.MarkClean()

	s.Undo()
	if !s.Dirty() {
		t.Errorf("undo must mark the design dirty")
	}

	s.MarkClean()
	s.Redo()
	if !s.Dirty() {
		t.Errorf("redo must mark the design dirty")
	}
}

func TestHistoryEvictsOldestBeyondCap(t *testing.T) {
	s := newTestState(t)

	for i := 0; i < 60; i++ {
		s.AddElement(design.KindText, nil)
	}

	undos := 0
	for s.Undo() {
		undos++
	}
	if undos != historyCap-1 {
		t.Errorf("undo steps = %d, want %d", undos, historyCap-1)
	}
	// 60 adds, oldest 11 states evicted: the floor keeps 11 elements
	if got := len(s.GetDesign().Elements); got != 11 {
		t.Errorf("design after exhausting undo has %d elements, want 11", got)
	}
}

func TestLoadDesignResetsSession(t *testing.T) {
	s := newTestState(t)
	s.AddElement(design.KindText, nil)
	s.SetZoom(1.5)

	loaded := design.NewDesign(design.DefaultPage())
	loaded.Elements = []design.Element{{
		ID: "el-loaded", Kind: design.KindText, X: 10, Y: 10,
		Width: 50, Height: 8, Visible: true, Content: "loaded",
	}}
	s.LoadDesign(loaded)

	if s.Dirty() {
		t.Errorf("load must clear the dirty flag")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Errorf("load must reset history to a single snapshot")
	}
	if len(s.SelectedIDs()) != 0 {
		t.Errorf("load must reset the selection")
	}
	if s.Zoom() != 1.5 {
		t.Errorf("view preferences must survive a load, zoom = %g", s.Zoom())
	}
	if _, ok := s.GetDesign().ElementByID("el-loaded"); !ok {
		t.Errorf("loaded design not installed")
	}

	// the engine must not alias the caller's design
	loaded.Elements[0].Content = "mutated by caller"
	el, _ := s.GetDesign().ElementByID("el-loaded")
	if el.Content != "loaded" {
		t.Errorf("engine aliases the loaded design")
	}
}

func TestGetDesignReturnsIndependentCopy(t *testing.T) {
	s := newTestState(t)
	id := s.AddElement(design.KindTable, nil)

	out := s.GetDesign()
	el, _ := out.ElementByID(id)
	el.Table.Columns[0].Label = "mutated"
	out.Elements[0].Content = "mutated"

	fresh, _ := s.GetDesign().ElementByID(id)
	if fresh.Table.Columns[0].Label == "mutated" {
		t.Errorf("GetDesign aliases internal table config")
	}
}

func TestUpdateGlobalStylesAndPageSetup(t *testing.T) {
	s := newTestState(t)
	s.MarkClean()

	s.UpdateGlobalStyles(GlobalStylesPatch{FontSize: ptrF(12)})
	d := s.GetDesign()
	if d.GlobalStyles.FontSize != 12 {
		t.Errorf("font size = %g, want 12", d.GlobalStyles.FontSize)
	}
	if d.GlobalStyles.FontFamily == "" {
		t.Errorf("untouched global style fields must survive the merge")
	}
	if !s.Dirty() {
		t.Errorf("global style edit must mark dirty")
	}

	s.UpdatePageSetup(PagePatch{Width: ptrF(80), Height: ptrF(200)})
	d = s.GetDesign()
	if d.PageSize.Width != 80 || d.PageSize.Height != 200 {
		t.Errorf("page = %gx%g, want 80x200", d.PageSize.Width, d.PageSize.Height)
	}
	if d.PageSize.Margins.Top != 10 {
		t.Errorf("margins must survive a width/height patch")
	}

	s.UpdatePageSetup(PagePatch{Width: ptrF(-5)})
	if s.GetDesign().PageSize.Width != 80 {
		t.Errorf("non-positive width must be ignored")
	}

	// neither edit creates an undo step
	if s.CanUndo() {
		t.Errorf("global/page edits must not push history")
	}
}

func TestSelectedIDsSorted(t *testing.T) {
	s := newTestState(t)
	a := s.AddElement(design.KindText, nil)
	b := s.AddElement(design.KindText, nil)
	s.SelectElement(b, false)
	s.SelectElement(a, true)

	ids := s.SelectedIDs()
	if len(ids) != 2 || strings.Compare(ids[0], ids[1]) > 0 {
		t.Errorf("selection ids not sorted: %v", ids)
	}
}
