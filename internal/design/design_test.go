package design

import (
	"reflect"
	"strings"
	"testing"
)

func sampleDesign() Design {
	d := NewDesign(DefaultPage())
	d.Elements = []Element{
		{
			ID: "el-1", Kind: KindText, Label: "Company Name",
			X: 10, Y: 12, Width: 90, Height: 8, Z: 0, Visible: true,
			Content: "Acme Traders",
			Styles:  ElementStyles{FontSize: 14, FontWeight: "bold"},
		},
		{
			ID: "el-2", Kind: KindField, Label: "Invoice No",
			X: 10, Y: 42, Width: 60, Height: 6, Z: 1, Visible: true,
			Field: "invoice.number",
		},
		{
			ID: "el-3", Kind: KindTable,
			X: 10, Y: 60, Width: 190, Height: 80, Z: 2, Visible: true,
			Table: &TableConfig{
				Columns: []TableColumn{
					{Key: "sno", Label: "#", Width: 8},
					{Key: "name", Label: "Item", Width: 52},
					{Key: "qty", Label: "Qty", Width: 10, Align: "right", Format: FormatNumber},
					{Key: "amount", Label: "Amount", Width: 30, Align: "right", Format: FormatCurrency},
				},
				ShowHeader:  true,
				BorderStyle: BorderFull,
			},
		},
		{
			ID: "el-4", Kind: KindTotals,
			X: 110, Y: 150, Width: 90, Height: 30, Z: 3, Visible: true,
			Totals: &TotalsConfig{
				Rows: []TotalsRow{
					{Label: "Subtotal", Key: "summary.subtotal", Format: FormatCurrency},
					{Label: "Grand Total", Key: "summary.grandTotal", Format: FormatCurrency, Bold: true},
				},
				BorderBeforeBold: true,
			},
		},
		{
			ID: "el-5", Kind: KindDivider,
			X: 10, Y: 36, Width: 190, Height: 3, Z: 4, Visible: true,
			Stroke: "dashed",
		},
	}
	return d
}

func TestExportImportRoundTrip(t *testing.T) {
	original := sampleDesign()

	text, err := ExportDesign(original)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	restored, err := ImportDesign(text)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if !reflect.DeepEqual(original, restored) {
		t.Fatalf("round trip changed the design:\noriginal: %#v\nrestored: %#v", original, restored)
	}
}

func TestExportNilElementsReimports(t *testing.T) {
	text, err := ExportDesign(Design{Version: 1, PageSize: DefaultPage()})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(text, `"elements": []`) {
		t.Errorf("nil element list must export as an empty one:\n%s", text)
	}

	restored, err := ImportDesign(text)
	if err != nil {
		t.Fatalf("reimport failed: %v", err)
	}
	if len(restored.Elements) != 0 {
		t.Errorf("unexpected elements: %#v", restored.Elements)
	}
}

func TestImportDesignStructuralCheck(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"not json", "{"},
		{"json array", `[1, 2, 3]`},
		{"missing version", `{"pageSize": {"width": 210}, "elements": []}`},
		{"missing elements", `{"version": 1, "pageSize": {"width": 210}}`},
		{"missing page size", `{"version": 1, "elements": []}`},
		{"null elements", `{"version": 1, "pageSize": {"width": 210}, "elements": null}`},
	}

	for _, tc := range cases {
		if _, err := ImportDesign(tc.text); err == nil {
			t.Errorf("%s: expected a format error, got none", tc.name)
		}
	}
}

func TestImportDesignIgnoresUnknownPayloadFields(t *testing.T) {
	text := `{"version": 1, "pageSize": {"width": 80, "height": 200}, "elements": [{"id": "el-9", "kind": "text", "futureField": 42}], "globalStyles": {}}`

	d, err := ImportDesign(text)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(d.Elements) != 1 || d.Elements[0].ID != "el-9" {
		t.Fatalf("unexpected elements: %#v", d.Elements)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := sampleDesign()
	clone := original.Clone()

	if !reflect.DeepEqual(original, clone) {
		t.Fatalf("clone differs from original")
	}

	clone.Elements[0].Content = "changed"
	clone.Elements[2].Table.Columns[0].Label = "changed"
	clone.Elements[3].Totals.Rows[0].Label = "changed"
	clone.PageSize.Width = 1

	if original.Elements[0].Content != "Acme Traders" {
		t.Errorf("element content aliased between clone and original")
	}
	if original.Elements[2].Table.Columns[0].Label != "#" {
		t.Errorf("table columns aliased between clone and original")
	}
	if original.Elements[3].Totals.Rows[0].Label != "Subtotal" {
		t.Errorf("totals rows aliased between clone and original")
	}
	if original.PageSize.Width != 210 {
		t.Errorf("page setup aliased between clone and original")
	}
}

func TestPresetPages(t *testing.T) {
	a4, ok := PresetPage("a4")
	if !ok {
		t.Fatalf("a4 preset missing")
	}
	if a4.Width != 210 || a4.Height != 297 {
		t.Errorf("a4 size got %gx%g, want 210x297", a4.Width, a4.Height)
	}
	if a4.IsNarrow() {
		t.Errorf("a4 must not be narrow")
	}

	for _, name := range []string{"receipt80", "receipt58"} {
		p, ok := PresetPage(name)
		if !ok {
			t.Fatalf("%s preset missing", name)
		}
		if !p.IsNarrow() {
			t.Errorf("%s must be narrow, width %g", name, p.Width)
		}
	}

	if _, ok := PresetPage("letter"); ok {
		t.Errorf("unknown preset must not resolve")
	}
}

func TestIsNarrowBoundary(t *testing.T) {
	if (PageSetup{Width: 120}).IsNarrow() {
		t.Errorf("width 120 must select the page layout")
	}
	if !(PageSetup{Width: 119.9}).IsNarrow() {
		t.Errorf("width 119.9 must select the flow layout")
	}
}

func TestNewElementIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewElementID()
		if !strings.HasPrefix(id, "el-") {
			t.Fatalf("unexpected id format: %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id: %s", id)
		}
		seen[id] = true
	}
}

func TestIsAllowedElementKind(t *testing.T) {
	for _, k := range AllowedElementKinds() {
		if !IsAllowedElementKind(k) {
			t.Errorf("kind %s must be allowed", k)
		}
	}
	if IsAllowedElementKind("banner") {
		t.Errorf("unknown kind must not be allowed")
	}
}

func TestClampSize(t *testing.T) {
	if got := ClampSize(1); got != MinElementMM {
		t.Errorf("ClampSize(1) = %g, want %g", got, MinElementMM)
	}
	if got := ClampSize(5); got != 5 {
		t.Errorf("ClampSize(5) = %g, want 5", got)
	}
}

func TestMaxZAndLookup(t *testing.T) {
	d := sampleDesign()
	if got := d.MaxZ(); got != 4 {
		t.Errorf("MaxZ = %d, want 4", got)
	}
	if got := (Design{}).MaxZ(); got != -1 {
		t.Errorf("MaxZ of empty design = %d, want -1", got)
	}

	el, ok := d.ElementByID("el-3")
	if !ok || el.Kind != KindTable {
		t.Errorf("lookup el-3 got %#v ok=%v", el, ok)
	}
	if _, ok := d.ElementByID("el-404"); ok {
		t.Errorf("lookup of unknown id must fail")
	}
}
