package generator

import (
	"strings"
	"testing"

	"DF-DSGNR/internal/compiler"
	"DF-DSGNR/internal/design"
)

func allFlags() Flags {
	return Flags{
		ShowLogo:           true,
		ShowCompanyAddress: true,
		ShowGSTIN:          true,
		ShowBankDetails:    true,
		ShowSignature:      true,
		ShowTerms:          true,
		ShowItemHSN:        true,
		ShowLessColumn:     true,
	}
}

func kindsOf(d design.Design) []design.ElementKind {
	kinds := make([]design.ElementKind, 0, len(d.Elements))
	for _, el := range d.Elements {
		kinds = append(kinds, el.Kind)
	}
	return kinds
}

func TestGenerateFullSequence(t *testing.T) {
	flags := DefaultFlags() // everything on except the less column
	d := Generate(flags, 210)

	want := []design.ElementKind{
		design.KindImage,   // logo
		design.KindField,   // company name
		design.KindField,   // company address
		design.KindText,    // phone
		design.KindText,    // gstin
		design.KindDivider,
		design.KindText, // invoice no
		design.KindText, // date
		design.KindText, // bill to
		design.KindField, // party name
		design.KindField, // party address
		design.KindDivider,
		design.KindTable,
		design.KindTotals,
		design.KindText, // bank details
		design.KindText, // terms
		design.KindText, // signature
	}

	got := kindsOf(d)
	if len(got) != len(want) {
		t.Fatalf("element count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d kind = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestGenerateGatedBlocks(t *testing.T) {
	flags := allFlags()
	flags.ShowLogo = false
	flags.ShowGSTIN = false

	d := Generate(flags, 210)

	// full sequence is 17 elements, logo and gstin drop one each
	if len(d.Elements) != 15 {
		t.Fatalf("element count = %d, want 15", len(d.Elements))
	}
	for _, el := range d.Elements {
		if el.Kind == design.KindImage {
			t.Errorf("logo rendered despite show_logo=false")
		}
		if strings.Contains(el.Content, "GSTIN") {
			t.Errorf("gstin rendered despite show_gstin=false")
		}
	}
}

func TestGenerateCursorIncreases(t *testing.T) {
	flags := allFlags()
	flags.ShowLogo = false
	flags.ShowGSTIN = false

	d := Generate(flags, 210)

	pairs := 0
	for i := 1; i < len(d.Elements); i++ {
		prev, cur := d.Elements[i-1], d.Elements[i]
		if cur.Y == prev.Y {
			// only the invoice no / date pair shares a line
			pairs++
			if !strings.Contains(prev.Content, "Invoice No") || !strings.Contains(cur.Content, "Date") {
				t.Errorf("unexpected elements paired at y=%g: %q / %q", cur.Y, prev.Content, cur.Content)
			}
			continue
		}
		if cur.Y < prev.Y {
			t.Errorf("cursor moved up between element %d (y=%g) and %d (y=%g)", i-1, prev.Y, i, cur.Y)
		}
	}
	if pairs != 1 {
		t.Errorf("shared-line groups = %d, want exactly 1", pairs)
	}
}

func TestGenerateColumnFlags(t *testing.T) {
	tableOf := func(d design.Design) *design.TableConfig {
		for _, el := range d.Elements {
			if el.Kind == design.KindTable {
				return el.Table
			}
		}
		t.Fatalf("generated design has no items table")
		return nil
	}
	keysOf := func(cfg *design.TableConfig) []string {
		keys := make([]string, 0, len(cfg.Columns))
		for _, c := range cfg.Columns {
			keys = append(keys, c.Key)
		}
		return keys
	}

	d := Generate(allFlags(), 210)
	keys := strings.Join(keysOf(tableOf(d)), ",")
	if keys != "items.sno,items.name,items.hsn,items.qty,items.rate,items.less,items.amount" {
		t.Errorf("all-flags columns = %s", keys)
	}

	flags := allFlags()
	flags.ShowItemHSN = false
	flags.ShowLessColumn = false
	d = Generate(flags, 210)
	keys = strings.Join(keysOf(tableOf(d)), ",")
	if keys != "items.sno,items.name,items.qty,items.rate,items.amount" {
		t.Errorf("minimal columns = %s", keys)
	}
}

func TestGenerateNarrowLayout(t *testing.T) {
	d := Generate(DefaultFlags(), 80)

	if !d.PageSize.IsNarrow() {
		t.Fatalf("width 80 must produce a narrow page")
	}
	if d.PageSize.Margins.Left != 3 {
		t.Errorf("narrow margins = %+v, want the receipt preset", d.PageSize.Margins)
	}

	for _, el := range d.Elements {
		if el.X < 0 {
			t.Errorf("element %s (%s) at negative x %g", el.ID, el.Label, el.X)
		}
		if el.X+el.Width > d.PageSize.Width-d.PageSize.Margins.Right+0.01 {
			t.Errorf("element %s (%s) overflows the content area: x=%g w=%g", el.ID, el.Label, el.X, el.Width)
		}
	}

	// same block sequence on both stocks
	wide := Generate(DefaultFlags(), 210)
	if len(d.Elements) != len(wide.Elements) {
		t.Errorf("narrow count %d != wide count %d", len(d.Elements), len(wide.Elements))
	}
}

func TestGenerateRespectsMinimumSizes(t *testing.T) {
	for _, width := range []float64{58, 80, 210} {
		d := Generate(allFlags(), width)
		for _, el := range d.Elements {
			if el.Width < design.MinElementMM || el.Height < design.MinElementMM {
				t.Errorf("width %g: element %s (%s) is %gx%g", width, el.ID, el.Label, el.Width, el.Height)
			}
			if !el.Visible {
				t.Errorf("generated element %s not visible", el.ID)
			}
		}
	}
}

func TestGenerateUniqueIDsAndZ(t *testing.T) {
	d := Generate(DefaultFlags(), 210)

	ids := make(map[string]bool)
	zs := make(map[int]bool)
	for _, el := range d.Elements {
		if ids[el.ID] {
			t.Errorf("duplicate element id %s", el.ID)
		}
		ids[el.ID] = true
		if zs[el.Z] {
			t.Errorf("duplicate z %d", el.Z)
		}
		zs[el.Z] = true
	}
}

func TestGeneratedDesignCompiles(t *testing.T) {
	narrow := compiler.Compile(Generate(DefaultFlags(), 80))
	if !strings.Contains(narrow.BodyHTML, "{{#each items}}") {
		t.Errorf("narrow body lost the items loop")
	}
	if !strings.Contains(narrow.BodyHTML, "summary.balanceDue") {
		t.Errorf("narrow totals lost the account summary trailer")
	}
	if !strings.Contains(narrow.HeaderHTML, "{{company.name}}") {
		t.Errorf("narrow header lost the company name binding")
	}

	wide := compiler.Compile(Generate(DefaultFlags(), 210))
	if !strings.Contains(wide.HeaderHTML, "{{#if company.logo}}") {
		t.Errorf("wide header lost the logo guard")
	}
	if !strings.Contains(wide.BodyHTML, "{{formatCurrency summary.grandTotal}}") {
		t.Errorf("wide body lost the grand total binding")
	}
	if wide.StylesCSS == "" || narrow.StylesCSS == "" {
		t.Errorf("compiled styles must never be empty")
	}
}

func TestGeneratePageForWidth(t *testing.T) {
	d := Generate(DefaultFlags(), 210)
	if d.PageSize.Height != 297 || d.PageSize.Margins.Top != 10 {
		t.Errorf("width 210 must map to the a4 preset, got %+v", d.PageSize)
	}

	d = Generate(DefaultFlags(), 100)
	if !d.PageSize.IsNarrow() || d.PageSize.Width != 100 {
		t.Errorf("unlisted narrow width must keep its width, got %+v", d.PageSize)
	}
}
