package generator

import "DF-DSGNR/internal/design"

// Generate synthesizes a ready-to-edit default design for the given
// page width. The block sequence is fixed; flags switch individual
// blocks off. Skipped blocks advance no cursor space.
func Generate(flags Flags, pageWidth float64) design.Design {
	g := &generator{
		flags: flags,
		page:  pageFor(pageWidth),
	}
	g.narrow = g.page.IsNarrow()
	g.y = g.page.Margins.Top
	g.build()

	d := design.NewDesign(g.page)
	d.Elements = g.els
	return d
}

func pageFor(width float64) design.PageSetup {
	for _, name := range design.PresetNames() {
		if p, ok := design.PresetPage(name); ok && p.Width == width {
			return p
		}
	}
	if width < design.NarrowWidthMM {
		return design.PageSetup{
			Width:   width,
			Height:  200,
			Margins: design.Margins{Top: 3, Right: 3, Bottom: 3, Left: 3},
		}
	}
	return design.PageSetup{
		Width:   width,
		Height:  297,
		Margins: design.Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}
}

type generator struct {
	flags  Flags
	page   design.PageSetup
	narrow bool
	y      float64
	z      int
	els    []design.Element
}

func (g *generator) spacing() float64 {
	if g.narrow {
		return 2
	}
	return 3
}

// add assigns identity and stacking, appends the element and advances
// the cursor past it.
func (g *generator) add(el design.Element) {
	el.ID = design.NewElementID()
	el.Z = g.z
	el.Visible = true
	g.z++
	g.els = append(g.els, el)
	g.y += el.Height + g.spacing()
}

// addPair places two elements on one line, splitting the content area
// in half, and advances the cursor once.
func (g *generator) addPair(left, right design.Element) {
	half := (g.page.ContentWidth() - g.spacing()) / 2

	left.X = g.page.Margins.Left
	left.Y = g.y
	left.Width = half

	right.X = g.page.Margins.Left + half + g.spacing()
	right.Y = g.y
	right.Width = half
	right.Styles.TextAlign = "right"

	h := left.Height
	if right.Height > h {
		h = right.Height
	}

	for _, el := range []design.Element{left, right} {
		el.ID = design.NewElementID()
		el.Z = g.z
		el.Visible = true
		g.z++
		g.els = append(g.els, el)
	}
	g.y += h + g.spacing()
}

func (g *generator) fullWidth() float64 {
	return g.page.ContentWidth()
}

func (g *generator) build() {
	left := g.page.Margins.Left

	if g.flags.ShowLogo {
		logoW, logoH := 30.0, 15.0
		if g.narrow {
			logoW, logoH = 20.0, 12.0
		}
		g.add(design.Element{
			Kind:   design.KindImage,
			Label:  "Logo",
			X:      left + (g.fullWidth()-logoW)/2,
			Y:      g.y,
			Width:  logoW,
			Height: logoH,
		})
	}

	nameSize := 16.0
	if g.narrow {
		nameSize = 12
	}
	g.add(design.Element{
		Kind: design.KindField, Label: "Company Name",
		X: left, Y: g.y, Width: g.fullWidth(), Height: 8,
		Field:  "company.name",
		Styles: design.ElementStyles{FontSize: nameSize, FontWeight: "bold", TextAlign: "center"},
	})

	if g.flags.ShowCompanyAddress {
		g.add(design.Element{
			Kind: design.KindField, Label: "Company Address",
			X: left, Y: g.y, Width: g.fullWidth(), Height: 10,
			Field:  "company.address",
			Styles: design.ElementStyles{TextAlign: "center"},
		})
	}

	g.add(design.Element{
		Kind: design.KindText, Label: "Phone",
		X: left, Y: g.y, Width: g.fullWidth(), Height: 5,
		Content: "Phone: {{company.phone}}",
		Styles:  design.ElementStyles{TextAlign: "center"},
	})

	if g.flags.ShowGSTIN {
		g.add(design.Element{
			Kind: design.KindText, Label: "GSTIN",
			X: left, Y: g.y, Width: g.fullWidth(), Height: 5,
			Content: "GSTIN: {{company.gstin}}",
			Styles:  design.ElementStyles{TextAlign: "center"},
		})
	}

	g.add(design.Element{
		Kind: design.KindDivider,
		X:    left, Y: g.y, Width: g.fullWidth(), Height: design.MinElementMM,
		Stroke: "dashed",
	})

	g.addPair(
		design.Element{
			Kind: design.KindText, Label: "Invoice No",
			Height:  5,
			Content: "Invoice No: {{invoice.number}}",
		},
		design.Element{
			Kind: design.KindText, Label: "Date",
			Height:  5,
			Content: "Date: {{formatDate invoice.date}}",
		},
	)

	g.add(design.Element{
		Kind: design.KindText, Label: "Bill To",
		X: left, Y: g.y, Width: g.fullWidth(), Height: 5,
		Content: "Bill To:",
		Styles:  design.ElementStyles{FontWeight: "bold"},
	})

	g.add(design.Element{
		Kind: design.KindField, Label: "Party Name",
		X: left, Y: g.y, Width: g.fullWidth(), Height: 6,
		Field:  "party.name",
		Styles: design.ElementStyles{FontWeight: "bold"},
	})

	g.add(design.Element{
		Kind: design.KindField, Label: "Party Address",
		X: left, Y: g.y, Width: g.fullWidth(), Height: 10,
		Field: "party.address",
	})

	g.add(design.Element{
		Kind: design.KindDivider,
		X:    left, Y: g.y, Width: g.fullWidth(), Height: design.MinElementMM,
		Stroke: "dashed",
	})

	tableH := 70.0
	if g.narrow {
		tableH = 50
	}
	g.add(design.Element{
		Kind: design.KindTable, Label: "Items",
		X: left, Y: g.y, Width: g.fullWidth(), Height: tableH,
		Table: g.itemsTable(),
	})

	totalsW := 80.0
	totalsX := g.page.Width - g.page.Margins.Right - totalsW
	if g.narrow {
		totalsW = g.fullWidth()
		totalsX = left
	}
	g.add(design.Element{
		Kind: design.KindTotals, Label: "Totals",
		X: totalsX, Y: g.y, Width: totalsW, Height: 24,
		Totals: &design.TotalsConfig{
			Rows: []design.TotalsRow{
				{Label: "Subtotal", Key: "summary.subtotal", Format: design.FormatCurrency},
				{Label: "Tax", Key: "summary.tax", Format: design.FormatCurrency},
				{Label: "Grand Total", Key: "summary.grandTotal", Format: design.FormatCurrency, Bold: true},
			},
			LabelAlign:       "right",
			BorderBeforeBold: true,
		},
	})

	if g.flags.ShowBankDetails {
		g.add(design.Element{
			Kind: design.KindText, Label: "Bank Details",
			X: left, Y: g.y, Width: g.fullWidth(), Height: 14,
			Content: "Bank: {{company.bankName}}\nA/C No: {{company.bankAccount}}\nIFSC: {{company.bankIfsc}}",
		})
	}

	if g.flags.ShowTerms {
		g.add(design.Element{
			Kind: design.KindText, Label: "Terms",
			X: left, Y: g.y, Width: g.fullWidth(), Height: 12,
			Content: "Terms & Conditions:\n{{company.terms}}",
			Styles:  design.ElementStyles{FontSize: 8},
		})
	}

	if g.flags.ShowSignature {
		sigW := 60.0
		sigX := g.page.Width - g.page.Margins.Right - sigW
		if g.narrow {
			sigW = g.fullWidth()
			sigX = left
		}
		g.add(design.Element{
			Kind: design.KindText, Label: "Signature",
			X: sigX, Y: g.y, Width: sigW, Height: 16,
			Content: "For {{company.name}}\n\n\nAuthorised Signatory",
			Styles:  design.ElementStyles{TextAlign: "right"},
		})
	}
}

// itemsTable builds the line-item column set. The HSN and deduction
// columns come and go with their flags, the rest is fixed.
func (g *generator) itemsTable() *design.TableConfig {
	cols := []design.TableColumn{
		{Key: "items.sno", Label: "#", Width: 6, Align: "center"},
		{Key: "items.name", Label: "Item", Width: 34},
	}
	if g.flags.ShowItemHSN {
		cols = append(cols, design.TableColumn{Key: "items.hsn", Label: "HSN", Width: 10, Align: "center"})
	}
	cols = append(cols,
		design.TableColumn{Key: "items.qty", Label: "Qty", Width: 10, Align: "right", Format: design.FormatNumber},
		design.TableColumn{Key: "items.rate", Label: "Rate", Width: 14, Align: "right", Format: design.FormatCurrency},
	)
	if g.flags.ShowLessColumn {
		cols = append(cols, design.TableColumn{Key: "items.less", Label: "Less", Width: 12, Align: "right", Format: design.FormatCurrency})
	}
	cols = append(cols, design.TableColumn{Key: "items.amount", Label: "Amount", Width: 16, Align: "right", Format: design.FormatCurrency})

	headerSize := 0.0
	bodySize := 0.0
	if g.narrow {
		headerSize = 8
		bodySize = 8
	}
	return &design.TableConfig{
		Columns:        cols,
		ShowHeader:     true,
		HeaderFontSize: headerSize,
		BodyFontSize:   bodySize,
		Zebra:          false,
		BorderStyle:    design.BorderHorizontal,
	}
}
