package compiler

import (
	"strings"

	"DF-DSGNR/internal/design"
)

// flowStyles targets narrow thermal stock: a fixed physical width, auto
// page height and monochrome bold print, since receipt printers render
// neither color nor weight variation reliably.
func flowStyles(d design.Design) string {
	page := d.PageSize
	g := d.GlobalStyles

	var b strings.Builder
	b.WriteString("@page { size: " + mm(page.Width) + " auto; margin: 0; }\n")
	b.WriteString("* { margin: 0; padding: 0; box-sizing: border-box; color: #000 !important; }\n")
	b.WriteString("body {\n")
	b.WriteString("  width: " + mm(page.ContentWidth()) + ";\n")
	b.WriteString("  margin: 0 auto;\n")
	b.WriteString("  padding: " + mm(page.Margins.Top) + " 0 " + mm(page.Margins.Bottom) + " 0;\n")
	if g.FontFamily != "" {
		b.WriteString("  font-family: " + g.FontFamily + ";\n")
	}
	if g.FontSize > 0 {
		b.WriteString("  font-size: " + pt(g.FontSize) + ";\n")
	}
	b.WriteString("  color: #000;\n")
	b.WriteString("  background: #fff;\n")
	b.WriteString("  font-weight: bold;\n")
	b.WriteString("}\n")
	b.WriteString(".row { display: flex; justify-content: space-between; gap: 2mm; }\n")
	b.WriteString(".cell { min-width: 0; }\n")
	b.WriteString(".el-text, .cell { white-space: pre-line; }\n")
	b.WriteString(".el-table { width: 100%; border-collapse: collapse; }\n")
	b.WriteString(".el-table th, .el-table td { padding: 0.5mm 0; vertical-align: top; text-align: left; }\n")
	b.WriteString(".el-table thead th { border-bottom: 1px dashed #000; }\n")
	b.WriteString(".el-divider { border: none; border-top: 1px dashed #000; margin: 1mm 0; }\n")
	b.WriteString(".el-totals, .el-summary { margin-top: 1mm; }\n")
	b.WriteString(".totals-row { display: flex; justify-content: space-between; }\n")
	b.WriteString(".totals-row.rule { border-top: 1px dashed #000; }\n")
	b.WriteString(".bold { font-weight: bold; }\n")
	b.WriteString("@media print { body { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }\n")
	return b.String()
}

// absoluteStyles produces one positioned page container sized to the
// page dimensions. Elements style themselves inline; global styles sit
// on the container so unset element styles inherit through the cascade.
func absoluteStyles(d design.Design) string {
	page := d.PageSize
	g := d.GlobalStyles

	bg := g.BackgroundColor
	if bg == "" {
		bg = "#ffffff"
	}

	var b strings.Builder
	b.WriteString("@page { size: " + mm(page.Width) + " " + mm(page.Height) + "; margin: 0; }\n")
	b.WriteString("* { box-sizing: border-box; }\n")
	b.WriteString("body { margin: 0; }\n")
	b.WriteString(".page {\n")
	b.WriteString("  position: relative;\n")
	b.WriteString("  width: " + mm(page.Width) + ";\n")
	b.WriteString("  height: " + mm(page.Height) + ";\n")
	b.WriteString("  margin: 0 auto;\n")
	b.WriteString("  overflow: hidden;\n")
	if g.FontFamily != "" {
		b.WriteString("  font-family: " + g.FontFamily + ";\n")
	}
	if g.FontSize > 0 {
		b.WriteString("  font-size: " + pt(g.FontSize) + ";\n")
	}
	if g.Color != "" {
		b.WriteString("  color: " + g.Color + ";\n")
	}
	b.WriteString("  background: " + bg + ";\n")
	b.WriteString("}\n")
	b.WriteString(".el { position: absolute; overflow: hidden; }\n")
	b.WriteString(".el-text { white-space: pre-line; }\n")
	b.WriteString(".el-table table, table.el-table { width: 100%; border-collapse: collapse; }\n")
	b.WriteString(".el-table th, .el-table td { padding: 1mm; vertical-align: top; }\n")
	b.WriteString(".el-table.zebra tbody tr:nth-child(even) { background: #f5f5f5; }\n")
	b.WriteString(".totals-row { display: flex; justify-content: space-between; }\n")
	b.WriteString(".totals-row.rule { border-top: 1px solid #000; }\n")
	b.WriteString(".bold { font-weight: 700; }\n")
	b.WriteString(".el-field-unbound { outline: 1px dashed #bbbbbb; }\n")
	b.WriteString("@media print { .page { page-break-after: always; } }\n")
	return b.String()
}
