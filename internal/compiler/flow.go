package compiler

import (
	"strings"

	"DF-DSGNR/internal/design"
)

// rowToleranceMM groups elements whose vertical positions differ by
// less than this into one flex row, so side-by-side pairs like
// "Invoice No." / "Date" stay on one printed line.
const rowToleranceMM = 0.5

func renderFlowRegion(els []design.Element) string {
	if len(els) == 0 {
		return ""
	}

	var b strings.Builder
	for _, row := range groupRows(els) {
		var inline []design.Element
		for _, el := range row {
			if isFlowBlock(el.Kind) {
				writeInlineRun(&b, inline)
				inline = inline[:0]
				b.WriteString(renderFlowBlock(el))
				b.WriteString("\n")
				continue
			}
			inline = append(inline, el)
		}
		writeInlineRun(&b, inline)
	}
	return b.String()
}

// isFlowBlock reports whether a kind always renders full width on
// receipt stock. Block kinds never join a shared flex row: row mates at
// the same y split around them.
func isFlowBlock(kind design.ElementKind) bool {
	switch kind {
	case design.KindTable, design.KindTotals, design.KindDivider:
		return true
	}
	return false
}

// writeInlineRun renders a run of row mates. A lone element keeps its
// plain block markup; two or more share one flex row.
func writeInlineRun(b *strings.Builder, els []design.Element) {
	if len(els) == 0 {
		return
	}
	if len(els) == 1 {
		b.WriteString(renderFlowBlock(els[0]))
		b.WriteString("\n")
		return
	}
	b.WriteString(`<div class="row">`)
	for _, el := range els {
		b.WriteString(`<div class="cell" style="`)
		b.WriteString(styleAttr(el.Styles))
		b.WriteString(`">`)
		b.WriteString(flowContent(el))
		b.WriteString(`</div>`)
	}
	b.WriteString("</div>\n")
}

// groupRows assumes the input is already sorted by y. A row is anchored
// at its first element's y.
func groupRows(els []design.Element) [][]design.Element {
	var rows [][]design.Element
	for _, el := range els {
		if n := len(rows); n > 0 && el.Y-rows[n-1][0].Y <= rowToleranceMM {
			rows[n-1] = append(rows[n-1], el)
			continue
		}
		rows = append(rows, []design.Element{el})
	}
	return rows
}

func renderFlowBlock(el design.Element) string {
	switch el.Kind {
	case design.KindTable:
		return renderFlowTable(el)
	case design.KindTotals:
		return renderFlowTotals(el)
	case design.KindDivider:
		return `<hr class="el-divider" style="` + dividerStyle(el) + `"/>`
	default:
		return `<div class="el-` + string(el.Kind) + `" style="` + styleAttr(el.Styles) + `">` +
			flowContent(el) + `</div>`
	}
}

func flowContent(el design.Element) string {
	switch el.Kind {
	case design.KindText:
		return escapeText(el.Content)
	case design.KindField:
		return fieldBinding(el)
	case design.KindImage:
		return imageTag(el, "max-width:100%;")
	default:
		return ""
	}
}

// renderFlowTable emits the items loop as a full-width block. Receipt
// stock keeps no column widths or border config, only alignment and the
// per-section font sizes.
func renderFlowTable(el design.Element) string {
	cfg := el.Table
	if cfg == nil || len(cfg.Columns) == 0 {
		return `<div class="el-table-missing">TABLE</div>`
	}

	var b strings.Builder
	b.WriteString(`<table class="el-table">`)

	if cfg.ShowHeader {
		b.WriteString(`<thead><tr>`)
		for _, col := range cfg.Columns {
			b.WriteString(`<th style="`)
			b.WriteString(alignAttr(col.Align))
			if cfg.HeaderFontSize > 0 {
				b.WriteString("font-size:" + pt(cfg.HeaderFontSize) + ";")
			}
			b.WriteString(`">`)
			b.WriteString(escapeText(col.Label))
			b.WriteString(`</th>`)
		}
		b.WriteString(`</tr></thead>`)
	}

	b.WriteString(`<tbody>{{#each items}}<tr>`)
	for _, col := range cfg.Columns {
		b.WriteString(`<td style="`)
		b.WriteString(alignAttr(col.Align))
		if cfg.BodyFontSize > 0 {
			b.WriteString("font-size:" + pt(cfg.BodyFontSize) + ";")
		}
		b.WriteString(`">`)
		b.WriteString(cellBinding(col))
		b.WriteString(`</td>`)
	}
	b.WriteString(`</tr>{{/each}}</tbody></table>`)
	return b.String()
}

// renderFlowTotals emits the configured rows, then the fixed account
// summary every receipt carries: old balance, bill amount, amount
// received and balance due. The trailer is not configurable.
func renderFlowTotals(el design.Element) string {
	cfg := el.Totals
	if cfg == nil || len(cfg.Rows) == 0 {
		return `<div class="el-totals-missing">TOTALS</div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="el-totals">`)
	for _, row := range cfg.Rows {
		b.WriteString(totalsRowMarkup(row.Label, totalsBinding(row), row.Bold, cfg.BorderBeforeBold && row.Bold))
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="el-summary">`)
	b.WriteString(totalsRowMarkup("Old Balance", "{{formatCurrency summary.oldBalance}}", false, false))
	b.WriteString(totalsRowMarkup("Bill Amount", "{{formatCurrency summary.billAmount}}", false, false))
	b.WriteString(totalsRowMarkup("Received", "{{formatCurrency summary.receivedAmount}}", false, false))
	b.WriteString(totalsRowMarkup("Balance Due", "{{formatCurrency summary.balanceDue}}", true, true))
	b.WriteString(`</div>`)
	return b.String()
}

func totalsRowMarkup(label, binding string, bold, rule bool) string {
	class := "totals-row"
	if bold {
		class += " bold"
	}
	if rule {
		class += " rule"
	}
	return `<div class="` + class + `"><span class="totals-label">` + escapeText(label) +
		`</span><span class="totals-value">` + binding + `</span></div>`
}
