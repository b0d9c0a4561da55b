package compiler

import (
	"fmt"
	"strings"

	"DF-DSGNR/internal/design"
)

func renderAbsoluteRegion(els []design.Element) string {
	if len(els) == 0 {
		return ""
	}
	var b strings.Builder
	for _, el := range els {
		b.WriteString(renderAbsoluteElement(el))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAbsoluteElement places the element at its literal mm position.
// Every element carries the generic marker class plus a kind-specific
// one, so downstream styling can hook either.
func renderAbsoluteElement(el design.Element) string {
	pos := fmt.Sprintf("left:%s;top:%s;width:%s;height:%s;z-index:%d;",
		mm(el.X), mm(el.Y), mm(el.Width), mm(el.Height), el.Z)

	open := func(extraStyle string) string {
		return `<div class="el el-` + string(el.Kind) + `" style="` + pos + extraStyle + `">`
	}

	switch el.Kind {
	case design.KindText:
		return open(styleAttr(el.Styles)) + escapeText(el.Content) + `</div>`
	case design.KindField:
		return open(styleAttr(el.Styles)) + fieldBinding(el) + `</div>`
	case design.KindImage:
		return open(styleAttr(el.Styles)) + imageTag(el, "") + `</div>`
	case design.KindDivider:
		return open(dividerStyle(el)) + `</div>`
	case design.KindShape:
		return open(shapeStyle(el)) + `</div>`
	case design.KindTable:
		return open(styleAttr(el.Styles)) + renderAbsoluteTable(el) + `</div>`
	case design.KindTotals:
		return open(styleAttr(el.Styles)) + renderAbsoluteTotals(el) + `</div>`
	default:
		return open(styleAttr(el.Styles)) + `</div>`
	}
}

func shapeStyle(el design.Element) string {
	border := el.Styles.Border
	if border == "" {
		border = "1px solid #000000"
	}
	border = escapeText(border)
	style := "border:" + border + ";"
	if el.Styles.Background != "" {
		style += "background:" + escapeText(el.Styles.Background) + ";"
	}
	switch el.Shape {
	case "ellipse":
		style += "border-radius:50%;"
	case "line":
		style = "border:none;border-top:" + border + ";"
	}
	return style
}

// renderAbsoluteTable keeps the configured column widths as percentages
// and draws the configured border style on each cell.
func renderAbsoluteTable(el design.Element) string {
	cfg := el.Table
	if cfg == nil || len(cfg.Columns) == 0 {
		return "TABLE"
	}

	tableClass := "el-table"
	if cfg.Zebra {
		tableClass += " zebra"
	}
	cellBorder := borderRule(cfg.BorderStyle)

	var b strings.Builder
	b.WriteString(`<table class="` + tableClass + `">`)

	if cfg.ShowHeader {
		b.WriteString(`<thead><tr>`)
		for _, col := range cfg.Columns {
			b.WriteString(`<th style="`)
			b.WriteString(colStyle(col, cellBorder, cfg.HeaderFontSize))
			b.WriteString(`">`)
			b.WriteString(escapeText(col.Label))
			b.WriteString(`</th>`)
		}
		b.WriteString(`</tr></thead>`)
	}

	b.WriteString(`<tbody>{{#each items}}<tr>`)
	for _, col := range cfg.Columns {
		b.WriteString(`<td style="`)
		b.WriteString(colStyle(col, cellBorder, cfg.BodyFontSize))
		b.WriteString(`">`)
		b.WriteString(cellBinding(col))
		b.WriteString(`</td>`)
	}
	b.WriteString(`</tr>{{/each}}</tbody></table>`)
	return b.String()
}

func colStyle(col design.TableColumn, cellBorder string, fontSize float64) string {
	style := ""
	if col.Width > 0 {
		style += "width:" + num(col.Width) + "%;"
	}
	style += alignAttr(col.Align)
	style += cellBorder
	if fontSize > 0 {
		style += "font-size:" + pt(fontSize) + ";"
	}
	return style
}

func borderRule(borderStyle string) string {
	switch borderStyle {
	case design.BorderFull:
		return "border:1px solid #000000;"
	case design.BorderHorizontal:
		return "border-bottom:1px solid #000000;"
	default:
		return ""
	}
}

func renderAbsoluteTotals(el design.Element) string {
	cfg := el.Totals
	if cfg == nil || len(cfg.Rows) == 0 {
		return "TOTALS"
	}

	var b strings.Builder
	for _, row := range cfg.Rows {
		class := "totals-row"
		if row.Bold {
			class += " bold"
		}
		if cfg.BorderBeforeBold && row.Bold {
			class += " rule"
		}
		b.WriteString(`<div class="` + class + `"><span class="totals-label" style="`)
		b.WriteString(alignAttr(cfg.LabelAlign))
		b.WriteString(`">`)
		b.WriteString(escapeText(row.Label))
		b.WriteString(`</span><span class="totals-value">`)
		b.WriteString(totalsBinding(row))
		b.WriteString(`</span></div>`)
	}
	return b.String()
}
