package compiler

import (
	"sort"

	"DF-DSGNR/internal/design"
)

// Artifacts is the compiled form of a design: three markup fragments and
// one style sheet, consumed by the downstream placeholder renderer.
type Artifacts struct {
	HeaderHTML string `json:"header_html"`
	BodyHTML   string `json:"body_html"`
	FooterHTML string `json:"footer_html"`
	StylesCSS  string `json:"styles_css"`
}

type LayoutMode string

const (
	FlowLayout     LayoutMode = "flow"
	AbsoluteLayout LayoutMode = "absolute"
)

// ModeFor picks the rendering strategy. Narrow pages get the flow
// layout for receipt stock, everything else keeps absolute positions.
func ModeFor(page design.PageSetup) LayoutMode {
	if page.IsNarrow() {
		return FlowLayout
	}
	return AbsoluteLayout
}

// Compile translates a design into its render artifacts. It is a pure
// function: the input design is never mutated and equal inputs produce
// equal outputs.
func Compile(d design.Design) Artifacts {
	header, body, footer := partition(d)

	if ModeFor(d.PageSize) == FlowLayout {
		return Artifacts{
			HeaderHTML: renderFlowRegion(header),
			BodyHTML:   renderFlowRegion(body),
			FooterHTML: renderFlowRegion(footer),
			StylesCSS:  flowStyles(d),
		}
	}

	return Artifacts{
		HeaderHTML: renderAbsoluteRegion(header),
		BodyHTML:   renderAbsoluteRegion(body),
		FooterHTML: renderAbsoluteRegion(footer),
		StylesCSS:  absoluteStyles(d),
	}
}

// regionState tracks where the partition scan currently is. The scan
// only ever moves forward: header until the first table, body until the
// first totals block, footer after.
type regionState int

const (
	regionStateHeader regionState = iota
	regionStateBody
	regionStateFooter
)

// partition classifies visible elements into header, body and footer.
// Elements are scanned in reading order (ascending y, ties by x).
// Placing a table or totals block is what moves the scan forward; the
// two of them always land in the body themselves, wherever they sit.
func partition(d design.Design) (header, body, footer []design.Element) {
	els := visibleByPosition(d.Elements)

	state := regionStateHeader
	for _, el := range els {
		switch el.Kind {
		case design.KindTable:
			if state == regionStateHeader {
				state = regionStateBody
			}
			body = append(body, el)
			continue
		case design.KindTotals:
			state = regionStateFooter
			body = append(body, el)
			continue
		}

		switch state {
		case regionStateHeader:
			header = append(header, el)
		case regionStateBody:
			body = append(body, el)
		case regionStateFooter:
			footer = append(footer, el)
		}
	}
	return header, body, footer
}

// visibleByPosition returns a sorted copy so Compile never reorders the
// caller's element list.
func visibleByPosition(els []design.Element) []design.Element {
	out := make([]design.Element, 0, len(els))
	for _, el := range els {
		if el.Visible {
			out = append(out, el)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
