package compiler

import (
	"strconv"
	"strings"

	"DF-DSGNR/internal/design"
)

// escapeText handles the four markup-unsafe characters in literal text
// and attribute values. Placeholder expressions are emitted around
// escaped text, never through it: the downstream renderer owns escaping
// of substituted data.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mm(v float64) string {
	return num(v) + "mm"
}

func pt(v float64) string {
	return num(v) + "pt"
}

// styleAttr renders only the styles an element explicitly sets. Unset
// fields inherit from the page container through the CSS cascade, which
// is what gives "element override, else global default" resolution.
func styleAttr(st design.ElementStyles) string {
	var b strings.Builder

	add := func(prop, val string) {
		if val == "" {
			return
		}
		b.WriteString(prop)
		b.WriteString(":")
		b.WriteString(escapeText(val))
		b.WriteString(";")
	}

	add("font-family", st.FontFamily)
	if st.FontSize > 0 {
		add("font-size", pt(st.FontSize))
	}
	add("font-weight", st.FontWeight)
	add("font-style", st.FontStyle)
	add("text-decoration", st.TextDecoration)
	add("color", st.Color)
	add("background", st.Background)
	add("text-align", st.TextAlign)
	if st.LineHeight > 0 {
		add("line-height", num(st.LineHeight))
	}
	if st.LetterSpacing != 0 {
		add("letter-spacing", num(st.LetterSpacing)+"px")
	}
	add("text-transform", st.TextTransform)
	add("border", st.Border)
	if st.BorderRadius > 0 {
		add("border-radius", mm(st.BorderRadius))
	}
	if st.Padding > 0 {
		add("padding", mm(st.Padding))
	}

	return b.String()
}

// fieldBinding emits the placeholder for a field element. An element
// whose binding is still empty renders an empty marked span so the
// document stays valid while the user picks a field.
func fieldBinding(el design.Element) string {
	if el.Field == "" {
		return `<span class="el-field-unbound"></span>`
	}
	return "{{" + el.Field + "}}"
}

// imageTag wraps every image in the company-logo guard so rendered
// output drops the block entirely when no logo is configured.
func imageTag(el design.Element, extraStyle string) string {
	src := el.Src
	switch {
	case src == "":
		src = "{{company.logo}}"
	case !strings.Contains(src, "://") && !strings.HasPrefix(src, "data:"):
		// a dotted field path rather than a literal URL
		src = "{{" + src + "}}"
	default:
		src = escapeText(src)
	}

	style := "width:100%;height:100%;object-fit:contain;"
	if extraStyle != "" {
		style = extraStyle
	}
	return `{{#if company.logo}}<img class="el-image" src="` + src + `" style="` + style + `"/>{{/if}}`
}

// cellBinding picks the placeholder for one table column. Inside the
// items loop keys are relative, so a leading "items." is stripped. The
// serial-number column binds the loop counter instead of a data key.
func cellBinding(col design.TableColumn) string {
	key := strings.TrimPrefix(col.Key, "items.")
	if key == "sno" {
		return "{{inc @index}}"
	}
	switch col.Format {
	case design.FormatCurrency:
		return "{{formatCurrency " + key + "}}"
	case design.FormatNumber:
		return "{{formatNumber " + key + "}}"
	case design.FormatDate:
		return "{{formatDate " + key + "}}"
	default:
		return "{{" + key + "}}"
	}
}

// totalsBinding is the same dispatch for totals rows, which bind outside
// any loop and keep their full dotted keys.
func totalsBinding(row design.TotalsRow) string {
	if row.Key == "" {
		return ""
	}
	switch row.Format {
	case design.FormatCurrency:
		return "{{formatCurrency " + row.Key + "}}"
	case design.FormatNumber:
		return "{{formatNumber " + row.Key + "}}"
	case design.FormatDate:
		return "{{formatDate " + row.Key + "}}"
	default:
		return "{{" + row.Key + "}}"
	}
}

func dividerStyle(el design.Element) string {
	stroke := el.Stroke
	if stroke == "" {
		stroke = "solid"
	}
	color := el.Styles.Color
	if color == "" {
		color = "#000000"
	}
	return "border:none;border-top:1px " + escapeText(stroke) + " " + escapeText(color) + ";"
}

func alignAttr(align string) string {
	if align == "" {
		return ""
	}
	return "text-align:" + escapeText(align) + ";"
}
