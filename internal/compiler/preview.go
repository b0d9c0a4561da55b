package compiler

import (
	"strings"

	"DF-DSGNR/internal/design"
)

// PreviewDocument assembles the artifacts into one standalone HTML page
// with placeholders left as-is. The preview surface and the PDF route
// both feed on this.
func PreviewDocument(d design.Design) string {
	a := Compile(d)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\"/>\n<style>\n")
	b.WriteString(a.StylesCSS)
	b.WriteString("</style>\n</head>\n<body>\n")

	if ModeFor(d.PageSize) == AbsoluteLayout {
		b.WriteString("<div class=\"page\">\n")
		b.WriteString(a.HeaderHTML)
		b.WriteString(a.BodyHTML)
		b.WriteString(a.FooterHTML)
		b.WriteString("</div>\n")
	} else {
		b.WriteString(a.HeaderHTML)
		b.WriteString(a.BodyHTML)
		b.WriteString(a.FooterHTML)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
