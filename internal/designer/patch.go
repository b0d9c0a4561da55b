package designer

import "DF-DSGNR/internal/design"

// Patch types carry partial updates. Nil fields are left untouched so
// callers can send only what changed.

type ElementPatch struct {
	Label   *string              `json:"label,omitempty"`
	X       *float64             `json:"x,omitempty"`
	Y       *float64             `json:"y,omitempty"`
	Width   *float64             `json:"width,omitempty"`
	Height  *float64             `json:"height,omitempty"`
	Z       *int                 `json:"z,omitempty"`
	Visible *bool                `json:"visible,omitempty"`
	Locked  *bool                `json:"locked,omitempty"`
	Content *string              `json:"content,omitempty"`
	Field   *string              `json:"field,omitempty"`
	Src     *string              `json:"src,omitempty"`
	Stroke  *string              `json:"stroke,omitempty"`
	Shape   *string              `json:"shape,omitempty"`
	Table   *design.TableConfig  `json:"table,omitempty"`
	Totals  *design.TotalsConfig `json:"totals,omitempty"`
}

type StylePatch struct {
	FontFamily     *string  `json:"fontFamily,omitempty"`
	FontSize       *float64 `json:"fontSize,omitempty"`
	FontWeight     *string  `json:"fontWeight,omitempty"`
	FontStyle      *string  `json:"fontStyle,omitempty"`
	TextDecoration *string  `json:"textDecoration,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Background     *string  `json:"background,omitempty"`
	TextAlign      *string  `json:"textAlign,omitempty"`
	LineHeight     *float64 `json:"lineHeight,omitempty"`
	LetterSpacing  *float64 `json:"letterSpacing,omitempty"`
	TextTransform  *string  `json:"textTransform,omitempty"`
	Border         *string  `json:"border,omitempty"`
	BorderRadius   *float64 `json:"borderRadius,omitempty"`
	Padding        *float64 `json:"padding,omitempty"`
}

type PagePatch struct {
	Width   *float64        `json:"width,omitempty"`
	Height  *float64        `json:"height,omitempty"`
	Margins *design.Margins `json:"margins,omitempty"`
}

type GlobalStylesPatch struct {
	FontFamily      *string  `json:"fontFamily,omitempty"`
	FontSize        *float64 `json:"fontSize,omitempty"`
	Color           *string  `json:"color,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
}

func applyElementPatch(el *design.Element, p ElementPatch) {
	if p.Label != nil {
		el.Label = *p.Label
	}
	if p.X != nil {
		el.X = *p.X
	}
	if p.Y != nil {
		el.Y = *p.Y
	}
	if p.Width != nil {
		el.Width = *p.Width
	}
	if p.Height != nil {
		el.Height = *p.Height
	}
	if p.Z != nil {
		el.Z = *p.Z
	}
	if p.Visible != nil {
		el.Visible = *p.Visible
	}
	if p.Locked != nil {
		el.Locked = *p.Locked
	}
	if p.Content != nil {
		el.Content = *p.Content
	}
	if p.Field != nil {
		el.Field = *p.Field
	}
	if p.Src != nil {
		el.Src = *p.Src
	}
	if p.Stroke != nil {
		el.Stroke = *p.Stroke
	}
	if p.Shape != nil {
		el.Shape = *p.Shape
	}
	if p.Table != nil {
		el.Table = p.Table.Clone()
	}
	if p.Totals != nil {
		el.Totals = p.Totals.Clone()
	}
}

func applyStylePatch(st *design.ElementStyles, p StylePatch) {
	if p.FontFamily != nil {
		st.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		st.FontSize = *p.FontSize
	}
	if p.FontWeight != nil {
		st.FontWeight = *p.FontWeight
	}
	if p.FontStyle != nil {
		st.FontStyle = *p.FontStyle
	}
	if p.TextDecoration != nil {
		st.TextDecoration = *p.TextDecoration
	}
	if p.Color != nil {
		st.Color = *p.Color
	}
	if p.Background != nil {
		st.Background = *p.Background
	}
	if p.TextAlign != nil {
		st.TextAlign = *p.TextAlign
	}
	if p.LineHeight != nil {
		st.LineHeight = *p.LineHeight
	}
	if p.LetterSpacing != nil {
		st.LetterSpacing = *p.LetterSpacing
	}
	if p.TextTransform != nil {
		st.TextTransform = *p.TextTransform
	}
	if p.Border != nil {
		st.Border = *p.Border
	}
	if p.BorderRadius != nil {
		st.BorderRadius = *p.BorderRadius
	}
	if p.Padding != nil {
		st.Padding = *p.Padding
	}
}
