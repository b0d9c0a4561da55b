package design

// Version is the design document format version written on export and
// required on import.
const Version = 1

// MinElementMM is the smallest width/height an element may have, in
// millimeters. Smaller boxes become impossible to grab in the editor.
const MinElementMM = 3.0

// NarrowWidthMM is the page-width threshold below which a design is
// treated as receipt stock: the compiler switches to the flow strategy
// and the generator emits the narrow default layout.
const NarrowWidthMM = 120.0

type ElementKind string

const (
	KindText    ElementKind = "text"
	KindField   ElementKind = "field"
	KindImage   ElementKind = "image"
	KindTable   ElementKind = "table"
	KindDivider ElementKind = "divider"
	KindTotals  ElementKind = "totals"
	KindShape   ElementKind = "shape"
)

func AllowedElementKinds() []ElementKind {
	return []ElementKind{
		KindText,
		KindField,
		KindImage,
		KindTable,
		KindDivider,
		KindTotals,
		KindShape,
	}
}

func IsAllowedElementKind(kind ElementKind) bool {
	for _, k := range AllowedElementKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

const (
	BorderFull       = "full"
	BorderHorizontal = "horizontal"
	BorderNone       = "none"
)

const (
	FormatCurrency = "currency"
	FormatNumber   = "number"
	FormatDate     = "date"
)

type Element struct {
	ID      string      `json:"id"`
	Kind    ElementKind `json:"kind"`
	Label   string      `json:"label,omitempty"` // editor display name, never rendered
	X       float64     `json:"x"`               // mm from page left
	Y       float64     `json:"y"`               // mm from page top
	Width   float64     `json:"width"`           // mm
	Height  float64     `json:"height"`          // mm
	Z       int         `json:"z"`
	Visible bool        `json:"visible"`
	Locked  bool        `json:"locked"`

	Content string        `json:"content,omitempty"` // text
	Field   string        `json:"field,omitempty"`   // dotted binding path, field kind
	Src     string        `json:"src,omitempty"`     // image
	Stroke  string        `json:"stroke,omitempty"`  // divider: solid | dashed
	Shape   string        `json:"shape,omitempty"`   // shape: rect | ellipse | line
	Table   *TableConfig  `json:"table,omitempty"`
	Totals  *TotalsConfig `json:"totals,omitempty"`

	Styles ElementStyles `json:"styles"`
}

// ElementStyles carries per-element overrides. Zero values mean "unset":
// the compiler falls back to the design's global styles.
type ElementStyles struct {
	FontFamily     string  `json:"fontFamily,omitempty"`
	FontSize       float64 `json:"fontSize,omitempty"` // pt
	FontWeight     string  `json:"fontWeight,omitempty"`
	FontStyle      string  `json:"fontStyle,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
	Color          string  `json:"color,omitempty"`
	Background     string  `json:"background,omitempty"`
	TextAlign      string  `json:"textAlign,omitempty"`
	LineHeight     float64 `json:"lineHeight,omitempty"`
	LetterSpacing  float64 `json:"letterSpacing,omitempty"` // px
	TextTransform  string  `json:"textTransform,omitempty"`
	Border         string  `json:"border,omitempty"`
	BorderRadius   float64 `json:"borderRadius,omitempty"` // mm
	Padding        float64 `json:"padding,omitempty"`      // mm
}

type TableColumn struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"` // percent of table width, not rescaled
	Align  string  `json:"align,omitempty"`
	Format string  `json:"format,omitempty"` // currency | number | date
}

type TableConfig struct {
	Columns        []TableColumn `json:"columns"`
	ShowHeader     bool          `json:"showHeader"`
	HeaderFontSize float64       `json:"headerFontSize,omitempty"` // pt
	BodyFontSize   float64       `json:"bodyFontSize,omitempty"`   // pt
	Zebra          bool          `json:"zebra"`
	BorderStyle    string        `json:"borderStyle"` // full | horizontal | none
}

type TotalsRow struct {
	Label  string `json:"label"`
	Key    string `json:"key"` // summary field binding
	Format string `json:"format,omitempty"`
	Bold   bool   `json:"bold"`
}

type TotalsConfig struct {
	Rows             []TotalsRow `json:"rows"`
	LabelAlign       string      `json:"labelAlign,omitempty"`
	BorderBeforeBold bool        `json:"borderBeforeBold"`
}

type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

type PageSetup struct {
	Width   float64 `json:"width"`  // mm
	Height  float64 `json:"height"` // mm, nominal for receipt stock
	Margins Margins `json:"margins"`
}

func (p PageSetup) ContentWidth() float64 {
	return p.Width - p.Margins.Left - p.Margins.Right
}

func (p PageSetup) IsNarrow() bool {
	return p.Width < NarrowWidthMM
}

type GlobalStyles struct {
	FontFamily      string  `json:"fontFamily"`
	FontSize        float64 `json:"fontSize"` // pt
	Color           string  `json:"color"`
	BackgroundColor string  `json:"backgroundColor"`
}

// Design is the aggregate persisted per template and the sole input of
// the compiler. Element list order carries no layout meaning; stacking
// comes from Z and vertical placement from Y.
type Design struct {
	Version      int          `json:"version"`
	PageSize     PageSetup    `json:"pageSize"`
	Elements     []Element    `json:"elements"`
	GlobalStyles GlobalStyles `json:"globalStyles"`
}

// MaxZ returns the highest z-index in the design, or -1 when empty.
func (d Design) MaxZ() int {
	max := -1
	for _, el := range d.Elements {
		if el.Z > max {
			max = el.Z
		}
	}
	return max
}

func (d Design) ElementByID(id string) (Element, bool) {
	for _, el := range d.Elements {
		if el.ID == id {
			return el, true
		}
	}
	return Element{}, false
}

// ClampSize raises width/height to the minimum manipulable size.
func ClampSize(v float64) float64 {
	if v < MinElementMM {
		return MinElementMM
	}
	return v
}
