package design

// Page presets in mm. Receipt heights are nominal: flow output does not
// fix a page height, the stock is cut to content.
var pagePresets = map[string]PageSetup{
	"a4": {
		Width:   210,
		Height:  297,
		Margins: Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
	},
	"a5": {
		Width:   148,
		Height:  210,
		Margins: Margins{Top: 8, Right: 8, Bottom: 8, Left: 8},
	},
	"receipt80": {
		Width:   80,
		Height:  200,
		Margins: Margins{Top: 3, Right: 3, Bottom: 3, Left: 3},
	},
	"receipt58": {
		Width:   58,
		Height:  200,
		Margins: Margins{Top: 3, Right: 2, Bottom: 3, Left: 2},
	},
}

func PresetPage(name string) (PageSetup, bool) {
	p, ok := pagePresets[name]
	return p, ok
}

func PresetNames() []string {
	return []string{"a4", "a5", "receipt80", "receipt58"}
}

func DefaultPage() PageSetup {
	return pagePresets["a4"]
}

func DefaultGlobalStyles() GlobalStyles {
	return GlobalStyles{
		FontFamily:      "Arial, sans-serif",
		FontSize:        10,
		Color:           "#000000",
		BackgroundColor: "#ffffff",
	}
}

// NewDesign returns an empty design for the given page with default
// global styles.
func NewDesign(page PageSetup) Design {
	return Design{
		Version:      Version,
		PageSize:     page,
		Elements:     []Element{},
		GlobalStyles: DefaultGlobalStyles(),
	}
}
