package theme

import "github.com/pazarplus/toastkit/pkg/toast"

// Palette holds the CSS color tokens for one variant.
type Palette struct {
	Background string `yaml:"background"`
	Icon       string `yaml:"icon"`
	Progress   string `yaml:"progress"`
}

// Style is the full render contract for one variant: colors, icon glyph and
// the ARIA attributes assistive technology relies on.
type Style struct {
	Icon       string
	Palette    Palette
	Role       string
	AriaLive   string
	CloseLabel string
}

// defaultStyles defines the four supported variants. Error toasts announce
// assertively; everything else is polite.
var defaultStyles = map[toast.Variant]Style{
	toast.VariantSuccess: {
		Icon:       "✓",
		Palette:    Palette{Background: "#16a34a", Icon: "#dcfce7", Progress: "#86efac"},
		Role:       "alert",
		AriaLive:   "polite",
		CloseLabel: "Close success notification",
	},
	toast.VariantError: {
		Icon:       "✕",
		Palette:    Palette{Background: "#dc2626", Icon: "#fee2e2", Progress: "#fca5a5"},
		Role:       "alert",
		AriaLive:   "assertive",
		CloseLabel: "Close error notification",
	},
	toast.VariantWarning: {
		Icon:       "⚠",
		Palette:    Palette{Background: "#ca8a04", Icon: "#fef9c3", Progress: "#fde047"},
		Role:       "alert",
		AriaLive:   "polite",
		CloseLabel: "Close warning notification",
	},
	toast.VariantInfo: {
		Icon:       "ℹ",
		Palette:    Palette{Background: "#2563eb", Icon: "#dbeafe", Progress: "#93c5fd"},
		Role:       "alert",
		AriaLive:   "polite",
		CloseLabel: "Close notification",
	},
}

// Theme resolves variants to styles, optionally with palette overrides.
type Theme struct {
	styles map[toast.Variant]Style
}

// New returns a theme with the built-in styles.
func New() *Theme {
	styles := make(map[toast.Variant]Style, len(defaultStyles))
	for v, s := range defaultStyles {
		styles[v] = s
	}
	return &Theme{styles: styles}
}

// Style resolves a variant. Unknown variants degrade to the info style.
func (t *Theme) Style(v toast.Variant) Style {
	if s, ok := t.styles[toast.ParseVariant(string(v))]; ok {
		return s
	}
	return t.styles[toast.VariantInfo]
}

// Lookup resolves a variant against the built-in theme.
func Lookup(v toast.Variant) Style {
	return defaultStyles[toast.ParseVariant(string(v))]
}
