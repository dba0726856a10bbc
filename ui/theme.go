package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// UI constants
const (
	DotSize      float32 = 12
	CornerRadius float32 = DotSize / 2
	TitleSize    float32 = 28
	CaptionSize  float32 = 16
)

var (
	// BrandColor is the accent used for the active dot and primary buttons.
	BrandColor = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	// DotColor is the colour of inactive dots.
	DotColor = color.NRGBA{R: 0xcb, G: 0xd5, B: 0xe1, A: 0xff}
	// SlideColor is the fallback slide background.
	SlideColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
)

// CustomTheme overrides the primary colour of the default theme.
type CustomTheme struct {
	fyne.Theme
	primary color.Color
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme(primary color.Color) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), primary: primary}
}

// Color returns the brand colour for primary elements and defers to the
// default theme otherwise.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return t.primary
	}
	return t.Theme.Color(name, variant)
}
