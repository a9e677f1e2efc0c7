package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayTheme draws light, larger text meant to sit on top of a photo
type OverlayTheme struct{}

// NewOverlayTheme creates a new overlay theme
func NewOverlayTheme() fyne.Theme {
	return &OverlayTheme{}
}

// Color returns theme colors
func (t *OverlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameBackground:
		return BackgroundGrey
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 214, B: 102, A: 255}
	case theme.ColorNameShadow:
		return color.RGBA{A: 160}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *OverlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *OverlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with a larger body text
func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 16
	case theme.SizeNameHeadingText:
		return 28
	case theme.SizeNameSubHeadingText:
		return 20
	case theme.SizeNameCaptionText:
		return 12
	}

	return theme.DefaultTheme().Size(name)
}
