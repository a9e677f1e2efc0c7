package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// TapSurface is a transparent full-size widget that turns taps anywhere on
// the window into actions. Overlay labels are not tappable, so taps on them
// fall through to the surface.
type TapSurface struct {
	widget.BaseWidget

	onTap          func()
	onSecondaryTap func()
}

// NewTapSurface creates a TapSurface. Either callback may be nil.
func NewTapSurface(onTap, onSecondaryTap func()) *TapSurface {
	t := &TapSurface{onTap: onTap, onSecondaryTap: onSecondaryTap}
	t.ExtendBaseWidget(t)
	return t
}

// Tapped handles a primary tap or click
func (t *TapSurface) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

// TappedSecondary handles a right click or long press
func (t *TapSurface) TappedSecondary(*fyne.PointEvent) {
	if t.onSecondaryTap != nil {
		t.onSecondaryTap()
	}
}

// Cursor shows a pointer over the surface on desktop
func (t *TapSurface) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer draws nothing; the surface only receives input
func (t *TapSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
