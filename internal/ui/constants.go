package ui

import (
	"image/color"
	"time"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
)

// Window sizing
const (
	WindowMinWidth  float32 = 800
	WindowMinHeight float32 = 600
)

// Overlay layout
const (
	AvatarSize     float32 = 32
	OverlayPadding float32 = 24
	QuoteMaxWidth  float32 = 720
)

// BackgroundGrey is shown when no image is available
var BackgroundGrey = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Scrim darkens the photo behind overlay text
var Scrim = color.RGBA{A: 90}

// Delays
const (
	// SettingsAppliedDelay lets the dialog close before the next run starts
	SettingsAppliedDelay = 200 * time.Millisecond
)
