package ui

// Package ui contains the Fyne-based desktop user interface. It renders the
// presentation store (background photo, typed quote, translation, weather and
// attribution), turns taps into new acquisition runs and edits settings. All
// UI strings are localized via Localization.
