package model

// Package model defines domain data structures shared across the app: photos,
// quotes, translations, weather summaries, credentials and the acquisition
// phase enum. Structures are plain values so the UI can bind them directly.
