package pipeline

// Package pipeline runs the acquisition chain: photo (remote with local
// fallback), then quote, then translation, committing each step to the
// presentation store. Weather is acquired independently.
