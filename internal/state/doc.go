// Package state owns the presentation state shown by the view layer.
//
// A single Store holds the current Snapshot. It changes only through the
// transition methods; run-scoped transitions carry the run ID issued by
// BeginRun and are rejected once a newer run has started. Listeners receive
// a copy of the snapshot through the configured Dispatcher after the lock
// is released.
package state
