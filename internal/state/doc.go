// Package state keeps a thread-safe record of API activity for the UI.
//
// Fetch commands run on bubbletea's command goroutines and report each
// finished call through Store.Record; the header reads Store.Snapshot on
// every render. Snapshots are returned by value and the recorded error is
// wrapped afresh, so callers never share mutable state with the store.
//
// Two consecutive failures mark the API offline until a call succeeds.
package state
