// Package app is the composition root for liftoff.
//
// Run loads configuration and preferences, points the standard logger at
// the log file (the terminal belongs to the TUI), builds the launch client,
// the fetch activity store, the view renderer and the router, then hands
// control to the UI until the user quits.
//
// # Components
//
//   - app.go: Run and start-up helpers
//   - probe.go: background connectivity probe
//
// # Connectivity Probe
//
// Two consecutive failed API calls mark the API offline in the header. While
// that holds, a background goroutine pings the API root every few seconds,
// doubling the wait after each failure up to 30 seconds. The first success
// is recorded in the store and clears the offline state. No probes are made
// while the API is healthy.
//
// # Error Handling
//
// Fatal errors, returned from Run:
//   - unreadable or invalid configuration
//   - log file that cannot be opened
//   - invalid API URL
//
// Recoverable errors, logged:
//   - unreadable preferences (defaults are used)
//   - failed API calls (shown in the page and the header)
package app
