// Package config loads liftoff's settings.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file given with --config, or ~/.config/liftoff/config.toml
//  3. LIFTOFF_* environment variables
//
// A missing config file is not an error. Empty values in the file fall back
// to the defaults.
//
// # Fields
//
//	api_url          launch API base URL (LIFTOFF_API_URL)
//	timeout_seconds  per-request HTTP timeout (LIFTOFF_TIMEOUT_SECONDS)
//	log_file         diagnostics log (LIFTOFF_LOG_FILE)
//
// Defaults: the Launch Library 2.2.0 development endpoint, a 10 second
// timeout, and ~/.local/state/liftoff/liftoff.log.
package config
