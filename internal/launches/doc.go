// Package launches is the HTTP client for the Launch Library 2 API.
//
// # Endpoints
//
//	GET {base}launch/?search=<query>&mode=list   search results
//	GET {base}launch/<id>/                      a single launch
//
// The base URL defaults to the Launch Library development server
// (https://lldev.thespacedevs.com/2.2.0/), which is rate limited far less
// aggressively than the production host. A bare host:port is accepted and
// gets an https scheme.
//
// # Errors
//
// Callers distinguish two failure signals:
//
//   - ErrNotFound (wrapped): the API answered 404 for the request
//   - any other error: transport failures, non-404 error statuses and
//     undecodable bodies ("returned status 503", "decode response: ...")
//
// Search never reports ErrNotFound for an empty result set; zero matches are
// an empty, non-nil slice.
//
// # Types
//
// The wire payloads (searchResponse, launchPayload) are private. They are
// mapped into LaunchSummary and LaunchDetail so the views never see JSON
// details such as a null mission.
package launches
