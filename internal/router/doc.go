// Package router maps locations to pages and drives navigation.
//
// A location carries its state in the query string: ?id=<launch> shows the
// detail view, ?query=<text> shows the frontpage with a search already run,
// and anything else shows the bare frontpage. The Controller owns the
// in-memory History and turns submits, link follows and back navigation into
// renders.
package router
