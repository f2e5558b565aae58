package router

import (
	"log"
	"net/url"
	"strings"
)

// QueryState is what a location asks the router to show. A non-empty ID
// selects the detail view and Query is ignored; an empty Query suppresses
// the frontpage search.
type QueryState struct {
	ID    string
	Query string
}

// ParseLocation reads the id and query parameters from a location such as
// "?query=falcon", "/?id=42" or a full URL. Unparsable input is logged and
// yields the zero state (the bare frontpage).
func ParseLocation(location string) QueryState {
	u, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		log.Printf("parse location %q: %v", location, err)
		return QueryState{}
	}
	qs := u.Query()
	return QueryState{
		ID:    strings.TrimSpace(qs.Get("id")),
		Query: qs.Get("query"),
	}
}

// resolve interprets href relative to the current location, the way a
// browser follows a link. The result keeps only path and query.
func resolve(current, href string) string {
	base, err := url.Parse(current)
	if err != nil || current == "" {
		base = &url.URL{Path: "/"}
	}
	if base.Path == "" {
		base.Path = "/"
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		log.Printf("parse link %q: %v", href, err)
		return base.RequestURI()
	}
	next := base.ResolveReference(ref)
	return next.RequestURI()
}
