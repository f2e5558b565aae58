package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
)

// RenderSearchForm builds the search form: one text input named "query",
// pre-filled with query, and one submit button. onSubmit handles "submit".
func RenderSearchForm(onSubmit dom.Handler, query string) *dom.Node {
	form := dom.El("form", nil,
		dom.El("input", dom.Attrs{"name": "query", "value": query}),
		dom.El("button", nil, textSearchButton),
	)
	form.AddEventListener("submit", onSubmit)
	return form
}

// RenderFrontpage appends the heading and search form, wrapped in a main
// element, to parent. A non-empty query is searched for straight away, with
// the new main element as the results container; the returned command is
// that search, or nil when no fetch is needed.
func (r *Renderer) RenderFrontpage(parent *dom.Node, onSubmit dom.Handler, query string) tea.Cmd {
	heading := dom.El("h1", dom.Attrs{"class": "heading"}, textHeading)
	form := RenderSearchForm(onSubmit, query)
	main := dom.El("main", nil, heading, form)
	parent.AppendChild(main)

	if query == "" {
		return nil
	}
	return r.search(main, form, query)
}
