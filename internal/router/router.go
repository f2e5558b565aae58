package router

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/view"
)

// Router decides which page a location shows and renders it into body.
type Router struct {
	body     *dom.Node
	renderer *view.Renderer
	onSearch dom.Handler
}

// New builds a Router. onSearch is the submit handler given to search forms.
func New(body *dom.Node, renderer *view.Renderer, onSearch dom.Handler) *Router {
	return &Router{body: body, renderer: renderer, onSearch: onSearch}
}

// Route renders the page for location from scratch. Work still pending on
// the previous page is released first, so repeated calls never leave stale
// nodes behind. The returned command is the page's initial fetch, if any.
func (r *Router) Route(location string) tea.Cmd {
	state := ParseLocation(location)

	r.renderer.Release(r.body)
	r.body.Empty()

	if state.ID != "" {
		return r.renderer.RenderDetails(r.body, state.ID)
	}
	return r.renderer.RenderFrontpage(r.body, r.onSearch, state.Query)
}
