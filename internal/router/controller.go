package router

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/view"
)

// Controller connects user actions to the router and the search pipeline.
// It is driven from the UI event loop; commands produced by event handlers
// are queued and handed back from the method that triggered them.
type Controller struct {
	body     *dom.Node
	renderer *view.Renderer
	router   *Router
	history  *History
	pending  []tea.Cmd
}

// NewController wires a controller for body.
func NewController(body *dom.Node, renderer *view.Renderer) *Controller {
	c := &Controller{body: body, renderer: renderer}
	c.router = New(body, renderer, c.onSearch)
	c.history = NewHistory("/")
	c.history.OnPopState(func(location string) {
		c.enqueue(c.router.Route(location))
	})
	return c
}

// Start renders the initial location.
func (c *Controller) Start(location string) tea.Cmd {
	location = resolve("/", location)
	c.history.Replace(location)
	return c.router.Route(location)
}

// Location returns the location currently shown.
func (c *Controller) Location() string {
	return c.history.Current()
}

// History exposes the navigation stack.
func (c *Controller) History() *History {
	return c.history
}

// Submit dispatches a submit event on form. Forms whose button is disabled
// (a search is pending) are not submitted.
func (c *Controller) Submit(form *dom.Node) tea.Cmd {
	if form == nil || form.Query("button[disabled]") != nil {
		return nil
	}
	form.Dispatch(dom.NewEvent("submit"))
	return c.flush()
}

// Follow navigates to href, resolved against the current location.
func (c *Controller) Follow(href string) tea.Cmd {
	next := resolve(c.history.Current(), href)
	c.history.Push(next)
	return c.router.Route(next)
}

// Back returns to the previous location, if any.
func (c *Controller) Back() tea.Cmd {
	if !c.history.Back() {
		return nil
	}
	return c.flush()
}

func (c *Controller) onSearch(e *dom.Event) {
	e.PreventDefault()
	form := e.Target
	if form == nil {
		return
	}
	input := form.Query("input")
	if input == nil {
		log.Printf("search form has no input")
		return
	}
	value, _ := input.Attr("value")
	c.enqueue(c.renderer.SearchAndRender(c.body, form, value))
}

func (c *Controller) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		c.pending = append(c.pending, cmd)
	}
}

func (c *Controller) flush() tea.Cmd {
	cmds := c.pending
	c.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
