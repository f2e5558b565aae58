package view

import (
	"context"
	"html"
	"log"
	"regexp"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/launches"
)

// Phase is the state of a region that renders fetched data.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseRendered
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRendered:
		return "rendered"
	default:
		return "idle"
	}
}

// RegionState is the explicit view state of one results container.
type RegionState struct {
	Phase     Phase
	RequestID string
	Query     string
}

// FetchKind names the API call behind a Fetch.
type FetchKind string

const (
	FetchSearch FetchKind = "search"
	FetchLaunch FetchKind = "launch"
	// FetchPing is a connectivity probe made outside any view.
	FetchPing FetchKind = "ping"
)

// Fetch describes one finished API call.
type Fetch struct {
	Kind      FetchKind
	Target    string // query or launch id
	RequestID string
	Err       error
	Duration  time.Duration
}

// Options configure a Renderer.
type Options struct {
	Source  launches.Source
	Context context.Context
	// Logf receives operator-facing diagnostics; nil uses log.Printf.
	Logf func(format string, args ...any)
	// Observe is called from the fetch goroutine after every API call that
	// was not superseded.
	Observe func(Fetch)
	// NewID overrides request id generation (tests).
	NewID func() string
}

// Renderer builds the frontpage, result list and detail views and tracks
// which request currently owns each region.
type Renderer struct {
	source  launches.Source
	ctx     context.Context
	logf    func(format string, args ...any)
	observe func(Fetch)
	newID   func() string
	policy  *bluemonday.Policy

	regions map[*dom.Node]*region
}

type region struct {
	state  RegionState
	cancel context.CancelFunc
}

// request is the token handed to a fetch command.
type request struct {
	id  string
	ctx context.Context
}

// New builds a Renderer. Source must be non-nil.
func New(opts Options) *Renderer {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &Renderer{
		source:  opts.Source,
		ctx:     ctx,
		logf:    logf,
		observe: opts.Observe,
		newID:   newID,
		policy:  bluemonday.StrictPolicy(),
		regions: make(map[*dom.Node]*region),
	}
}

// State returns the current state of container.
func (r *Renderer) State(container *dom.Node) RegionState {
	if reg, ok := r.regions[container]; ok {
		return reg.state
	}
	return RegionState{}
}

// Release cancels and forgets every request owned by root or a node inside
// it. Completions for released requests are discarded.
func (r *Renderer) Release(root *dom.Node) {
	for node, reg := range r.regions {
		if root.Contains(node) {
			reg.cancel()
			delete(r.regions, node)
		}
	}
}

// Resume applies a completion message produced by a fetch command. It
// reports whether msg belonged to the renderer.
func (r *Renderer) Resume(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case SearchResult:
		r.CompleteSearch(msg)
		return true
	case DetailResult:
		r.CompleteDetails(msg)
		return true
	}
	return false
}

// begin registers a new request for container, superseding any request still
// in flight there.
func (r *Renderer) begin(container *dom.Node, target string) request {
	if prev, ok := r.regions[container]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(r.ctx)
	id := r.newID()
	r.regions[container] = &region{
		state:  RegionState{Phase: PhaseLoading, RequestID: id, Query: target},
		cancel: cancel,
	}
	return request{id: id, ctx: ctx}
}

// settle ends request id on container. It returns false when the request was
// superseded or released, in which case the caller must not touch the tree.
func (r *Renderer) settle(container *dom.Node, id string) bool {
	reg, ok := r.regions[container]
	if !ok || reg.state.RequestID != id {
		return false
	}
	reg.cancel()
	reg.state.Phase = PhaseRendered
	return true
}

func (r *Renderer) report(f Fetch, started time.Time) {
	if r.observe == nil {
		return
	}
	f.Duration = time.Since(started)
	r.observe(f)
}

// htmlElement matches an opening or closing tag of a real HTML element.
// Angle-bracketed text such as "<IFT-4>" is not markup.
var htmlElement = regexp.MustCompile(`(?i)</?(a|abbr|b|big|blockquote|br|code|del|div|em|font|h[1-6]|hr|i|iframe|img|ins|li|object|ol|p|pre|s|script|small|span|strike|strong|style|sub|sup|table|tbody|td|th|thead|tr|u|ul)(\s[^>]*)?/?>`)

// clean makes API-provided text safe for the terminal. Escape sequences are
// always stripped; markup is sanitised only when the text contains an HTML
// element, so plain text is shown exactly as returned.
func (r *Renderer) clean(s string) string {
	s = ansi.Strip(s)
	if !htmlElement.MatchString(s) {
		return s
	}
	return html.UnescapeString(r.policy.Sanitize(s))
}
