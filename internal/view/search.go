package view

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/launches"
)

// SearchResult resumes a search once the API call has returned.
type SearchResult struct {
	Query     string
	Results   []launches.LaunchSummary
	Err       error
	RequestID string

	main      *dom.Node
	indicator *dom.Node
	button    *dom.Node
}

// SearchAndRender starts a search for query and renders it into the main
// element inside parent. form, when non-nil, has its button disabled until
// the search completes. The returned command performs the fetch; it is nil
// when there is no main element to render into.
func (r *Renderer) SearchAndRender(parent, form *dom.Node, query string) tea.Cmd {
	main := parent.Query("main")
	if main == nil {
		r.logf("search %q: no <main> element to render into", query)
		return nil
	}
	return r.search(main, form, query)
}

func (r *Renderer) search(main, form *dom.Node, query string) tea.Cmd {
	for _, prev := range main.QueryAll("." + ClassResults) {
		prev.Remove()
	}
	indicator, button := setLoading(main, form)
	req := r.begin(main, query)

	return func() tea.Msg {
		started := time.Now()
		results, err := r.source.SearchLaunches(req.ctx, query)
		if !errors.Is(err, context.Canceled) {
			r.report(Fetch{Kind: FetchSearch, Target: query, RequestID: req.id, Err: err}, started)
		}
		return SearchResult{
			Query:     query,
			Results:   results,
			Err:       err,
			RequestID: req.id,
			main:      main,
			indicator: indicator,
			button:    button,
		}
	}
}

// CompleteSearch renders a finished search and returns the new results
// list. Results of a superseded or released request are dropped and nil is
// returned.
func (r *Renderer) CompleteSearch(res SearchResult) *dom.Node {
	if res.main == nil || !r.settle(res.main, res.RequestID) {
		r.logf("search %q: discarding stale response %s", res.Query, res.RequestID)
		return nil
	}
	setNotLoading(res.main, res.indicator, res.button)

	switch {
	case res.Err != nil:
		r.logf("search %q failed: %v", res.Query, res.Err)
	case res.Results == nil:
		r.logf("search %q: source returned no result set", res.Query)
	}
	for _, prev := range res.main.QueryAll("." + ClassResults) {
		prev.Remove()
	}
	list := r.searchResults(res.Results, res.Err, res.Query)
	res.main.AppendChild(list)
	return list
}

func (r *Renderer) searchResults(results []launches.LaunchSummary, err error, query string) *dom.Node {
	list := dom.El("ul", dom.Attrs{"class": ClassResults})

	if err != nil || results == nil {
		list.AppendChild(dom.El("li", nil, fmt.Sprintf(textSearchError, query)))
		return list
	}
	if len(results) == 0 {
		list.AppendChild(dom.El("li", nil, fmt.Sprintf(textNoResults, query)))
		return list
	}
	for _, result := range results {
		list.AppendChild(dom.El("li", dom.Attrs{"class": ClassResult},
			dom.El("a", dom.Attrs{"href": "?id=" + url.QueryEscape(result.ID)}, r.clean(result.Name)),
			dom.El("p", dom.Attrs{"class": "status"}, textStatusPrefix, r.clean(result.Status.Name)),
			dom.El("p", dom.Attrs{"class": "mission"}, r.clean(result.Mission)),
		))
	}
	return list
}
