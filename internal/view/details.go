package view

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/launches"
)

// DetailResult resumes a detail view once the API call has returned.
type DetailResult struct {
	ID        string
	Launch    *launches.LaunchDetail
	Err       error
	RequestID string

	parent    *dom.Node
	indicator *dom.Node
}

// RenderDetails shows a loading indicator in parent and returns the command
// that fetches launch id.
func (r *Renderer) RenderDetails(parent *dom.Node, id string) tea.Cmd {
	indicator := dom.El("div", dom.Attrs{"class": ClassLoading}, textLoading)
	parent.AppendChild(indicator)
	req := r.begin(parent, id)

	return func() tea.Msg {
		started := time.Now()
		launch, err := r.source.GetLaunch(req.ctx, id)
		if !errors.Is(err, context.Canceled) {
			r.report(Fetch{Kind: FetchLaunch, Target: id, RequestID: req.id, Err: err}, started)
		}
		return DetailResult{
			ID:        id,
			Launch:    launch,
			Err:       err,
			RequestID: req.id,
			parent:    parent,
			indicator: indicator,
		}
	}
}

// CompleteDetails renders a fetched launch into the parent given to
// RenderDetails and returns that parent. The loading indicator is removed
// whatever the outcome; on failure nothing else is rendered and nil is
// returned.
func (r *Renderer) CompleteDetails(res DetailResult) *dom.Node {
	if res.parent == nil || !r.settle(res.parent, res.RequestID) {
		r.logf("launch %s: discarding stale response %s", res.ID, res.RequestID)
		return nil
	}
	setNotLoading(res.parent, res.indicator, nil)

	switch {
	case errors.Is(res.Err, launches.ErrNotFound):
		r.logf("launch %s: not found", res.ID)
		return nil
	case res.Err != nil:
		r.logf("launch %s: fetch failed: %v", res.ID, res.Err)
		return nil
	case res.Launch == nil:
		r.logf("launch %s: no data returned", res.ID)
		return nil
	}

	res.parent.AppendChild(r.launchView(res.Launch))
	return res.parent
}

func (r *Renderer) launchView(l *launches.LaunchDetail) *dom.Node {
	return dom.El("main", nil,
		dom.El("div", dom.Attrs{"class": "box"}),
		dom.El("h2", dom.Attrs{"class": "launchName"}, r.clean(l.Name)),
		dom.El("span", dom.Attrs{"class": "windowOpen"}, textWindowOpen, r.clean(l.WindowStart)),
		dom.El("span", dom.Attrs{"class": "windowEnd"}, textWindowClose, r.clean(l.WindowEnd)),
		dom.El("h3", dom.Attrs{"class": "launchStatus"}, r.clean(l.Status.Name)),
		dom.El("p", dom.Attrs{"class": "statusDesc"}, r.clean(l.Status.Description)),
		dom.El("h3", dom.Attrs{"class": "missionName"}, r.clean(l.Mission.Name)),
		dom.El("p", dom.Attrs{"class": "missionDesc"}, r.clean(l.Mission.Description)),
		dom.El("img", dom.Attrs{"class": "launchImg", "src": l.Image, "alt": textImageAlt}),
		dom.El("div", dom.Attrs{"class": "back"}, dom.El("a", dom.Attrs{"href": "/"}, textBack)),
	)
}
