// Package view renders liftoff's pages into a dom tree and coordinates the
// fetches behind them.
//
// # Pages
//
//   - Frontpage: heading and search form inside <main>, optionally followed
//     by a results list (<ul class="results">)
//   - Detail: one launch record, built in a fixed order, ending with a back
//     link to "/"
//
// # Async model
//
// Rendering functions mutate the tree synchronously and return a tea.Cmd.
// The command is the only place that blocks: it calls the launches.Source
// and returns a SearchResult or DetailResult message. Feeding that message
// back through Renderer.Resume (from bubbletea's Update) performs the second
// half of the render. All tree mutation therefore happens on the Update
// goroutine.
//
// # Region state
//
// Each results container (the <main> of a search, or the parent of a detail
// view) moves through Idle -> Loading -> Rendered. Starting a new request on
// a region supersedes the old one: its context is cancelled and its
// completion is discarded without touching the tree, so the newest request
// always wins. Release drops every request under a subtree before it is
// cleared.
//
// While a region is loading it shows exactly one <div class="loading">, and
// the submitting form's button carries disabled="disabled". Both are
// undone on completion whatever the outcome.
package view
