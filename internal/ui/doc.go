// Package ui hosts liftoff's pages in the terminal with Bubble Tea.
//
// # Architecture Overview
//
// The Model owns the body node that the router renders into. On every
// change it paints the node tree into a viewport: headings, result rows,
// detail fields and the back link each become a styled block. Fetches run as
// tea.Cmds; their completion messages are handed to view.Renderer.Resume on
// the Update goroutine, which is the only goroutine that touches nodes.
//
// # Package Structure
//
//   - app.go: Model, Update loop, focus handling and Run
//   - render.go: node tree to lipgloss lines
//   - focus.go: focus ring over inputs, enabled buttons and links
//   - header.go: status bar and command bar
//   - console.go: tail of the diagnostics log
//   - help.go: key binding overlay
//   - keys.go: key bindings
//   - theme.go: color themes
//
// # Input
//
// Focus moves with tab/shift+tab or the arrow keys. While the search input
// is focused a bubbles textinput edits it and mirrors the text into the
// node's value attribute, so a submit reads exactly what is shown. Enter
// submits the form or follows the focused link; esc goes back.
//
// # Themes
//
// Nightfox, Kanagawa and Slate are built in. ctrl+t cycles them and the
// choice is saved to the preferences file together with the current
// location.
package ui
