// Package dom is a small in-memory document tree used by liftoff's views.
//
// Nodes are built with El and located again with CSS-like compound
// selectors (`main`, `.results`, `button[disabled]`). Class names double as
// state markers for the views, so Query is how a renderer discovers what is
// currently on screen.
//
// A tree is not safe for concurrent use. liftoff confines every tree to the
// bubbletea Update loop; fetch goroutines never touch nodes directly.
package dom
