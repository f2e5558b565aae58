package ui

import "github.com/five82/liftoff/internal/dom"

// focusable reports whether keyboard focus can land on n: text inputs,
// enabled buttons and links with a target.
func focusable(n *dom.Node) bool {
	if n.Kind != dom.KindElement {
		return false
	}
	switch n.Tag {
	case "input":
		return true
	case "button":
		_, disabled := n.Attr("disabled")
		return !disabled
	case "a":
		href, ok := n.Attr("href")
		return ok && href != ""
	}
	return false
}

// focusRing lists the focusable nodes under root in document order.
func focusRing(root *dom.Node) []*dom.Node {
	var out []*dom.Node
	var visit func(n *dom.Node)
	visit = func(n *dom.Node) {
		for _, c := range n.Children() {
			if focusable(c) {
				out = append(out, c)
			}
			visit(c)
		}
	}
	visit(root)
	return out
}

// step moves from current by delta around ring, wrapping at both ends. A
// current node that is no longer in the ring starts from the top.
func step(ring []*dom.Node, current *dom.Node, delta int) *dom.Node {
	if len(ring) == 0 {
		return nil
	}
	idx := indexOf(ring, current)
	if idx < 0 {
		if delta < 0 {
			return ring[len(ring)-1]
		}
		return ring[0]
	}
	idx = (idx + delta) % len(ring)
	if idx < 0 {
		idx += len(ring)
	}
	return ring[idx]
}

func indexOf(ring []*dom.Node, n *dom.Node) int {
	if n == nil {
		return -1
	}
	for i, c := range ring {
		if c == n {
			return i
		}
	}
	return -1
}
