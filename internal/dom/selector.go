package dom

import "strings"

// selector is a compound selector such as `button[disabled]` or `li.result`.
type selector struct {
	tag     string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

// parseSelector understands tag, .class and [attr] / [attr=value] parts.
// Malformed input yields a selector that matches nothing.
func parseSelector(raw string) (selector, bool) {
	var sel selector
	s := strings.TrimSpace(raw)
	if s == "" {
		return sel, false
	}
	i := 0
	readIdent := func() string {
		start := i
		for i < len(s) && s[i] != '.' && s[i] != '[' {
			i++
		}
		return s[start:i]
	}
	if s[0] != '.' && s[0] != '[' {
		sel.tag = strings.ToLower(readIdent())
	}
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			name := readIdent()
			if name == "" {
				return sel, false
			}
			sel.classes = append(sel.classes, name)
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return sel, false
			}
			body := s[i+1 : i+end]
			i += end + 1
			m := attrMatch{name: body}
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				m.name = body[:eq]
				m.value = strings.Trim(body[eq+1:], `"'`)
				m.hasValue = true
			}
			if m.name == "" {
				return sel, false
			}
			sel.attrs = append(sel.attrs, m)
		default:
			return sel, false
		}
	}
	return sel, true
}

func (sel selector) matches(n *Node) bool {
	if n.Kind != KindElement {
		return false
	}
	if sel.tag != "" && sel.tag != n.Tag {
		return false
	}
	for _, c := range sel.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	for _, a := range sel.attrs {
		v, ok := n.Attr(a.name)
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}

// Matches reports whether n satisfies the selector.
func (n *Node) Matches(selector string) bool {
	sel, ok := parseSelector(selector)
	return ok && sel.matches(n)
}

// Query returns the first descendant matching selector in document order.
func (n *Node) Query(selector string) *Node {
	sel, ok := parseSelector(selector)
	if !ok || n == nil {
		return nil
	}
	var found *Node
	n.walk(func(c *Node) bool {
		if sel.matches(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every descendant matching selector in document order.
func (n *Node) QueryAll(selector string) []*Node {
	sel, ok := parseSelector(selector)
	if !ok || n == nil {
		return nil
	}
	var out []*Node
	n.walk(func(c *Node) bool {
		if sel.matches(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Closest returns n or its nearest ancestor matching selector.
func (n *Node) Closest(selector string) *Node {
	sel, ok := parseSelector(selector)
	if !ok {
		return nil
	}
	for p := n; p != nil; p = p.parent {
		if sel.matches(p) {
			return p
		}
	}
	return nil
}

// walk visits descendants depth-first; returning false stops the walk.
func (n *Node) walk(visit func(*Node) bool) bool {
	for _, c := range n.children {
		if !visit(c) || !c.walk(visit) {
			return false
		}
	}
	return true
}
