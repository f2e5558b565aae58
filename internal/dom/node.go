package dom

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Kind discriminates element nodes from text nodes.
type Kind uint8

const (
	KindElement Kind = iota
	KindText
	KindNone
)

// Attrs maps attribute names to values.
type Attrs map[string]string

// Node is a single element or text node in a document tree.
type Node struct {
	Kind Kind
	Tag  string
	Text string

	attrs     Attrs
	children  []*Node
	parent    *Node
	listeners map[string][]Handler
}

var none = &Node{Kind: KindNone}

// None returns the sentinel for "nothing to render". El skips it.
func None() *Node {
	return none
}

// TextNode creates a detached text node.
func TextNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// El builds an element with the given attributes and children. Children may
// be strings, *Node values or []*Node slices; nil and None() are skipped.
func El(tag string, attrs Attrs, children ...any) *Node {
	n := &Node{Kind: KindElement, Tag: strings.ToLower(tag), attrs: Attrs{}}
	for k, v := range attrs {
		n.attrs[k] = v
	}
	for _, child := range children {
		switch c := child.(type) {
		case nil:
		case string:
			n.AppendChild(TextNode(c))
		case *Node:
			n.AppendChild(c)
		case []*Node:
			for _, cc := range c {
				n.AppendChild(cc)
			}
		case fmt.Stringer:
			n.AppendChild(TextNode(c.String()))
		default:
			n.AppendChild(TextNode(fmt.Sprint(c)))
		}
	}
	return n
}

// AppendChild moves child to the end of n's children and returns it.
// Appending None() or nil is a no-op.
func (n *Node) AppendChild(child *Node) *Node {
	if child == nil || child.Kind == KindNone || n.Kind != KindElement {
		return child
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Remove detaches n from its parent. Detached nodes are left untouched.
func (n *Node) Remove() {
	if n == nil || n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Empty removes every child of n.
func (n *Node) Empty() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// Parent returns the parent element, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of n's children.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.attrs == nil {
		return "", false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute sets (or replaces) an attribute value.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = Attrs{}
	}
	n.attrs[name] = value
}

// RemoveAttribute drops an attribute if present.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// HasClass reports whether the class attribute lists name.
func (n *Node) HasClass(name string) bool {
	classes, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent concatenates all descendant text in document order.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// String serialises the subtree as HTML with attributes in sorted order.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

var voidTags = map[string]bool{"input": true, "img": true, "br": true}

func (n *Node) write(b *strings.Builder) {
	switch n.Kind {
	case KindNone:
		return
	case KindText:
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(n.attrs[k]))
	}
	b.WriteByte('>')
	if voidTags[n.Tag] && len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
