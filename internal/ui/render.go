package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/view"
)

// painter turns the node tree into terminal lines. Every element is laid out
// as a block; text is wrapped to width.
type painter struct {
	styles  Styles
	width   int
	focused *dom.Node
	input   string // textinput view used for the focused input
	spinner string

	lines     []string
	focusLine int
}

// paint renders body and reports the first line of the focused node, or -1.
func paint(body *dom.Node, p painter) (string, int) {
	if p.width < 10 {
		p.width = 10
	}
	p.focusLine = -1
	for _, c := range body.Children() {
		p.block(c)
	}
	return strings.Join(p.lines, "\n"), p.focusLine
}

func (p *painter) emit(block string) {
	p.lines = append(p.lines, strings.Split(block, "\n")...)
}

func (p *painter) blank() {
	if n := len(p.lines); n > 0 && p.lines[n-1] != "" {
		p.lines = append(p.lines, "")
	}
}

// mark records the current line when n is, or holds, the focused node.
func (p *painter) mark(n *dom.Node) {
	if p.focusLine >= 0 || p.focused == nil {
		return
	}
	if n == p.focused || n.Contains(p.focused) {
		p.focusLine = len(p.lines)
	}
}

func (p *painter) text(s string, style lipgloss.Style) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	wrapped := lipgloss.NewStyle().Width(p.width).Render(s)
	for _, line := range strings.Split(wrapped, "\n") {
		p.lines = append(p.lines, style.Render(strings.TrimRight(line, " ")))
	}
}

func (p *painter) children(n *dom.Node) {
	for _, c := range n.Children() {
		p.block(c)
	}
}

func (p *painter) block(n *dom.Node) {
	if n.Kind == dom.KindText {
		p.text(n.Text, p.styles.Text)
		return
	}
	if n.Kind != dom.KindElement {
		return
	}
	s := p.styles

	switch {
	case n.HasClass(view.ClassLoading):
		p.emit(p.spinner + " " + s.MutedText.Render(n.TextContent()))
		return
	case n.Tag == "li" && n.HasClass(view.ClassResult):
		p.children(n)
		p.blank()
		return
	}

	switch n.Tag {
	case "h1":
		p.text(n.TextContent(), s.Logo)
		p.blank()
	case "h2":
		p.text(n.TextContent(), s.AccentText.Bold(true))
		p.blank()
	case "h3":
		if n.HasClass("launchStatus") {
			p.text(n.TextContent(), s.StatusStyle(n.TextContent()))
		} else {
			p.text(n.TextContent(), s.WarningText.Bold(true))
		}
	case "p":
		if n.HasClass("status") {
			p.text(n.TextContent(), s.StatusStyle(n.TextContent()))
		} else {
			p.text(n.TextContent(), s.Text)
		}
	case "span":
		p.text(n.TextContent(), s.MutedText)
	case "li":
		p.text(n.TextContent(), s.WarningText.Italic(true))
	case "a":
		p.mark(n)
		style := s.Link
		if n == p.focused {
			style = s.Selected
		}
		p.text(n.TextContent(), style)
	case "img":
		if src, _ := n.Attr("src"); strings.TrimSpace(src) != "" {
			alt, _ := n.Attr("alt")
			p.text(alt+": "+src, s.FaintText)
		}
	case "form":
		p.mark(n)
		p.emit(p.form(n))
		p.blank()
	case "div":
		if n.HasClass("back") {
			p.blank()
		}
		p.children(n)
	default:
		p.children(n)
	}
}

func (p *painter) form(n *dom.Node) string {
	s := p.styles
	var parts []string
	for _, c := range n.Children() {
		switch c.Tag {
		case "input":
			parts = append(parts, p.inputBox(c))
		case "button":
			style := s.Button
			if _, disabled := c.Attr("disabled"); disabled {
				style = style.Foreground(s.FaintText.GetForeground())
			} else if c == p.focused {
				style = style.
					Background(s.Selected.GetBackground()).
					Foreground(s.Selected.GetForeground())
			}
			parts = append(parts, style.Render(c.TextContent()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, withGaps(parts)...)
}

func (p *painter) inputBox(n *dom.Node) string {
	width := p.width / 2
	if width < 20 {
		width = 20
	}
	if n == p.focused {
		return p.styles.InputFocused.Width(width).Render(p.input)
	}
	value, _ := n.Attr("value")
	if value == "" {
		return p.styles.Input.Width(width).Render(p.styles.FaintText.Render("Search launches"))
	}
	return p.styles.Input.Width(width).Render(value)
}

func withGaps(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, part := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, part)
	}
	return out
}
