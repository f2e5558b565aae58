package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/logtail"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/router"
	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/view"
)

const (
	// chromeHeight is the header plus the command bar.
	chromeHeight = 2

	// consoleHeight is the console pane including its title line.
	consoleHeight = 8

	// consoleBuffer is how many log lines the console keeps.
	consoleBuffer = 200

	defaultRefreshTick = time.Second
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Body        *dom.Node
	Renderer    *view.Renderer
	Controller  *router.Controller
	Store       *state.Store
	Location    string // initial location, e.g. "?query=falcon"
	LogPath     string // diagnostics log shown in the console
	RefreshTick time.Duration
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	body        *dom.Node
	renderer    *view.Renderer
	controller  *router.Controller
	store       *state.Store
	prefsPath   string
	refreshTick time.Duration
	start       string

	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	showHelp    bool
	showConsole bool

	snapshot state.Snapshot

	focused  *dom.Node
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	tail         *logtail.Tail
	consoleLines []string
	consoleErr   error
	polling      bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	refreshTick := opts.RefreshTick
	if refreshTick == 0 {
		refreshTick = defaultRefreshTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Search launches"
	input.CharLimit = 128
	input.Cursor.SetMode(cursor.CursorStatic)

	var tail *logtail.Tail
	if strings.TrimSpace(opts.LogPath) != "" {
		tail = logtail.New(opts.LogPath, consoleBuffer)
	}

	theme := GetTheme(themeName)
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Styles().AccentText

	return Model{
		body:        opts.Body,
		renderer:    opts.Renderer,
		controller:  opts.Controller,
		store:       opts.Store,
		prefsPath:   opts.PrefsPath,
		refreshTick: refreshTick,
		start:       opts.Location,
		keys:        DefaultKeyMap(),
		theme:       theme,
		input:       input,
		spinner:     spin,
		tail:        tail,
	}
}

// Init implements tea.Model. It renders the initial location; the returned
// batch carries that page's fetch, if any.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.controller.Start(m.start),
		m.spinner.Tick,
		tickCmd(m.refreshTick),
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.body.Query("."+view.ClassLoading) != nil {
			m.refresh()
		}
		return m, cmd

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case consoleMsg:
		m.polling = false
		m.consoleLines = msg.lines
		m.consoleErr = msg.err
		return m, nil
	}

	// Fetch completions are applied on this goroutine, the only one that
	// touches the node tree.
	if m.renderer.Resume(msg) {
		m.refresh()
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	parts := []string{
		m.renderHeader(),
		m.renderCommandBar(),
		m.viewport.View(),
	}
	if m.showConsole {
		parts = append(parts, m.renderConsole())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = m.theme.Styles().AccentText
		m.savePrefs()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Console):
		m.showConsole = !m.showConsole
		m.resize()
		m.refresh()
		if m.showConsole {
			return m, m.pollConsole()
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.setFocus(step(focusRing(m.body), m.focused, 1))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus(step(focusRing(m.body), m.focused, -1))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		return m.activate()

	case key.Matches(msg, m.keys.Back):
		cmd := m.controller.Back()
		m.afterNavigate()
		return m, cmd

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	// "?" is text while typing a query; f1 always opens help.
	if key.Matches(msg, m.keys.Help) && (msg.String() == "f1" || !m.inputFocused()) {
		m.showHelp = true
		return m, nil
	}

	if m.inputFocused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.focused.SetAttribute("value", m.input.Value())
		m.refresh()
		return m, cmd
	}
	return m, nil
}

// activate submits the focused form control or follows the focused link.
func (m Model) activate() (tea.Model, tea.Cmd) {
	n := m.focused
	if n == nil {
		return m, nil
	}
	switch n.Tag {
	case "input", "button":
		cmd := m.controller.Submit(n.Closest("form"))
		m.refresh()
		return m, cmd
	case "a":
		href, _ := n.Attr("href")
		cmd := m.controller.Follow(href)
		m.afterNavigate()
		return m, cmd
	}
	return m, nil
}

func (m Model) inputFocused() bool {
	return m.focused != nil && m.focused.Tag == "input"
}

// setFocus moves keyboard focus to n, loading an input's value into the
// text editor.
func (m *Model) setFocus(n *dom.Node) {
	if m.focused == n {
		return
	}
	if m.inputFocused() {
		m.input.Blur()
	}
	m.focused = n
	if m.inputFocused() {
		value, _ := n.Attr("value")
		m.input.SetValue(value)
		m.input.CursorEnd()
		m.input.Focus()
	}
}

// afterNavigate resets focus and scroll for a freshly routed page.
func (m *Model) afterNavigate() {
	m.setFocus(nil)
	m.viewport.GotoTop()
	m.refresh()
}

// refresh repaints the node tree into the viewport, keeping focus on a node
// that is still on the page.
func (m *Model) refresh() {
	ring := focusRing(m.body)
	if indexOf(ring, m.focused) < 0 {
		m.setFocus(defaultFocus(ring))
	}
	if !m.ready {
		return
	}

	content, line := paint(m.body, painter{
		styles:  m.theme.Styles(),
		width:   m.viewport.Width - 2,
		focused: m.focused,
		input:   m.input.View(),
		spinner: m.spinner.View(),
	})
	m.viewport.SetContent(content)

	if line < 0 {
		return
	}
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 3)
	}
}

// defaultFocus prefers the search input, then the first focusable node.
func defaultFocus(ring []*dom.Node) *dom.Node {
	for _, n := range ring {
		if n.Tag == "input" {
			return n
		}
	}
	if len(ring) > 0 {
		return ring[0]
	}
	return nil
}

func (m *Model) resize() {
	height := m.height - chromeHeight
	if m.showConsole {
		height -= consoleHeight
	}
	if height < 3 {
		height = 3
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, height)
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.input.Width = max(m.width/2-4, 10)
}

// handleTick refreshes the header snapshot and, when visible, the console.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.showConsole {
		if cmd := m.pollConsole(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, tickCmd(m.refreshTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) pollConsole() tea.Cmd {
	if m.tail == nil || m.polling {
		return nil
	}
	m.polling = true
	return pollConsoleCmd(m.tail)
}

func (m Model) location() string {
	return m.controller.Location()
}

// savePrefs stores the theme and current location. Failures are logged.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastLocation: m.location()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
