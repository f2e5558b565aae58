package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/router"
	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/view"
)

type stubSource struct{}

func (stubSource) SearchLaunches(_ context.Context, query string) ([]launches.LaunchSummary, error) {
	if query == "none" {
		return []launches.LaunchSummary{}, nil
	}
	return []launches.LaunchSummary{
		{ID: "abc", Name: "Falcon 9 Block 5 | Starlink", Status: launches.Status{Name: "Launch Successful"}, Mission: "Starlink"},
	}, nil
}

func (stubSource) GetLaunch(_ context.Context, id string) (*launches.LaunchDetail, error) {
	return &launches.LaunchDetail{
		ID:          id,
		Name:        "Falcon 9 Block 5 | Starlink",
		WindowStart: "2026-10-01T10:00:00Z",
		WindowEnd:   "2026-10-01T12:00:00Z",
		Status:      launches.Status{Name: "Launch Successful", Description: "The launch vehicle reached orbit."},
		Mission:     launches.Mission{Name: "Starlink", Description: "Broadband satellites."},
	}, nil
}

type fixture struct {
	model      Model
	body       *dom.Node
	controller *router.Controller
	store      *state.Store
	prefsPath  string
}

func newFixture(t *testing.T, location string) *fixture {
	t.Helper()
	store := &state.Store{}
	renderer := view.New(view.Options{
		Source:  stubSource{},
		Logf:    func(string, ...any) {},
		Observe: store.Record,
	})
	body := dom.El("body", nil)
	controller := router.NewController(body, renderer)
	f := &fixture{
		body:       body,
		controller: controller,
		store:      store,
		prefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
	}
	f.model = New(Options{
		Body:        body,
		Renderer:    renderer,
		Controller:  controller,
		Store:       store,
		Location:    location,
		RefreshTick: time.Millisecond,
		PrefsPath:   f.prefsPath,
	})
	init := f.model.Init()
	f.update(t, tea.WindowSizeMsg{Width: 100, Height: 40})
	f.drive(t, init)
	return f
}

func (f *fixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	f.model = m
	return cmd
}

// drive runs cmd and feeds fetch completions back. Timer-driven messages are
// dropped so tests never wait on ticks.
func (f *fixture) drive(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			f.drive(t, c)
		}
	case view.SearchResult, view.DetailResult:
		f.update(t, msg)
	}
}

func (f *fixture) key(t *testing.T, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	return f.update(t, msg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypeAndSubmitSearch(t *testing.T) {
	f := newFixture(t, "/")

	if !f.model.inputFocused() {
		t.Fatalf("search input should have focus on the frontpage")
	}
	f.key(t, runes("falcon"))
	f.key(t, runes("?"))
	if got, _ := f.body.Query("input").Attr("value"); got != "falcon?" {
		t.Fatalf("input value = %q, want falcon?", got)
	}
	if f.model.showHelp {
		t.Fatalf("? typed into the input must not open help")
	}

	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("enter on the input returned no command")
	}
	if !strings.Contains(f.model.View(), "Fetching data...") {
		t.Fatalf("view does not show the loading indicator:\n%s", f.model.View())
	}

	f.drive(t, cmd)

	out := f.model.View()
	if !strings.Contains(out, "Falcon 9 Block 5") {
		t.Fatalf("view does not show the result:\n%s", out)
	}
	if strings.Contains(out, "Fetching data...") {
		t.Fatalf("loading indicator left behind:\n%s", out)
	}
	if snap := f.store.Snapshot(); snap.Requests != 1 {
		t.Fatalf("store recorded %d requests, want 1", snap.Requests)
	}
}

func TestModel_FollowResultAndGoBack(t *testing.T) {
	f := newFixture(t, "?query=falcon")

	if f.body.Query("li.result") == nil {
		t.Fatalf("initial query was not searched: %s", f.body)
	}

	// input -> button -> first result link
	f.key(t, tea.KeyMsg{Type: tea.KeyTab})
	f.key(t, tea.KeyMsg{Type: tea.KeyTab})
	if f.model.focused == nil || f.model.focused.Tag != "a" {
		t.Fatalf("focus = %v, want the result link", f.model.focused)
	}

	f.drive(t, f.key(t, tea.KeyMsg{Type: tea.KeyEnter}))

	if got := f.controller.Location(); got != "/?id=abc" {
		t.Fatalf("location = %q, want /?id=abc", got)
	}
	if !strings.Contains(f.model.View(), "The launch vehicle reached orbit.") {
		t.Fatalf("detail view missing status description:\n%s", f.model.View())
	}
	if f.model.focused == nil || f.model.focused.Tag != "a" {
		t.Fatalf("focus on detail page = %v, want back link", f.model.focused)
	}

	f.drive(t, f.key(t, tea.KeyMsg{Type: tea.KeyEsc}))

	if got := f.controller.Location(); got != "/?query=falcon" {
		t.Fatalf("location after back = %q", got)
	}
	if f.body.Query("li.result") == nil {
		t.Fatalf("back did not re-run the search: %s", f.body)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	f := newFixture(t, "/")

	f.key(t, tea.KeyMsg{Type: tea.KeyF1})
	if !f.model.showHelp {
		t.Fatalf("f1 should open help")
	}
	if !strings.Contains(f.model.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered")
	}
	f.key(t, runes("x"))
	if f.model.showHelp {
		t.Fatalf("any key should close help")
	}
	if got, _ := f.body.Query("input").Attr("value"); got != "" {
		t.Fatalf("key that closed help was typed: %q", got)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	f := newFixture(t, "?query=none")

	f.key(t, tea.KeyMsg{Type: tea.KeyCtrlT})
	if f.model.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", f.model.theme.Name)
	}

	p, err := prefs.Load(f.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Kanagawa" || p.LastLocation != "/?query=none" {
		t.Fatalf("saved prefs = %+v", p)
	}
}

func TestModel_ConsoleShowsLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "liftoff.log")
	if err := os.WriteFile(logPath, []byte("search \"x\": fetch failed: boom\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := newFixture(t, "/")
	f.model = New(Options{
		Body:       f.body,
		Renderer:   f.model.renderer,
		Controller: f.controller,
		LogPath:    logPath,
	})
	f.update(t, tea.WindowSizeMsg{Width: 100, Height: 40})

	cmd := f.key(t, tea.KeyMsg{Type: tea.KeyCtrlL})
	if cmd == nil {
		t.Fatalf("opening the console should poll the log")
	}
	f.update(t, cmd())

	if !strings.Contains(f.model.View(), "fetch failed: boom") {
		t.Fatalf("console missing log line:\n%s", f.model.View())
	}
}
