package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/liftoff/internal/config"
	"github.com/five82/liftoff/internal/dom"
	"github.com/five82/liftoff/internal/launches"
	"github.com/five82/liftoff/internal/prefs"
	"github.com/five82/liftoff/internal/router"
	"github.com/five82/liftoff/internal/state"
	"github.com/five82/liftoff/internal/ui"
	"github.com/five82/liftoff/internal/view"
)

// Options configure the liftoff application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/liftoff/prefs.toml
	Location   string // empty restores the last location
	Version    string // build version, reported in the User-Agent
}

// Run boots the liftoff TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	restore := redirectLog(logFile)
	defer restore()

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		log.Printf("load prefs: %v (using defaults)", err)
	}

	client, err := launches.NewClient(cfg.APIURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init launch client: %w", err)
	}
	client.SetVersion(opts.Version)

	store := &state.Store{}
	renderer := view.New(view.Options{
		Source:  client,
		Context: ctx,
		Observe: store.Record,
	})
	body := dom.El("body", nil)
	controller := router.NewController(body, renderer)

	StartProber(ctx, store, client, defaultProbeInterval)

	location := startLocation(opts.Location, userPrefs)
	log.Printf("liftoff starting: api=%s location=%q", cfg.APIURL, location)

	return ui.Run(ui.Options{
		Context:    ctx,
		Body:       body,
		Renderer:   renderer,
		Controller: controller,
		Store:      store,
		Location:   location,
		LogPath:    cfg.LogFile,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  prefsPath,
	})
}

// startLocation picks the first page: an explicit location wins over the one
// saved at last exit.
func startLocation(explicit string, p prefs.Prefs) string {
	if loc := strings.TrimSpace(explicit); loc != "" {
		return loc
	}
	if p.LastLocation != "" {
		return p.LastLocation
	}
	return "/"
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// redirectLog sends the standard logger to w while the TUI owns the
// terminal. The returned func restores the previous output.
func redirectLog(w io.Writer) func() {
	prev := log.Writer()
	log.SetOutput(w)
	return func() { log.SetOutput(prev) }
}
