package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/five82/liftoff/internal/app"
)

func stubRun(t *testing.T) *app.Options {
	t.Helper()
	var got app.Options
	prev := runApp
	runApp = func(_ context.Context, opts app.Options) error {
		got = opts
		return nil
	}
	t.Cleanup(func() { runApp = prev })
	return &got
}

func TestRootCmd_PassesLocationAndFlags(t *testing.T) {
	got := stubRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"?query=falcon", "--config", "/tmp/c.toml", "--prefs", "/tmp/p.toml"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	want := app.Options{ConfigPath: "/tmp/c.toml", PrefsPath: "/tmp/p.toml", Location: "?query=falcon", Version: version}
	if *got != want {
		t.Fatalf("options = %+v, want %+v", *got, want)
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	stubRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"?id=1", "?id=2"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("Execute returned nil error for two locations")
	}
}

func TestVersionCmd(t *testing.T) {
	stubRun(t)

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "liftoff ") {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestRootCmd_PassesBuildVersion(t *testing.T) {
	got := stubRun(t)
	prev := version
	version = "1.2.3"
	t.Cleanup(func() { version = prev })

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if got.Version != "1.2.3" {
		t.Fatalf("version = %q, want 1.2.3", got.Version)
	}
}
