package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeLines(t *testing.T, path string, from, to int) []string {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	var lines []string
	for i := from; i <= to; i++ {
		line := fmt.Sprintf("Line %d", i)
		if _, err := f.WriteString(line + "\n"); err != nil {
			t.Fatalf("write log: %v", err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	all := writeLines(t, logPath, 1, 10)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: all},
		{name: "read all (negative)", maxLines: -1, expected: all},
		{name: "read partial (5)", maxLines: 5, expected: all[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: all},
		{name: "read more than exists (20)", maxLines: 20, expected: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Read() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestTail_PollReadsAppendedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	tail := New(logPath, 4)

	writeLines(t, logPath, 1, 2)
	if _, err := tail.Poll(); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	writeLines(t, logPath, 3, 6)
	got, err := tail.Poll()
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	want := []string{"Line 3", "Line 4", "Line 5", "Line 6"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Poll() mismatch (-want +got):\n%s", diff)
	}
}

func TestTail_HoldsBackPartialLine(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(logPath, []byte("first\r\nsec"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tail := New(logPath, 0)

	got, _ := tail.Poll()
	if diff := cmp.Diff([]string{"first"}, got); diff != "" {
		t.Fatalf("Poll() mismatch (-want +got):\n%s", diff)
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	if _, err := f.WriteString("ond\n"); err != nil {
		t.Fatalf("write log: %v", err)
	}
	f.Close()

	got, _ = tail.Poll()
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Fatalf("Poll() mismatch (-want +got):\n%s", diff)
	}
}

func TestTail_RestartsAfterTruncate(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	writeLines(t, logPath, 1, 5)
	tail := New(logPath, 10)
	if _, err := tail.Poll(); err != nil {
		t.Fatalf("Poll() error = %v", err)
	}

	if err := os.WriteFile(logPath, []byte("fresh\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := tail.Poll()
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if diff := cmp.Diff([]string{"fresh"}, got); diff != "" {
		t.Fatalf("Poll() mismatch (-want +got):\n%s", diff)
	}
}

func TestTail_CutsOversizedLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	long := strings.Repeat("x", maxLineBytes+10)
	if err := os.WriteFile(logPath, []byte(long+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Read(logPath, 1)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Read() returned %d lines, want 1", len(got))
	}
	if len(got[0]) != maxLineBytes {
		t.Fatalf("line length = %d, want %d", len(got[0]), maxLineBytes)
	}
}
