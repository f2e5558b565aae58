package logtail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes caps a single buffered line; longer lines are cut.
const maxLineBytes = 64 * 1024

// Tail follows a log file, keeping at most max of its most recent lines.
// It is not safe for concurrent use.
type Tail struct {
	path    string
	max     int
	offset  int64
	partial []byte
	lines   []string
}

// New returns a Tail for path that keeps max lines. max <= 0 keeps all.
func New(path string, max int) *Tail {
	return &Tail{path: path, max: max}
}

// Path returns the followed file.
func (t *Tail) Path() string {
	return t.path
}

// Poll reads whatever was appended since the last call. A missing file is
// treated as empty. When the file shrank (rotated or truncated) the tail
// starts over from the beginning.
func (t *Tail) Poll() ([]string, error) {
	file, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return t.Lines(), nil
		}
		return t.Lines(), fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return t.Lines(), fmt.Errorf("stat log: %w", err)
	}
	if info.Size() < t.offset {
		t.reset()
	}
	if info.Size() == t.offset {
		return t.Lines(), nil
	}

	if _, err := file.Seek(t.offset, io.SeekStart); err != nil {
		return t.Lines(), fmt.Errorf("seek log: %w", err)
	}
	chunk, err := io.ReadAll(file)
	if err != nil {
		return t.Lines(), fmt.Errorf("read log: %w", err)
	}
	t.offset += int64(len(chunk))
	t.consume(chunk)
	return t.Lines(), nil
}

// Lines returns a copy of the buffered lines, oldest first.
func (t *Tail) Lines() []string {
	if len(t.lines) == 0 {
		return nil
	}
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Tail) reset() {
	t.offset = 0
	t.partial = nil
	t.lines = nil
}

func (t *Tail) consume(chunk []byte) {
	data := append(t.partial, chunk...)
	t.partial = nil
	for {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		t.push(string(bytes.TrimSuffix(data[:i], []byte("\r"))))
		data = data[i+1:]
	}
	if len(data) > maxLineBytes {
		data = data[:maxLineBytes]
	}
	if len(data) > 0 {
		t.partial = append([]byte(nil), data...)
	}
}

func (t *Tail) push(line string) {
	if len(line) > maxLineBytes {
		line = line[:maxLineBytes]
	}
	t.lines = append(t.lines, line)
	if t.max > 0 && len(t.lines) > t.max {
		t.lines = append(t.lines[:0], t.lines[len(t.lines)-t.max:]...)
	}
}

// Read returns at most maxLines complete lines from the end of the file at
// path. maxLines <= 0 returns every line.
func Read(path string, maxLines int) ([]string, error) {
	return New(path, maxLines).Poll()
}
