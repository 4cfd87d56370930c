// Package logsink is the append-only text log behind GET/POST /api/logs.
// One file, one line per entry, rotated by dropping the oldest half of the
// lines once the file passes a size threshold.
package logsink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

type Sink struct {
	mu       sync.Mutex
	path     string
	maxBytes int64
}

// New does not touch the filesystem; the directory and file appear on the
// first append.
func New(path string, maxBytes int64) *Sink {
	if maxBytes <= 0 {
		maxBytes = 256 * 1024
	}
	return &Sink{path: path, maxBytes: maxBytes}
}

// Append writes one `[ts] [LEVEL] message | Details: ...` line. Details may
// be a string or anything JSON-serializable; anything else is recorded as
// unserializable rather than failing the append.
func (s *Sink) Append(level, message string, details any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level == "" {
		level = "INFO"
	}
	line := fmt.Sprintf("[%s] [%s] %s%s\n",
		time.Now().UTC().Format(time.RFC3339),
		strings.ToUpper(level),
		message,
		detailsSuffix(details),
	)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("append log line: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.rotateLocked()
}

// Read returns the full file contents. A missing file reads as empty, not
// as an error.
func (s *Sink) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(b), nil
}

// rotateLocked drops the oldest half of the lines when the file outgrows
// maxBytes. Called with the mutex held.
func (s *Sink) rotateLocked() error {
	info, err := os.Stat(s.path)
	if err != nil || info.Size() <= s.maxBytes {
		return nil
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("rotate: read: %w", err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) < 2 {
		return nil
	}
	kept := lines[len(lines)/2:]
	out := strings.Join(kept, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("rotate: rewrite: %w", err)
	}
	return nil
}

func detailsSuffix(details any) string {
	if details == nil {
		return ""
	}
	if s, ok := details.(string); ok {
		if s == "" {
			return ""
		}
		return " | Details: " + s
	}
	b, err := json.Marshal(details)
	if err != nil {
		return " | Details: [Unserializable Object]"
	}
	return " | Details: " + string(b)
}
