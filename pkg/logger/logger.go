package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes leveled lines to a file. The TUI owns stdout, so
// failures are recorded here instead of printed.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	minimum level
}

type level int

const (
	levelInfo level = iota
	levelError
)

// New opens (or creates) the log file at path in append mode.
func New(path string, lvl string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := NewWriter(f, lvl)
	l.closer = f
	return l, nil
}

// NewWriter logs to an arbitrary writer.
func NewWriter(w io.Writer, lvl string) *Logger {
	minimum := levelInfo
	if lvl == "error" {
		minimum = levelError
	}
	return &Logger{out: w, minimum: minimum}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, "error")
}

// Log a simple info.
func (l *Logger) Infof(format string, args ...any) {
	if l.minimum > levelInfo {
		return
	}
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *Logger) Errorf(format string, args ...any) {
	l.write("[ERROR]", format, args...)
}

func (l *Logger) write(infoType string, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	io.WriteString(l.out, line)
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
