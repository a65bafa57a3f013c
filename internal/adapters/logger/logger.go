package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager is implemented by errors that can report their own message without the chain.
type messager interface {
	Message() string
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.logger = slog.New(l.handler())
	return l
}

func (l *Logger) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// SetOutput updates the output destination, keeping the current mode.
// A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := collectErrorEntries(err)
	if l.jsonMode {
		attrs := []any{"error", err.Error()}
		if len(entries) > 0 {
			for _, k := range sortedKeys(entries[0].Metadata) {
				attrs = append(attrs, k, entries[0].Metadata[k])
			}
		}
		l.logger.Error("operation failed", attrs...)
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}

// collectErrorEntries walks the error chain. zerr layers contribute their own message and
// metadata; the first foreign error contributes its full text and ends the walk. Layers
// without a message, as created by zerr.With on a plain error, hand their metadata down.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		var metadata map[string]any
		if ze, ok := current.(*zerr.Error); ok {
			metadata = ze.Metadata()
		}
		current = errors.Unwrap(current)

		if m.Message() == "" && current != nil {
			pending = merge(pending, metadata)
			continue
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: merge(pending, metadata)})
		pending = nil
	}

	return entries
}

func merge(base, extra map[string]any) map[string]any {
	if base == nil {
		return extra
	}
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// formatErrorEntries renders the entries as a main error followed by its causes.
func formatErrorEntries(entries []ErrorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = appendMetadata(lines, "       ", entry.Metadata)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = appendMetadata(lines, "      ", entry.Metadata)
	}

	return strings.Join(lines, "\n")
}

func appendMetadata(lines []string, indent string, metadata map[string]any) []string {
	for _, k := range sortedKeys(metadata) {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, metadata[k]))
	}
	return lines
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
