// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pantry/internal/ui/output"
	"go.trai.ch/pantry/internal/ui/style"
)

// levelStyle is the icon and color a record of a given level is rendered with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelWarn:  {icon: style.Warning, color: style.Saffron},
	slog.LevelError: {icon: style.Cross, color: style.Paprika},
}

var defaultLevelStyle = levelStyle{color: style.Slate}

// PrettyHandler is a slog.Handler that writes one colored, human-readable line per record.
// Attributes follow the message as key=value pairs; nested groups are joined with dots.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	ls, ok := levelStyles[r.Level]
	if !ok {
		ls = defaultLevelStyle
	}

	var b strings.Builder
	if ls.icon != "" {
		b.WriteString(ls.icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		b.WriteByte(' ')
		b.WriteString(attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(h.format(attr))
		return true
	})

	line := h.out.String(b.String()).Foreground(h.out.Color(string(ls.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.format(attr))
	}
	return &clone
}

// WithGroup returns a new Handler that qualifies later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *PrettyHandler) format(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}
