package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pantry/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("debug message")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var h slog.Handler = logger.NewPrettyHandler(buf, nil)
	h = h.WithAttrs([]slog.Attr{slog.String("source", "conversions.json")})
	lg := slog.New(h)

	lg.Info("table reloaded", "units", 12)
	assert.Equal(t, "table reloaded source=conversions.json units=12\n", buf.String())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil).WithGroup("watch"))

	lg.Warn("reload failed", "path", "conversions.yaml")
	assert.Equal(t, "! reload failed watch.path=conversions.yaml\n", buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var h slog.Handler = logger.NewPrettyHandler(buf, nil)
	h = h.WithAttrs([]slog.Attr{slog.String("backend", "sqlite")}).WithGroup("store").WithGroup("prices")
	lg := slog.New(h)

	lg.Error("save failed", "rows", 3)
	assert.Equal(t, "✗ save failed backend=sqlite store.prices.rows=3\n", buf.String())
}
