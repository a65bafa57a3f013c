package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pantry/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("unexpected EOF"), "failed to parse conversion table"),
				"failed to load conversion table",
			),
			wantMessages: []string{
				"failed to load conversion table",
				"failed to parse conversion table",
				"unexpected EOF",
			},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("no conversion path"), "from", "cup"), "to", "g"),
			wantMessages: []string{"no conversion path"},
			wantMetadata: []map[string]any{{"from": "cup", "to": "g"}},
		},
		{
			name: "mixed chain with partial metadata",
			err: func() error {
				inner := zerr.With(zerr.New("invalid conversion factor"), "factor", "-1")
				outer := zerr.Wrap(inner, "conversion table is malformed")
				return zerr.With(outer, "source", "conversions.json")
			}(),
			wantMessages: []string{"conversion table is malformed", "invalid conversion factor"},
			wantMetadata: []map[string]any{
				{"source": "conversions.json"},
				{"factor": "-1"},
			},
		},
		{
			name:         "metadata on a plain error is handed to it",
			err:          zerr.With(errors.New("permission denied"), "path", "recipes.json"),
			wantMessages: []string{"permission denied"},
			wantMetadata: []map[string]any{{"path": "recipes.json"}},
		},
		{
			name:         "fmt wrapped error ends the walk",
			err:          zerr.Wrap(fmt.Errorf("read: %w", errors.New("closed")), "failed to read recipes"),
			wantMessages: []string{"failed to read recipes", "read: closed"},
			wantMetadata: []map[string]any{{}, nil},
		},
		{
			name:         "nil error handling",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries, "nil error should produce no entries")
				return
			}

			assert.Len(t, entries, len(tt.wantMessages), "entry count mismatch")
			for i, wantMsg := range tt.wantMessages {
				assert.Equal(t, wantMsg, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries with caused by",
			entries: []logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			want:    "Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "entry with metadata on main error",
			entries: []logger.ErrorEntry{
				{Message: "main error", Metadata: map[string]any{"key": "value"}},
			},
			want: "Error: main error\n       key: value",
		},
		{
			name: "entry with metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cause_key": "cause_val"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cause_key: cause_val",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2\nline3"}},
			want:    "Error: line1\n       line2\n       line3",
		},
		{
			name:    "multiline cause message",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "cause line1\ncause line2"}},
			want:    "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"unit": "z", "from": "a", "to": "m"}},
			},
			want: "Error: error\n       from: a\n       to: m\n       unit: z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestCollectAndFormatIntegration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "zerr chain with metadata",
			err: func() error {
				inner := zerr.With(zerr.New("invalid conversion factor"), "factor", 0)
				outer := zerr.Wrap(inner, "conversion table is malformed")
				return zerr.With(outer, "source", "conversions.json")
			}(),
			want: "Error: conversion table is malformed\n" +
				"       source: conversions.json\n\n" +
				"  Caused by:\n" +
				"    → invalid conversion factor\n" +
				"      factor: 0",
		},
		{
			name: "simple standard error",
			err:  errors.New("simple"),
			want: "Error: simple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(entries))
		})
	}
}
