package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/cmd/pantry/commands"
	"go.trai.ch/pantry/internal/app"
	"go.trai.ch/pantry/internal/build"
	"go.trai.ch/pantry/internal/core/domain"
)

type call struct {
	method string
	args   []any
}

type mockApp struct {
	opts     app.Options
	setups   int
	closes   int
	calls    []call
	setupErr error
	runErr   error
}

func (m *mockApp) Setup(_ context.Context, opts app.Options) error {
	m.setups++
	m.opts = opts
	return m.setupErr
}

func (m *mockApp) Close(_ context.Context) error {
	m.closes++
	return nil
}

func (m *mockApp) record(method string, args ...any) error {
	m.calls = append(m.calls, call{method: method, args: args})
	return m.runErr
}

func (m *mockApp) Shell(_ context.Context) error { return m.record("Shell") }

func (m *mockApp) Convert(_ context.Context, value float64, from, to string) error {
	return m.record("Convert", value, from, to)
}

func (m *mockApp) Units(_ context.Context, unit string) error { return m.record("Units", unit) }

func (m *mockApp) SetPrice(_ context.Context, name string, price float64, measurement string) error {
	return m.record("SetPrice", name, price, measurement)
}

func (m *mockApp) Search(_ context.Context, query string) error { return m.record("Search", query) }

func (m *mockApp) List(_ context.Context, path string) error { return m.record("List", path) }

func (m *mockApp) View(_ context.Context, ref string) error { return m.record("View", ref) }

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	if args == nil {
		args = []string{}
	}
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want call
	}{
		{name: "no subcommand starts the shell", args: nil, want: call{method: "Shell"}},
		{name: "shell", args: []string{"shell"}, want: call{method: "Shell"}},
		{name: "convert", args: []string{"convert", "2", "lb", "g"}, want: call{method: "Convert", args: []any{2.0, "lb", "g"}}},
		{name: "units", args: []string{"units"}, want: call{method: "Units", args: []any{""}}},
		{name: "compatible units", args: []string{"units", "oz"}, want: call{method: "Units", args: []any{"oz"}}},
		{
			name: "price with a multi-word ingredient",
			args: []string{"price", "Olive", "oil", "0.5", "tbsp"},
			want: call{method: "SetPrice", args: []any{"Olive oil", 0.5, "tbsp"}},
		},
		{name: "search", args: []string{"search", "green", "beans"}, want: call{method: "Search", args: []any{"green beans"}}},
		{name: "ls defaults to the root", args: []string{"ls"}, want: call{method: "List", args: []any{"/"}}},
		{name: "ls path", args: []string{"ls", "/Soups"}, want: call{method: "List", args: []any{"/Soups"}}},
		{name: "view is rooted", args: []string{"view", "Soups/Gumbo"}, want: call{method: "View", args: []any{"/Soups/Gumbo"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{}
			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			require.Len(t, m.calls, 1)
			assert.Equal(t, tt.want.method, m.calls[0].method)
			if tt.want.args != nil {
				assert.Equal(t, tt.want.args, m.calls[0].args)
			}
			assert.Equal(t, 1, m.setups)
			assert.Equal(t, 1, m.closes)
		})
	}
}

func TestCommands_Flags(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "shell", "--watch", "--config", "alt.yaml", "--conversions", "metric.yaml",
		"--data-dir", "/tmp/pantry", "--trace", "--json-logs")
	require.NoError(t, err)

	assert.True(t, m.opts.Watch)
	assert.True(t, m.opts.Trace)
	assert.True(t, m.opts.JSONLogs)
	assert.Equal(t, "alt.yaml", m.opts.ConfigPath)
	assert.Equal(t, "metric.yaml", m.opts.Conversions)
	assert.Equal(t, "/tmp/pantry", m.opts.DataDir)
	assert.NotNil(t, m.opts.Stdout)
	assert.NotNil(t, m.opts.TraceOutput)
}

func TestCommands_InvalidNumbers(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "convert", "two", "lb", "g")
	require.ErrorContains(t, err, "invalid value")

	_, err = execute(t, m, "price", "Onion", "cheap", "oz")
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	assert.Empty(t, m.calls)
	assert.Zero(t, m.setups)
}

func TestCommands_ArgumentCounts(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "convert", "2", "lb")
	require.Error(t, err)

	_, err = execute(t, m, "price", "Onion", "1")
	require.Error(t, err)

	_, err = execute(t, m, "frobnicate")
	require.Error(t, err)

	assert.Empty(t, m.calls)
}

func TestCommands_Errors(t *testing.T) {
	t.Run("setup failure skips the command", func(t *testing.T) {
		m := &mockApp{setupErr: errors.New("no config")}
		_, err := execute(t, m, "units")
		require.ErrorContains(t, err, "no config")
		assert.Empty(t, m.calls)
		assert.Zero(t, m.closes)
	})

	t.Run("command failure still closes the app", func(t *testing.T) {
		m := &mockApp{runErr: domain.ErrNoConversionPath}
		_, err := execute(t, m, "convert", "1", "g", "cup")
		require.ErrorIs(t, err, domain.ErrNoConversionPath)
		assert.Equal(t, 1, m.closes)
	})
}

func TestCommands_Version(t *testing.T) {
	m := &mockApp{}
	out, err := execute(t, m, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "pantry version "+build.Version)
	assert.Contains(t, out, build.Commit)
	assert.Zero(t, m.setups)
}
