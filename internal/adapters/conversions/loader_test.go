package conversions_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/conversions"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestFileSource_Load_JSON(t *testing.T) {
	path := writeTable(t, "conversions.json", `{
  "cup": {"ml": 236.59, "tbsp": 16},
  "tbsp": {"tsp": 3},
  "lb": {"oz": 16},
  "oz": {"g": 28.35}
}`)

	table, err := conversions.NewFileSource().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cup", "tbsp", "lb", "oz"}, table.Units())
	assert.Equal(t, path, table.Source)
	assert.Len(t, table.Digest, 16)

	f, ok := table.Factor("cup", "ml")
	require.True(t, ok)
	assert.InDelta(t, 236.59, f, 1e-9)

	edges := table.Edges("cup")
	require.Len(t, edges, 2)
	assert.Equal(t, "ml", edges[0].To)
	assert.Equal(t, "tbsp", edges[1].To)
}

func TestFileSource_Load_YAML(t *testing.T) {
	path := writeTable(t, "conversions.yaml", `
cup:
  ml: 236.59
  tbsp: 16
gallon:
  quart: 4
empty: {}
`)

	table, err := conversions.NewFileSource().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cup", "gallon", "empty"}, table.Units())
	assert.Empty(t, table.Edges("empty"))
	assert.Equal(t, 3, table.EdgeCount())
}

func TestParse_DuplicateUnitKeepsLastEntry(t *testing.T) {
	table, err := conversions.Parse([]byte(`{"a": {"b": 2}, "z": {"a": 1}, "a": {"c": 3}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "z"}, table.Units())
	_, ok := table.Factor("a", "b")
	assert.False(t, ok)
	f, ok := table.Factor("a", "c")
	require.True(t, ok)
	assert.InDelta(t, 3, f, 1e-9)

	_, _, err = table.Resolve("a", "b", domain.SearchForward)
	require.ErrorIs(t, err, domain.ErrNoConversionPath)
}

func TestFileSource_Load_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := conversions.NewFileSource().Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
	assert.ErrorContains(t, err, "missing.json")
}

func TestFileSource_Load_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{"cup": {"ml": 236.59}`},
		{name: "empty file", content: ``},
		{name: "top level list", content: `[1, 2]`},
		{name: "top level scalar", content: `42`},
		{name: "unit value is a number", content: `{"cup": 5}`},
		{name: "unit value is a list", content: `{"cup": [1]}`},
		{name: "factor is a string", content: `{"cup": {"ml": "236"}}`},
		{name: "factor is null", content: `{"cup": {"ml": null}}`},
		{name: "factor is a bool", content: `{"cup": {"ml": true}}`},
		{name: "factor is zero", content: `{"cup": {"ml": 0}}`},
		{name: "factor is negative", content: `{"cup": {"ml": -1}}`},
		{name: "factor is infinite", content: "cup:\n  ml: .inf\n"},
		{name: "factor is nan", content: "cup:\n  ml: .nan\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTable(t, "conversions.json", tt.content)

			_, err := conversions.NewFileSource().Load(context.Background(), path)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrTableMalformed.Error())
		})
	}
}

func TestFileSource_Load_MalformedMetadata(t *testing.T) {
	path := writeTable(t, "conversions.json", `{"cup": {"ml": 236.59}, "tbsp": {"tsp": -3}}`)

	_, err := conversions.NewFileSource().Load(context.Background(), path)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error")
	meta := zErr.Metadata()
	assert.Equal(t, "tbsp", meta["unit"])
	assert.Equal(t, "tsp", meta["target"])
	assert.Equal(t, "-3", meta["factor"])
	assert.Equal(t, path, meta["source"])
}

func TestFileSource_Digest(t *testing.T) {
	path := writeTable(t, "conversions.json", `{"cup": {"ml": 236.59}}`)
	src := conversions.NewFileSource()

	table, err := src.Load(context.Background(), path)
	require.NoError(t, err)

	d1, err := src.Digest(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, table.Digest, d1)

	require.NoError(t, os.WriteFile(path, []byte(`{"cup": {"ml": 240}}`), domain.FilePerm))
	d2, err := src.Digest(context.Background(), path)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)

	_, err = src.Digest(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, domain.ErrTableNotFound)
}
