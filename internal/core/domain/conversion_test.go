package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/core/domain"
)

func TestConversionTable_AddFactor(t *testing.T) {
	table := domain.NewConversionTable()

	require.NoError(t, table.AddFactor("cup", "ml", 236.59))
	require.NoError(t, table.AddFactor("cup", "tbsp", 16))
	require.NoError(t, table.AddFactor("tbsp", "tsp", 3))

	assert.Equal(t, []string{"cup", "tbsp"}, table.Units())
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 3, table.EdgeCount())

	f, ok := table.Factor("cup", "tbsp")
	assert.True(t, ok)
	assert.Equal(t, 16.0, f)

	_, ok = table.Factor("tbsp", "cup")
	assert.False(t, ok)
	_, ok = table.Factor("ml", "cup")
	assert.False(t, ok)
}

func TestConversionTable_AddFactor_ReplaceKeepsOrder(t *testing.T) {
	table := domain.NewConversionTable()
	require.NoError(t, table.AddFactor("cup", "ml", 236.59))
	require.NoError(t, table.AddFactor("cup", "tbsp", 16))
	require.NoError(t, table.AddFactor("cup", "ml", 240))

	edges := table.Edges("cup")
	require.Len(t, edges, 2)
	assert.Equal(t, domain.Edge{From: "cup", To: "ml", Factor: 240}, edges[0])
	assert.Equal(t, "tbsp", edges[1].To)
}

func TestConversionTable_AddFactor_Invalid(t *testing.T) {
	for _, factor := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		table := domain.NewConversionTable()
		err := table.AddFactor("cup", "ml", factor)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidFactor)
		assert.Equal(t, 0, table.Len())
	}
}

func TestConversionTable_UnitsIsSnapshot(t *testing.T) {
	table := domain.NewConversionTable()
	require.NoError(t, table.AddFactor("cup", "ml", 236.59))

	units := table.Units()
	units[0] = "changed"

	assert.Equal(t, []string{"cup"}, table.Units())
}

func TestConversionTable_AddUnit(t *testing.T) {
	table := domain.NewConversionTable()
	table.AddUnit("pinch")
	table.AddUnit("pinch")

	assert.Equal(t, []string{"pinch"}, table.Units())
	assert.Empty(t, table.Edges("pinch"))
}

func TestConversionTable_ResetUnit(t *testing.T) {
	table := domain.NewConversionTable()
	require.NoError(t, table.AddFactor("cup", "ml", 236.59))
	require.NoError(t, table.AddFactor("tbsp", "tsp", 3))

	table.ResetUnit("cup")
	require.NoError(t, table.AddFactor("cup", "tbsp", 16))

	assert.Equal(t, []string{"cup", "tbsp"}, table.Units())
	_, ok := table.Factor("cup", "ml")
	assert.False(t, ok)
	assert.Equal(t, 2, table.EdgeCount())
}

func TestConversionPath_Apply(t *testing.T) {
	path := domain.ConversionPath{
		{From: "lb", To: "oz", Factor: 16},
		{From: "oz", To: "g", Factor: 28.35},
	}
	assert.InDelta(t, 907.2, path.Apply(2), 1e-9)
	assert.Equal(t, 2, path.Hops())

	inverse := domain.ConversionPath{{From: "ml", To: "cup", Factor: 236.59, Inverse: true}}
	assert.Equal(t, 100/236.59, inverse.Apply(100))

	assert.Equal(t, 7.0, domain.ConversionPath{}.Apply(7))
}
