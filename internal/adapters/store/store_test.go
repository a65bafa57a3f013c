package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/store"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
)

func amount(v float64) *float64 {
	return &v
}

func sampleTree() *domain.Folder {
	root := domain.NewFolder()
	soups := domain.NewFolder()
	soups.Recipes["Gumbo"] = &domain.Recipe{
		Ingredients: domain.IngredientList{
			{Name: "Shrimp", Amount: amount(1), Unit: "lb"},
			{Name: "Okra", Amount: amount(2), Unit: "cup"},
			{Name: "Salt"},
		},
		Instructions: "Make a roux.",
		Notes:        "Better the next day.",
	}
	root.Folders["Soups"] = soups
	root.Recipes["Toast"] = &domain.Recipe{}
	return root
}

func samplePrices(t *testing.T) domain.PriceBook {
	t.Helper()
	prices := make(domain.PriceBook)
	require.NoError(t, prices.Set("Shrimp", 12.5, "lb"))
	require.NoError(t, prices.Set("okra", 0.3, "oz"))
	return prices
}

func assertRoundTrip(t *testing.T, s ports.Store) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, s.SaveCatalog(ctx, sampleTree()))
	require.NoError(t, s.SavePrices(ctx, samplePrices(t)))

	root, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Contains(t, root.Folders, "Soups")
	gumbo := root.Folders["Soups"].Recipes["Gumbo"]
	require.NotNil(t, gumbo)
	assert.Equal(t, sampleTree().Folders["Soups"].Recipes["Gumbo"], gumbo)
	assert.Contains(t, root.Recipes, "Toast")

	prices, err := s.LoadPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, samplePrices(t), prices)
}

func TestFileStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "recipes.json"), filepath.Join(dir, "ingredients.json"))
	defer func() { _ = s.Close() }()

	assertRoundTrip(t, s)
}

func TestFileStore_MissingFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(filepath.Join(dir, "recipes.json"), filepath.Join(dir, "ingredients.json"))
	ctx := context.Background()

	root, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.True(t, root.IsEmpty())

	prices, err := s.LoadPrices(ctx)
	require.NoError(t, err)
	assert.Empty(t, prices)
	assert.NotNil(t, prices)
}

func TestFileStore_WritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	pricesPath := filepath.Join(dir, "ingredients.json")
	s := store.NewFileStore(filepath.Join(dir, "recipes.json"), pricesPath)

	prices := make(domain.PriceBook)
	require.NoError(t, prices.Set("Onion", 1, "oz"))
	require.NoError(t, s.SavePrices(context.Background(), prices))

	data, err := os.ReadFile(pricesPath)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"onion\": {\n    \"price\": 1,\n    \"measurement\": \"oz\"\n  }\n}", string(data))
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := store.NewFileStore(filepath.Join(dir, "recipes.json"), filepath.Join(dir, "ingredients.json"))

	require.NoError(t, s.SaveCatalog(context.Background(), domain.NewFolder()))
	assert.FileExists(t, filepath.Join(dir, "recipes.json"))
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(recipesPath, []byte("{not json"), 0o600))
	s := store.NewFileStore(recipesPath, filepath.Join(dir, "ingredients.json"))

	_, err := s.LoadCatalog(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestFileStore_LegacyIngredientList(t *testing.T) {
	dir := t.TempDir()
	recipesPath := filepath.Join(dir, "recipes.json")
	legacy := `{"folders": {}, "recipes": {"Omelette": {"ingredients": ["2 eggs", "salt"], "instructions": "Whisk.", "notes": ""}}}`
	require.NoError(t, os.WriteFile(recipesPath, []byte(legacy), 0o600))
	s := store.NewFileStore(recipesPath, filepath.Join(dir, "ingredients.json"))

	root, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	omelette := root.Recipes["Omelette"]
	require.NotNil(t, omelette)
	assert.Equal(t, domain.IngredientList{{Name: "2 eggs"}, {Name: "salt"}}, omelette.Ingredients)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pantry.db")
	s, err := store.OpenSQLite(context.Background(), path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	assertRoundTrip(t, s)
}

func TestSQLiteStore_EmptyDatabase(t *testing.T) {
	s, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "pantry.db"))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	root, err := s.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, root.IsEmpty())

	prices, err := s.LoadPrices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "pantry.db")

	s, err := store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(ctx, sampleTree()))
	require.NoError(t, s.SavePrices(ctx, samplePrices(t)))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	root, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Contains(t, root.Folders, "Soups")

	// Saving replaces the whole price book.
	prices := make(domain.PriceBook)
	require.NoError(t, prices.Set("Rice", 2, "cup"))
	require.NoError(t, s.SavePrices(ctx, prices))

	got, err := s.LoadPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, prices, got)
}

func TestOpener(t *testing.T) {
	ctx := context.Background()
	settings := domain.DefaultSettings()
	settings.DataDir = t.TempDir()

	s, err := store.NewOpener().Open(ctx, settings)
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)
	require.NoError(t, s.Close())

	settings.Storage = domain.StorageSQLite
	s, err = store.NewOpener().Open(ctx, settings)
	require.NoError(t, err)
	assert.IsType(t, &store.SQLiteStore{}, s)
	require.NoError(t, s.Close())
	assert.FileExists(t, settings.DatabasePath())

	settings.Storage = "postgres"
	_, err = store.NewOpener().Open(ctx, settings)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}
