package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pantry/internal/core/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := domain.DefaultSettings()
	assert.NoError(t, s.Validate())

	assert.Equal(t, filepath.Join(".", "recipes.json"), s.RecipesPath())
	assert.Equal(t, filepath.Join(".", "ingredients.json"), s.PricesPath())
	assert.Equal(t, filepath.Join(".", "conversions.json"), s.ConversionsPath())
	assert.Equal(t, filepath.Join(".", "pantry.db"), s.DatabasePath())
	assert.Equal(t, domain.SearchForward, s.SearchMode())
}

func TestSettings_Paths(t *testing.T) {
	s := domain.DefaultSettings()
	s.DataDir = "/var/lib/pantry"
	s.ConversionsFile = "/etc/pantry/units.yaml"
	s.Conversions.SymmetricSearch = true

	assert.Equal(t, "/var/lib/pantry/recipes.json", s.RecipesPath())
	assert.Equal(t, "/etc/pantry/units.yaml", s.ConversionsPath())
	assert.Equal(t, domain.SearchSymmetric, s.SearchMode())
}

func TestSettings_Validate(t *testing.T) {
	s := domain.DefaultSettings()
	s.Storage = "postgres"
	assert.ErrorContains(t, s.Validate(), domain.ErrInvalidSettings.Error())

	s = domain.DefaultSettings()
	s.RecipesFile = ""
	assert.Error(t, s.Validate())
}
