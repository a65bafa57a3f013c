package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "pantry.yaml"

	// EnvPrefix is the prefix of the environment variables overriding settings.
	EnvPrefix = "PANTRY"

	// RecipesFileName is the default name of the recipe tree file.
	RecipesFileName = "recipes.json"

	// PricesFileName is the default name of the ingredient price file.
	PricesFileName = "ingredients.json"

	// ConversionsFileName is the default name of the conversion table file.
	ConversionsFileName = "conversions.json"

	// DatabaseFileName is the name of the SQLite database file.
	DatabaseFileName = "pantry.db"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Storage backends.
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	DataDir         string             `mapstructure:"data_dir" validate:"required"`
	Storage         string             `mapstructure:"storage" validate:"oneof=json sqlite"`
	RecipesFile     string             `mapstructure:"recipes_file" validate:"required"`
	PricesFile      string             `mapstructure:"prices_file" validate:"required"`
	ConversionsFile string             `mapstructure:"conversions_file" validate:"required"`
	Conversions     ConversionSettings `mapstructure:"conversions"`
	Log             LogSettings        `mapstructure:"log"`
}

// ConversionSettings configures the unit converter.
type ConversionSettings struct {
	SymmetricSearch bool `mapstructure:"symmetric_search"`
	Watch           bool `mapstructure:"watch"`
}

// LogSettings configures the logger.
type LogSettings struct {
	JSON bool `mapstructure:"json"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		DataDir:         ".",
		Storage:         StorageJSON,
		RecipesFile:     RecipesFileName,
		PricesFile:      PricesFileName,
		ConversionsFile: ConversionsFileName,
	}
}

// Validate checks the settings for unsupported values.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return zerr.Wrap(err, ErrInvalidSettings.Error())
	}
	return nil
}

// RecipesPath returns the path of the recipe tree file.
func (s Settings) RecipesPath() string {
	return s.resolve(s.RecipesFile)
}

// PricesPath returns the path of the ingredient price file.
func (s Settings) PricesPath() string {
	return s.resolve(s.PricesFile)
}

// ConversionsPath returns the path of the conversion table file.
func (s Settings) ConversionsPath() string {
	return s.resolve(s.ConversionsFile)
}

// DatabasePath returns the path of the SQLite database.
func (s Settings) DatabasePath() string {
	return filepath.Join(s.DataDir, DatabaseFileName)
}

// SearchMode returns the search mode selected by the settings.
func (s Settings) SearchMode() SearchMode {
	if s.Conversions.SymmetricSearch {
		return SearchSymmetric
	}
	return SearchForward
}

func (s Settings) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.DataDir, name)
}
