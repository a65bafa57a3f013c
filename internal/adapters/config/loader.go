// Package config loads the runtime settings from pantry.yaml and PANTRY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config keys.
const (
	keyDataDir         = "data_dir"
	keyStorage         = "storage"
	keyRecipesFile     = "recipes_file"
	keyPricesFile      = "prices_file"
	keyConversionsFile = "conversions_file"
	keySymmetricSearch = "conversions.symmetric_search"
	keyWatch           = "conversions.watch"
	keyLogJSON         = "log.json"
)

var knownKeys = []string{
	keyDataDir, keyStorage, keyRecipesFile, keyPricesFile, keyConversionsFile,
	keySymmetricSearch, keyWatch, keyLogJSON,
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using viper.
type Loader struct {
	logger ports.Logger
	// Dir is the directory searched for pantry.yaml when no explicit path is given.
	Dir string
}

// NewLoader creates a new Loader searching the working directory.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, Dir: "."}
}

// Load reads the settings.
//
// An explicit path must exist. Without one, pantry.yaml is looked up in Dir and a missing file
// yields the defaults. PANTRY_* environment variables override both, with nested keys joined
// by underscores (PANTRY_CONVERSIONS_WATCH).
func (l *Loader) Load(path string) (domain.Settings, error) {
	v := viper.New()
	setDefaults(v, domain.DefaultSettings())

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(domain.ConfigFileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(l.Dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
	}

	for _, key := range v.AllKeys() {
		if !slices.Contains(knownKeys, key) {
			l.logger.Warn(fmt.Sprintf("unknown config key '%s' ignored", key))
		}
	}

	var settings domain.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", v.ConfigFileUsed())
	}

	if err := settings.Validate(); err != nil {
		return domain.Settings{}, zerr.With(err, "path", v.ConfigFileUsed())
	}
	return settings, nil
}

func setDefaults(v *viper.Viper, d domain.Settings) {
	v.SetDefault(keyDataDir, d.DataDir)
	v.SetDefault(keyStorage, d.Storage)
	v.SetDefault(keyRecipesFile, d.RecipesFile)
	v.SetDefault(keyPricesFile, d.PricesFile)
	v.SetDefault(keyConversionsFile, d.ConversionsFile)
	v.SetDefault(keySymmetricSearch, d.Conversions.SymmetricSearch)
	v.SetDefault(keyWatch, d.Conversions.Watch)
	v.SetDefault(keyLogJSON, d.Log.JSON)
}
