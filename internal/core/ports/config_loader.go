package ports

import "go.trai.ch/pantry/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings. An empty path searches the working directory for the default
	// config file; a missing file yields the defaults.
	Load(path string) (domain.Settings, error)
}
