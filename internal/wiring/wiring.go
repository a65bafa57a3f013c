// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pantry/internal/adapters/config"
	_ "go.trai.ch/pantry/internal/adapters/conversions"
	_ "go.trai.ch/pantry/internal/adapters/logger"
	_ "go.trai.ch/pantry/internal/adapters/prompt"
	_ "go.trai.ch/pantry/internal/adapters/store"
	_ "go.trai.ch/pantry/internal/adapters/telemetry"
	_ "go.trai.ch/pantry/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pantry/internal/app"
)
