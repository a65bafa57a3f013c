package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/conversions" //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/prompt"      //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/adapters/watcher"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pantry/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			store.NodeID,
			conversions.NodeID,
			watcher.NodeID,
			prompt.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.ConversionSource](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, opener, source, w, prompter, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
