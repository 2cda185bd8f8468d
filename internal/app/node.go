package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pynix/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/index"  //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/lock"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pynix/internal/adapters/telemetry/progrock"
	"go.trai.ch/pynix/internal/core/ports"
	"go.trai.ch/pynix/internal/engine/overlay"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI needs after initialization.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lock.NodeID,
			overlay.NodeID,
			index.NodeID,
			cache.NodeID,
			fs.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	lockReader, err := graft.Dep[ports.LockReader](ctx)
	if err != nil {
		return nil, err
	}
	generator, err := graft.Dep[ports.ExpressionGenerator](ctx)
	if err != nil {
		return nil, err
	}
	pkgIndex, err := graft.Dep[ports.PackageIndex](ctx)
	if err != nil {
		return nil, err
	}
	exprCache, err := graft.Dep[ports.ExpressionCache](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, lockReader, generator, pkgIndex, exprCache, writer, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
