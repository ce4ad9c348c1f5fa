package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/libs"               //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/resources"          //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/state"              //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/toolchain"          //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/deps"
	"go.trai.ch/forge/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			fs.ArtifactsNodeID,
			deps.NodeID,
			state.NodeID,
			toolchain.CompilerNodeID,
			toolchain.LinkerNodeID,
			resources.NodeID,
			libs.NodeID,
			linear.NodeID,
			progrock.NodeID,
			logger.NodeID,
			scheduler.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var d Dependencies
	var err error

	if d.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if d.Locator, err = graft.Dep[ports.SourceLocator](ctx); err != nil {
		return nil, err
	}
	if d.Artifacts, err = graft.Dep[ports.ArtifactStore](ctx); err != nil {
		return nil, err
	}
	if d.Analyzers, err = graft.Dep[ports.AnalyzerFactory](ctx); err != nil {
		return nil, err
	}
	if d.Store, err = graft.Dep[ports.StateStore](ctx); err != nil {
		return nil, err
	}
	if d.Toolchain, err = graft.Dep[ports.Toolchain](ctx); err != nil {
		return nil, err
	}
	if d.Linker, err = graft.Dep[ports.Linker](ctx); err != nil {
		return nil, err
	}
	if d.Embedder, err = graft.Dep[ports.ResourceEmbedder](ctx); err != nil {
		return nil, err
	}
	if d.Libraries, err = graft.Dep[ports.LibraryResolver](ctx); err != nil {
		return nil, err
	}
	if d.Renderer, err = graft.Dep[ports.Renderer](ctx); err != nil {
		return nil, err
	}
	if d.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	if d.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if d.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if d.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}

	return New(d), nil
}
