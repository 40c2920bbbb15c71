package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/adapters/buildlog" //nolint:depguard // Wired in app layer
	"go.trai.ch/autodeps/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/autodeps/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/autodeps/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/autodeps/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/autodeps/internal/engine/inference"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			buildlog.NodeID,
			cas.NodeID,
			config.NodeID,
			manifest.NodeID,
			inference.NodeID,
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
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	reader, err := graft.Dep[ports.BuildLogReader](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.ParseCache](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.OverridesLoader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ManifestWriter](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*inference.Engine](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(reader, cache, loader, writer, engine, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: a, Logger: log}, nil
}
