package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/adapters/logger"
	"go.trai.ch/autodeps/internal/core/ports"
)

// NodeID is the unique identifier for the overrides loader Graft node.
const NodeID graft.ID = "adapter.overrides_loader"

func init() {
	graft.Register(graft.Node[ports.OverridesLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.OverridesLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
