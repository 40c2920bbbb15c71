package inference

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/autodeps/internal/core/ports"
)

// NodeID is the unique identifier for the inference engine Graft node.
const NodeID graft.ID = "engine.inference"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(log), nil
		},
	})
}
