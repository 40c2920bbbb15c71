package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/adapters/fs"
	"go.trai.ch/autodeps/internal/core/ports"
)

// NodeID is the unique identifier for the parse cache Graft node.
const NodeID graft.ID = "adapter.parse_cache"

func init() {
	graft.Register(graft.Node[ports.ParseCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ParseCache, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(hasher), nil
		},
	})
}
