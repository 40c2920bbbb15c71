package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/core/ports"
)

// NodeID is the unique identifier for the manifest writer Graft node.
const NodeID graft.ID = "adapter.manifest_writer"

func init() {
	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestWriter, error) {
			return NewWriter(), nil
		},
	})
}
