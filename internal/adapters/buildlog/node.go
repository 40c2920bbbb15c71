package buildlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/autodeps/internal/core/ports"
)

// NodeID is the unique identifier for the build log reader Graft node.
const NodeID graft.ID = "adapter.build_log_reader"

func init() {
	graft.Register(graft.Node[ports.BuildLogReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildLogReader, error) {
			return NewReader(), nil
		},
	})
}
