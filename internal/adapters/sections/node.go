package sections

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imagetool/internal/core/ports"
)

// NodeID is the unique identifier for the command parser Graft node.
const NodeID graft.ID = "adapter.sections"

func init() {
	graft.Register(graft.Node[ports.CommandParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandParser, error) {
			return NewParser(), nil
		},
	})
}
