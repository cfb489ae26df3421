package template

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imagetool/internal/adapters/logger"
	"go.trai.ch/imagetool/internal/core/ports"
)

// NodeID is the unique identifier for the template resolver Graft node.
const NodeID graft.ID = "adapter.template"

func init() {
	graft.Register(graft.Node[ports.TemplateResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.TemplateResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
