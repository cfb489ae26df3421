package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imagetool/internal/adapters/logger"
	"go.trai.ch/imagetool/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the Walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the unique identifier for the Hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// AssemblerNodeID is the unique identifier for the context assembler Graft node.
	AssemblerNodeID graft.ID = "adapter.fs.assembler"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.ContextAssembler]{
		ID:        AssemblerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ContextAssembler, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssembler(walker, hasher, log), nil
		},
	})
}
