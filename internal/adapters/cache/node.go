package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mitchellh/go-homedir"
	"go.trai.ch/imagetool/internal/adapters/logger"
	"go.trai.ch/imagetool/internal/core/domain"
	"go.trai.ch/imagetool/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			home, err := homedir.Dir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine home directory")
			}

			backend, err := NewPropertiesBackend(domain.DefaultSettingsPath(home))
			if err != nil {
				return nil, err
			}

			store, err := NewStore(backend, domain.DefaultCacheDir(home), log)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
