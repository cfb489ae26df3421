package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/imagetool/internal/adapters/cache"    //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/adapters/sections" //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/adapters/template" //nolint:depguard // Wired in app layer
	"go.trai.ch/imagetool/internal/core/ports"
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
			cache.NodeID,
			sections.NodeID,
			fs.AssemblerNodeID,
			template.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.CommandParser](ctx)
			if err != nil {
				return nil, err
			}

			assembler, err := graft.Dep[ports.ContextAssembler](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.TemplateResolver](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, parser, assembler, resolver, loader, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}
