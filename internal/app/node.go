package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildit/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildit/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildit/internal/core/ports"
	"go.trai.ch/buildit/internal/engine/dispatcher"
	"go.trai.ch/buildit/internal/engine/reconciler"
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
			reconciler.NodeID,
			config.NodeID,
			dispatcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			rec, err := graft.Dep[*reconciler.Reconciler](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			disp, err := graft.Dep[*dispatcher.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			return New(rec, loader, disp), nil
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
