package dispatcher

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildit/internal/adapters/helper" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildit/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/buildit/internal/core/ports"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			helper.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			gen, err := graft.Dep[ports.HelperGenerator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(runner, gen, log, os.Stdout, os.Stderr), nil
		},
	})
}
