package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildit/internal/adapters/detector"
	"go.trai.ch/buildit/internal/core/ports"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.command_runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CommandRunner, error) {
			return NewExecutor(detector.IsInteractive()), nil
		},
	})
}
