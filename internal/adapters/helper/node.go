package helper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildit/internal/core/ports"
)

// NodeID is the unique identifier for the helper generator Graft node.
const NodeID graft.ID = "adapter.helper_generator"

func init() {
	graft.Register(graft.Node[ports.HelperGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HelperGenerator, error) {
			return NewGenerator(), nil
		},
	})
}
