package overlay

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pynix/internal/adapters/index"
	"go.trai.ch/pynix/internal/core/ports"
)

// NodeID is the unique identifier for the expression generator Graft node.
const NodeID graft.ID = "engine.overlay"

func init() {
	graft.Register(graft.Node[ports.ExpressionGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{index.NodeID},
		Run: func(ctx context.Context) (ports.ExpressionGenerator, error) {
			idx, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}
			return New(idx), nil
		},
	})
}
