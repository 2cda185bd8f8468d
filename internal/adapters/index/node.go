package index

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pynix/internal/adapters/config"
	"go.trai.ch/pynix/internal/core/ports"
)

// NodeID is the unique identifier for the package index Graft node.
const NodeID graft.ID = "adapter.index"

func init() {
	graft.Register(graft.Node[ports.PackageIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PackageIndex, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			manifest, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			return Load(manifest.IndexFile)
		},
	})
}
