package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pynix/internal/core/ports"
)

// NodeID is the unique identifier for the expression cache Graft node.
const NodeID graft.ID = "adapter.cache"

// defaultCachePath is where the cache file lives relative to the working
// directory.
const defaultCachePath = ".pynix/cache.json"

func init() {
	graft.Register(graft.Node[ports.ExpressionCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExpressionCache, error) {
			return NewStore(defaultCachePath)
		},
	})
}
