package metrics

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the metrics Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[*PrometheusSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*PrometheusSink, error) {
			return NewPrometheusSink(), nil
		},
	})
}
