package ledger

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the report ledger Graft node.
const NodeID graft.ID = "adapter.ledger"

// Factory opens a Store rooted at a directory chosen at run time.
type Factory func(root string) *Store

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return NewStore, nil
		},
	})
}
