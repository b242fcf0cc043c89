package codepipeline

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/awsconfig"
)

// NodeID is the unique identifier for the CodePipeline reporter Graft node.
const NodeID graft.ID = "adapter.codepipeline"

func init() {
	graft.Register(graft.Node[*Reporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{awsconfig.NodeID},
		Run: func(ctx context.Context) (*Reporter, error) {
			cfg, err := graft.Dep[aws.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
