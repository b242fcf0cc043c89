package cloudfront

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/grindlemire/graft"
	"go.trai.ch/purge/internal/adapters/awsconfig"
	"go.trai.ch/purge/internal/core/ports"
)

// NodeID is the unique identifier for the CloudFront invalidator Graft node.
const NodeID graft.ID = "adapter.cloudfront"

func init() {
	graft.Register(graft.Node[ports.Invalidator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{awsconfig.NodeID},
		Run: func(ctx context.Context) (ports.Invalidator, error) {
			cfg, err := graft.Dep[aws.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg), nil
		},
	})
}
