package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the AWS configuration Graft node.
const NodeID graft.ID = "adapter.awsconfig"

func init() {
	graft.Register(graft.Node[aws.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (aws.Config, error) {
			return Load(ctx)
		},
	})
}
