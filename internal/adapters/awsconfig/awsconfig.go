// Package awsconfig loads the shared AWS client configuration.
package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.trai.ch/zerr"
)

// Load resolves credentials and region from the environment, shared files and,
// inside the function runtime, the execution role.
func Load(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return aws.Config{}, zerr.Wrap(err, "failed to load AWS configuration")
	}
	return cfg, nil
}
