// Package cloudfront implements ports.Invalidator on Amazon CloudFront.
package cloudfront

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/smithy-go"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// API is the subset of the CloudFront client used by the Invalidator.
type API interface {
	CreateInvalidation(
		ctx context.Context,
		params *cloudfront.CreateInvalidationInput,
		optFns ...func(*cloudfront.Options),
	) (*cloudfront.CreateInvalidationOutput, error)
}

// Invalidator submits invalidation batches to CloudFront.
type Invalidator struct {
	api API
}

var _ ports.Invalidator = (*Invalidator)(nil)

// New creates an Invalidator from a shared AWS configuration.
// CloudFront is a global service, so the client is pinned to us-east-1.
func New(cfg aws.Config) *Invalidator {
	return NewWithAPI(cloudfront.NewFromConfig(cfg, func(o *cloudfront.Options) {
		o.Region = "us-east-1"
	}))
}

// NewWithAPI creates an Invalidator over any CloudFront API implementation.
func NewWithAPI(api API) *Invalidator {
	return &Invalidator{api: api}
}

// CreateInvalidation sends req as a single invalidation batch.
// The SDK's own retryer is left in place for transport errors; there is no
// application-level retry. The distribution id is passed through unchecked;
// CloudFront decides whether it exists.
func (i *Invalidator) CreateInvalidation(
	ctx context.Context,
	req domain.InvalidationRequest,
) (*domain.InvalidationReceipt, error) {
	out, err := i.api.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(string(req.DistributionID)),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(req.CallerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(req.Paths))), //nolint:gosec // a handful of paths
				Items:    req.Paths,
			},
		},
	})
	if err != nil {
		return nil, annotate(err, req.DistributionID)
	}

	receipt := &domain.InvalidationReceipt{
		Location: aws.ToString(out.Location),
	}
	if inv := out.Invalidation; inv != nil {
		receipt.ID = aws.ToString(inv.Id)
		receipt.Status = aws.ToString(inv.Status)
		receipt.CreatedAt = aws.ToTime(inv.CreateTime)
	}
	return receipt, nil
}

// annotate attaches the distribution and, for service errors, the API error code.
// The error text is kept as-is: it becomes the failure report message.
func annotate(err error, dist domain.DistributionID) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		err = zerr.With(err, "aws_error_code", apiErr.ErrorCode())
	}
	return zerr.With(err, "distribution_id", string(dist))
}
