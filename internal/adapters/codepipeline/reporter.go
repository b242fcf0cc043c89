// Package codepipeline implements ports.JobReporter on AWS CodePipeline.
package codepipeline

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline/types"
	"github.com/aws/smithy-go"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service limits on the free-text fields of a job result.
const (
	MaxFailureMessageLen      = 5000
	MaxSummaryLen             = 2048
	MaxExternalExecutionIDLen = 1500
)

// API is the subset of the CodePipeline client used by the Reporter.
type API interface {
	PutJobSuccessResult(
		ctx context.Context,
		params *codepipeline.PutJobSuccessResultInput,
		optFns ...func(*codepipeline.Options),
	) (*codepipeline.PutJobSuccessResultOutput, error)
	PutJobFailureResult(
		ctx context.Context,
		params *codepipeline.PutJobFailureResultInput,
		optFns ...func(*codepipeline.Options),
	) (*codepipeline.PutJobFailureResultOutput, error)
}

// Reporter files job results with CodePipeline.
type Reporter struct {
	api API
}

var _ ports.JobReporter = (*Reporter)(nil)

// New creates a Reporter from a shared AWS configuration.
func New(cfg aws.Config) *Reporter {
	return NewWithAPI(codepipeline.NewFromConfig(cfg))
}

// NewWithAPI creates a Reporter over any CodePipeline API implementation.
func NewWithAPI(api API) *Reporter {
	return &Reporter{api: api}
}

// PutJobSuccess marks the job as succeeded.
func (r *Reporter) PutJobSuccess(ctx context.Context, report domain.Report) error {
	in := &codepipeline.PutJobSuccessResultInput{
		JobId: aws.String(string(report.JobID)),
	}

	if report.Summary != "" || report.ExternalExecutionID != "" {
		details := &types.ExecutionDetails{}
		if report.Summary != "" {
			details.Summary = aws.String(truncate(report.Summary, MaxSummaryLen))
		}
		if report.ExternalExecutionID != "" {
			details.ExternalExecutionId = aws.String(truncate(report.ExternalExecutionID, MaxExternalExecutionIDLen))
		}
		in.ExecutionDetails = details
	}
	if len(report.OutputVariables) > 0 {
		in.OutputVariables = report.OutputVariables
	}

	if _, err := r.api.PutJobSuccessResult(ctx, in); err != nil {
		return annotate(err, report.JobID)
	}
	return nil
}

// PutJobFailure marks the job as failed with the report's failure details.
func (r *Reporter) PutJobFailure(ctx context.Context, report domain.Report) error {
	failure := domain.NewJobFailure(nil)
	if report.Failure != nil {
		failure = *report.Failure
	}

	in := &codepipeline.PutJobFailureResultInput{
		JobId: aws.String(string(report.JobID)),
		FailureDetails: &types.FailureDetails{
			Type:    failureType(failure.Type),
			Message: aws.String(truncate(failure.Message, MaxFailureMessageLen)),
		},
	}

	if _, err := r.api.PutJobFailureResult(ctx, in); err != nil {
		return annotate(err, report.JobID)
	}
	return nil
}

func failureType(t domain.FailureType) types.FailureType {
	if t == domain.FailureJobFailed {
		return types.FailureTypeJobFailed
	}
	return types.FailureType(t)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func annotate(err error, job domain.JobID) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		err = zerr.With(err, "aws_error_code", apiErr.ErrorCode())
	}
	return zerr.With(err, "job_id", string(job))
}
